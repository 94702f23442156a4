package output

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/mfarrow/cyclecast/internal/domain"
)

// JSONFormatter emits the forecast report as indented JSON, the same shape
// the HTTP API returns.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.ForecastReport) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling report: %w", err)
	}
	return append(data, '\n'), nil
}
