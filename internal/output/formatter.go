package output

import "github.com/mfarrow/cyclecast/internal/domain"

// Formatter renders a forecast report in one output format.
type Formatter interface {
	Format(report *domain.ForecastReport) ([]byte, error)
	Name() string
}

var formatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// GetFormatterByName returns the formatter registered under name, or nil.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered format names.
func FormatterNames() []string {
	names := make([]string, len(formatters))
	for i, f := range formatters {
		names[i] = f.Name()
	}
	return names
}
