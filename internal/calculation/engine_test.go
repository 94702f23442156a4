package calculation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingLogger captures log lines for assertions.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(format string, args ...any) { l.record("DEBUG", format, args...) }
func (l *recordingLogger) Infof(format string, args ...any)  { l.record("INFO", format, args...) }
func (l *recordingLogger) Warnf(format string, args ...any)  { l.record("WARN", format, args...) }
func (l *recordingLogger) Errorf(format string, args ...any) { l.record("ERROR", format, args...) }

func (l *recordingLogger) record(level, format string, args ...any) {
	l.lines = append(l.lines, level+": "+fmt.Sprintf(format, args...))
}

func TestNewEngine(t *testing.T) {
	engine := NewEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should default to the no-op logger")
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine()

	custom := &recordingLogger{}
	engine.SetLogger(custom)
	assert.Equal(t, custom, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger, "Nil restores the no-op logger")
}
