package calculation

import "github.com/shopspring/decimal"

// DefaultMaxCycles caps projection walks that run until a stopping
// condition. The walk stops at the cap and reports the partial result;
// interpreting "did not finish" is the caller's job.
const DefaultMaxCycles = 60

// MaxFixedCycles caps the fixed-length savings walk.
const MaxFixedCycles = 120

// Logger is the engine's logging interface. The engine itself performs no
// I/O; callers plug in an implementation when they want calculation
// tracing.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output. It is the engine default.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// Engine runs pay-cycle projections. It holds no mutable state beyond its
// logger; every method is a pure function of its arguments and is safe to
// call concurrently.
type Engine struct {
	Logger Logger
	Debug  bool
}

// NewEngine creates an engine with the no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger replaces the engine's logger. A nil logger restores the no-op
// default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
}

var (
	decimalZero    = decimal.Zero
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
)

// round2 rounds to 2 decimal places. Applied at every step boundary so
// floating drift cannot compound across cycles.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
