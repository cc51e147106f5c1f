package ptf

// Logger receives diagnostic records from the open sequence. It is satisfied
// by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

// StatePolicy decides what happens when a state index is past the last state.
type StatePolicy int

const (
	// StrictStates rejects out of range state indices with ErrIndexOutOfRange.
	StrictStates StatePolicy = iota
	// ClampStates serves the last state for indices past the end. Negative
	// indices are still rejected.
	ClampStates
)

func (p StatePolicy) String() string {
	switch p {
	case ClampStates:
		return "clamp"
	default:
		return "strict"
	}
}

// ParseStatePolicy accepts "strict" or "clamp".
func ParseStatePolicy(s string) (StatePolicy, bool) {
	switch s {
	case "strict", "":
		return StrictStates, true
	case "clamp":
		return ClampStates, true
	default:
		return StrictStates, false
	}
}

// Option configures Open.
type Option func(*options)

type options struct {
	log    Logger
	policy StatePolicy
}

func defaultOptions() *options {
	return &options{
		log:    nopLogger{},
		policy: StrictStates,
	}
}

// WithLogger routes open-time diagnostics to log.
func WithLogger(log Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithStatePolicy selects how out of range state indices are handled.
func WithStatePolicy(p StatePolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
