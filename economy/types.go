package economy

import "go.uber.org/zap"

// Values maps part names to their computed relative value.
type Values map[string]float64

// DefaultMaxIterations is the convergence safety cap applied when no
// WithMaxIterations option is given. It is far above what any real
// catalog needs; it exists to turn a pathological catalog into
// ErrNoConvergence instead of a hang.
const DefaultMaxIterations = 5_000_000

// Option configures the solver via functional arguments.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	// MaxIterations caps the equilibrium iteration per economy.
	// Zero disables the cap entirely.
	MaxIterations int

	// Logger receives progress events (economy counts, convergence
	// diagnostics). Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns Options with the iteration cap set to
// DefaultMaxIterations and a no-op logger.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Logger:        zap.NewNop(),
	}
}

// WithMaxIterations sets the per-economy iteration cap.
// Values below 1 disable the cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxIterations = n
	}
}

// WithLogger routes solver progress to l. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
