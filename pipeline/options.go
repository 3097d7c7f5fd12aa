package pipeline

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Options configures a Decompose run. Use DefaultOptions or the
// With* functions rather than constructing Options directly.
type Options struct {
	Logger *logrus.Logger
}

// Option configures Options. All Option functions modify the pointed
// Options in place, matching prim_kruskal.Option's shape.
type Option func(*Options)

// WithLogger overrides the structured logger used to report per-stage
// progress. A nil logger is replaced by a discard logger, matching
// DefaultOptions, so Decompose never dereferences a nil *logrus.Logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(o *Options) {
		if logger == nil {
			o.Logger = discardLogger()

			return
		}
		o.Logger = logger
	}
}

// DefaultOptions returns Options with a logger that discards all output,
// so Decompose never assumes a process-wide logger is configured
// (spec.md §9 "Global state").
func DefaultOptions() Options {
	return Options{Logger: discardLogger()}
}

// discardLogger returns a *logrus.Logger whose output goes nowhere.
func discardLogger() *logrus.Logger {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return discard
}
