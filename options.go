package annostore

import (
	"log/slog"

	"github.com/hupe1980/annostore/core"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	startTID         core.TID
	linkIndex        bool
	groupIndex       bool
}

// Option configures a Store.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &annostore.BasicMetricsCollector{}
//	st := annostore.New(schema, annostore.WithMetricsCollector(metrics))
//	// ... use st ...
//	stats := metrics.GetStats()
//	fmt.Printf("Adds: %d, Avg latency: %dns\n", stats.AddCount, stats.AddAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := annostore.NewJSONLogger(slog.LevelDebug)
//	st := annostore.New(schema, annostore.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithStartTID sets the first identifier the store allocates. The default
// is 1; core.NilTID is never allocated.
func WithStartTID(tid core.TID) Option {
	return func(o *options) {
		o.startTID = tid
	}
}

// WithRelationIndexes builds the link and group indexes at construction, so
// links and group members added later are indexed incrementally.
func WithRelationIndexes() Option {
	return func(o *options) {
		o.linkIndex = true
		o.groupIndex = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		startTID:         1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
