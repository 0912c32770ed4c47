package unitgo

import (
	"log/slog"

	"github.com/hupe1980/unitgo/codec"
	"github.com/hupe1980/unitgo/storage"
)

type options struct {
	codec            codec.Codec
	storageType      storage.Type
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Converter.
type Option func(*options)

// WithCodec configures the codec used by Converter.Marshal.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithStorageType selects the representation used by Converter.ConvertAll.
// Sparse storage pays off for inputs that are mostly zero.
func WithStorageType(t storage.Type) Option {
	return func(o *options) {
		o.storageType = t
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &unitgo.BasicMetricsCollector{}
//	c := unitgo.New(unitgo.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Parses: %d, errors: %d\n", stats.ParseCount, stats.ParseErrors)
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
//	logger := unitgo.NewJSONLogger(slog.LevelInfo)
//	c := unitgo.New(unitgo.WithLogger(logger))
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

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		storageType:      storage.TypeDense,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
