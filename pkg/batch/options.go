package batch

import "log/slog"

// Defaults applied by New when no options override them.
const (
	DefaultBatchSize      = 10
	DefaultMaxConcurrency = 3
)

// Option is a functional option for configuring a Processor
type Option func(*processorOptions)

type processorOptions struct {
	batchSize      int
	maxConcurrency int
	logger         *slog.Logger
}

// WithBatchSize sets how many tasks one batch drains
func WithBatchSize(n int) Option {
	return func(o *processorOptions) {
		if n > 0 {
			o.batchSize = n
		}
	}
}

// WithMaxConcurrency caps how many batches may be in flight at once
func WithMaxConcurrency(n int) Option {
	return func(o *processorOptions) {
		if n > 0 {
			o.maxConcurrency = n
		}
	}
}

// WithLogger sets the logger for batch lifecycle events
func WithLogger(logger *slog.Logger) Option {
	return func(o *processorOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
