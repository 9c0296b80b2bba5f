package newsdata

import (
	"github.com/hupe1980/newsdata/table"
)

const defaultConcurrency = 4

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	format           table.Format
	formatSet        bool
	sheet            string
	concurrency      int
	memoryLimit      int64
	ioLimit          int64
}

// Option configures dataset construction and loading.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		concurrency:      defaultConcurrency,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, a NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithFormat forces the table format instead of inferring it from the
// source name. Compression is still inferred from the name.
func WithFormat(f table.Format) Option {
	return func(o *options) {
		o.format = f
		o.formatSet = true
	}
}

// WithSheet selects the worksheet read from XLSX sources.
// The first sheet is used by default.
func WithSheet(sheet string) Option {
	return func(o *options) {
		o.sheet = sheet
	}
}

// WithConcurrency bounds the number of sources LoadAll reads at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithMemoryLimit caps the raw source bytes held in memory at once across
// concurrent loads. The limit counts bytes as stored, before decompression;
// decoded tables of compressed sources are not counted. A single source
// larger than the limit fails to load. 0 disables the limit.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithIOLimit caps the read throughput from blob stores in bytes per second.
// With a limit set, remote stores are read through a single ranged stream
// instead of a parallel whole-object download. 0 disables the limit.
func WithIOLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.ioLimit = bytesPerSec
	}
}
