package mzml

import "log/slog"

// Options configures a Reader.
type Options struct {
	// Logger receives structured diagnostics (index fallbacks, sidecar
	// misses). Nil disables logging.
	Logger *slog.Logger

	// BufferSize is the read buffer for full-document scans.
	// Defaults to 1MB.
	BufferSize int

	// ForceScan skips the embedded index and always rebuilds by linear
	// scan. Mostly useful for cross-checking a suspect index.
	ForceScan bool

	// IndexCachePath, when set, is consulted before scanning and
	// written after a scan-built index. Ignored for documents whose
	// embedded index verifies.
	IndexCachePath string
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithBufferSize sets the scan read-buffer size in bytes.
func WithBufferSize(n int) Option {
	return func(o *Options) { o.BufferSize = n }
}

// WithForceScan disables the embedded index.
func WithForceScan() Option {
	return func(o *Options) { o.ForceScan = true }
}

// WithIndexCache enables the index sidecar at path.
func WithIndexCache(path string) Option {
	return func(o *Options) { o.IndexCachePath = path }
}

func applyOptions(optFns []Option) Options {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = defaultBufferSize
	}
	return opts
}
