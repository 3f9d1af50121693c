package storage

import "go.uber.org/zap"

// StoreOptions collects the construction options shared by the store
// implementations. Implementations read the fields they understand and
// ignore the rest.
type StoreOptions struct {
	RetainPayloads bool
	Log            *zap.Logger
}

// Option is a generic construction option applied to StoreOptions.
type Option func(*StoreOptions)

// WithoutPayloads configures a store to keep hashes only. This is a valid
// deployment mode for space constrained callers, the hash sequence alone is
// sufficient for proof generation.
func WithoutPayloads() Option {
	return func(o *StoreOptions) {
		o.RetainPayloads = false
	}
}

// WithLogger supplies the logger used for store diagnostics. Stores that
// are given no logger stay silent.
func WithLogger(log *zap.Logger) Option {
	return func(o *StoreOptions) {
		o.Log = log
	}
}

func newStoreOptions(opts ...Option) StoreOptions {
	o := StoreOptions{
		RetainPayloads: true,
		Log:            zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Log == nil {
		o.Log = zap.NewNop()
	}
	return o
}
