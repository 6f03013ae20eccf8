package reconciler

import (
	"github.com/unisonlabs/unison/pkg/authority"
	"github.com/unisonlabs/unison/pkg/normalize"
)

// options configures a reconciler.
type options struct {
	normalizer  *normalize.Normalizer
	authorities authority.Authority
}

func defaultOptions() *options {
	return &options{
		normalizer:  normalize.New(),
		authorities: authority.Default(),
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options)

func newOptions(opts ...Option) *options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithNormalizer sets the name normalizer, letting tests substitute fixture
// noise-word tables.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(o *options) {
		if n != nil {
			o.normalizer = n
		}
	}
}

// WithAuthorities sets the field authority table.
func WithAuthorities(a authority.Authority) Option {
	return func(o *options) {
		if a != nil {
			o.authorities = a
		}
	}
}
