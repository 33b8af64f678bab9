package doc

import "github.com/ardnew/multitext/log"

// Option configures a parse.
type Option func(*options)

type options struct {
	logger       log.Logger
	strictMarker bool
}

func makeOptions(opts ...Option) options {
	var o options

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger sets the logger that receives trace records for marker
// discovery and every closed section. The zero [log.Logger] is silent.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithStrictMarker makes a parse fail with [ErrBlankMarker] when the
// discovered marker is empty or only whitespace.
func WithStrictMarker(strict bool) Option {
	return func(o *options) { o.strictMarker = strict }
}
