package gexiv2

import "github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/logging"

// Option configures a Metadata at open time.
type Option func(*openOptions)

type openOptions struct {
	log logging.Logger
}

// WithLogger routes the Metadata's log records to l. Without it the
// library-wide logger (slog.Default) is used.
func WithLogger(l logging.Logger) Option {
	return func(o *openOptions) {
		if l != nil {
			o.log = l
		}
	}
}

func (l *library) options(opts []Option) openOptions {
	o := openOptions{log: l.log}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
