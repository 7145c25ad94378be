package gexiv2

import (
	"context"
	"fmt"
	"sync"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/internal/backend"
	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/logging"
)

// library binds a Driver to the once-guard that initializes it.
type library struct {
	drv    backend.Driver
	log    logging.Logger
	ensure func() error

	// The native XMP namespace table is process-wide and does not record who
	// registered what.
	nsMu sync.Mutex
	ns   map[string]string // namespace URI -> prefix
}

func newLibrary(drv backend.Driver, log logging.Logger) *library {
	l := &library{drv: drv, log: log, ns: make(map[string]string)}
	l.ensure = sync.OnceValue(l.initialize)
	return l
}

// std is the process-wide library over the native driver.
var std = newLibrary(backend.Native(), logging.New(nil))

// Initialize runs the native library's global setup. It is safe to call from
// multiple goroutines; setup runs at most once per process and concurrent
// callers wait for it. A failure is cached and returned by every later call,
// including the implicit ones made by Open and the other entry points.
func Initialize() error {
	return std.ensure()
}

func (l *library) initialize() error {
	ctx := context.Background()
	if err := l.drv.Initialize(); err != nil {
		cause := remapError("initialize", err)
		e := &Error{Op: "initialize", Err: fmt.Errorf("%w: %w", ErrInitFailed, cause.Err), Native: cause.Native}
		l.log.Error(ctx, "gexiv2 initialization failed", "error", e)
		return e
	}
	l.log.Debug(ctx, "gexiv2 initialized", "version", l.drv.Version())
	return nil
}
