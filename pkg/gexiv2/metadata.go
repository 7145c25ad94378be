package gexiv2

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"sync"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/internal/backend"
	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/logging"
)

// Metadata is the metadata of one image, backed by a native handle that is
// released exactly once by Close (or, as a fallback, by a finalizer).
//
// A Metadata may be used from multiple goroutines; its operations are
// serialised. Every method called after Close returns an error matching
// ErrClosed.
type Metadata struct {
	mu  sync.Mutex
	lib *library
	h   backend.Handle // zero once closed
	src source
	log logging.Logger
}

// source remembers where the metadata was loaded from so Clone can load a
// second, independent native object.
type source struct {
	path string
	data []byte // private copy for buffer and APP1 opens
	app1 bool
}

// Open reads the metadata of the image file at path. The path is passed to
// the native library as raw bytes, so non-UTF-8 names work on Unix.
func Open(path string, opts ...Option) (*Metadata, error) {
	return std.open(path, opts...)
}

// OpenBuffer reads the metadata of an image held in memory. data is copied;
// the caller may reuse it once OpenBuffer returns. Empty data fails with
// ErrUnsupportedFormat.
func OpenBuffer(data []byte, opts ...Option) (*Metadata, error) {
	return std.openBuffer(data, opts...)
}

// OpenApp1Segment reads metadata from the payload of a JPEG APP1 segment
// (starting with "Exif\x00\x00").
func OpenApp1Segment(data []byte, opts ...Option) (*Metadata, error) {
	return std.openApp1Segment(data, opts...)
}

// New returns an empty Metadata that is not bound to any image.
func New(opts ...Option) (*Metadata, error) {
	return std.newMetadata(opts...)
}

func (l *library) open(path string, opts ...Option) (*Metadata, error) {
	const op = "open"
	o := l.options(opts)
	if err := l.ensure(); err != nil {
		return nil, err
	}
	if err := backend.CheckPath(path); err != nil {
		return nil, l.fail(o.log, op, path, err)
	}
	if err := statSource(op, path); err != nil {
		return nil, err
	}
	return l.attach(o, op, source{path: path}, func(h backend.Handle) error {
		return l.drv.OpenPath(h, path)
	})
}

// statSource separates missing, forbidden and unreadable paths before the
// native library reports them as a generic open failure.
func statSource(op, path string) error {
	fi, err := os.Stat(path)
	switch {
	case err == nil && fi.IsDir():
		return &Error{Op: op, Path: path, Err: fmt.Errorf("%w: is a directory", ErrUnreadable)}
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return &Error{Op: op, Path: path, Err: fmt.Errorf("%w: %w", ErrNotFound, err)}
	case errors.Is(err, fs.ErrPermission):
		return &Error{Op: op, Path: path, Err: fmt.Errorf("%w: %w", ErrPermissionDenied, err)}
	default:
		return &Error{Op: op, Path: path, Err: fmt.Errorf("%w: %w", ErrUnreadable, err)}
	}
}

func (l *library) openBuffer(data []byte, opts ...Option) (*Metadata, error) {
	const op = "open-buffer"
	o := l.options(opts)
	if err := l.ensure(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, &Error{Op: op, Err: fmt.Errorf("%w: buffer is empty", ErrUnsupportedFormat)}
	}
	src := source{data: bytes.Clone(data)}
	return l.attach(o, op, src, func(h backend.Handle) error {
		return l.drv.OpenBuffer(h, src.data)
	})
}

func (l *library) openApp1Segment(data []byte, opts ...Option) (*Metadata, error) {
	const op = "open-app1"
	o := l.options(opts)
	if err := l.ensure(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, &Error{Op: op, Err: fmt.Errorf("%w: segment is empty", ErrUnsupportedFormat)}
	}
	src := source{data: bytes.Clone(data), app1: true}
	return l.attach(o, op, src, func(h backend.Handle) error {
		return l.drv.OpenApp1Segment(h, src.data)
	})
}

func (l *library) newMetadata(opts ...Option) (*Metadata, error) {
	o := l.options(opts)
	if err := l.ensure(); err != nil {
		return nil, err
	}
	return l.attach(o, "new", source{}, nil)
}

// attach allocates a native handle, runs load on it and wraps it. The handle
// is freed again if load fails.
func (l *library) attach(o openOptions, op string, src source, load func(backend.Handle) error) (*Metadata, error) {
	h, err := l.drv.New()
	if err != nil {
		return nil, l.fail(o.log, op, src.path, err)
	}
	if load != nil {
		if err := load(h); err != nil {
			l.drv.Free(h)
			return nil, l.fail(o.log, op, src.path, err)
		}
	}

	m := &Metadata{lib: l, h: h, src: src, log: o.log}
	runtime.SetFinalizer(m, (*Metadata).finalize)
	o.log.Debug(context.Background(), "metadata opened", "op", op, "path", src.path, "handle", uint64(h))
	return m, nil
}

func (l *library) fail(log logging.Logger, op, path string, err error) *Error {
	e := remapError(op, err)
	if e.Path == "" {
		e.Path = path
	}
	report(log, e)
	return e
}

// Close releases the native handle. Calling Close more than once is a no-op
// that returns nil.
func (m *Metadata) Close() error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.h == 0 {
		return nil
	}

	runtime.SetFinalizer(m, nil)
	m.lib.drv.Free(m.h)
	m.log.Debug(context.Background(), "metadata closed", "path", m.src.path, "handle", uint64(m.h))
	m.h = 0
	m.src.data = nil
	return nil
}

func (m *Metadata) finalize() {
	m.mu.Lock()
	h := m.h
	m.h = 0
	m.mu.Unlock()
	if h == 0 {
		return
	}
	m.log.Warn(context.Background(), "metadata handle released by finalizer; call Close", "path", m.src.path, "handle", uint64(h))
	m.lib.drv.Free(h)
}

// run executes fn against the live handle with m locked. Failures are
// remapped and attributed to path and tag.
func (m *Metadata) run(op, path, tag string, fn func(d backend.Driver, h backend.Handle) error) error {
	if m == nil {
		return &Error{Op: op, Path: path, Tag: tag, Err: ErrClosed}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.h == 0 {
		return &Error{Op: op, Path: path, Tag: tag, Err: ErrClosed}
	}
	if err := fn(m.lib.drv, m.h); err != nil {
		e := remapError(op, err)
		e.Path = path
		e.Tag = tag
		report(m.log, e)
		return e
	}
	return nil
}

// do is run attributed to the image the metadata was loaded from.
func (m *Metadata) do(op, tag string, fn func(d backend.Driver, h backend.Handle) error) error {
	var path string
	if m != nil {
		path = m.src.path
	}
	return m.run(op, path, tag, fn)
}

// Path returns the file the metadata was opened from, or "" for buffers and
// New.
func (m *Metadata) Path() string {
	if m == nil {
		return ""
	}
	return m.src.path
}

// Save writes the metadata into the existing image file at path, which need
// not be the file it was read from.
func (m *Metadata) Save(path string) error {
	return m.run("save", path, "", func(d backend.Driver, h backend.Handle) error {
		return d.SaveFile(h, path)
	})
}

// SaveSidecar writes the metadata as an XMP sidecar file at path, creating or
// replacing it.
func (m *Metadata) SaveSidecar(path string) error {
	return m.run("save-sidecar", path, "", func(d backend.Driver, h backend.Handle) error {
		return d.SaveExternal(h, path)
	})
}

var families = []backend.Family{backend.FamilyExif, backend.FamilyIptc, backend.FamilyXmp}

// Clone returns an independent Metadata with the same tags. The copy is
// loaded from the same source (file, buffer or nothing) into a new native
// object, its own tags cleared, and every tag of m written onto it; later
// changes to either value do not affect the other.
func (m *Metadata) Clone() (*Metadata, error) {
	const op = "clone"
	if m == nil {
		return nil, &Error{Op: op, Err: ErrClosed}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.h == 0 {
		return nil, &Error{Op: op, Path: m.src.path, Err: ErrClosed}
	}

	l := m.lib
	src := m.src
	var load func(backend.Handle) error
	switch {
	case src.path != "":
		load = func(h backend.Handle) error { return l.drv.OpenPath(h, src.path) }
	case src.app1:
		load = func(h backend.Handle) error { return l.drv.OpenApp1Segment(h, src.data) }
	case src.data != nil:
		load = func(h backend.Handle) error { return l.drv.OpenBuffer(h, src.data) }
	}
	c, err := l.attach(openOptions{log: m.log}, op, src, load)
	if err != nil {
		return nil, err
	}
	if err := copyTags(l.drv, m.h, c.h); err != nil {
		_ = c.Close()
		return nil, l.fail(m.log, op, src.path, err)
	}
	return c, nil
}

func copyTags(d backend.Driver, from, to backend.Handle) error {
	if err := d.Clear(to); err != nil {
		return err
	}
	for _, f := range families {
		tags, err := d.Tags(from, f)
		if err != nil {
			return err
		}
		for _, tag := range tags {
			multi, err := d.TagSupportsMultipleValues(from, tag)
			if err != nil {
				return err
			}
			if multi {
				values, err := d.TagMultiple(from, tag)
				if err != nil {
					return err
				}
				if err := d.SetTagMultiple(to, tag, values); err != nil {
					return err
				}
				continue
			}
			s, ok, err := d.TagString(from, tag)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := d.SetTagString(to, tag, s); err != nil {
				return err
			}
		}
	}
	return nil
}
