package gexiv2

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/internal/backend"
	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/logging"
)

var (
	// ErrNotFound indicates the file or a required entry does not exist.
	ErrNotFound = errors.New("gexiv2: not found")

	// ErrUnreadable indicates the source exists but could not be read.
	ErrUnreadable = errors.New("gexiv2: unreadable")

	// ErrPermissionDenied indicates the operating system refused access.
	ErrPermissionDenied = errors.New("gexiv2: permission denied")

	// ErrUnsupportedFormat indicates the data is not an image format Exiv2
	// can handle, or the image is corrupt.
	ErrUnsupportedFormat = errors.New("gexiv2: unsupported format")

	// ErrInvalidInput indicates a malformed tag key, value or path.
	ErrInvalidInput = errors.New("gexiv2: invalid input")

	// ErrWriteFailed indicates metadata could not be persisted.
	ErrWriteFailed = errors.New("gexiv2: write failed")

	// ErrUnknownFailure indicates the native library reported a failure that
	// could not be classified.
	ErrUnknownFailure = errors.New("gexiv2: unknown native failure")

	// ErrInitFailed indicates the native library could not be initialized.
	// The failure is cached; later calls return it without retrying.
	ErrInitFailed = errors.New("gexiv2: initialization failed")

	// ErrClosed indicates use of a Metadata after Close.
	ErrClosed = errors.New("gexiv2: metadata closed")

	// ErrNotBuilt indicates the binary was built without the native bindings.
	ErrNotBuilt = errors.New("gexiv2: native bindings not built")
)

// NativeError is the detail copied out of a native GError.
type NativeError struct {
	Domain  string
	Code    int
	Message string
}

func (n *NativeError) Error() string {
	return fmt.Sprintf("%s (%s code %d)", n.Message, n.Domain, n.Code)
}

// Error describes a failed operation. Err matches one of the package
// sentinels with errors.Is; Native, when set, holds the native status
// unchanged.
type Error struct {
	Op     string // operation, e.g. "open", "set-tag-string"
	Path   string // file involved, if any
	Tag    string // tag key involved, if any
	Err    error
	Native *NativeError
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("gexiv2.")
	b.WriteString(e.Op)
	if e.Path != "" {
		fmt.Fprintf(&b, " %q", e.Path)
	}
	if e.Tag != "" {
		b.WriteString(" ")
		b.WriteString(e.Tag)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Native != nil {
		b.WriteString(": ")
		b.WriteString(e.Native.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func statusError(s backend.Status) error {
	switch s {
	case backend.StatusNotFound:
		return ErrNotFound
	case backend.StatusUnreadable:
		return ErrUnreadable
	case backend.StatusPermissionDenied:
		return ErrPermissionDenied
	case backend.StatusUnsupportedFormat:
		return ErrUnsupportedFormat
	case backend.StatusInvalidInput:
		return ErrInvalidInput
	case backend.StatusWriteFailed:
		return ErrWriteFailed
	default:
		return ErrUnknownFailure
	}
}

// remapError converts a backend failure into an *Error. Failures detected on
// the Go side keep their message in Err; native ones carry it in Native.
func remapError(op string, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	out := &Error{Op: op}
	var be *backend.Error
	switch {
	case errors.As(err, &be):
		sentinel := statusError(be.Status)
		if be.Domain != "" {
			out.Err = sentinel
			out.Native = &NativeError{Domain: be.Domain, Code: be.Code, Message: be.Message}
		} else {
			out.Err = fmt.Errorf("%w: %s", sentinel, be.Message)
		}
	case errors.Is(err, backend.ErrNotBuilt):
		out.Err = ErrNotBuilt
	default:
		out.Err = fmt.Errorf("%w: %w", ErrUnknownFailure, err)
	}
	return out
}

// report logs unclassified failures before they are returned.
func report(log logging.Logger, e *Error) {
	if !errors.Is(e.Err, ErrUnknownFailure) {
		return
	}
	args := []any{"op", e.Op, "error", e.Err}
	if e.Path != "" {
		args = append(args, "path", e.Path)
	}
	if e.Tag != "" {
		args = append(args, "tag", e.Tag)
	}
	if e.Native != nil {
		args = append(args, "domain", e.Native.Domain, "code", e.Native.Code, "message", e.Native.Message)
	}
	log.Error(context.Background(), "gexiv2 native call failed", args...)
}
