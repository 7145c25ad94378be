package gexiv2

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/internal/backend"
)

func TestRemapError(t *testing.T) {
	tests := []struct {
		name       string
		in         error
		want       error
		wantNative bool
	}{
		{"go-side not found", backend.Failed(backend.StatusNotFound, "gone"), ErrNotFound, false},
		{"go-side invalid", backend.Failed(backend.StatusInvalidInput, "nul"), ErrInvalidInput, false},
		{"native unreadable", &backend.Error{Status: backend.StatusUnreadable, Domain: backend.DomainGExiv2, Code: 11, Message: "open failed"}, ErrUnreadable, true},
		{"native permission", &backend.Error{Status: backend.StatusPermissionDenied, Domain: backend.DomainGIO, Code: 14, Message: "denied"}, ErrPermissionDenied, true},
		{"native format", &backend.Error{Status: backend.StatusUnsupportedFormat, Domain: backend.DomainGExiv2, Code: 12, Message: "unknown type"}, ErrUnsupportedFormat, true},
		{"native write", &backend.Error{Status: backend.StatusWriteFailed, Domain: backend.DomainGExiv2, Code: 22, Message: "write"}, ErrWriteFailed, true},
		{"native unknown", &backend.Error{Status: backend.StatusUnknown, Domain: "odd-quark", Code: 3, Message: "?"}, ErrUnknownFailure, true},
		{"not built", backend.ErrNotBuilt, ErrNotBuilt, false},
		{"foreign error", io.ErrUnexpectedEOF, ErrUnknownFailure, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := remapError("op", tt.in)
			assert.Equal(t, "op", e.Op)
			assert.ErrorIs(t, e, tt.want)
			assert.Equal(t, tt.wantNative, e.Native != nil)
		})
	}
}

func TestRemapErrorKeepsNativeDetail(t *testing.T) {
	in := &backend.Error{Status: backend.StatusWriteFailed, Domain: backend.DomainGExiv2, Code: 18, Message: "rename failed"}
	e := remapError("save", in)
	require.NotNil(t, e.Native)
	assert.Equal(t, NativeError{Domain: backend.DomainGExiv2, Code: 18, Message: "rename failed"}, *e.Native)
	assert.Contains(t, e.Error(), "rename failed (GExiv2 code 18)")
}

func TestRemapErrorWrapsForeignCause(t *testing.T) {
	e := remapError("op", io.ErrUnexpectedEOF)
	assert.ErrorIs(t, e, io.ErrUnexpectedEOF)
}

func TestRemapErrorPassesThroughPublicErrors(t *testing.T) {
	orig := &Error{Op: "open", Err: ErrNotFound}
	assert.Same(t, orig, remapError("other", orig))
}

func TestErrorString(t *testing.T) {
	e := &Error{Op: "set-tag-string", Path: "a.jpg", Tag: "Exif.Image.Make", Err: ErrInvalidInput}
	assert.Equal(t, `gexiv2.set-tag-string "a.jpg" Exif.Image.Make: gexiv2: invalid input`, e.Error())
	assert.True(t, errors.Is(e, ErrInvalidInput))
}

func TestUnknownFailureIsLogged(t *testing.T) {
	lib, drv, buf := recordingLibrary(t)
	md := openTestBuffer(t, lib)

	drv.Fail("SetTagString", backend.Failed(backend.StatusUnknown, "mystery"))
	err := md.SetTagString("Exif.Image.Make", "Canon")
	require.ErrorIs(t, err, ErrUnknownFailure)

	out := buf.String()
	assert.Contains(t, out, "gexiv2 native call failed")
	assert.Contains(t, out, "op=set-tag-string")
	assert.Contains(t, out, "tag=Exif.Image.Make")
}

func TestClassifiedFailureIsNotLoggedAsError(t *testing.T) {
	lib, _, buf := recordingLibrary(t)
	md := openTestBuffer(t, lib)

	err := md.SetTagString("NotAKey", "x")
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.NotContains(t, buf.String(), "gexiv2 native call failed")
}
