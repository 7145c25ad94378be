package backend

import (
	"errors"
	"fmt"
)

// Handle is an opaque identifier for one native GExiv2Metadata object. The
// zero Handle never refers to a live object.
type Handle uintptr

// Family selects one of the three metadata standards handled by gexiv2.
type Family int

const (
	FamilyExif Family = iota + 1
	FamilyXmp
	FamilyIptc
)

func (f Family) String() string {
	switch f {
	case FamilyExif:
		return "Exif"
	case FamilyXmp:
		return "Xmp"
	case FamilyIptc:
		return "Iptc"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// ErrNotBuilt reports that the native bindings were not linked into the
// current binary.
var ErrNotBuilt = errors.New("gexiv2/internal/backend: native bindings not built")

// Driver is the set of native entry points used by the public package. The
// cgo implementation is returned by Native; tests substitute a pure-Go double.
//
// Getters that can legitimately find nothing report it through an ok result
// instead of a sentinel value. All errors returned by a Driver are either
// *Error or ErrNotBuilt.
type Driver interface {
	// Initialize runs the native global setup. Callers guarantee it is invoked
	// at most once per Driver.
	Initialize() error
	Version() string

	New() (Handle, error)
	// Free releases the native object. It reports false when h was not live,
	// in which case nothing is released.
	Free(h Handle) bool

	OpenPath(h Handle, path string) error
	OpenBuffer(h Handle, data []byte) error
	OpenApp1Segment(h Handle, data []byte) error
	SaveFile(h Handle, path string) error
	SaveExternal(h Handle, path string) error

	Supports(h Handle, f Family) (bool, error)
	MimeType(h Handle) (string, bool, error)
	PixelWidth(h Handle) (int, error)
	PixelHeight(h Handle) (int, error)

	HasTag(h Handle, tag string) (bool, error)
	ClearTag(h Handle, tag string) (bool, error)
	Clear(h Handle) error
	HasFamily(h Handle, f Family) (bool, error)
	ClearFamily(h Handle, f Family) error
	Tags(h Handle, f Family) ([]string, error)
	TagSupportsMultipleValues(h Handle, tag string) (bool, error)

	TagString(h Handle, tag string) (string, bool, error)
	TagInterpretedString(h Handle, tag string) (string, bool, error)
	SetTagString(h Handle, tag, value string) error
	TagMultiple(h Handle, tag string) ([]string, error)
	SetTagMultiple(h Handle, tag string, values []string) error
	TagLong(h Handle, tag string) (int64, bool, error)
	SetTagLong(h Handle, tag string, value int64) error
	TagRational(h Handle, tag string) (num, den int32, ok bool, err error)
	SetTagRational(h Handle, tag string, num, den int32) error
	TagRaw(h Handle, tag string) ([]byte, bool, error)

	Orientation(h Handle) (int, error)
	SetOrientation(h Handle, o int) error
	ExposureTime(h Handle) (num, den int32, ok bool, err error)
	FNumber(h Handle) (float64, bool, error)
	FocalLength(h Handle) (float64, bool, error)
	ISOSpeed(h Handle) (int, bool, error)
	GPSInfo(h Handle) (lon, lat, alt float64, ok bool, err error)
	SetGPSInfo(h Handle, lon, lat, alt float64) error
	DeleteGPSInfo(h Handle) error
	Comment(h Handle) (string, bool, error)
	SetComment(h Handle, comment string) error
	XMPPacket(h Handle) (string, bool, error)
	GenerateXMPPacket(h Handle, flags, padding uint32) (string, bool, error)

	IsTag(f Family, tag string) bool
	TagLabel(tag string) (string, bool, error)
	TagDescription(tag string) (string, bool, error)
	TagType(tag string) (string, error)
	RegisterXMPNamespace(name, prefix string) (bool, error)
	UnregisterXMPNamespace(name string) (bool, error)
	UnregisterAllXMPNamespaces() error
	XMPNamespaceForTag(tag string) (string, error)
}

// Error carries a native failure after it has been copied out of its GError.
type Error struct {
	Status  Status
	Domain  string
	Code    int
	Message string
}

func (e *Error) Error() string {
	if e.Domain == "" {
		return fmt.Sprintf("%s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s code %d)", e.Status, e.Message, e.Domain, e.Code)
}

// Failed builds an *Error for failures detected on the Go side of the
// boundary, before or after a native call.
func Failed(s Status, format string, args ...any) *Error {
	return &Error{Status: s, Message: fmt.Sprintf(format, args...)}
}

// errNoDetail is returned when a native call reports failure without setting
// its GError out-parameter.
func errNoDetail(call string) *Error {
	return Failed(StatusUnknown, "%s failed without error detail", call)
}

func errInvalidHandle(h Handle) *Error {
	return Failed(StatusUnknown, "invalid native handle %d", h)
}
