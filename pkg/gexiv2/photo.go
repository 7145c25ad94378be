package gexiv2

import (
	"fmt"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/internal/backend"
)

// Orientation is the Exif orientation of the stored image relative to how it
// should be displayed.
type Orientation int

const (
	OrientationUnspecified Orientation = iota
	OrientationNormal
	OrientationHorizontalFlip
	OrientationRotate180
	OrientationVerticalFlip
	OrientationRotate90HorizontalFlip
	OrientationRotate90
	OrientationRotate90VerticalFlip
	OrientationRotate270
)

var orientationNames = [...]string{
	"unspecified", "normal", "horizontal-flip", "rotate-180", "vertical-flip",
	"rotate-90-horizontal-flip", "rotate-90", "rotate-90-vertical-flip", "rotate-270",
}

func (o Orientation) String() string {
	if o.Valid() {
		return orientationNames[o]
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Valid reports whether o is one of the nine defined values.
func (o Orientation) Valid() bool {
	return o >= OrientationUnspecified && o <= OrientationRotate270
}

// Orientation returns the image orientation. Images without the tag, or with
// an out-of-range value, report OrientationUnspecified.
func (m *Metadata) Orientation() (Orientation, error) {
	var o Orientation
	err := m.do("orientation", "", func(d backend.Driver, h backend.Handle) error {
		v, err := d.Orientation(h)
		if err != nil {
			return err
		}
		if o = Orientation(v); !o.Valid() {
			o = OrientationUnspecified
		}
		return nil
	})
	return o, err
}

// SetOrientation sets the image orientation.
func (m *Metadata) SetOrientation(o Orientation) error {
	return m.do("set-orientation", "", func(d backend.Driver, h backend.Handle) error {
		if !o.Valid() {
			return backend.Failed(backend.StatusInvalidInput, "orientation %d out of range", int(o))
		}
		return d.SetOrientation(h, int(o))
	})
}

// ExposureTime returns the exposure time in seconds as a fraction.
func (m *Metadata) ExposureTime() (r Rational, ok bool, err error) {
	err = m.do("exposure-time", "", func(d backend.Driver, h backend.Handle) (err error) {
		r.Num, r.Den, ok, err = d.ExposureTime(h)
		return err
	})
	return r, ok, err
}

// FNumber returns the aperture f-number.
func (m *Metadata) FNumber() (f float64, ok bool, err error) {
	err = m.do("fnumber", "", func(d backend.Driver, h backend.Handle) (err error) {
		f, ok, err = d.FNumber(h)
		return err
	})
	return f, ok, err
}

// FocalLength returns the lens focal length in millimetres.
func (m *Metadata) FocalLength() (mm float64, ok bool, err error) {
	err = m.do("focal-length", "", func(d backend.Driver, h backend.Handle) (err error) {
		mm, ok, err = d.FocalLength(h)
		return err
	})
	return mm, ok, err
}

// ISOSpeed returns the ISO sensitivity.
func (m *Metadata) ISOSpeed() (iso int, ok bool, err error) {
	err = m.do("iso-speed", "", func(d backend.Driver, h backend.Handle) (err error) {
		iso, ok, err = d.ISOSpeed(h)
		return err
	})
	return iso, ok, err
}

// Comment returns the image comment (Exif user comment, falling back to
// other comment fields in the native library).
func (m *Metadata) Comment() (comment string, ok bool, err error) {
	err = m.do("comment", "", func(d backend.Driver, h backend.Handle) (err error) {
		comment, ok, err = d.Comment(h)
		return err
	})
	return comment, ok, err
}

// SetComment sets the image comment.
func (m *Metadata) SetComment(comment string) error {
	return m.do("set-comment", "", func(d backend.Driver, h backend.Handle) error {
		return d.SetComment(h, comment)
	})
}
