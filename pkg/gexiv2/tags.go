package gexiv2

import (
	"math"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/internal/backend"
)

// HasTag reports whether tag is present.
func (m *Metadata) HasTag(tag string) (bool, error) {
	var ok bool
	err := m.do("has-tag", tag, func(d backend.Driver, h backend.Handle) (err error) {
		ok, err = d.HasTag(h, tag)
		return err
	})
	return ok, err
}

// ClearTag removes tag and reports whether it was present.
func (m *Metadata) ClearTag(tag string) (bool, error) {
	var removed bool
	err := m.do("clear-tag", tag, func(d backend.Driver, h backend.Handle) (err error) {
		removed, err = d.ClearTag(h, tag)
		return err
	})
	return removed, err
}

// Clear removes every tag of every family.
func (m *Metadata) Clear() error {
	return m.do("clear", "", func(d backend.Driver, h backend.Handle) error {
		return d.Clear(h)
	})
}

func (m *Metadata) hasFamily(op string, f backend.Family) (bool, error) {
	var ok bool
	err := m.do(op, "", func(d backend.Driver, h backend.Handle) (err error) {
		ok, err = d.HasFamily(h, f)
		return err
	})
	return ok, err
}

// HasExif reports whether any Exif tag is present.
func (m *Metadata) HasExif() (bool, error) { return m.hasFamily("has-exif", backend.FamilyExif) }

// HasXmp reports whether any XMP tag is present.
func (m *Metadata) HasXmp() (bool, error) { return m.hasFamily("has-xmp", backend.FamilyXmp) }

// HasIptc reports whether any IPTC tag is present.
func (m *Metadata) HasIptc() (bool, error) { return m.hasFamily("has-iptc", backend.FamilyIptc) }

func (m *Metadata) clearFamily(op string, f backend.Family) error {
	return m.do(op, "", func(d backend.Driver, h backend.Handle) error {
		return d.ClearFamily(h, f)
	})
}

// ClearExif removes all Exif tags.
func (m *Metadata) ClearExif() error { return m.clearFamily("clear-exif", backend.FamilyExif) }

// ClearXmp removes all XMP tags.
func (m *Metadata) ClearXmp() error { return m.clearFamily("clear-xmp", backend.FamilyXmp) }

// ClearIptc removes all IPTC tags.
func (m *Metadata) ClearIptc() error { return m.clearFamily("clear-iptc", backend.FamilyIptc) }

func (m *Metadata) tags(op string, f backend.Family) ([]string, error) {
	var out []string
	err := m.do(op, "", func(d backend.Driver, h backend.Handle) (err error) {
		out, err = d.Tags(h, f)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExifTags lists the keys of the Exif tags present. The slice is empty, not
// nil, when there are none.
func (m *Metadata) ExifTags() ([]string, error) { return m.tags("exif-tags", backend.FamilyExif) }

// XmpTags lists the keys of the XMP tags present.
func (m *Metadata) XmpTags() ([]string, error) { return m.tags("xmp-tags", backend.FamilyXmp) }

// IptcTags lists the keys of the IPTC tags present.
func (m *Metadata) IptcTags() ([]string, error) { return m.tags("iptc-tags", backend.FamilyIptc) }

// TagSupportsMultipleValues reports whether tag may hold a list of values
// (XMP arrays, repeatable IPTC datasets).
func (m *Metadata) TagSupportsMultipleValues(tag string) (bool, error) {
	var ok bool
	err := m.do("tag-multiple-values", tag, func(d backend.Driver, h backend.Handle) (err error) {
		ok, err = d.TagSupportsMultipleValues(h, tag)
		return err
	})
	return ok, err
}

// TagString returns the value of tag as Exiv2 prints it. ok is false when the
// tag is absent, which is distinct from a present empty value.
func (m *Metadata) TagString(tag string) (value string, ok bool, err error) {
	err = m.do("tag-string", tag, func(d backend.Driver, h backend.Handle) (err error) {
		value, ok, err = d.TagString(h, tag)
		return err
	})
	return value, ok, err
}

// TagInterpretedString returns the human-readable rendering of tag, such as
// "1/250 s" instead of "1/250".
func (m *Metadata) TagInterpretedString(tag string) (value string, ok bool, err error) {
	err = m.do("tag-interpreted-string", tag, func(d backend.Driver, h backend.Handle) (err error) {
		value, ok, err = d.TagInterpretedString(h, tag)
		return err
	})
	return value, ok, err
}

// SetTagString sets tag from its string form, replacing any previous value.
func (m *Metadata) SetTagString(tag, value string) error {
	return m.do("set-tag-string", tag, func(d backend.Driver, h backend.Handle) error {
		return d.SetTagString(h, tag, value)
	})
}

// TagStrings returns every value of a multi-valued tag. An absent tag yields
// an empty slice.
func (m *Metadata) TagStrings(tag string) ([]string, error) {
	var out []string
	err := m.do("tag-strings", tag, func(d backend.Driver, h backend.Handle) (err error) {
		out, err = d.TagMultiple(h, tag)
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// SetTagStrings replaces every value of a multi-valued tag.
func (m *Metadata) SetTagStrings(tag string, values []string) error {
	return m.do("set-tag-strings", tag, func(d backend.Driver, h backend.Handle) error {
		return d.SetTagMultiple(h, tag, values)
	})
}

// TagLong returns tag as a signed integer.
func (m *Metadata) TagLong(tag string) (value int64, ok bool, err error) {
	err = m.do("tag-long", tag, func(d backend.Driver, h backend.Handle) (err error) {
		value, ok, err = d.TagLong(h, tag)
		return err
	})
	return value, ok, err
}

// SetTagLong sets tag to a signed integer. Values that do not fit the native
// long type fail with ErrInvalidInput.
func (m *Metadata) SetTagLong(tag string, value int64) error {
	return m.do("set-tag-long", tag, func(d backend.Driver, h backend.Handle) error {
		return d.SetTagLong(h, tag, value)
	})
}

// TagUint returns tag as an unsigned integer. A stored negative value fails
// with ErrInvalidInput.
func (m *Metadata) TagUint(tag string) (value uint64, ok bool, err error) {
	err = m.do("tag-uint", tag, func(d backend.Driver, h backend.Handle) error {
		v, found, err := d.TagLong(h, tag)
		if err != nil || !found {
			return err
		}
		if v < 0 {
			return backend.Failed(backend.StatusInvalidInput, "value %d is negative", v)
		}
		value, ok = uint64(v), true
		return nil
	})
	return value, ok, err
}

// SetTagUint sets tag to an unsigned integer. Values above math.MaxInt64
// cannot cross the native boundary and fail with ErrInvalidInput.
func (m *Metadata) SetTagUint(tag string, value uint64) error {
	return m.do("set-tag-uint", tag, func(d backend.Driver, h backend.Handle) error {
		if value > math.MaxInt64 {
			return backend.Failed(backend.StatusInvalidInput, "value %d exceeds the native long range", value)
		}
		return d.SetTagLong(h, tag, int64(value))
	})
}

// TagRational returns an Exif rational tag without reducing it.
func (m *Metadata) TagRational(tag string) (value Rational, ok bool, err error) {
	err = m.do("tag-rational", tag, func(d backend.Driver, h backend.Handle) (err error) {
		value.Num, value.Den, ok, err = d.TagRational(h, tag)
		return err
	})
	return value, ok, err
}

// SetTagRational sets an Exif rational tag.
func (m *Metadata) SetTagRational(tag string, value Rational) error {
	return m.do("set-tag-rational", tag, func(d backend.Driver, h backend.Handle) error {
		return d.SetTagRational(h, tag, value.Num, value.Den)
	})
}

// TagRaw returns the undecoded bytes of tag.
func (m *Metadata) TagRaw(tag string) (value []byte, ok bool, err error) {
	err = m.do("tag-raw", tag, func(d backend.Driver, h backend.Handle) (err error) {
		value, ok, err = d.TagRaw(h, tag)
		return err
	})
	return value, ok, err
}
