package gexiv2

import (
	"math"
	"strconv"
	"strings"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/internal/backend"
)

// Kind discriminates the cases of Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindUint
	KindRational
	KindBytes
	KindStrings
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindRational:
		return "rational"
	case KindBytes:
		return "bytes"
	case KindStrings:
		return "strings"
	default:
		return "invalid"
	}
}

// KindOf returns the Value kind used for tags of type t.
func KindOf(t TagType) Kind {
	switch t {
	case TagTypeUnsignedByte, TagTypeUnsignedShort, TagTypeUnsignedLong, TagTypeTiffIfd:
		return KindUint
	case TagTypeSignedByte, TagTypeSignedShort, TagTypeSignedLong:
		return KindInt
	case TagTypeUnsignedRational, TagTypeSignedRational:
		return KindRational
	case TagTypeXmpAlt, TagTypeXmpBag, TagTypeXmpSeq, TagTypeLangAlt:
		return KindStrings
	case TagTypeUndefined, TagTypeDirectory, TagTypeInvalid, TagTypeUnknown:
		return KindBytes
	default:
		return KindString
	}
}

// Value is a tag value of one of the kinds above. The zero Value is
// KindInvalid.
type Value struct {
	kind Kind
	s    string
	i    int64
	u    uint64
	r    Rational
	b    []byte
	ss   []string
}

func StringValue(s string) Value         { return Value{kind: KindString, s: s} }
func IntValue(i int64) Value             { return Value{kind: KindInt, i: i} }
func UintValue(u uint64) Value           { return Value{kind: KindUint, u: u} }
func RationalValue(r Rational) Value     { return Value{kind: KindRational, r: r} }
func BytesValue(b []byte) Value          { return Value{kind: KindBytes, b: append([]byte{}, b...)} }
func StringsValue(values []string) Value { return Value{kind: KindStrings, ss: append([]string{}, values...)} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) Text() (string, bool)       { return v.s, v.kind == KindString }
func (v Value) Int() (int64, bool)         { return v.i, v.kind == KindInt }
func (v Value) Uint() (uint64, bool)       { return v.u, v.kind == KindUint }
func (v Value) Rational() (Rational, bool) { return v.r, v.kind == KindRational }
func (v Value) Bytes() ([]byte, bool)      { return v.b, v.kind == KindBytes }
func (v Value) Strings() ([]string, bool)  { return v.ss, v.kind == KindStrings }

// String renders v for display.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindRational:
		return v.r.String()
	case KindBytes:
		return formatBytes(v.b)
	case KindStrings:
		return strings.Join(v.ss, ", ")
	default:
		return "<invalid>"
	}
}

// formatBytes renders bytes in the decimal, space-separated form Exiv2 reads
// for UNDEFINED values.
func formatBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = strconv.Itoa(int(c))
	}
	return strings.Join(parts, " ")
}

// Value reads tag as the kind its native type calls for (see KindOf).
func (m *Metadata) Value(tag string) (Value, bool, error) {
	var (
		v  Value
		ok bool
	)
	err := m.do("value", tag, func(d backend.Driver, h backend.Handle) error {
		name, err := d.TagType(tag)
		if err != nil {
			return err
		}
		kind := KindOf(parseTagType(name))
		switch kind {
		case KindInt:
			v.i, ok, err = d.TagLong(h, tag)
		case KindUint:
			var n int64
			n, ok, err = d.TagLong(h, tag)
			if err == nil && ok && n < 0 {
				return backend.Failed(backend.StatusInvalidInput, "value %d is negative", n)
			}
			v.u = uint64(n)
		case KindRational:
			v.r.Num, v.r.Den, ok, err = d.TagRational(h, tag)
		case KindBytes:
			v.b, ok, err = d.TagRaw(h, tag)
		case KindStrings:
			if ok, err = d.HasTag(h, tag); err == nil && ok {
				v.ss, err = d.TagMultiple(h, tag)
			}
		default:
			v.s, ok, err = d.TagString(h, tag)
		}
		if err != nil {
			return err
		}
		if ok {
			v.kind = kind
		}
		return nil
	})
	if err != nil || !ok {
		return Value{}, false, err
	}
	return v, true, nil
}

// SetValue writes v to tag using the setter for v's kind.
func (m *Metadata) SetValue(tag string, v Value) error {
	return m.do("set-value", tag, func(d backend.Driver, h backend.Handle) error {
		switch v.kind {
		case KindString:
			return d.SetTagString(h, tag, v.s)
		case KindInt:
			return d.SetTagLong(h, tag, v.i)
		case KindUint:
			if v.u > math.MaxInt64 {
				return backend.Failed(backend.StatusInvalidInput, "value %d exceeds the native long range", v.u)
			}
			return d.SetTagLong(h, tag, int64(v.u))
		case KindRational:
			return d.SetTagRational(h, tag, v.r.Num, v.r.Den)
		case KindBytes:
			return d.SetTagString(h, tag, formatBytes(v.b))
		case KindStrings:
			return d.SetTagMultiple(h, tag, v.ss)
		}
		return backend.Failed(backend.StatusInvalidInput, "cannot write a %s value", v.kind)
	})
}
