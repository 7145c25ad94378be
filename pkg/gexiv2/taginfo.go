package gexiv2

import (
	"fmt"
	"strings"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/internal/backend"
)

// Family is one of the three metadata standards.
type Family int

const (
	Exif Family = Family(backend.FamilyExif)
	Xmp  Family = Family(backend.FamilyXmp)
	Iptc Family = Family(backend.FamilyIptc)
)

func (f Family) String() string {
	return backend.Family(f).String()
}

// Tag is a parsed Exiv2 key of the form Family.Group.Name, for example
// "Exif.Photo.FNumber" or "Xmp.dc.title".
type Tag struct {
	Family Family
	Group  string
	Name   string
}

func (t Tag) String() string {
	return t.Family.String() + "." + t.Group + "." + t.Name
}

// ParseTag splits key into its parts. It checks the key's shape only; use
// IsExifTag and friends to ask the native library whether it knows the tag.
func ParseTag(key string) (Tag, error) {
	if err := backend.CheckText("tag", key); err != nil {
		return Tag{}, remapError("parse-tag", err).Err
	}
	parts := strings.SplitN(key, ".", 3)
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return Tag{}, fmt.Errorf("%w: tag %q is not of the form Family.Group.Name", ErrInvalidInput, key)
	}
	var f Family
	switch parts[0] {
	case "Exif":
		f = Exif
	case "Xmp":
		f = Xmp
	case "Iptc":
		f = Iptc
	default:
		return Tag{}, fmt.Errorf("%w: tag %q has unknown family %q", ErrInvalidInput, key, parts[0])
	}
	return Tag{Family: f, Group: parts[1], Name: parts[2]}, nil
}

// TagType is the native storage type of a tag.
type TagType int

const (
	TagTypeUnknown          TagType = iota
	TagTypeUnsignedByte             // Exif BYTE
	TagTypeAsciiString              // Exif ASCII
	TagTypeUnsignedShort            // Exif SHORT
	TagTypeUnsignedLong             // Exif LONG
	TagTypeUnsignedRational         // Exif RATIONAL
	TagTypeSignedByte               // Exif SBYTE
	TagTypeUndefined                // Exif UNDEFINED
	TagTypeSignedShort              // Exif SSHORT
	TagTypeSignedLong               // Exif SLONG
	TagTypeSignedRational           // Exif SRATIONAL
	TagTypeTiffFloat                // TIFF FLOAT
	TagTypeTiffDouble               // TIFF DOUBLE
	TagTypeTiffIfd                  // TIFF IFD
	TagTypeString                   // IPTC string
	TagTypeDate                     // IPTC date
	TagTypeTime                     // IPTC time
	TagTypeComment                  // Exif user comment
	TagTypeDirectory                // CIFF directory
	TagTypeXmpText
	TagTypeXmpAlt
	TagTypeXmpBag
	TagTypeXmpSeq
	TagTypeLangAlt
	TagTypeInvalid
)

var tagTypeNames = map[string]TagType{
	"Byte":      TagTypeUnsignedByte,
	"Ascii":     TagTypeAsciiString,
	"Short":     TagTypeUnsignedShort,
	"Long":      TagTypeUnsignedLong,
	"Rational":  TagTypeUnsignedRational,
	"SByte":     TagTypeSignedByte,
	"Undefined": TagTypeUndefined,
	"SShort":    TagTypeSignedShort,
	"SLong":     TagTypeSignedLong,
	"SRational": TagTypeSignedRational,
	"Float":     TagTypeTiffFloat,
	"Double":    TagTypeTiffDouble,
	"Ifd":       TagTypeTiffIfd,
	"String":    TagTypeString,
	"Date":      TagTypeDate,
	"Time":      TagTypeTime,
	"Comment":   TagTypeComment,
	"Directory": TagTypeDirectory,
	"XmpText":   TagTypeXmpText,
	"XmpAlt":    TagTypeXmpAlt,
	"XmpBag":    TagTypeXmpBag,
	"XmpSeq":    TagTypeXmpSeq,
	"LangAlt":   TagTypeLangAlt,
	"Invalid":   TagTypeInvalid,
}

// parseTagType maps Exiv2's type name to a TagType; unrecognised names are
// TagTypeUnknown.
func parseTagType(name string) TagType {
	if t, ok := tagTypeNames[name]; ok {
		return t
	}
	return TagTypeUnknown
}

// String returns the Exiv2 type name, or "Unknown".
func (t TagType) String() string {
	for name, v := range tagTypeNames {
		if v == t {
			return name
		}
	}
	return "Unknown"
}

// IsExifTag reports whether the native library knows key as an Exif tag.
func IsExifTag(key string) bool { return std.isTag(backend.FamilyExif, key) }

// IsXmpTag reports whether key is an XMP tag with a registered namespace.
func IsXmpTag(key string) bool { return std.isTag(backend.FamilyXmp, key) }

// IsIptcTag reports whether the native library knows key as an IPTC tag.
func IsIptcTag(key string) bool { return std.isTag(backend.FamilyIptc, key) }

// TagLabel returns the short human-readable name of a tag.
func TagLabel(key string) (string, error) { return std.tagLabel(key) }

// TagDescription returns the long description of a tag. Some tags have none,
// in which case the result is "".
func TagDescription(key string) (string, error) { return std.tagDescription(key) }

// TagTypeOf returns the native storage type of a tag.
func TagTypeOf(key string) (TagType, error) { return std.tagTypeOf(key) }

func (l *library) isTag(f backend.Family, key string) bool {
	if l.ensure() != nil {
		return false
	}
	return l.drv.IsTag(f, key)
}

func (l *library) tagLabel(key string) (string, error) {
	return l.tagText("tag-label", key, l.drv.TagLabel)
}

func (l *library) tagDescription(key string) (string, error) {
	return l.tagText("tag-description", key, l.drv.TagDescription)
}

func (l *library) tagText(op, key string, call func(string) (string, bool, error)) (string, error) {
	if err := l.ensure(); err != nil {
		return "", err
	}
	s, _, err := call(key)
	if err != nil {
		e := l.fail(l.log, op, "", err)
		e.Tag = key
		return "", e
	}
	return s, nil
}

func (l *library) tagTypeOf(key string) (TagType, error) {
	if err := l.ensure(); err != nil {
		return TagTypeUnknown, err
	}
	name, err := l.drv.TagType(key)
	if err != nil {
		e := l.fail(l.log, "tag-type", "", err)
		e.Tag = key
		return TagTypeUnknown, e
	}
	return parseTagType(name), nil
}
