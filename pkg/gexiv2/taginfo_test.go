package gexiv2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/internal/backend"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		key     string
		want    Tag
		wantErr bool
	}{
		{"Exif.Photo.FNumber", Tag{Exif, "Photo", "FNumber"}, false},
		{"Xmp.dc.title", Tag{Xmp, "dc", "title"}, false},
		{"Iptc.Application2.Keywords", Tag{Iptc, "Application2", "Keywords"}, false},
		{"Xmp.dc.title[1]/xml:lang", Tag{Xmp, "dc", "title[1]/xml:lang"}, false},
		{"Exif.Photo", Tag{}, true},
		{"Exif..FNumber", Tag{}, true},
		{"Exif.Photo.", Tag{}, true},
		{"Png.IHDR.Width", Tag{}, true},
		{"", Tag{}, true},
		{"Exif.Photo.F\x00Number", Tag{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := ParseTag(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.key, got.String())
		})
	}
}

func TestTagTypeNames(t *testing.T) {
	names := []string{
		"Byte", "Ascii", "Short", "Long", "Rational", "SByte", "Undefined", "SShort",
		"SLong", "SRational", "Float", "Double", "Ifd", "String", "Date", "Time",
		"Comment", "Directory", "XmpText", "XmpAlt", "XmpBag", "XmpSeq", "LangAlt", "Invalid",
	}
	seen := map[TagType]bool{}
	for _, name := range names {
		tt := parseTagType(name)
		assert.NotEqual(t, TagTypeUnknown, tt, name)
		assert.False(t, seen[tt], "duplicate TagType for %s", name)
		seen[tt] = true
		assert.Equal(t, name, tt.String())
	}
	assert.Len(t, seen, 24)
	assert.Equal(t, TagTypeUnknown, parseTagType("Something new"))
	assert.Equal(t, "Unknown", TagTypeUnknown.String())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		t    TagType
		want Kind
	}{
		{TagTypeAsciiString, KindString},
		{TagTypeString, KindString},
		{TagTypeDate, KindString},
		{TagTypeComment, KindString},
		{TagTypeXmpText, KindString},
		{TagTypeTiffDouble, KindString},
		{TagTypeUnsignedByte, KindUint},
		{TagTypeUnsignedShort, KindUint},
		{TagTypeUnsignedLong, KindUint},
		{TagTypeTiffIfd, KindUint},
		{TagTypeSignedByte, KindInt},
		{TagTypeSignedShort, KindInt},
		{TagTypeSignedLong, KindInt},
		{TagTypeUnsignedRational, KindRational},
		{TagTypeSignedRational, KindRational},
		{TagTypeUndefined, KindBytes},
		{TagTypeUnknown, KindBytes},
		{TagTypeXmpBag, KindStrings},
		{TagTypeXmpSeq, KindStrings},
		{TagTypeXmpAlt, KindStrings},
		{TagTypeLangAlt, KindStrings},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.t), tt.t.String())
	}
}

func TestTagInformation(t *testing.T) {
	lib, _ := testLibrary(t)

	tt, err := lib.tagTypeOf("Exif.Image.Orientation")
	require.NoError(t, err)
	assert.Equal(t, TagTypeUnsignedShort, tt)
	tt, err = lib.tagTypeOf("Xmp.dc.title")
	require.NoError(t, err)
	assert.Equal(t, TagTypeLangAlt, tt)
	tt, err = lib.tagTypeOf("Iptc.Application2.DateCreated")
	require.NoError(t, err)
	assert.Equal(t, TagTypeDate, tt)

	label, err := lib.tagLabel("Iptc.Application2.Subject")
	require.NoError(t, err)
	assert.Equal(t, "Subject", label)
	desc, err := lib.tagDescription("Exif.Photo.FNumber")
	require.NoError(t, err)
	assert.Equal(t, "The F number.", desc)

	_, err = lib.tagLabel("garbage")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = lib.tagTypeOf("garbage")
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.True(t, lib.isTag(backend.FamilyExif, "Exif.Image.Make"))
	assert.False(t, lib.isTag(backend.FamilyIptc, "Exif.Image.Make"))
	assert.True(t, lib.isTag(backend.FamilyXmp, "Xmp.dc.title"))
	assert.False(t, lib.isTag(backend.FamilyXmp, "Xmp.nosuchprefix.title"))
}

func TestRational(t *testing.T) {
	r, err := ParseRational("3/7")
	require.NoError(t, err)
	assert.Equal(t, Rational{3, 7}, r)
	assert.Equal(t, "3/7", r.String())
	assert.InDelta(t, 3.0/7.0, r.Float64(), 1e-12)

	r, err = ParseRational(" -2/4 ")
	require.NoError(t, err)
	assert.Equal(t, Rational{-2, 4}, r)

	assert.True(t, math.IsInf(Rational{1, 0}.Float64(), 1))

	for _, bad := range []string{"", "3", "3/", "a/b", "4294967296/1"} {
		_, err := ParseRational(bad)
		assert.ErrorIs(t, err, ErrInvalidInput, bad)
	}
}

func TestFamilyNames(t *testing.T) {
	assert.Equal(t, "Exif", Exif.String())
	assert.Equal(t, "Xmp", Xmp.String())
	assert.Equal(t, "Iptc", Iptc.String())
}
