package gexiv2

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsentTagIsNotEmptyString(t *testing.T) {
	lib, _ := testLibrary(t)
	md := openTestBuffer(t, lib)
	const tag = "Exif.Image.Make"

	v, ok, err := md.TagString(tag)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", v)

	require.NoError(t, md.SetTagString(tag, ""))
	v, ok, err = md.TagString(tag)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestAbsentGettersReportNotOK(t *testing.T) {
	lib, _ := testLibrary(t)
	md := openTestBuffer(t, lib)

	_, ok, err := md.TagLong("Exif.Image.ImageWidth")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = md.TagUint("Exif.Image.ImageWidth")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = md.TagRational("Exif.Photo.ExposureTime")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = md.TagRaw("Exif.Photo.MakerNote")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = md.Value("Exif.Image.Make")
	require.NoError(t, err)
	assert.False(t, ok)

	values, err := md.TagStrings("Xmp.dc.subject")
	require.NoError(t, err)
	assert.NotNil(t, values)
	assert.Empty(t, values)
}

func TestLongBoundaries(t *testing.T) {
	lib, _ := testLibrary(t)
	md := openTestBuffer(t, lib)
	const tag = "Exif.Image.TimeZoneOffset"

	for _, want := range []int64{math.MinInt64, math.MinInt32, -1, 0, 1, math.MaxInt32, math.MaxInt64} {
		require.NoError(t, md.SetTagLong(tag, want))
		got, ok, err := md.TagLong(tag)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestUintBoundaries(t *testing.T) {
	lib, _ := testLibrary(t)
	md := openTestBuffer(t, lib)
	const tag = "Exif.Image.ImageWidth"

	for _, want := range []uint64{0, 1, math.MaxUint16, math.MaxUint32, math.MaxInt64} {
		require.NoError(t, md.SetTagUint(tag, want))
		got, ok, err := md.TagUint(tag)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	for _, tooBig := range []uint64{math.MaxInt64 + 1, math.MaxUint64} {
		err := md.SetTagUint(tag, tooBig)
		assert.ErrorIs(t, err, ErrInvalidInput, "value %d", tooBig)
	}
	got, _, err := md.TagUint(tag)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxInt64), got, "rejected write must not change the tag")

	require.NoError(t, md.SetTagLong(tag, -1))
	_, _, err = md.TagUint(tag)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRationalIsNotReduced(t *testing.T) {
	lib, _ := testLibrary(t)
	md := openTestBuffer(t, lib)
	const tag = "Exif.Photo.ExposureTime"

	for _, want := range []Rational{{3, 7}, {2, 4}, {1, 0}, {math.MinInt32, math.MaxInt32}, {math.MaxInt32, 1}} {
		require.NoError(t, md.SetTagRational(tag, want))
		got, ok, err := md.TagRational(tag)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestValueRoundTrip(t *testing.T) {
	lib, _ := testLibrary(t)
	md := openTestBuffer(t, lib)

	tests := []struct {
		name string
		tag  string
		in   Value
	}{
		{"ascii", "Exif.Image.Make", StringValue("Canon")},
		{"empty ascii", "Exif.Image.Model", StringValue("")},
		{"comment", "Exif.Photo.UserComment", StringValue("charset=Ascii hello")},
		{"iptc string", "Iptc.Application2.Caption", StringValue("Zürich")},
		{"xmp text", "Xmp.xmp.Rating", StringValue("5")},
		{"sshort min", "Exif.Image.TimeZoneOffset", IntValue(math.MinInt64)},
		{"sshort max", "Exif.Image.TimeZoneOffset", IntValue(math.MaxInt64)},
		{"short", "Exif.Image.Orientation", UintValue(6)},
		{"long max", "Exif.Image.ImageWidth", UintValue(math.MaxInt64)},
		{"rational", "Exif.Photo.FNumber", RationalValue(Rational{3, 7})},
		{"srational", "Exif.Photo.BrightnessValue", RationalValue(Rational{-5, 2})},
		{"undefined", "Exif.Photo.MakerNote", BytesValue([]byte{0, 1, 127, 255})},
		{"bag", "Xmp.dc.subject", StringsValue([]string{"cat", "sofa"})},
		{"seq", "Xmp.dc.creator", StringsValue([]string{"Ada"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, md.SetValue(tt.tag, tt.in))
			got, ok, err := md.Value(tt.tag)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.in.Kind(), got.Kind())
			if d := cmp.Diff(tt.in.String(), got.String()); d != "" {
				t.Fatalf("value mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestSetValueRejects(t *testing.T) {
	lib, _ := testLibrary(t)
	md := openTestBuffer(t, lib)

	assert.ErrorIs(t, md.SetValue("Exif.Image.Make", Value{}), ErrInvalidInput)
	assert.ErrorIs(t, md.SetValue("Exif.Image.ImageWidth", UintValue(math.MaxUint64)), ErrInvalidInput)
}

func TestValueAccessors(t *testing.T) {
	s, ok := StringValue("x").Text()
	assert.True(t, ok)
	assert.Equal(t, "x", s)
	_, ok = StringValue("x").Int()
	assert.False(t, ok)

	src := []byte{1, 2}
	v := BytesValue(src)
	src[0] = 9
	b, _ := v.Bytes()
	assert.Equal(t, []byte{1, 2}, b, "BytesValue copies its input")

	assert.Equal(t, "3/7", RationalValue(Rational{3, 7}).String())
	assert.Equal(t, "1 2", v.String())
	assert.Equal(t, "<invalid>", Value{}.String())
	assert.Equal(t, KindInvalid, Value{}.Kind())
}

func TestMultipleValues(t *testing.T) {
	lib, _ := testLibrary(t)
	md := openTestBuffer(t, lib)

	multi, err := md.TagSupportsMultipleValues("Xmp.dc.subject")
	require.NoError(t, err)
	assert.True(t, multi)
	multi, err = md.TagSupportsMultipleValues("Exif.Image.Make")
	require.NoError(t, err)
	assert.False(t, multi)

	want := []string{"a", "", "c"}
	require.NoError(t, md.SetTagStrings("Iptc.Application2.Keywords", want))
	got, err := md.TagStrings("Iptc.Application2.Keywords")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFamilyOperations(t *testing.T) {
	lib, _ := testLibrary(t)
	md := openTestBuffer(t, lib)

	has, err := md.HasExif()
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, md.SetTagString("Exif.Image.Model", "EOS"))
	require.NoError(t, md.SetTagString("Exif.Image.Make", "Canon"))
	require.NoError(t, md.SetTagString("Iptc.Application2.Caption", "c"))
	require.NoError(t, md.SetTagString("Xmp.xmp.Label", "red"))

	tags, err := md.ExifTags()
	require.NoError(t, err)
	assert.Equal(t, []string{"Exif.Image.Make", "Exif.Image.Model"}, tags)

	for _, hasFamily := range []func() (bool, error){md.HasExif, md.HasIptc, md.HasXmp} {
		has, err := hasFamily()
		require.NoError(t, err)
		assert.True(t, has)
	}

	require.NoError(t, md.ClearExif())
	tags, err = md.ExifTags()
	require.NoError(t, err)
	assert.Empty(t, tags)
	has, err = md.HasIptc()
	require.NoError(t, err)
	assert.True(t, has, "clearing Exif leaves IPTC alone")

	require.NoError(t, md.ClearXmp())
	require.NoError(t, md.ClearIptc())
	has, err = md.HasXmp()
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, md.SetTagString("Exif.Image.Make", "Canon"))
	require.NoError(t, md.Clear())
	has, err = md.HasExif()
	require.NoError(t, err)
	assert.False(t, has)
}

func TestHasAndClearTag(t *testing.T) {
	lib, _ := testLibrary(t)
	md := openTestBuffer(t, lib)
	const tag = "Exif.Image.Make"

	require.NoError(t, md.SetTagString(tag, "Canon"))
	has, err := md.HasTag(tag)
	require.NoError(t, err)
	assert.True(t, has)

	removed, err := md.ClearTag(tag)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = md.ClearTag(tag)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestInvalidTagInput(t *testing.T) {
	lib, _ := testLibrary(t)
	md := openTestBuffer(t, lib)

	tests := []struct {
		name  string
		tag   string
		value string
	}{
		{"malformed key", "Bogus", "x"},
		{"unknown family", "Foo.Bar.Baz", "x"},
		{"nul in key", "Exif.Image.Ma\x00ke", "x"},
		{"nul in value", "Exif.Image.Make", "Can\x00on"},
		{"invalid utf8 value", "Exif.Image.Make", "\xff\xfe"},
		{"invalid utf8 key", "Exif.Image.\xffMake", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := md.SetTagString(tt.tag, tt.value)
			require.ErrorIs(t, err, ErrInvalidInput)
			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, tt.tag, e.Tag)
		})
	}

	err := md.SetTagStrings("Xmp.dc.subject", []string{"ok", "bad\x00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInterpretedString(t *testing.T) {
	lib, _ := testLibrary(t)
	md := openTestBuffer(t, lib)

	require.NoError(t, md.SetTagLong("Exif.Image.Orientation", 6))
	raw, _, err := md.TagString("Exif.Image.Orientation")
	require.NoError(t, err)
	assert.Equal(t, "6", raw)
	pretty, ok, err := md.TagInterpretedString("Exif.Image.Orientation")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "right, top", pretty)
}
