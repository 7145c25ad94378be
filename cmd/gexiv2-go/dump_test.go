package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sampleDumps = []fileDump{
	{
		Path:      "harbour.jpg",
		MediaType: "image/jpeg",
		Width:     640,
		Height:    480,
		Exif: []tagEntry{
			{Key: "Exif.Image.Make", Type: "Ascii", Value: "Acme"},
			{Key: "Exif.Photo.FNumber", Type: "Rational", Label: "FNumber", Value: "28/10"},
		},
		Xmp: []tagEntry{
			{Key: "Xmp.dc.subject", Type: "XmpBag", Values: []string{"harbour", "dusk"}},
		},
	},
	{Path: "empty.png"},
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "yaml", sampleDumps))

	var got []fileDump
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	if diff := cmp.Diff(sampleDumps, got); diff != "" {
		t.Errorf("yaml round trip mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, buf.String(), "media_type: image/jpeg")
	assert.NotContains(t, buf.String(), "iptc:")
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "text", sampleDumps))
	out := buf.String()

	assert.Contains(t, out, "harbour.jpg (image/jpeg, 640x480)\n")
	assert.Regexp(t, `Exif\.Image\.Make\s+Ascii\s+Acme\n`, out)
	assert.Regexp(t, `Exif\.Photo\.FNumber\s+Rational\s+\[FNumber\] 28/10\n`, out)
	assert.Regexp(t, `Xmp\.dc\.subject\s+XmpBag\s*\n\s+harbour\n\s+dusk\n`, out)
	assert.Contains(t, out, "\n\nempty.png\n")
}

func TestFileDumpAdd(t *testing.T) {
	var d fileDump
	for _, key := range []string{"Iptc.Application2.Keywords", "Exif.Image.Make", "Xmp.dc.title"} {
		require.NoError(t, d.add(tagEntry{Key: key}))
	}
	assert.Len(t, d.Exif, 1)
	assert.Len(t, d.Xmp, 1)
	assert.Len(t, d.Iptc, 1)
	assert.Error(t, d.add(tagEntry{Key: "Png.IHDR.Width"}))
}
