package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gexiv2-go "+gexiv2.WrapperVersion()+"\n")
}

func TestCommandsReportOpenFailures(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.jpg")
	for _, args := range [][]string{
		{"dump", missing},
		{"get", missing, "Exif.Image.Make"},
		{"set", missing, "Exif.Image.Make=Acme"},
		{"clear", missing},
	} {
		_, err := execute(t, args...)
		assert.Error(t, err, args)
	}
}

func TestCommandArgumentErrors(t *testing.T) {
	for _, args := range [][]string{
		{"dump"},
		{"get", "a.jpg"},
		{"set", "a.jpg", "not-an-assignment"},
		{"clear", "--family", "xmp", "a.jpg", "Xmp.dc.title"},
		{"--output", "csv", "version"},
	} {
		_, err := execute(t, args...)
		assert.Error(t, err, args)
	}
}
