package gexiv2

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/internal/testdriver"
	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/logging"
)

// testJPEG is SOI, a JFIF APP0 segment and EOI.
var testJPEG = []byte{
	0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01,
	0x01, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0xFF, 0xD9,
}

// testPNG is a PNG signature and the start of a 640x480 IHDR chunk.
var testPNG = []byte{
	0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 'I', 'H', 'D', 'R',
	0x00, 0x00, 0x02, 0x80, 0x00, 0x00, 0x01, 0xE0,
	0x08, 0x02, 0x00, 0x00, 0x00,
}

func testLibrary(t *testing.T) (*library, *testdriver.Driver) {
	t.Helper()
	drv := testdriver.New()
	return newLibrary(drv, logging.Discard()), drv
}

// recordingLibrary logs every level into the returned buffer.
func recordingLibrary(t *testing.T) (*library, *testdriver.Driver, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	drv := testdriver.New()
	return newLibrary(drv, logging.New(slog.New(handler))), drv, &buf
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func openTestBuffer(t *testing.T, lib *library) *Metadata {
	t.Helper()
	md, err := lib.openBuffer(testJPEG)
	require.NoError(t, err)
	t.Cleanup(func() { _ = md.Close() })
	return md
}
