package backend

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CheckText validates a tag key or value before it is converted to a
// NUL-terminated UTF-8 C string. An embedded NUL would silently truncate the
// value on the native side, so it is rejected instead.
func CheckText(what, s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return Failed(StatusInvalidInput, "%s contains a NUL byte at offset %d", what, i)
	}
	if !utf8.ValidString(s) {
		return Failed(StatusInvalidInput, "%s is not valid UTF-8", what)
	}
	return nil
}

// CheckPath validates a filesystem path. Paths are handed to GLib as raw
// bytes in the filename encoding, so only NUL is rejected.
func CheckPath(path string) error {
	if path == "" {
		return Failed(StatusInvalidInput, "path is empty")
	}
	if i := strings.IndexByte(path, 0); i >= 0 {
		return Failed(StatusInvalidInput, "path contains a NUL byte at offset %d", i)
	}
	return nil
}

// CheckTexts applies CheckText to every element of values.
func CheckTexts(what string, values []string) error {
	for _, v := range values {
		if err := CheckText(what, v); err != nil {
			return err
		}
	}
	return nil
}

// FormatVersion renders gexiv2_get_version's packed integer (major*10000 +
// minor*100 + micro) as a dotted version string.
func FormatVersion(v int) string {
	if v <= 0 {
		return ""
	}
	return fmt.Sprintf("%d.%d.%d", v/10000, v/100%100, v%100)
}
