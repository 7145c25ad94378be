package backend_test

import (
	"errors"
	"testing"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/internal/backend"
)

func TestCheckText(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"empty", "", false},
		{"ascii", "Canon", false},
		{"utf8", "Zürich 東京", false},
		{"nul", "a\x00b", true},
		{"trailing nul", "abc\x00", true},
		{"invalid utf8", "a\xffb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := backend.CheckText("value", tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckText(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var be *backend.Error
			if !errors.As(err, &be) || be.Status != backend.StatusInvalidInput {
				t.Fatalf("CheckText(%q) = %v, want StatusInvalidInput", tt.in, err)
			}
		})
	}
}

func TestCheckPath(t *testing.T) {
	if err := backend.CheckPath("/tmp/\xff\xfe.jpg"); err != nil {
		t.Fatalf("non-UTF-8 path rejected: %v", err)
	}
	if err := backend.CheckPath(""); err == nil {
		t.Fatal("empty path accepted")
	}
	if err := backend.CheckPath("/tmp/a\x00.jpg"); err == nil {
		t.Fatal("path with NUL accepted")
	}
}

func TestCheckTexts(t *testing.T) {
	if err := backend.CheckTexts("value", []string{"a", "b"}); err != nil {
		t.Fatalf("CheckTexts: %v", err)
	}
	if err := backend.CheckTexts("value", nil); err != nil {
		t.Fatalf("CheckTexts(nil): %v", err)
	}
	if err := backend.CheckTexts("value", []string{"a", "b\x00"}); err == nil {
		t.Fatal("CheckTexts accepted an element with NUL")
	}
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{1403, "0.14.3"},
		{1600, "0.16.0"},
		{11205, "1.12.5"},
		{0, ""},
		{-1, ""},
	}
	for _, tt := range tests {
		if got := backend.FormatVersion(tt.in); got != tt.want {
			t.Errorf("FormatVersion(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFamilyString(t *testing.T) {
	if backend.FamilyExif.String() != "Exif" || backend.FamilyXmp.String() != "Xmp" || backend.FamilyIptc.String() != "Iptc" {
		t.Fatal("unexpected family names")
	}
	if got := backend.Family(9).String(); got != "Family(9)" {
		t.Fatalf("Family(9).String() = %q", got)
	}
}
