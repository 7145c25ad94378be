package backend_test

import (
	"testing"

	"github.com/hsiuhsiu/gexiv2-go/pkg/gexiv2/internal/backend"
)

// TestClassify checks the mapping from native error domains and codes to a
// Status, including the per-operation fallbacks.
func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		op     backend.OpClass
		domain string
		code   int
		want   backend.Status
	}{
		{"gio not found", backend.OpOpen, backend.DomainGIO, 1, backend.StatusNotFound},
		{"gio not found on save", backend.OpSave, backend.DomainGIO, 1, backend.StatusNotFound},
		{"gio permission denied", backend.OpOpen, backend.DomainGIO, 14, backend.StatusPermissionDenied},
		{"gio read only", backend.OpSave, backend.DomainGIO, 19, backend.StatusPermissionDenied},
		{"gio invalid argument", backend.OpOther, backend.DomainGIO, 13, backend.StatusInvalidInput},
		{"gio invalid filename", backend.OpOpen, backend.DomainGIO, 10, backend.StatusInvalidInput},
		{"gio is directory", backend.OpOpen, backend.DomainGIO, 3, backend.StatusUnreadable},
		{"gio is directory on save", backend.OpSave, backend.DomainGIO, 3, backend.StatusWriteFailed},
		{"gio not supported", backend.OpOpen, backend.DomainGIO, 15, backend.StatusUnsupportedFormat},
		{"gio not supported on save", backend.OpSave, backend.DomainGIO, 15, backend.StatusWriteFailed},
		{"gio no space", backend.OpSave, backend.DomainGIO, 12, backend.StatusWriteFailed},
		{"gio failed on open", backend.OpOpen, backend.DomainGIO, 0, backend.StatusUnsupportedFormat},
		{"gio failed elsewhere", backend.OpOther, backend.DomainGIO, 0, backend.StatusUnknown},

		{"exiv2 not an image", backend.OpOpen, backend.DomainGExiv2, 4, backend.StatusUnsupportedFormat},
		{"exiv2 unknown image type", backend.OpOpen, backend.DomainGExiv2, 12, backend.StatusUnsupportedFormat},
		{"exiv2 memory unknown type", backend.OpOpen, backend.DomainGExiv2, 13, backend.StatusUnsupportedFormat},
		{"exiv2 corrupted on save", backend.OpSave, backend.DomainGExiv2, 60, backend.StatusWriteFailed},
		{"exiv2 invalid key", backend.OpOther, backend.DomainGExiv2, 7, backend.StatusInvalidInput},
		{"exiv2 invalid tag", backend.OpOther, backend.DomainGExiv2, 8, backend.StatusInvalidInput},
		{"exiv2 invalid lang alt", backend.OpOther, backend.DomainGExiv2, 58, backend.StatusInvalidInput},
		{"exiv2 file open failed", backend.OpOpen, backend.DomainGExiv2, 11, backend.StatusUnreadable},
		{"exiv2 file open failed on save", backend.OpSave, backend.DomainGExiv2, 11, backend.StatusWriteFailed},
		{"exiv2 rename failed", backend.OpSave, backend.DomainGExiv2, 18, backend.StatusWriteFailed},
		{"exiv2 write failed", backend.OpSave, backend.DomainGExiv2, 22, backend.StatusWriteFailed},
		{"exiv2 unmapped on open", backend.OpOpen, backend.DomainGExiv2, 999, backend.StatusUnsupportedFormat},
		{"exiv2 unmapped on save", backend.OpSave, backend.DomainGExiv2, 999, backend.StatusWriteFailed},
		{"exiv2 unmapped elsewhere", backend.OpOther, backend.DomainGExiv2, 999, backend.StatusUnknown},

		{"foreign domain", backend.OpOther, "g-file-error-quark", 4, backend.StatusUnknown},
		{"no domain on save", backend.OpSave, "", 0, backend.StatusWriteFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := backend.Classify(tt.op, tt.domain, tt.code); got != tt.want {
				t.Errorf("Classify(%v, %q, %d) = %v, want %v", tt.op, tt.domain, tt.code, got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	seen := map[string]backend.Status{}
	for s := backend.StatusUnknown; s <= backend.StatusWriteFailed; s++ {
		name := s.String()
		if prev, dup := seen[name]; dup {
			t.Fatalf("Status %d and %d share name %q", prev, s, name)
		}
		seen[name] = s
	}
	if got := backend.Status(42).String(); got != "unknown failure" {
		t.Fatalf("out-of-range Status = %q", got)
	}
}

func TestErrorMessage(t *testing.T) {
	e := &backend.Error{Status: backend.StatusNotFound, Domain: backend.DomainGIO, Code: 1, Message: "no such file"}
	if got, want := e.Error(), "not found: no such file (g-io-error-quark code 1)"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	f := backend.Failed(backend.StatusInvalidInput, "tag %q is bad", "x")
	if got, want := f.Error(), `invalid input: tag "x" is bad`; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
