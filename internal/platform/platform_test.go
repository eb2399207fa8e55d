//go:build (linux || freebsd) && (amd64 || arm64)

package platform

import "testing"

func TestFormatLibraryName(t *testing.T) {
	tests := []struct {
		name    string
		version int
		want    string
	}{
		{"input", 10, "libinput.so.10"},
		{"udev", 1, "libudev.so.1"},
		{"input", 0, "libinput.so.0"},
		{"input", -1, "libinput.so"},
	}

	for _, tt := range tests {
		got := FormatLibraryName(tt.name, tt.version)
		if got != tt.want {
			t.Errorf("FormatLibraryName(%q, %d) = %q, want %q", tt.name, tt.version, got, tt.want)
		}
	}
}

func TestIs64Bit(t *testing.T) {
	if !Is64Bit {
		t.Error("inputgo should only build on 64-bit platforms")
	}
}
