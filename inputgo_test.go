//go:build (linux || freebsd) && (amd64 || arm64)

package inputgo

import (
	"testing"
)

// Integration test - only runs if libinput is available.
func TestInit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping libinput load test in short mode")
	}

	err := Init()
	if err != nil {
		t.Skipf("libinput not available: %v", err)
	}

	if !IsLoaded() {
		t.Error("IsLoaded returned false after Init")
	}
	t.Logf("tablet 1.14 feature set: %v", HasToolSizeSupport())
}

func TestSetLogger(t *testing.T) {
	orig := logger
	t.Cleanup(func() { SetLogger(orig) })

	// Silencing the logger must not break the translators.
	SetLogger(nil)
	if got := toolTypeFromCode(9999, true); got != ToolTypeUnknown {
		t.Errorf("toolTypeFromCode with nil logger = %v, want unknown", got)
	}
	if got := eventTypeFromCode(9999); got != EventTypeUnknown {
		t.Errorf("eventTypeFromCode with nil logger = %v, want unknown", got)
	}
}
