package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetVersionString(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	t.Cleanup(func() { Version = old })

	got := GetVersionString()
	if !strings.HasPrefix(got, "openstatus version v1.2.3 (commit ") {
		t.Errorf("GetVersionString() = %q", got)
	}
}

func TestGetFullVersionInfo(t *testing.T) {
	got := GetFullVersionInfo()
	if !strings.Contains(got, runtime.Version()) {
		t.Errorf("GetFullVersionInfo() = %q, want Go version %s", got, runtime.Version())
	}
	if lines := strings.Count(got, "\n"); lines != 1 {
		t.Errorf("GetFullVersionInfo() has %d newlines, want 1", lines)
	}
}
