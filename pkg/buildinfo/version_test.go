package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func restore(t *testing.T) {
	t.Helper()
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestFillFrom(t *testing.T) {
	restore(t)
	Version, Commit, Date = "dev", "none", "unknown"

	fillFrom(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	if Version != "v0.3.1" || Commit != "abc123" || Date != "2026-01-02T03:04:05Z" {
		t.Errorf("got %q %q %q", Version, Commit, Date)
	}
}

func TestFillFromKeepsLdflags(t *testing.T) {
	restore(t)
	Version, Commit, Date = "v1.0.0", "feed", "today"

	fillFrom(&debug.BuildInfo{
		Main:     debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})

	if Version != "v1.0.0" || Commit != "feed" || Date != "today" {
		t.Errorf("ldflags values overwritten: %q %q %q", Version, Commit, Date)
	}
}

func TestFillFromDevel(t *testing.T) {
	restore(t)
	Version = "dev"

	fillFrom(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if Version != "dev" {
		t.Errorf("Version = %q, want dev", Version)
	}
}

func TestTemplate(t *testing.T) {
	restore(t)
	Version, Commit, Date = "v1.2.3", "abc", "2026-01-01"

	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q", got)
	}
	if !strings.Contains(String(), "commit: abc") {
		t.Errorf("String() = %q", String())
	}
}
