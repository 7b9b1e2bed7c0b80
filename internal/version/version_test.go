package version

import (
	"testing"
)

func withBuild(t *testing.T, v, buildTime, commit string) {
	t.Helper()
	oldV, oldT, oldC := Version, BuildTime, GitCommit
	Version, BuildTime, GitCommit = v, buildTime, commit
	t.Cleanup(func() { Version, BuildTime, GitCommit = oldV, oldT, oldC })
}

func TestInfo(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		buildTime string
		commit    string
		expected  string
	}{
		{"development build", "dev", "unknown", "unknown", "dev (development build)"},
		{"release build", "v1.2.0", "2024-05-01T10:00:00Z", "0123456789abcdef", "v1.2.0 (built 2024-05-01 10:00:00 UTC, commit 01234567)"},
		{"short commit", "v1.2.0", "2024-05-01T10:00:00Z", "abc", "v1.2.0 (built 2024-05-01 10:00:00 UTC, commit abc)"},
		{"unparsable build time", "v1.2.0", "yesterday", "abc", "v1.2.0 (built yesterday)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuild(t, tt.version, tt.buildTime, tt.commit)
			if got := Info(); got != tt.expected {
				t.Errorf("Info() = %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestGetVersionString(t *testing.T) {
	withBuild(t, "v1.0.0", "unknown", "unknown")
	if got := GetVersionString(); got != "v1.0.0" {
		t.Errorf("GetVersionString() = %q; want v1.0.0", got)
	}

	withBuild(t, "v1.0.0", "2024-05-01T10:00:00Z", "unknown")
	if got := GetVersionString(); got != "v1.0.0 (built 2024-05-01 10:00:00 UTC)" {
		t.Errorf("GetVersionString() = %q", got)
	}
}

func TestGetBuildInfo(t *testing.T) {
	withBuild(t, "v9.9.9", "unknown", "deadbeef")
	info := GetBuildInfo()
	if info.Version != "v9.9.9" || info.GitCommit != "deadbeef" {
		t.Errorf("GetBuildInfo() = %+v", info)
	}
	if info.GoVersion == "" || info.Platform == "" {
		t.Errorf("GetBuildInfo() missing runtime fields: %+v", info)
	}
}
