package version

import (
	"runtime/debug"
	"testing"
)

func withBuild(t *testing.T, version, commit string, bi *debug.BuildInfo) {
	t.Helper()
	oldV, oldC, oldB, oldRead := Version, Commit, BuildTime, readBuildInfo
	t.Cleanup(func() {
		Version, Commit, BuildTime, readBuildInfo = oldV, oldC, oldB, oldRead
	})
	Version, Commit, BuildTime = version, commit, ""
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestResolveLinkerValuesWin(t *testing.T) {
	withBuild(t, "v1.2.0", "0123456789abcdef", &debug.BuildInfo{
		Main:     debug.Module{Version: "v0.9.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffff"}},
	})

	info := Resolve()
	if info.Version != "v1.2.0" || info.Commit != "0123456789abcdef" {
		t.Fatalf("Resolve() = %+v", info)
	}
	if got := String(); got != "v1.2.0 (0123456789ab)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestResolveFromBuildInfo(t *testing.T) {
	withBuild(t, "", "", &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	})

	info := Resolve()
	if info.Version != "dev" {
		t.Fatalf("Version = %q, want dev", info.Version)
	}
	if info.BuildTime != "2026-01-02T03:04:05Z" || !info.Modified {
		t.Fatalf("Resolve() = %+v", info)
	}
	if got := String(); got != "dev (abc123-dirty)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestResolveWithoutBuildInfo(t *testing.T) {
	withBuild(t, "", "", nil)

	if got := String(); got != "dev" {
		t.Fatalf("String() = %q, want dev", got)
	}
	if Resolve().GoVersion == "" {
		t.Fatal("GoVersion is empty")
	}
}
