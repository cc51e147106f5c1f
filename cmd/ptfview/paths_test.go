package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samcharles93/ptfview/internal/familystore"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write file %s: %v", name, err)
		}
	}
}

func withTTY(t *testing.T, tty bool) {
	t.Helper()
	prev := stdinIsTTY
	stdinIsTTY = func() bool { return tty }
	t.Cleanup(func() { stdinIsTTY = prev })
}

func TestResolveFamilyPath(t *testing.T) {
	t.Run("family flag bypasses env", func(t *testing.T) {
		t.Setenv(familystore.EnvDataDir, "")
		got, err := resolveFamilyPath("/tmp/run/crash.ptf", "", bytes.NewBuffer(nil), io.Discard)
		if err != nil {
			t.Fatalf("resolveFamilyPath returned error: %v", err)
		}
		if got != filepath.Clean("/tmp/run/crash.ptf") {
			t.Fatalf("unexpected family path: got %q", got)
		}
	})

	t.Run("bare family name resolves in data dir", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "crash.ptf")
		t.Setenv(familystore.EnvDataDir, "")

		got, err := resolveFamilyPath("crash", dir, bytes.NewBuffer(nil), io.Discard)
		if err != nil {
			t.Fatalf("resolveFamilyPath returned error: %v", err)
		}
		if want := filepath.Join(dir, "crash.ptf"); got != want {
			t.Fatalf("unexpected family path: got %q want %q", got, want)
		}
	})

	t.Run("no family or data dir", func(t *testing.T) {
		t.Setenv(familystore.EnvDataDir, "")
		_, err := resolveFamilyPath("", "", bytes.NewBuffer(nil), io.Discard)
		if err == nil || !strings.Contains(err.Error(), familystore.EnvDataDir) {
			t.Fatalf("expected error naming %s, got %v", familystore.EnvDataDir, err)
		}
	})

	t.Run("single family selects automatically", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "only.ptf", "only.ptf01", "notes.txt")
		t.Setenv(familystore.EnvDataDir, dir)
		withTTY(t, false)

		var stderr bytes.Buffer
		got, err := resolveFamilyPath("", "", bytes.NewBuffer(nil), &stderr)
		if err != nil {
			t.Fatalf("resolveFamilyPath returned error: %v", err)
		}
		if want := filepath.Join(dir, "only.ptf"); got != want {
			t.Fatalf("unexpected family path: got %q want %q", got, want)
		}
		if !strings.Contains(stderr.String(), "using family") {
			t.Fatalf("expected notice on stderr, got %q", stderr.String())
		}
	})

	t.Run("data dir flag overrides env", func(t *testing.T) {
		envDir, flagDir := t.TempDir(), t.TempDir()
		writeFiles(t, envDir, "env.ptf")
		writeFiles(t, flagDir, "d3plot")
		t.Setenv(familystore.EnvDataDir, envDir)

		got, err := resolveFamilyPath("", flagDir, bytes.NewBuffer(nil), io.Discard)
		if err != nil {
			t.Fatalf("resolveFamilyPath returned error: %v", err)
		}
		if want := filepath.Join(flagDir, "d3plot"); got != want {
			t.Fatalf("unexpected family path: got %q want %q", got, want)
		}
	})

	t.Run("empty data dir", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "readme.md")
		if _, err := resolveFamilyPath("", dir, bytes.NewBuffer(nil), io.Discard); err == nil {
			t.Fatalf("expected error for a directory without families")
		}
	})

	t.Run("multiple families requires tty", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "a.ptf", "b.ptf")
		withTTY(t, false)

		if _, err := resolveFamilyPath("", dir, bytes.NewBuffer(nil), io.Discard); err == nil {
			t.Fatalf("expected error when multiple families and stdin is not a tty")
		}
	})

	t.Run("interactive selection chooses sorted index", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "b.ptf", "a.ptf")
		withTTY(t, true)

		got, err := resolveFamilyPath("", dir, bytes.NewBufferString("2\n"), io.Discard)
		if err != nil {
			t.Fatalf("resolveFamilyPath returned error: %v", err)
		}
		if want := filepath.Join(dir, "b.ptf"); got != want {
			t.Fatalf("unexpected family selection: got %q want %q", got, want)
		}
	})
}

func TestSelectFamilyInteractively(t *testing.T) {
	roots := []string{"/data/a.ptf", "/data/b.ptf"}

	t.Run("invalid then valid", func(t *testing.T) {
		var stderr bytes.Buffer
		got, err := selectFamilyInteractively("/data", roots, strings.NewReader("x\n\n3\n1\n"), &stderr)
		if err != nil {
			t.Fatalf("selectFamilyInteractively returned error: %v", err)
		}
		if got != roots[0] {
			t.Fatalf("unexpected selection: got %q", got)
		}
		if strings.Count(stderr.String(), "invalid selection") != 2 {
			t.Fatalf("expected two invalid selection notices, got %q", stderr.String())
		}
		if !strings.Contains(stderr.String(), "2. b.ptf") {
			t.Fatalf("expected relative names in the menu, got %q", stderr.String())
		}
	})

	t.Run("eof without selection", func(t *testing.T) {
		if _, err := selectFamilyInteractively("/data", roots, strings.NewReader(""), io.Discard); err == nil {
			t.Fatalf("expected error on empty stdin")
		}
	})

	t.Run("invalid selection at eof", func(t *testing.T) {
		if _, err := selectFamilyInteractively("/data", roots, strings.NewReader("9"), io.Discard); err == nil {
			t.Fatalf("expected error for invalid final selection")
		}
	})

	t.Run("selection without newline", func(t *testing.T) {
		got, err := selectFamilyInteractively("/data", roots, strings.NewReader("2"), io.Discard)
		if err != nil {
			t.Fatalf("selectFamilyInteractively returned error: %v", err)
		}
		if got != roots[1] {
			t.Fatalf("unexpected selection: got %q", got)
		}
	})
}
