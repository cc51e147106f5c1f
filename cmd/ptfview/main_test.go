package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/samcharles93/ptfview/internal/ptftest"
	"github.com/samcharles93/ptfview/pkg/ptf"
)

// writePlate writes a 2x1 plate with three states over two members into a
// fresh data directory and points the user config dir at an empty one.
func writePlate(t *testing.T) (dir, root string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PTFVIEW_DATA_DIR", "")
	dir = t.TempDir()
	spec := ptftest.Split(ptftest.Plate(2, 1, 1, 3), 2)
	root = ptftest.MustWrite(t, dir, "plate.ptf", binary.LittleEndian, spec)
	return dir, root
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	familyPath, dataDir, statePolicy, configFile = "", "", "", ""
	asJSON, debug = false, false
	fileConfig = Config{}

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(context.Background(), append([]string{"ptfview"}, args...))
	return out.String(), err
}

func TestInfoJSON(t *testing.T) {
	_, root := writePlate(t)

	out, err := runApp(t, "info", "--family", root, "--json")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	var s ptf.Summary
	if err := json.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if s.Root != root || s.StateCount != 3 || len(s.Members) != 2 || s.NodeCount != 6 || s.Dialect != "dyna" {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestInfoText(t *testing.T) {
	_, root := writePlate(t)

	out, err := runApp(t, "info", "-f", root)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{"dialect:", "dyna", "member 1:", root + "01", "time range:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("info output missing %q:\n%s", want, out)
		}
	}
}

func TestStatesLimit(t *testing.T) {
	_, root := writePlate(t)

	out, err := runApp(t, "states", "--family", root, "--limit", "2")
	if err != nil {
		t.Fatalf("states: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "SEQ") {
		t.Fatalf("unexpected states output:\n%s", out)
	}

	if _, err := runApp(t, "states", "--family", root, "--limit", "-1"); err == nil {
		t.Fatalf("expected error for negative limit")
	}
}

func TestExportCSV(t *testing.T) {
	_, root := writePlate(t)

	out, err := runApp(t, "export", "--family", root, "--state", "2", "--displacement")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header and 6 nodes, got:\n%s", out)
	}
	if lines[0] != "node,x,y,z,displacement_resultant" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "1,0,0,0.5,0.5" {
		t.Fatalf("unexpected first row %q", lines[1])
	}
}

func TestExportJSONComponent(t *testing.T) {
	_, root := writePlate(t)

	out, err := runApp(t, "export", "--family", root, "--state", "3", "--format", "json", "-d", "--component", "x")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var got exportOut
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Sequence != 3 || got.Component != "x" || len(got.Coords) != 18 || len(got.Displacement) != 6 {
		t.Fatalf("unexpected export: %+v", got)
	}
	if got.Coords[2] != 1 || got.Displacement[0] != 0 {
		t.Fatalf("unexpected values: z=%v dx=%v", got.Coords[2], got.Displacement[0])
	}
}

func TestExportErrors(t *testing.T) {
	_, root := writePlate(t)

	tests := [][]string{
		{"export", "--family", root},
		{"export", "--family", root, "--state", "0"},
		{"export", "--family", root, "--state", "4"},
		{"export", "--family", root, "--state", "1", "--format", "xml"},
		{"export", "--family", root, "--state", "1", "--component", "w"},
		{"export", "--family", root, "--state", "1", "--state-policy", "lenient"},
	}
	for _, args := range tests {
		if _, err := runApp(t, args...); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestBoundsJSON(t *testing.T) {
	_, root := writePlate(t)

	out, err := runApp(t, "bounds", "--family", root, "--state", "3", "--json")
	if err != nil {
		t.Fatalf("bounds: %v", err)
	}
	var b boundsOut
	if err := json.Unmarshal([]byte(out), &b); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if b.Sequence != 3 || b.Min != [3]float32{0, 0, 1} || b.Max != [3]float32{2, 1, 1} {
		t.Fatalf("unexpected bounds: %+v", b)
	}

	out, err = runApp(t, "bounds", "--family", root)
	if err != nil {
		t.Fatalf("bounds: %v", err)
	}
	if !strings.Contains(out, "max:      2 1 0") {
		t.Fatalf("unexpected bounds output:\n%s", out)
	}
}

func TestParts(t *testing.T) {
	_, root := writePlate(t)

	out, err := runApp(t, "parts", "--family", root, "--json")
	if err != nil {
		t.Fatalf("parts: %v", err)
	}
	var rows []partRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(rows) != 1 || rows[0].ElementCount != 2 || rows[0].Type != "shell" {
		t.Fatalf("unexpected parts: %+v", rows)
	}
}

func TestConfigFileDefaults(t *testing.T) {
	dir, _ := writePlate(t)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "data_dir: " + dir + "\nstate_policy: clamp\nlog_level: error\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runApp(t, "--config", cfgPath, "export", "--state", "9", "--format", "json")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var got exportOut
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Sequence != 3 {
		t.Fatalf("clamped export sequence = %d, want 3", got.Sequence)
	}

	if _, err := runApp(t, "--config", cfgPath, "export", "--state", "9", "--state-policy", "strict"); err == nil {
		t.Fatalf("expected the explicit flag to override the config policy")
	}
}
