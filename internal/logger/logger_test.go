package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo)
	log.Info("hello", "key", "value")

	output := buf.String()
	if !strings.Contains(output, `"key":"value"`) {
		t.Fatalf("expected key=value in JSON output, got: %s", output)
	}
	if !strings.Contains(output, `"level":"INFO"`) {
		t.Fatalf("expected level INFO in output, got: %s", output)
	}
}

func TestJSONLevelFiltering(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelWarn)
	log.Info("should not appear")
	log.Debug("also should not appear")
	if buf.Len() > 0 {
		t.Fatalf("expected no output for info/debug at warn level, got: %s", buf.String())
	}

	log.Warn("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Fatalf("expected warn message in output, got: %s", buf.String())
	}
}

func TestNop(t *testing.T) {
	t.Parallel()
	log := Nop()
	log.Error("dropped")
	log.With("k", "v").WithGroup("g").Warn("dropped")
}

func TestFromFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, `"msg":"opened"`},
		{FormatText, `msg=opened`},
		{FormatPretty, "\033[1mINFO"},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		FromFormat(&buf, tc.format, slog.LevelInfo).Info("opened", "states", 3)
		if !strings.Contains(buf.String(), tc.want) {
			t.Fatalf("%s: expected %q in output, got: %s", tc.format, tc.want, buf.String())
		}
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Format{"": FormatPretty, "pretty": FormatPretty, "JSON": FormatJSON, " text ": FormatText} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("ParseFormat accepted xml")
	}
}

func TestWith(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo)
	log.With("family", "fam_1").Info("child message")

	if !strings.Contains(buf.String(), `"family":"fam_1"`) {
		t.Fatalf("expected family attr in output, got: %s", buf.String())
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo)

	FromContext(WithContext(context.Background(), log)).Info("roundtrip test")
	if !strings.Contains(buf.String(), "roundtrip test") {
		t.Fatalf("expected message via context logger, got: %s", buf.String())
	}
	if FromContext(context.Background()) == nil {
		t.Fatal("FromContext with no logger returned nil")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"DEBUG", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.input)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func prettyLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(NewPrettyHandler(buf, &PrettyOptions{
		HandlerOptions: slog.HandlerOptions{Level: level},
		NoColor:        true,
	}))
}

func TestPrettyLine(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	prettyLogger(&buf, slog.LevelInfo).Warn("record dropped", "member", 2, "path", "/data/run.ptf01")

	line := buf.String()
	if strings.Contains(line, "\033[") {
		t.Fatalf("NoColor output contains escapes: %q", line)
	}
	if !strings.Contains(line, "WARN  record dropped member=2 path=/data/run.ptf01\n") {
		t.Fatalf("unexpected line: %q", line)
	}
}

func TestPrettyHandlerEnabled(t *testing.T) {
	t.Parallel()
	h := NewPrettyHandler(&bytes.Buffer{}, &PrettyOptions{HandlerOptions: slog.HandlerOptions{Level: slog.LevelWarn}})

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info to be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("expected warn to be enabled at warn level")
	}
	if NewPrettyHandler(&bytes.Buffer{}, nil).Enabled(context.Background(), slog.LevelDebug) {
		t.Error("default level should be info")
	}
}

func TestPrettyHandlerAttrsAndGroups(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, &PrettyOptions{NoColor: true})

	slog.New(h.WithAttrs([]slog.Attr{slog.String("service", "api")})).Info("with attrs")
	slog.New(h.WithGroup("a").WithGroup("b")).Info("nested", "key", "val")
	slog.New(h).Info("inline", slog.Group("state", "seq", 4, "time", 0.25))

	out := buf.String()
	for _, want := range []string{"service=api", "a.b.key=val", "state.seq=4 state.time=0.25"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got: %s", want, out)
		}
	}
	if h.WithGroup("") != h {
		t.Fatal("WithGroup empty string should return same handler")
	}
}

func TestPrettyValueFormatting(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	prettyLogger(&buf, slog.LevelInfo).Info("values",
		"quoted", "hello world",
		"simple", "plain",
		"empty", "",
		"took", 1500*time.Millisecond,
	)

	out := buf.String()
	for _, want := range []string{`quoted="hello world"`, "simple=plain", `empty=""`, "took=1.5s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestPrettySource(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, &PrettyOptions{
		HandlerOptions: slog.HandlerOptions{AddSource: true},
		NoColor:        true,
	}))
	log.Info("where")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected source location, got: %s", buf.String())
	}
}

func TestNeedsQuoting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"simple", false},
		{"has space", true},
		{"has\ttab", true},
		{`has"quote`, true},
		{"k=v", true},
		{"", true},
	}
	for _, tc := range tests {
		if got := needsQuoting(tc.input); got != tc.expected {
			t.Errorf("needsQuoting(%q): expected %v, got %v", tc.input, tc.expected, got)
		}
	}
}
