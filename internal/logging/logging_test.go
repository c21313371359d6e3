package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New("info", "json", &buf)
	l.Debug().Msg("hidden")
	l.Info().Int("destinations", 3).Msg("catalog loaded")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if rec["message"] != "catalog loaded" || rec["destinations"] != float64(3) {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestNew_UnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	l := New("chatty", "json", &buf)
	l.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn: %q", buf.String())
	}
	l.Warn().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn missing: %q", buf.String())
	}
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New("debug", "console", &buf)
	l.Debug().Str("tier", "Luxo").Msg("selection")
	out := buf.String()
	if !strings.Contains(out, "selection") || !strings.Contains(out, "tier=") || !strings.Contains(out, "Luxo") {
		t.Fatalf("unexpected console output: %q", out)
	}
}
