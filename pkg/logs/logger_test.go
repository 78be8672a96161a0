package logs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEventWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	l.Event("spell.check", map[string]any{"errors": 2})

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if rec["event"] != "spell.check" || rec["errors"] != float64(2) {
		t.Fatalf("unexpected record: %v", rec)
	}
	if rec["time"] != "2024-01-02T03:04:05Z" {
		t.Fatalf("unexpected time: %v", rec["time"])
	}
}

func TestDisabledLoggerIsNoop(t *testing.T) {
	var l *Logger
	l.Event("x", nil)
	l.Close()
	(&Logger{}).Event("x", nil)
}

func TestNewFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexedit.log")
	t.Setenv("LEXEDIT_LOG", "")
	t.Setenv("LEXEDIT_LOG_FILE", path)
	l := NewFromEnv()
	if !l.Enabled() {
		t.Fatalf("expected logger enabled by LEXEDIT_LOG_FILE")
	}
	l.Event("run.start", map[string]any{"file": "a.txt"})
	l.Close()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !bytes.Contains(data, []byte(`"event":"run.start"`)) {
		t.Fatalf("expected run.start event, got %s", data)
	}

	t.Setenv("LEXEDIT_LOG_FILE", "")
	t.Setenv("LEXEDIT_LOG", "0")
	if NewFromEnv().Enabled() {
		t.Fatalf("expected disabled logger")
	}
}
