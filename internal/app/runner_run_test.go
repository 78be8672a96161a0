package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"example.com/lexedit/pkg/keys"
	"example.com/lexedit/pkg/logs"
	"github.com/gdamore/tcell/v2"
)

func TestRun_HeadlessScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	var logBuf bytes.Buffer
	r := New()
	r.FilePath = path
	r.Logger = logs.New(&logBuf)
	// type, leave insert mode, save, quit
	r.Keys = keys.NewReaderSource(strings.NewReader("ihello\x1b\x13q"))
	if err := r.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("expected %q saved, got %q", "hello", data)
	}
	for _, ev := range []string{"run.start", "key", "save.success", "run.end"} {
		if !strings.Contains(logBuf.String(), `"event":"`+ev+`"`) {
			t.Fatalf("expected %s event in log:\n%s", ev, logBuf.String())
		}
	}
}

func TestRun_EndOfInputQuits(t *testing.T) {
	r := New()
	r.Keys = keys.NewReaderSource(strings.NewReader("ihi"))
	if err := r.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.Buf.String() != "hi" {
		t.Fatalf("expected %q, got %q", "hi", r.Buf.String())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestRun_ReadErrorIsReturned(t *testing.T) {
	r := New()
	r.Keys = keys.NewReaderSource(failingReader{})
	if err := r.Run(); err == nil || err.Error() != "tty gone" {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestRun_HelpDismissedByAnyKey(t *testing.T) {
	r := New()
	r.Keys = keys.NewReaderSource(strings.NewReader("?ix"))
	if err := r.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.ShowHelp {
		t.Fatalf("expected help dismissed")
	}
	if r.Mode != ModeCommand || r.Message != "[unknown command: x]" {
		t.Fatalf("expected the dismissing key to be consumed, got mode %v message %q", r.Mode, r.Message)
	}
}

func TestRun_ScreenEvents(t *testing.T) {
	s := newSimScreen(t, 30, 10)
	s.InjectKey(tcell.KeyRune, 'i', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'o', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)
	s.InjectKey(tcell.KeyEsc, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModNone)

	r := New()
	r.Screen = s
	if err := r.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if r.Buf.String() != "ok" {
		t.Fatalf("expected %q, got %q", "ok", r.Buf.String())
	}
	if got := rowText(s, 1, 1, 2); got != "ok" {
		t.Fatalf("expected %q drawn in the box, got %q", "ok", got)
	}
}
