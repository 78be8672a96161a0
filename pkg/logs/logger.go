package logs

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes JSON lines with a timestamp and event fields.
// The zero value and a nil *Logger are disabled loggers.
type Logger struct {
	mu      sync.Mutex
	w       *bufio.Writer
	c       io.Closer
	enabled bool
	now     func() time.Time
}

// NewFromEnv returns a logger if LEXEDIT_LOG is set to a truthy value or
// if LEXEDIT_LOG_FILE is provided. Otherwise it returns a disabled logger.
// When enabled and no file is specified, it writes to ./lexedit.log.
func NewFromEnv() *Logger {
	lf := os.Getenv("LEXEDIT_LOG_FILE")
	enabled := lf != ""
	if v := os.Getenv("LEXEDIT_LOG"); v != "" && v != "0" && v != "false" {
		enabled = true
	}
	if !enabled {
		return &Logger{}
	}
	if lf == "" {
		lf = filepath.Join(".", "lexedit.log")
	}
	f, err := os.OpenFile(lf, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		// If we cannot open the requested file, disable logging silently.
		return &Logger{}
	}
	l := New(f)
	l.c = f
	return l
}

// New returns an enabled logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{w: bufio.NewWriter(w), enabled: true, now: time.Now}
}

// Enabled reports whether events are written.
func (l *Logger) Enabled() bool { return l != nil && l.enabled }

// Close flushes and closes the underlying file if enabled.
func (l *Logger) Close() {
	if !l.Enabled() {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.w.Flush()
	if l.c != nil {
		_ = l.c.Close()
	}
	l.enabled = false
}

// Event writes a JSON line with the event name and fields.
// Common fields: key, mode, action, cursor, buffer_len, file, words.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.Enabled() {
		return
	}
	rec := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		rec[k] = v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	rec["time"] = l.now().Format(time.RFC3339Nano)
	rec["event"] = event
	_ = json.NewEncoder(l.w).Encode(rec)
	_ = l.w.Flush()
}
