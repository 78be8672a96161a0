package app

import (
	"errors"
	"io"
	"os"
	"strings"

	"example.com/lexedit/pkg/buffer"
	"example.com/lexedit/pkg/config"
	"example.com/lexedit/pkg/history"
	"example.com/lexedit/pkg/keys"
	"example.com/lexedit/pkg/lexicon"
	"example.com/lexedit/pkg/logs"
	"example.com/lexedit/pkg/store"
	"github.com/gdamore/tcell/v2"
)

// Mode represents the current editor mode.
type Mode int

const (
	ModeCommand Mode = iota
	ModeInsert
)

func (m Mode) String() string {
	if m == ModeInsert {
		return "insert"
	}
	return "command"
}

// Runner owns the terminal lifecycle and a minimal event loop.
type Runner struct {
	Screen   tcell.Screen
	Keys     keys.Source
	FilePath string
	Buf      *buffer.GapBuffer
	Cursor   int // cursor position in runes
	Mark     int
	MarkSet  bool
	Dirty    bool
	Mode     Mode
	Message  string
	ShowHelp bool
	History  *history.History
	KillRing history.KillRing
	Logger   *logs.Logger
	Keymap   map[string]config.Keybinding

	Lex   lexicon.Lexicon
	Dict  store.WordStore
	Limit int // suggestions shown by 's'
	View  config.ViewConfig
	// TopLine is the first visible display row.
	TopLine int
	Spell   SpellState

	// lastPaste is the text inserted by the key just handled, if it pasted;
	// prevPaste is the same for the key before it.
	lastPaste, prevPaste *pasteSpan
}

// pasteSpan is the buffer range [start,end) filled by a paste.
type pasteSpan struct{ start, end int }

// New creates an empty Runner in command mode with an empty lexicon.
func New() *Runner {
	return &Runner{
		Buf:     buffer.NewGapBuffer(0),
		History: history.New(),
		Mode:    ModeCommand,
		Keymap:  config.DefaultKeymap(),
		Lex:     lexicon.New(),
		Limit:   5,
		View:    config.ViewConfig{Width: 40, Height: 10},
	}
}

// Configure applies the view, suggestion and keymap settings of cfg.
func (r *Runner) Configure(cfg *config.Config) {
	r.View = cfg.View
	r.Limit = cfg.Suggestions.Limit
	r.Keymap = cfg.Keymap
}

// LoadFile loads a file into the runner's buffer. A file that does not
// exist yet is not an error; it is created on the first save.
func (r *Runner) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	r.Logger.Event("open.attempt", map[string]any{"file": path})
	r.FilePath = path
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.Logger.Event("open.new", map[string]any{"file": path})
			r.Buf = buffer.NewGapBuffer(0)
			return nil
		}
		r.Logger.Event("open.error", map[string]any{"file": path, "error": err.Error()})
		return err
	}
	// Normalize CRLF to LF for internal buffer storage
	normalized := strings.ReplaceAll(string(data), "\r\n", "\n")
	r.Buf = buffer.NewGapBufferFromString(normalized)
	r.Cursor = 0
	r.Dirty = false
	r.Logger.Event("open.success", map[string]any{"file": path, "bytes": len(data), "runes": r.Buf.Len()})
	return nil
}

// Save writes the buffer contents to the current FilePath and clears Dirty.
func (r *Runner) Save() error {
	if r.FilePath == "" {
		return os.ErrInvalid
	}
	data := []byte(r.Buf.String())
	if err := os.WriteFile(r.FilePath, data, 0644); err != nil {
		return err
	}
	r.Dirty = false
	return nil
}

// InitScreen initializes a tcell screen if one is not already set.
func (r *Runner) InitScreen() error {
	if r.Screen != nil {
		return nil
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	r.Screen = s
	return nil
}

// Fini finalizes the screen if initialized.
func (r *Runner) Fini() {
	if r.Screen != nil {
		r.Screen.Fini()
		r.Screen = nil
	}
	r.Logger.Close()
}

// Run starts the event loop and returns when the user quits or the key
// source runs dry. Without a key source, keys are read from the screen,
// which is initialized if needed. A runner with a key source and no
// screen edits headless.
func (r *Runner) Run() error {
	if r.Keys == nil {
		if r.Screen == nil {
			if err := r.InitScreen(); err != nil {
				return err
			}
			defer r.Fini()
		}
		r.Keys = keys.ScreenSource{Screen: r.Screen}
	}
	if r.Logger == nil {
		r.Logger = logs.NewFromEnv()
	}
	r.ensure()
	r.Logger.Event("run.start", map[string]any{"file": r.FilePath})
	defer r.Logger.Event("run.end", map[string]any{"file": r.FilePath})

	r.draw()
	for {
		k, err := r.Keys.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.Logger.Event("action", map[string]any{"name": "quit.eof"})
				return nil
			}
			return err
		}
		if k == keys.Resize {
			r.draw()
			continue
		}
		r.Logger.Event("key", map[string]any{"key": string(k), "mode": r.Mode.String()})
		// If help is currently shown, consume this key to dismiss it
		if r.ShowHelp {
			r.ShowHelp = false
			r.draw()
			continue
		}
		if r.handleKey(k) {
			r.Logger.Event("action", map[string]any{"name": "quit"})
			return nil
		}
	}
}

// ensure fills in the parts of a zero Runner the key handlers rely on.
func (r *Runner) ensure() {
	if r.Buf == nil {
		r.Buf = buffer.NewGapBuffer(0)
	}
	if r.History == nil {
		r.History = history.New()
	}
	if r.Lex == nil {
		r.Lex = lexicon.New()
	}
}
