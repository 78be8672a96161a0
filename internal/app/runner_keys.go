package app

import (
	"fmt"

	"example.com/lexedit/pkg/buffer"
	"example.com/lexedit/pkg/config"
	"example.com/lexedit/pkg/keys"
)

// bound reports whether k triggers the keymap action.
func (r *Runner) bound(action string, k keys.Key) bool {
	km := r.Keymap
	if km == nil {
		km = config.DefaultKeymap()
	}
	kb, ok := km[action]
	return ok && kb.Matches(k)
}

// handleKey processes one key press. It returns true if the key signals the
// runner should quit. The status message is cleared before every key.
func (r *Runner) handleKey(k keys.Key) bool {
	r.ensure()
	r.Message = ""
	r.prevPaste, r.lastPaste = r.lastPaste, nil
	switch {
	case r.bound("quit", k):
		return true
	case r.bound("save", k):
		r.save()
		r.draw()
		return false
	case r.bound("help", k), k == keys.F1:
		r.ShowHelp = !r.ShowHelp
		r.draw()
		return false
	}
	quit := false
	if r.Mode == ModeInsert {
		r.handleInsertKey(k)
	} else {
		quit = r.handleCommandKey(k)
	}
	r.draw()
	return quit
}

func (r *Runner) save() {
	if r.FilePath == "" {
		r.Message = "[no file name]"
		return
	}
	if err := r.Save(); err != nil {
		r.Message = fmt.Sprintf("[save failed: %v]", err)
		r.Logger.Event("save.error", map[string]any{"file": r.FilePath, "error": err.Error()})
		return
	}
	r.Message = fmt.Sprintf("[wrote %s]", r.FilePath)
	r.Logger.Event("save.success", map[string]any{"file": r.FilePath, "runes": r.Buf.Len()})
}

func (r *Runner) setMode(m Mode) {
	r.Mode = m
	r.History.Seal()
	r.Logger.Event("mode", map[string]any{"mode": m.String()})
}

// handleInsertKey inserts characters and handles the few editing keys of
// insert mode.
func (r *Runner) handleInsertKey(k keys.Key) {
	switch k {
	case keys.Esc, keys.Tab:
		r.setMode(ModeCommand)
	case keys.Backspace:
		if r.Cursor > 0 {
			r.deleteRange(r.Cursor-1, r.Cursor)
		}
	case keys.Delete:
		if r.Cursor < r.Buf.Len() {
			r.deleteRange(r.Cursor, r.Cursor+1)
		}
	case keys.Newline:
		r.insertText("\n")
	case keys.Left:
		r.moveCursor(-1)
	case keys.Right:
		r.moveCursor(1)
	case keys.Up:
		r.moveCursorVertical(-1)
	case keys.Down:
		r.moveCursorVertical(1)
	default:
		if c, ok := k.Rune(); ok {
			r.insertText(string(c))
		}
	}
}

// handleCommandKey runs the single-key command bound to k.
func (r *Runner) handleCommandKey(k keys.Key) bool {
	switch k {
	case "i":
		r.setMode(ModeInsert)
	case "j", keys.Left:
		r.moveCursor(-1)
	case "k", keys.Right:
		r.moveCursor(1)
	case "l", keys.Up:
		r.moveCursorVertical(-1)
	case ";", keys.Down:
		r.moveCursorVertical(1)
	case "w":
		r.Cursor = buffer.NextWordStart(r.Buf, r.Cursor, isWordRune)
	case "b":
		r.Cursor = buffer.WordStart(r.Buf, r.Cursor, isWordRune)
	case "e":
		r.Cursor = buffer.WordEnd(r.Buf, r.Cursor, isWordRune)
	case "m":
		r.setMark()
	case ",":
		r.killRegion()
	case "p":
		r.paste()
	case "y":
		r.yankPop()
	case "u":
		r.undo()
	case "r":
		r.redo()
	case "a":
		r.toggleSpellCheck()
	case "n":
		r.nextMisspelling()
	case "s":
		r.suggestAtPoint()
	case "c":
		r.completeAtPoint()
	case "A":
		r.addWordAtPoint()
	case "?":
		r.ShowHelp = !r.ShowHelp
	case "q":
		return true
	case keys.Esc:
	default:
		r.Message = fmt.Sprintf("[unknown command: %s]", k)
	}
	return false
}
