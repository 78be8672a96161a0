// Package keys turns terminal input into editor key names.
//
// A Key is a short name such as "esc", "newline", "ctrl+q" or, for ordinary
// characters, the character itself. The editor dispatches on these names
// and never sees platform specific events.
package keys

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Key names one key press.
type Key string

// Named keys.
const (
	Esc       Key = "esc"
	Backspace Key = "backspace"
	Delete    Key = "delete"
	Newline   Key = "newline"
	Tab       Key = "tab"
	Space     Key = "space"
	Left      Key = "left"
	Right     Key = "right"
	Up        Key = "up"
	Down      Key = "down"
	F1        Key = "f1"
	// Resize is delivered when the terminal changed size.
	Resize Key = "resize"
	// None is returned for events the editor does not handle.
	None Key = ""
)

// Ctrl returns the key name for Ctrl and the letter c.
func Ctrl(c rune) Key {
	return Key("ctrl+" + string(c))
}

// Rune returns the character a key inserts and whether it is one.
// Space counts as a character.
func (k Key) Rune() (rune, bool) {
	if k == Space {
		return ' ', true
	}
	r, size := utf8.DecodeRuneInString(string(k))
	if size == 0 || size != len(k) || r == utf8.RuneError {
		return 0, false
	}
	return r, true
}

// fromRune names a single character key.
func fromRune(r rune) Key {
	if r == ' ' {
		return Space
	}
	return Key(string(r))
}

// FromEvent names a tcell key event.
func FromEvent(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return Ctrl(lower(r))
		}
		return fromRune(r)
	case tcell.KeyEsc:
		return Esc
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Backspace
	case tcell.KeyDelete:
		return Delete
	case tcell.KeyEnter:
		return Newline
	case tcell.KeyTab:
		return Tab
	case tcell.KeyLeft:
		return Left
	case tcell.KeyRight:
		return Right
	case tcell.KeyUp:
		return Up
	case tcell.KeyDown:
		return Down
	case tcell.KeyF1:
		return F1
	}
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return Ctrl(rune('a' + (k - tcell.KeyCtrlA)))
	}
	return None
}

func lower(r rune) rune {
	return []rune(strings.ToLower(string(r)))[0]
}
