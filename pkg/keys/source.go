package keys

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"
)

// Source delivers key presses one at a time. Next blocks until a key is
// available and returns io.EOF once input has ended.
type Source interface {
	Next() (Key, error)
}

// ScreenSource reads keys from a tcell screen.
type ScreenSource struct {
	Screen tcell.Screen
}

// Next polls the screen until it yields a key or a resize.
func (s ScreenSource) Next() (Key, error) {
	for {
		ev := s.Screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// PollEvent returns nil once the screen is finalized
			return None, io.EOF
		case *tcell.EventKey:
			if k := FromEvent(ev); k != None {
				return k, nil
			}
		case *tcell.EventResize:
			s.Screen.Sync()
			return Resize, nil
		}
	}
}

// byteKeys maps raw terminal bytes that are not printable characters.
var byteKeys = map[rune]Key{
	27:   Esc,
	127:  Backspace,
	8:    Backspace,
	'\r': Newline,
	'\n': Newline,
	'\t': Tab,
	' ':  Space,
}

// ReaderSource translates a raw byte stream (a terminal in raw mode, a pipe
// or a script) into keys. Unmapped characters name themselves.
type ReaderSource struct {
	r *bufio.Reader
}

// NewReaderSource returns a ReaderSource reading from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: bufio.NewReader(r)}
}

// Next returns the next key in the stream.
func (s *ReaderSource) Next() (Key, error) {
	for {
		c, _, err := s.r.ReadRune()
		if err != nil {
			return None, err
		}
		if k, ok := byteKeys[c]; ok {
			return k, nil
		}
		if c >= 1 && c <= 26 {
			return Ctrl('a' + c - 1), nil
		}
		if c < ' ' {
			continue
		}
		return Key(string(c)), nil
	}
}
