package buffer

import (
	"errors"
	"io"
	"unicode/utf8"
)

// ErrRange is returned when a position or range falls outside the buffer.
var ErrRange = errors.New("buffer: position out of range")

// GapBuffer stores runes with a movable gap at the edit point.
// Positions are rune indices in [0, Len()].
type GapBuffer struct {
	buf      []rune
	gapStart int
	gapEnd   int

	cacheString string
	cacheValid  bool
}

// NewGapBuffer creates an empty GapBuffer with an initial capacity.
func NewGapBuffer(capacity int) *GapBuffer {
	if capacity < 1 {
		capacity = 128
	}
	return &GapBuffer{buf: make([]rune, capacity), gapEnd: capacity}
}

// NewGapBufferFromString initializes a GapBuffer with the provided text.
func NewGapBufferFromString(s string) *GapBuffer {
	runes := []rune(s)
	g := NewGapBuffer(len(runes) + 128)
	copy(g.buf, runes)
	g.gapStart = len(runes)
	return g
}

func (g *GapBuffer) gapLen() int { return g.gapEnd - g.gapStart }

func (g *GapBuffer) ensureGap(n int) {
	if g.gapLen() >= n {
		return
	}
	newCap := len(g.buf)*2 + n
	newBuf := make([]rune, newCap)
	copy(newBuf, g.buf[:g.gapStart])
	tail := len(g.buf) - g.gapEnd
	copy(newBuf[newCap-tail:], g.buf[g.gapEnd:])
	g.gapEnd = newCap - tail
	g.buf = newBuf
}

// moveGap moves the gap so that it starts at pos.
func (g *GapBuffer) moveGap(pos int) {
	switch {
	case pos < g.gapStart:
		d := g.gapStart - pos
		copy(g.buf[g.gapEnd-d:g.gapEnd], g.buf[pos:g.gapStart])
		g.gapStart -= d
		g.gapEnd -= d
	case pos > g.gapStart:
		d := pos - g.gapStart
		copy(g.buf[g.gapStart:g.gapStart+d], g.buf[g.gapEnd:g.gapEnd+d])
		g.gapStart += d
		g.gapEnd += d
	}
}

// Insert inserts runes at position pos (0..Len()).
func (g *GapBuffer) Insert(pos int, s []rune) error {
	if pos < 0 || pos > g.Len() {
		return ErrRange
	}
	if len(s) == 0 {
		return nil
	}
	g.moveGap(pos)
	g.ensureGap(len(s))
	copy(g.buf[g.gapStart:], s)
	g.gapStart += len(s)
	g.cacheValid = false
	return nil
}

// Delete removes runes in [start,end).
func (g *GapBuffer) Delete(start, end int) error {
	if start < 0 || end < start || end > g.Len() {
		return ErrRange
	}
	g.moveGap(start)
	g.gapEnd += end - start
	g.cacheValid = false
	return nil
}

// Slice returns a copy of the runes in [start,end), clamped to the buffer.
func (g *GapBuffer) Slice(start, end int) []rune {
	if start < 0 {
		start = 0
	}
	if end > g.Len() {
		end = g.Len()
	}
	if start >= end {
		return []rune{}
	}
	out := make([]rune, 0, end-start)
	if start < g.gapStart {
		out = append(out, g.buf[start:min(end, g.gapStart)]...)
	}
	if end > g.gapStart {
		from := max(start, g.gapStart) + g.gapLen()
		out = append(out, g.buf[from:end+g.gapLen()]...)
	}
	return out
}

// Runes returns a copy of the whole content.
func (g *GapBuffer) Runes() []rune { return g.Slice(0, g.Len()) }

// Len returns the logical length (excluding gap).
func (g *GapBuffer) Len() int { return len(g.buf) - g.gapLen() }

// RuneAt returns the rune at index i. If i is out of bounds, it returns 0.
func (g *GapBuffer) RuneAt(i int) rune {
	if i < 0 || i >= g.Len() {
		return 0
	}
	if i < g.gapStart {
		return g.buf[i]
	}
	return g.buf[i+g.gapLen()]
}

// LineAt returns the rune start and end indices of line idx (0-based). The
// end index includes the terminating '\n' when present. An index past the
// last line returns the last line's bounds.
func (g *GapBuffer) LineAt(idx int) (start, end int) {
	if idx < 0 {
		idx = 0
	}
	line := 0
	n := g.Len()
	for i := 0; i < n; i++ {
		if g.RuneAt(i) != '\n' {
			continue
		}
		if line == idx {
			return start, i + 1
		}
		line++
		start = i + 1
	}
	return start, n
}

// LineOf returns the 0-based line number containing pos.
func (g *GapBuffer) LineOf(pos int) int {
	line := 0
	for i := 0; i < pos && i < g.Len(); i++ {
		if g.RuneAt(i) == '\n' {
			line++
		}
	}
	return line
}

// String returns the buffer content.
func (g *GapBuffer) String() string {
	if g.cacheValid {
		return g.cacheString
	}
	g.cacheString = string(g.Runes())
	g.cacheValid = true
	return g.cacheString
}

// Reader returns an io.RuneReader over the current content. The reader
// must not be used across modifications of the buffer.
func (g *GapBuffer) Reader() io.RuneReader {
	return &runeReader{g: g}
}

type runeReader struct {
	g   *GapBuffer
	pos int
}

func (r *runeReader) ReadRune() (rune, int, error) {
	if r.pos >= r.g.Len() {
		return 0, 0, io.EOF
	}
	c := r.g.RuneAt(r.pos)
	r.pos++
	return c, utf8.RuneLen(c), nil
}
