package buffer

import (
	"testing"
	"unicode"
)

func letters(r rune) bool { return unicode.IsLetter(r) }

func TestWordEndAtWordBoundary(t *testing.T) {
	g := NewGapBufferFromString("one two")
	if got := WordEnd(g, 2, letters); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
}

func TestWordEndInsideWord(t *testing.T) {
	g := NewGapBufferFromString("one")
	if got := WordEnd(g, 1, letters); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestWordStartAndNext(t *testing.T) {
	g := NewGapBufferFromString("one, two three")
	if got := WordStart(g, 7, letters); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := NextWordStart(g, 0, letters); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := NextWordStart(g, 10, letters); got != g.Len() {
		t.Fatalf("expected end of buffer, got %d", got)
	}
}

func TestWordAt(t *testing.T) {
	g := NewGapBufferFromString("say helo.")
	start, end, ok := WordAt(g, 8, letters)
	if !ok || string(g.Slice(start, end)) != "helo" {
		t.Fatalf("expected helo before the period, got %q ok=%v", string(g.Slice(start, end)), ok)
	}
	if _, _, ok := WordAt(NewGapBufferFromString(" . "), 1, letters); ok {
		t.Fatalf("expected no word around punctuation")
	}
}
