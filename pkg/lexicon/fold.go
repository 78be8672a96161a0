package lexicon

import (
	"io"
	"strings"
)

// Lexicon is the query surface the editor needs. Both *Trie and *Folded
// implement it.
type Lexicon interface {
	Add(word string)
	Contains(word string) bool
	SpellCheckReader(r io.RuneReader) ([]Span, error)
	Suggestions(prefix string, limit int) []string
	Stats() Stats
}

// Folded wraps a Trie so that words are lower-cased before they are stored
// and before every lookup. Spans still refer to the caller's text.
type Folded struct {
	*Trie
}

// NewFolded returns an empty case-insensitive lexicon.
func NewFolded() *Folded {
	return &Folded{Trie: New()}
}

func fold(s string) string { return strings.ToLower(s) }

// Add inserts the lower-cased word.
func (f *Folded) Add(word string) { f.Trie.Add(fold(word)) }

// Contains reports whether the lower-cased word is present.
func (f *Folded) Contains(word string) bool { return f.Trie.Contains(fold(word)) }

// SpellCheck reports tokens whose lower-cased form is unknown.
func (f *Folded) SpellCheck(text string) []Span {
	spans, _ := spellCheck(strings.NewReader(text), f.Contains)
	return spans
}

// SpellCheckReader is SpellCheck over a rune stream.
func (f *Folded) SpellCheckReader(r io.RuneReader) ([]Span, error) {
	return spellCheck(r, f.Contains)
}

// Suggestions completes the lower-cased prefix. Results are in stored
// (lower) case.
func (f *Folded) Suggestions(prefix string, limit int) []string {
	return f.Trie.Suggestions(fold(prefix), limit)
}
