// Package lexicon implements the word list used for spell checking and
// completion: a prefix tree keyed by runes.
//
// A Trie is populated once with Add and then queried with Contains,
// SpellCheck and Suggestions. Queries do not mutate the tree, so any number
// of goroutines may query it concurrently as long as no Add is in flight.
// Callers that mix writers and readers must serialise them.
package lexicon

import (
	"io"
	"maps"
	"slices"
	"strings"
)

// node is a single branching point of the tree.
type node struct {
	children map[rune]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// child returns the child for r, or nil.
func (n *node) child(r rune) *node {
	return n.children[r]
}

// keys returns the child edges in code point order.
func (n *node) keys() []rune {
	return slices.Sorted(maps.Keys(n.children))
}

// Trie is a set of words stored as a prefix tree.
type Trie struct {
	root  *node
	words int
	nodes int
	depth int
}

// Stats describes the shape of a Trie.
type Stats struct {
	Words    int
	Nodes    int
	MaxDepth int
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: newNode(), nodes: 1}
}

// Add inserts word. Adding an empty word or a word already present leaves
// the trie unchanged. Every rune, delimiters included, is an ordinary edge.
func (t *Trie) Add(word string) {
	if word == "" {
		return
	}
	n := t.root
	depth := 0
	for _, r := range word {
		next := n.child(r)
		if next == nil {
			next = newNode()
			n.children[r] = next
			t.nodes++
		}
		n = next
		depth++
	}
	if !n.terminal {
		n.terminal = true
		t.words++
	}
	if depth > t.depth {
		t.depth = depth
	}
}

// find walks the path spelled by s and returns the node it ends on.
func (t *Trie) find(s string) *node {
	n := t.root
	for _, r := range s {
		if n = n.child(r); n == nil {
			return nil
		}
	}
	return n
}

// Contains reports whether word was added. Matching is exact; no case
// normalisation is applied.
func (t *Trie) Contains(word string) bool {
	n := t.find(word)
	return n != nil && n.terminal
}

// Len returns the number of distinct words.
func (t *Trie) Len() int { return t.words }

// Stats returns counters describing the tree.
func (t *Trie) Stats() Stats {
	return Stats{Words: t.words, Nodes: t.nodes, MaxDepth: t.depth}
}

// SpellCheck returns the span of every token in text that is not in the
// trie, left to right. Offsets count runes.
func (t *Trie) SpellCheck(text string) []Span {
	spans, _ := spellCheck(strings.NewReader(text), t.Contains)
	return spans
}

// SpellCheckReader is SpellCheck over a rune stream. The returned error is
// the first read error other than io.EOF; spans found before it are kept.
func (t *Trie) SpellCheckReader(r io.RuneReader) ([]Span, error) {
	return spellCheck(r, t.Contains)
}

func spellCheck(r io.RuneReader, known func(string) bool) ([]Span, error) {
	var bad []Span
	tz := NewTokenizer(r)
	for {
		tok, ok := tz.Next()
		if !ok {
			break
		}
		if !known(tok.Text) {
			bad = append(bad, tok.Span)
		}
	}
	return bad, tz.Err()
}

// Suggestions returns up to limit words starting with prefix, in ascending
// code point order. The prefix itself is included when it is a word. A
// limit of zero or less yields no suggestions.
func (t *Trie) Suggestions(prefix string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	n := t.find(prefix)
	if n == nil {
		return nil
	}
	return n.collect([]rune(prefix), limit, nil)
}

// collect appends the words below n in depth-first, code point order until
// out holds limit entries.
func (n *node) collect(path []rune, limit int, out []string) []string {
	if n.terminal {
		out = append(out, string(path))
		if len(out) >= limit {
			return out
		}
	}
	for _, r := range n.keys() {
		out = n.children[r].collect(append(path, r), limit, out)
		if len(out) >= limit {
			return out
		}
	}
	return out
}
