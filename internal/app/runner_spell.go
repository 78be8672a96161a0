package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"example.com/lexedit/pkg/buffer"
	"example.com/lexedit/pkg/lexicon"
)

// SpellState is the runner's spell-check subsystem state.
type SpellState struct {
	Enabled bool
	// Spans are the misspelled words of the buffer, in order.
	Spans []lexicon.Span
}

// toggleSpellCheck turns highlighting of misspelled words on or off.
func (r *Runner) toggleSpellCheck() {
	r.Spell.Enabled = !r.Spell.Enabled
	if !r.Spell.Enabled {
		r.Spell.Spans = nil
		r.Message = "[spell check off]"
		return
	}
	r.recheck()
	r.Message = fmt.Sprintf("[%d misspelled]", len(r.Spell.Spans))
}

// recheck recomputes the misspelled spans while spell checking is on.
func (r *Runner) recheck() {
	if !r.Spell.Enabled {
		return
	}
	spans, err := r.misspelled()
	if err != nil {
		r.Message = fmt.Sprintf("[spell check failed: %v]", err)
		return
	}
	r.Spell.Spans = spans
}

// misspelled scans the whole buffer against the lexicon.
func (r *Runner) misspelled() ([]lexicon.Span, error) {
	spans, err := r.Lex.SpellCheckReader(r.Buf.Reader())
	if err != nil {
		r.Logger.Event("spell.error", map[string]any{"error": err.Error()})
		return nil, err
	}
	r.Logger.Event("spell.check", map[string]any{"errors": len(spans), "buffer_len": r.Buf.Len()})
	return spans, nil
}

// nextMisspelling moves the cursor to the start of the next misspelled word
// after the cursor, wrapping to the first one.
func (r *Runner) nextMisspelling() {
	spans := r.Spell.Spans
	if !r.Spell.Enabled {
		var err error
		if spans, err = r.misspelled(); err != nil {
			r.Message = fmt.Sprintf("[spell check failed: %v]", err)
			return
		}
	}
	if len(spans) == 0 {
		r.Message = "[no misspellings]"
		return
	}
	next := spans[0]
	for _, sp := range spans {
		if sp.Start > r.Cursor {
			next = sp
			break
		}
	}
	r.Cursor = next.Start
	r.Message = fmt.Sprintf("[%s]", string(r.Buf.Slice(next.Start, next.End+1)))
}

// prefixAtPoint returns the word prefix that ends at the cursor.
func (r *Runner) prefixAtPoint() string {
	prefix, _ := lexicon.PrefixBefore(r.Buf.Slice(0, r.Cursor), r.Cursor)
	return prefix
}

// suggestAtPoint shows completions of the prefix before the cursor.
func (r *Runner) suggestAtPoint() {
	prefix := r.prefixAtPoint()
	var words []string
	if prefix != "" {
		words = r.Lex.Suggestions(prefix, r.Limit)
	}
	r.Logger.Event("suggest", map[string]any{"prefix": prefix, "count": len(words)})
	if len(words) == 0 {
		r.Message = "[no suggestions]"
		return
	}
	r.Message = strings.Join(words, " ")
}

// completeAtPoint inserts the rest of the first suggestion that extends
// the prefix before the cursor.
func (r *Runner) completeAtPoint() {
	prefix := r.prefixAtPoint()
	if prefix == "" {
		r.Message = "[no suggestions]"
		return
	}
	n := utf8.RuneCountInString(prefix)
	// suggestions from a case folded lexicon differ from prefix in case only
	for _, w := range r.Lex.Suggestions(prefix, max(r.Limit, 2)) {
		rest := []rune(w)[min(n, utf8.RuneCountInString(w)):]
		if len(rest) == 0 {
			continue
		}
		r.History.Seal()
		r.insertText(string(rest))
		r.History.Seal()
		r.Logger.Event("action", map[string]any{"name": "complete", "prefix": prefix, "word": w, "cursor": r.Cursor})
		return
	}
	r.Message = "[no suggestions]"
}

// addWordAtPoint adds the word under the cursor to the lexicon and the
// personal dictionary.
func (r *Runner) addWordAtPoint() {
	start, end, ok := buffer.WordAt(r.Buf, r.Cursor, isWordRune)
	if !ok {
		r.Message = "[no word at cursor]"
		return
	}
	word := string(r.Buf.Slice(start, end))
	r.Lex.Add(word)
	if r.Dict != nil {
		if err := r.Dict.Add(word); err != nil {
			r.Message = fmt.Sprintf("[%s added for this session only: %v]", word, err)
			r.Logger.Event("dict.error", map[string]any{"word": word, "error": err.Error()})
			r.recheck()
			return
		}
	}
	r.Logger.Event("dict.add", map[string]any{"word": word, "runes": utf8.RuneCountInString(word)})
	r.recheck()
	r.Message = fmt.Sprintf("[added %s]", word)
}
