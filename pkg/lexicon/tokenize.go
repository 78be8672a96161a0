package lexicon

import (
	"io"
	"strings"
)

// Span is a pair of inclusive, zero-based rune offsets identifying a token.
type Span struct {
	Start int
	End   int
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int { return s.End - s.Start + 1 }

// Token is a span together with the runes it covers.
type Token struct {
	Span
	Text string
}

// delimiters never belong to a word and always end a token.
const delimiters = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~” \n\t\r\v\f\x00"

var delimiterSet = func() map[rune]struct{} {
	m := make(map[rune]struct{}, len(delimiters))
	for _, r := range delimiters {
		m[r] = struct{}{}
	}
	return m
}()

// IsDelimiter reports whether r separates words.
func IsDelimiter(r rune) bool {
	_, ok := delimiterSet[r]
	return ok
}

// Tokenizer splits a rune stream into maximal runs of non-delimiter runes.
type Tokenizer struct {
	r   io.RuneReader
	off int
	err error
	buf []rune
}

// NewTokenizer returns a Tokenizer reading from r.
func NewTokenizer(r io.RuneReader) *Tokenizer {
	return &Tokenizer{r: r}
}

// Next returns the next token. It returns false once the input is exhausted
// or a read error occurred; see Err.
func (t *Tokenizer) Next() (Token, bool) {
	if t.err != nil {
		return Token{}, false
	}
	t.buf = t.buf[:0]
	start := -1
	for {
		c, _, err := t.r.ReadRune()
		if err != nil {
			t.err = err
			// a word running into end of input is still a word
			if err == io.EOF && start >= 0 {
				return t.token(start), true
			}
			return Token{}, false
		}
		pos := t.off
		t.off++
		if IsDelimiter(c) {
			if start >= 0 {
				return t.token(start), true
			}
			continue
		}
		if start < 0 {
			start = pos
		}
		t.buf = append(t.buf, c)
	}
}

func (t *Tokenizer) token(start int) Token {
	return Token{
		Span: Span{Start: start, End: start + len(t.buf) - 1},
		Text: string(t.buf),
	}
}

// Err returns the first non-EOF error encountered while reading.
func (t *Tokenizer) Err() error {
	if t.err == io.EOF {
		return nil
	}
	return t.err
}

// Tokenize returns the spans of every word in text, in order.
func Tokenize(text string) []Span {
	var spans []Span
	tz := NewTokenizer(strings.NewReader(text))
	for {
		tok, ok := tz.Next()
		if !ok {
			return spans
		}
		spans = append(spans, tok.Span)
	}
}

// PrefixBefore returns the run of word runes that ends just before pos in
// text, together with the offset at which it starts.
func PrefixBefore(text []rune, pos int) (string, int) {
	if pos > len(text) {
		pos = len(text)
	}
	start := pos
	for start > 0 && !IsDelimiter(text[start-1]) {
		start--
	}
	return string(text[start:pos]), start
}
