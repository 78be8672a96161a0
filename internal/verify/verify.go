// Package verify runs a lexicon against lines of input and reports what
// it finds, one result line per query, so a word list can be checked from
// a shell or a script.
package verify

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"example.com/lexedit/pkg/lexicon"
)

// Mode selects the query each input line is.
type Mode string

const (
	ModeLookup  Mode = "lookup"
	ModeSpell   Mode = "spell"
	ModeSuggest Mode = "suggest"
)

// ErrUnknownMode is returned by ParseMode for an unsupported mode name.
var ErrUnknownMode = errors.New("unknown mode")

// ParseMode accepts lookup, spell (or "spell check") and suggest.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lookup":
		return ModeLookup, nil
	case "spell", "spell check", "spellcheck":
		return ModeSpell, nil
	case "suggest":
		return ModeSuggest, nil
	}
	return "", fmt.Errorf("%w: %q (want lookup, spell or suggest)", ErrUnknownMode, s)
}

func (m Mode) prompt() string {
	switch m {
	case ModeLookup:
		return "word> "
	case ModeSpell:
		return "sentence> "
	}
	return "prefix> "
}

// Verifier answers one query per input line.
type Verifier struct {
	Lex  lexicon.Lexicon
	Mode Mode
	// Limit is used for suggest lines that do not carry their own limit.
	Limit int
	// Prompt writes a prompt before each line is read.
	Prompt bool
}

// Run reads queries from in until EOF and writes results to out.
func (v *Verifier) Run(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	w := bufio.NewWriter(out)
	defer w.Flush()
	for {
		if v.Prompt {
			fmt.Fprint(w, v.Mode.prompt())
			if err := w.Flush(); err != nil {
				return err
			}
		}
		if !sc.Scan() {
			break
		}
		if err := v.answer(w, sc.Text()); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	if v.Prompt {
		fmt.Fprintln(w)
	}
	return sc.Err()
}

func (v *Verifier) answer(w io.Writer, line string) error {
	var err error
	switch v.Mode {
	case ModeLookup:
		if v.Lex.Contains(line) {
			_, err = fmt.Fprintf(w, "%s is a lexicon word.\n", line)
		} else {
			_, err = fmt.Fprintf(w, "%s is NOT a lexicon word.\n", line)
		}
	case ModeSpell:
		spans, rerr := v.Lex.SpellCheckReader(strings.NewReader(line))
		if rerr != nil {
			return rerr
		}
		text := []rune(line)
		for _, sp := range spans {
			if _, err = fmt.Fprintf(w, "spelling error: %s at (%d, %d)\n", string(text[sp.Start:sp.End+1]), sp.Start, sp.End); err != nil {
				return err
			}
		}
	case ModeSuggest:
		prefix, limit, perr := v.parseSuggest(line)
		if perr != nil {
			_, err = fmt.Fprintf(w, "error: %v\n", perr)
			break
		}
		_, err = fmt.Fprintf(w, "suggestions: %s\n", strings.Join(v.Lex.Suggestions(prefix, limit), ", "))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, v.Mode)
	}
	return err
}

// parseSuggest splits "<prefix> [limit]".
func (v *Verifier) parseSuggest(line string) (string, int, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return "", v.Limit, nil
	case 1:
		return fields[0], v.Limit, nil
	case 2:
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return "", 0, fmt.Errorf("invalid limit %q", fields[1])
		}
		return fields[0], n, nil
	}
	return "", 0, fmt.Errorf("want \"<prefix> [limit]\", got %q", line)
}
