package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load adds every line of r to lex, one word per line. Line terminators are
// trimmed and blank lines skipped. It returns the number of lines added.
func Load(lex Lexicon, r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	line := 0
	for sc.Scan() {
		line++
		w := strings.TrimRight(sc.Text(), "\r\n")
		if w == "" {
			continue
		}
		lex.Add(w)
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("line %d: %w", line+1, err)
	}
	return n, nil
}

// LoadFile adds the words listed in the file at path.
func LoadFile(lex Lexicon, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	n, err := Load(lex, f)
	if err != nil {
		return n, fmt.Errorf("read word list %s: %w", path, err)
	}
	return n, nil
}
