package main

import (
	"flag"
	"fmt"
	"os"

	"example.com/lexedit/internal/verify"
	"example.com/lexedit/pkg/lexicon"
	"github.com/mattn/go-isatty"
)

// lexcheck loads a word list and answers lookup, spell or suggest queries
// read one per line from stdin.
func main() {
	words := flag.String("words", "/usr/share/dict/words", "word list, one word per line")
	mode := flag.String("mode", "lookup", "query mode: lookup, spell or suggest")
	limit := flag.Int("limit", 5, "suggestions per prefix when a line gives no limit")
	fold := flag.Bool("fold", false, "ignore case")
	flag.Parse()

	m, err := verify.ParseMode(*mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lexcheck:", err)
		os.Exit(2)
	}
	var lex lexicon.Lexicon = lexicon.New()
	if *fold {
		lex = lexicon.NewFolded()
	}
	if _, err := lexicon.LoadFile(lex, *words); err != nil {
		fmt.Fprintln(os.Stderr, "lexcheck:", err)
		os.Exit(1)
	}
	v := &verify.Verifier{
		Lex:    lex,
		Mode:   m,
		Limit:  *limit,
		Prompt: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}
	if err := v.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "lexcheck:", err)
		os.Exit(1)
	}
}
