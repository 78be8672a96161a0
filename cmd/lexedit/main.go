package main

import (
	"flag"
	"fmt"
	"os"

	"example.com/lexedit/internal/app"
	"example.com/lexedit/pkg/config"
	"example.com/lexedit/pkg/keys"
	"example.com/lexedit/pkg/lexicon"
	"example.com/lexedit/pkg/logs"
	"example.com/lexedit/pkg/store"
	"github.com/mattn/go-isatty"
)

func main() {
	cfgPath := flag.String("config", "", "config file (default ~/.lexedit/config.yaml)")
	words := flag.String("words", "", "word list, overrides lexicon.words")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*cfgPath, *words, flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "lexedit:", err)
		os.Exit(1)
	}
}

func run(cfgPath, words, file string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if words != "" {
		cfg.Lexicon.Words = words
	}

	logger := logs.NewFromEnv()
	defer logger.Close()

	var lex lexicon.Lexicon = lexicon.New()
	if cfg.Lexicon.FoldCase {
		lex = lexicon.NewFolded()
	}
	n, err := lexicon.LoadFile(lex, cfg.Lexicon.Words)
	if err != nil {
		return err
	}
	st := lex.Stats()
	logger.Event("lexicon.load", map[string]any{"file": cfg.Lexicon.Words, "lines": n, "words": st.Words, "nodes": st.Nodes, "max_depth": st.MaxDepth})

	dict, err := store.Open(cfg.Dictionary.Backend, cfg.Dictionary.Path)
	if err != nil {
		return fmt.Errorf("open personal dictionary: %w", err)
	}
	defer dict.Close()
	personal, err := dict.Words()
	if err != nil {
		return fmt.Errorf("read personal dictionary: %w", err)
	}
	for _, w := range personal {
		lex.Add(w)
	}
	logger.Event("dict.load", map[string]any{"backend": cfg.Dictionary.Backend, "words": len(personal)})

	r := app.New()
	r.Logger = logger
	r.Lex = lex
	r.Dict = dict
	r.Configure(cfg)
	if err := r.LoadFile(file); err != nil {
		return err
	}

	// keys come from the terminal when stdin is one; otherwise stdin is a
	// script of raw key bytes and the screen (if any) is only drawn to
	stdinTTY := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if err := r.InitScreen(); err != nil {
		if stdinTTY {
			return fmt.Errorf("init screen: %w", err)
		}
		logger.Event("screen.unavailable", map[string]any{"error": err.Error()})
	}
	defer r.Fini()
	if stdinTTY {
		r.Keys = keys.ScreenSource{Screen: r.Screen}
	} else {
		r.Keys = keys.NewReaderSource(os.Stdin)
	}
	return r.Run()
}
