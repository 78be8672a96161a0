// Package store persists the words a user adds to the lexicon while
// editing, so they are known again in the next session.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

var (
	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown dictionary backend")
	// ErrClosed is returned when a closed store is used.
	ErrClosed = errors.New("dictionary store is closed")
)

// WordStore is a persistent set of words.
type WordStore interface {
	// Add records word. Adding a word twice is not an error.
	Add(word string) error
	// Words returns every stored word in ascending order.
	Words() ([]string, error)
	Close() error
}

// Backend names accepted by Open.
const (
	BackendBolt   = "bolt"
	BackendBadger = "badger"
	BackendNone   = "none"
)

// Open opens the store for backend at path, creating parent directories as
// needed. BackendNone (or an empty name) returns an in-memory store.
func Open(backend, path string) (WordStore, error) {
	switch backend {
	case BackendNone, "":
		return NewMemory(), nil
	case BackendBolt, BackendBadger:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	if path == "" {
		return nil, fmt.Errorf("dictionary path is empty for backend %q", backend)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create dictionary directory: %w", err)
	}
	if backend == BackendBolt {
		return OpenBolt(path)
	}
	return OpenBadger(path)
}

// Memory is a WordStore that forgets everything on exit.
type Memory struct {
	mu     sync.Mutex
	words  map[string]struct{}
	closed bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{words: make(map[string]struct{})}
}

func (m *Memory) Add(word string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.words[word] = struct{}{}
	return nil
}

func (m *Memory) Words() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrClosed
	}
	out := make([]string, 0, len(m.words))
	for w := range m.words {
		out = append(out, w)
	}
	slices.Sort(out)
	return out, nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
