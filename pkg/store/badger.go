package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
)

var wordPrefix = []byte("word/")

const defaultGCInterval = 5 * time.Minute

// Badger keeps words under the "word/" key prefix of a badger directory.
// A background goroutine runs value log GC until Close.
type Badger struct {
	db *badger.DB

	gcInterval time.Duration
	done       chan struct{}
	wg         sync.WaitGroup
	closeOnce  sync.Once
	closeErr   error
}

// OpenBadger opens (creating if needed) the badger directory at dir.
func OpenBadger(dir string) (*Badger, error) {
	return openBadger(badger.DefaultOptions(dir).WithLogger(nil), defaultGCInterval)
}

func openBadger(opts badger.Options, gcInterval time.Duration) (*Badger, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger dictionary %s: %w", opts.Dir, err)
	}
	s := &Badger{db: db, gcInterval: gcInterval, done: make(chan struct{})}
	s.wg.Add(1)
	go s.runGC()
	return s, nil
}

// runGC reclaims value log space periodically.
func (s *Badger) runGC() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.gcInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			// ErrNoRewrite just means there was nothing to collect
			for s.db.RunValueLogGC(0.5) == nil {
			}
		case <-s.done:
			return
		}
	}
}

func wordKey(word string) []byte {
	return append(append([]byte{}, wordPrefix...), word...)
}

// Add stores word with the time it was added.
func (s *Badger) Add(word string) error {
	if s.isClosed() {
		return ErrClosed
	}
	return s.db.Update(func(txn *badger.Txn) error {
		key := wordKey(word)
		_, err := txn.Get(key)
		if err == nil {
			return nil
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, []byte(time.Now().UTC().Format(time.RFC3339)))
	})
}

// Words lists the stored words in ascending order.
func (s *Badger) Words() ([]string, error) {
	if s.isClosed() {
		return nil, ErrClosed
	}
	var words []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = wordPrefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().Key()
			words = append(words, string(key[len(wordPrefix):]))
		}
		return nil
	})
	return words, err
}

func (s *Badger) isClosed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Close stops the GC goroutine and closes the database.
func (s *Badger) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		s.wg.Wait()
		s.closeErr = s.db.Close()
	})
	return s.closeErr
}
