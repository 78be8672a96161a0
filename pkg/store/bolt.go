package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketWords = "words"

// Bolt keeps words as keys of a single bucket in a bbolt file. Keys are
// iterated in byte order, which for UTF-8 is code point order.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (creating if needed) the bbolt file at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt dictionary %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketWords))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize words bucket: %w", err)
	}
	return &Bolt{db: db}, nil
}

// Add stores word with the time it was added.
func (s *Bolt) Add(word string) error {
	if s.db == nil {
		return ErrClosed
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketWords))
		if b.Get([]byte(word)) != nil {
			return nil
		}
		return b.Put([]byte(word), []byte(time.Now().UTC().Format(time.RFC3339)))
	})
}

// Words lists the stored words in ascending order.
func (s *Bolt) Words() ([]string, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	var words []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketWords)).ForEach(func(k, _ []byte) error {
			words = append(words, string(k))
			return nil
		})
	})
	return words, err
}

// Close releases the file lock.
func (s *Bolt) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
