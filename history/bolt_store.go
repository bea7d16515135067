package history

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"code.cloudfoundry.org/lager"
	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("history")

type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens, creating if needed, the history file at path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening history file: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) Save(ctx context.Context, logger lager.Logger, entry Entry) error {
	logger = logger.Session("bolt-save")

	bs, err := json.Marshal(entry)
	if err != nil {
		logger.Error("failed", err)
		return err
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		if err := b.Put(itob(seq), bs); err != nil {
			return err
		}

		return trim(b)
	})
	if err != nil {
		logger.Error("failed", err)
		return err
	}

	logger.Debug("done")

	return nil
}

// trim drops the oldest entries beyond MaxEntries. Keys are big-endian
// sequence numbers, so cursor order is insertion order.
func trim(b *bolt.Bucket) error {
	var keys [][]byte

	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		keys = append(keys, append([]byte(nil), k...))
	}

	for len(keys) > MaxEntries {
		if err := b.Delete(keys[0]); err != nil {
			return err
		}
		keys = keys[1:]
	}

	return nil
}

func (s *BoltStore) List(ctx context.Context, logger lager.Logger) ([]Entry, error) {
	logger = logger.Session("bolt-list")

	entries := []Entry{}

	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketName).Cursor()

		for k, v := c.Last(); k != nil && len(entries) < MaxEntries; k, v = c.Prev() {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				logger.Error("malformed-entry", err, lager.Data{
					"key": binary.BigEndian.Uint64(k),
				})
				continue
			}

			entries = append(entries, entry)
		}

		return nil
	})
	if err != nil {
		logger.Error("failed", err)
		return nil, err
	}

	return entries, nil
}

func (s *BoltStore) Clear(ctx context.Context, logger lager.Logger) error {
	logger = logger.Session("bolt-clear")

	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketName); err != nil {
			return err
		}

		_, err := tx.CreateBucket(bucketName)
		return err
	})
	if err != nil {
		logger.Error("failed", err)
		return err
	}

	logger.Info("cleared")

	return nil
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
