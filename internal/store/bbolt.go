// Package store persists accounts and diary entries in a local bbolt
// database. Accounts are keyed by username, entries by their generated ID,
// and every mutating operation runs inside a single bbolt transaction.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket names used in the bbolt database.
var (
	bucketAccounts = []byte("accounts")
	bucketDiaries  = []byte("diaries")
	bucketConfig   = []byte("_config")
)

// Sentinel errors returned by store operations.
var (
	ErrNotFound         = errors.New("not found")
	ErrAccountNotFound  = fmt.Errorf("account %w", ErrNotFound)
	ErrEntryNotFound    = fmt.Errorf("diary entry %w", ErrNotFound)
	ErrDuplicateAccount = errors.New("username already exists")
)

// BoltStore implements Store using bbolt.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) a bbolt database at the given path and
// ensures all required buckets exist. The file is created with 0600
// permissions.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	if err = db.Update(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{bucketAccounts, bucketDiaries, bucketConfig} {
			if _, bErr := tx.CreateBucketIfNotExists(b); bErr != nil {
				return fmt.Errorf("create bucket %s: %w", b, bErr)
			}
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// ---------------------------------------------------------------------------
// Accounts
// ---------------------------------------------------------------------------

// CreateAccount stores a new account. The existence check and the insert run
// in the same write transaction, so two concurrent creates for one username
// cannot both succeed. Returns ErrDuplicateAccount when the username is
// already taken; the table is left unchanged in that case.
func (s *BoltStore) CreateAccount(account *Account) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketAccounts)
		key := []byte(account.Username)

		if existing := bucket.Get(key); existing != nil {
			return ErrDuplicateAccount
		}

		data, err := json.Marshal(account)
		if err != nil {
			return fmt.Errorf("marshal account: %w", err)
		}
		return bucket.Put(key, data)
	})
}

// GetAccount retrieves an account by username.
func (s *BoltStore) GetAccount(username string) (*Account, error) {
	var account Account
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketAccounts).Get([]byte(username))
		if v == nil {
			return ErrAccountNotFound
		}
		return json.Unmarshal(v, &account)
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// ---------------------------------------------------------------------------
// Diary entries
// ---------------------------------------------------------------------------

// PutEntry stores a diary entry under its ID. The caller is responsible for
// assigning the ID and timestamps; PutEntry writes exactly what it is given.
func (s *BoltStore) PutEntry(entry *Entry) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("marshal entry: %w", err)
		}
		return tx.Bucket(bucketDiaries).Put([]byte(entry.ID), data)
	})
}

// GetEntry retrieves a diary entry by ID, or ErrEntryNotFound.
func (s *BoltStore) GetEntry(id string) (*Entry, error) {
	var entry Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketDiaries).Get([]byte(id))
		if v == nil {
			return ErrEntryNotFound
		}
		return json.Unmarshal(v, &entry)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry merges the patch over the stored entry and bumps UpdatedAt,
// all within one write transaction. ID and CreatedAt are never modified.
// Returns the merged entry, or ErrEntryNotFound if no entry with that ID
// exists; nothing is written in that case.
func (s *BoltStore) UpdateEntry(id string, patch *EntryPatch) (*Entry, error) {
	var merged Entry
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketDiaries)
		key := []byte(id)

		existing := bucket.Get(key)
		if existing == nil {
			return ErrEntryNotFound
		}
		if err := json.Unmarshal(existing, &merged); err != nil {
			return fmt.Errorf("unmarshal entry: %w", err)
		}

		merged.apply(patch)
		merged.UpdatedAt = time.Now().UTC()

		data, err := json.Marshal(&merged)
		if err != nil {
			return fmt.Errorf("marshal entry: %w", err)
		}
		return bucket.Put(key, data)
	})
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

// DeleteEntry removes a diary entry. It reports whether an entry was
// actually removed; deleting a missing ID is not an error.
func (s *BoltStore) DeleteEntry(id string) (bool, error) {
	var removed bool
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketDiaries)
		key := []byte(id)

		if bucket.Get(key) == nil {
			return nil
		}
		removed = true
		return bucket.Delete(key)
	})
	return removed, err
}

// ListEntries returns every stored diary entry. Order is store-defined
// (byte order of the IDs); callers apply their own sorting.
func (s *BoltStore) ListEntries() ([]*Entry, error) {
	var entries []*Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDiaries).ForEach(func(_, v []byte) error {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return err
			}
			entries = append(entries, &e)
			return nil
		})
	})
	return entries, err
}

// ---------------------------------------------------------------------------
// Config
// ---------------------------------------------------------------------------

// GetConfig returns the config value for the given key, or ErrNotFound.
func (s *BoltStore) GetConfig(key string) (string, error) {
	var val string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketConfig).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		val = string(v)
		return nil
	})
	return val, err
}

// SetConfig stores a config key-value pair.
func (s *BoltStore) SetConfig(key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketConfig).Put([]byte(key), []byte(value))
	})
}

// DeleteConfig removes a config key. Missing keys are ignored.
func (s *BoltStore) DeleteConfig(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketConfig).Delete([]byte(key))
	})
}
