// Package diary implements CRUD over diary entries plus the optional
// caller-side encryption of an entry's content before it is handed to the
// store.
package diary

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tail1887/offline-diary/internal/crypto"
	"github.com/tail1887/offline-diary/internal/store"
	"github.com/tail1887/offline-diary/internal/validation"
)

// Service provides diary entry operations over a store.
type Service struct {
	store store.Store
}

// NewService creates a diary service over the given store.
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Create persists a new entry and returns it. A missing ID is generated,
// and zero CreatedAt/UpdatedAt timestamps are stamped with the current
// time, so a freshly created entry has CreatedAt == UpdatedAt.
func (s *Service) Create(entry *store.Entry) (*store.Entry, error) {
	if err := validation.EntryTitle(entry.Title); err != nil {
		return nil, err
	}
	if err := validation.EntryDate(entry.Date); err != nil {
		return nil, err
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = entry.CreatedAt
	}

	if err := s.store.PutEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Read returns the entry with the given ID, or nil when no such entry
// exists. Absence is not an error.
func (s *Service) Read(id string) (*store.Entry, error) {
	entry, err := s.store.GetEntry(id)
	if errors.Is(err, store.ErrEntryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Update merges the patch over the stored entry and returns the result.
// Unlike Read, a missing ID is a failure: store.ErrEntryNotFound.
func (s *Service) Update(id string, patch *store.EntryPatch) (*store.Entry, error) {
	if patch.Title != nil {
		if err := validation.EntryTitle(*patch.Title); err != nil {
			return nil, err
		}
	}
	if patch.Date != nil {
		if err := validation.EntryDate(*patch.Date); err != nil {
			return nil, err
		}
	}
	return s.store.UpdateEntry(id, patch)
}

// Delete removes the entry and reports whether one was removed. Deleting a
// missing ID is not an error.
func (s *Service) Delete(id string) (bool, error) {
	return s.store.DeleteEntry(id)
}

// List returns all stored entries in store order.
func (s *Service) List() ([]*store.Entry, error) {
	return s.store.ListEntries()
}

// SealContent encrypts plaintext under the password and returns the
// serialized envelope, ready to be stored in an entry's Content field with
// IsEncrypted set.
func SealContent(plaintext, password string) (string, error) {
	env, err := crypto.Encrypt(plaintext, password)
	if err != nil {
		return "", err
	}
	return env.Encode()
}

// OpenContent reverses SealContent. It surfaces crypto.ErrInvalidEnvelope
// for content that is not an envelope and crypto.ErrDecryptionFailed for a
// wrong password or tampered data.
func OpenContent(content, password string) (string, error) {
	env, err := crypto.ParseEnvelope(content)
	if err != nil {
		return "", err
	}
	return crypto.Decrypt(env, password)
}
