// Package auth implements account creation and login against the local
// account store, and owns the process session.
package auth

import (
	"errors"
	"time"

	"github.com/tail1887/offline-diary/internal/crypto"
	"github.com/tail1887/offline-diary/internal/session"
	"github.com/tail1887/offline-diary/internal/store"
	"github.com/tail1887/offline-diary/internal/validation"
)

// ErrInvalidCredential is returned by Login when the password does not match
// the stored hash. The session is left untouched.
var ErrInvalidCredential = errors.New("incorrect password")

// Service orchestrates the account store and the session. Only Service may
// mutate the session.
type Service struct {
	store   store.Store
	session *session.Session
}

// NewService creates an auth service over the given store and session.
func NewService(s store.Store, sess *session.Session) *Service {
	return &Service{store: s, session: sess}
}

// CreateAccount registers a new account. The password is hashed before any
// store interaction; the store's transaction guarantees at most one account
// per username even under concurrent creates.
func (s *Service) CreateAccount(username, password string) (*store.Account, error) {
	if err := validation.Username(username); err != nil {
		return nil, err
	}
	if err := validation.Password(password); err != nil {
		return nil, err
	}

	account := &store.Account{
		Username:     username,
		PasswordHash: crypto.HashPassword(password),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.CreateAccount(account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login verifies the password against the stored account and, on success,
// sets the session to the username. Failures surface as
// store.ErrAccountNotFound or ErrInvalidCredential and never change the
// session.
func (s *Service) Login(username, password string) (*store.Account, error) {
	account, err := s.store.GetAccount(username)
	if err != nil {
		return nil, err
	}

	if !crypto.VerifyPassword(password, account.PasswordHash) {
		return nil, ErrInvalidCredential
	}

	s.session.Set(account.Username)
	return account, nil
}

// Logout clears the session. Calling it with no active session is not an
// error.
func (s *Service) Logout() {
	s.session.Clear()
}

// CurrentUser returns the username held by the session, if any.
func (s *Service) CurrentUser() (string, bool) {
	return s.session.Current()
}
