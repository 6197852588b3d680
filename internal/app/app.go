// Package app wires the store, session, and services together with a
// defined lifecycle: open on start, close on exit.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tail1887/offline-diary/internal/auth"
	"github.com/tail1887/offline-diary/internal/config"
	"github.com/tail1887/offline-diary/internal/diary"
	"github.com/tail1887/offline-diary/internal/session"
	"github.com/tail1887/offline-diary/internal/store"
)

// App holds the open store and the services built on it. The session starts
// empty on every Open; there is no cross-process login state in the core.
type App struct {
	Store   store.Store
	Session *session.Session
	Auth    *auth.Service
	Diary   *diary.Service
}

// Open creates the data directory if needed, opens the diary database, and
// builds the services. The directory is created with 0700 permissions.
func Open(cfg *config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	s, err := store.NewBoltStore(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	slog.Debug("store opened", "path", cfg.DBPath())

	sess := session.New()
	return &App{
		Store:   s,
		Session: sess,
		Auth:    auth.NewService(s, sess),
		Diary:   diary.NewService(s),
	}, nil
}

// Close clears the session and closes the store.
func (a *App) Close() error {
	a.Session.Clear()
	return a.Store.Close()
}
