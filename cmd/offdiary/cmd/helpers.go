package cmd

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tail1887/offline-diary/internal/app"
	"github.com/tail1887/offline-diary/internal/config"
	"github.com/tail1887/offline-diary/internal/store"
)

// currentUserKey is the store config key remembering the last verified
// login. It is a CLI convenience: each command runs in a fresh process, so
// the in-memory session alone cannot carry a login between invocations.
const currentUserKey = "current_user"

// openApp loads configuration and opens the diary application.
// Priority for the data directory: --data-dir flag > OFFDIARY_DATA_DIR env
// > config file > ~/.offdiary.
func openApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return app.Open(cfg)
}

// rememberLogin records the username as the CLI's current user.
func rememberLogin(a *app.App, username string) error {
	return a.Store.SetConfig(currentUserKey, username)
}

// forgetLogin clears the CLI's current user. Missing state is not an error.
func forgetLogin(a *app.App) error {
	return a.Store.DeleteConfig(currentUserKey)
}

// requireUser returns the remembered username or an error telling the user
// to log in first.
func requireUser(a *app.App) (string, error) {
	username, err := a.Store.GetConfig(currentUserKey)
	if errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("not logged in, run 'offdiary login <username>' first")
	}
	if err != nil {
		return "", err
	}
	return username, nil
}

// promptPassword reads a password from the terminal with echo disabled.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// promptPasswordConfirm prompts for a password twice and ensures they match.
func promptPasswordConfirm() (string, error) {
	pass, err := promptPassword("Enter password: ")
	if err != nil {
		return "", err
	}
	if pass == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return "", err
	}
	if pass != confirm {
		return "", fmt.Errorf("passwords do not match")
	}
	return pass, nil
}
