// Package validation provides input validation functions.
package validation

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	// ErrUsernameEmpty is returned when username is empty.
	ErrUsernameEmpty = errors.New("username is required")
	// ErrUsernameTooLong is returned when username exceeds 50 characters.
	ErrUsernameTooLong = errors.New("username must be at most 50 characters")
	// ErrUsernameInvalidChars is returned when username contains invalid characters.
	ErrUsernameInvalidChars = errors.New("username can only contain letters, numbers, and underscores")

	// ErrPasswordEmpty is returned when password is empty.
	ErrPasswordEmpty = errors.New("password is required")

	// ErrTitleTooLong is returned when an entry title exceeds 200 characters.
	ErrTitleTooLong = errors.New("title must be at most 200 characters")

	// ErrInvalidDate is returned when an entry date is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Username validates a username.
// Rules: 1-50 characters, alphanumeric and underscores only.
func Username(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameEmpty
	}
	if len(username) > 50 {
		return ErrUsernameTooLong
	}
	if !usernameRegex.MatchString(username) {
		return ErrUsernameInvalidChars
	}
	return nil
}

// Password validates a password. Anything non-empty is accepted.
func Password(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}
	return nil
}

// EntryTitle validates a diary entry title.
// Rules: 0-200 characters.
func EntryTitle(title string) error {
	if len(title) > 200 {
		return ErrTitleTooLong
	}
	return nil
}

// EntryDate validates a diary subject date. Empty is allowed; otherwise it
// must parse as a calendar date in YYYY-MM-DD form.
func EntryDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
