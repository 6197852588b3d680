package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{
			name:     "valid username",
			username: "john_doe",
			wantErr:  nil,
		},
		{
			name:     "valid username with numbers",
			username: "user123",
			wantErr:  nil,
		},
		{
			name:     "single character",
			username: "a",
			wantErr:  nil,
		},
		{
			name:     "empty",
			username: "",
			wantErr:  ErrUsernameEmpty,
		},
		{
			name:     "whitespace only",
			username: "   ",
			wantErr:  ErrUsernameEmpty,
		},
		{
			name:     "too long",
			username: strings.Repeat("a", 51),
			wantErr:  ErrUsernameTooLong,
		},
		{
			name:     "max length valid",
			username: strings.Repeat("a", 50),
			wantErr:  nil,
		},
		{
			name:     "invalid characters - hyphen",
			username: "john-doe",
			wantErr:  ErrUsernameInvalidChars,
		},
		{
			name:     "invalid characters - space",
			username: "john doe",
			wantErr:  ErrUsernameInvalidChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Username(tt.username); !errors.Is(err, tt.wantErr) {
				t.Errorf("Username(%q) = %v, want %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	if err := Password(""); !errors.Is(err, ErrPasswordEmpty) {
		t.Errorf("Password(\"\") = %v, want ErrPasswordEmpty", err)
	}
	if err := Password("pw"); err != nil {
		t.Errorf("Password(\"pw\") = %v, want nil", err)
	}
}

func TestEntryTitle(t *testing.T) {
	if err := EntryTitle(strings.Repeat("a", 201)); !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("EntryTitle(long) = %v, want ErrTitleTooLong", err)
	}
	if err := EntryTitle(""); err != nil {
		t.Errorf("EntryTitle(\"\") = %v, want nil", err)
	}
	if err := EntryTitle(strings.Repeat("a", 200)); err != nil {
		t.Errorf("EntryTitle(max) = %v, want nil", err)
	}
}

func TestEntryDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr error
	}{
		{"empty allowed", "", nil},
		{"valid", "2025-09-05", nil},
		{"wrong order", "05-09-2025", ErrInvalidDate},
		{"not a date", "yesterday", ErrInvalidDate},
		{"impossible day", "2025-02-30", ErrInvalidDate},
		{"missing day", "2025-09", ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := EntryDate(tt.date); !errors.Is(err, tt.wantErr) {
				t.Errorf("EntryDate(%q) = %v, want %v", tt.date, err, tt.wantErr)
			}
		})
	}
}
