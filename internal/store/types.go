package store

import "time"

// Account is a row in the accounts table, keyed by username.
type Account struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Entry is a diary record, keyed by its generated ID. Content may hold
// plaintext or a serialized encryption envelope; the store does not care
// which and IsEncrypted records the caller's choice.
type Entry struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Date         string    `json:"date"`
	Tags         []string  `json:"tags,omitempty"`
	Categories   []string  `json:"categories,omitempty"`
	IsBookmarked bool      `json:"is_bookmarked"`
	IsEncrypted  bool      `json:"is_encrypted"`
	Mood         string    `json:"mood,omitempty"`
	Weather      string    `json:"weather,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EntryPatch describes a partial update. A nil field leaves the stored value
// unchanged; a non-nil field overwrites it. ID and CreatedAt have no patch
// fields because they are immutable.
type EntryPatch struct {
	Title        *string
	Content      *string
	Date         *string
	Tags         *[]string
	Categories   *[]string
	IsBookmarked *bool
	IsEncrypted  *bool
	Mood         *string
	Weather      *string
}

// apply overwrites e's mutable fields with the patch's non-nil values.
func (e *Entry) apply(p *EntryPatch) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Content != nil {
		e.Content = *p.Content
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Tags != nil {
		e.Tags = *p.Tags
	}
	if p.Categories != nil {
		e.Categories = *p.Categories
	}
	if p.IsBookmarked != nil {
		e.IsBookmarked = *p.IsBookmarked
	}
	if p.IsEncrypted != nil {
		e.IsEncrypted = *p.IsEncrypted
	}
	if p.Mood != nil {
		e.Mood = *p.Mood
	}
	if p.Weather != nil {
		e.Weather = *p.Weather
	}
}
