package store

// Store defines the interface for diary storage operations. Each method is
// one transaction: the whole write commits or none of it is visible.
type Store interface {
	// Accounts
	CreateAccount(account *Account) error
	GetAccount(username string) (*Account, error)

	// Diary entries
	PutEntry(entry *Entry) error
	GetEntry(id string) (*Entry, error)
	UpdateEntry(id string, patch *EntryPatch) (*Entry, error)
	DeleteEntry(id string) (bool, error)
	ListEntries() ([]*Entry, error)

	// App-level key/value state
	GetConfig(key string) (string, error)
	SetConfig(key, value string) error
	DeleteConfig(key string) error

	// Lifecycle
	Close() error
}
