package diary

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/tail1887/offline-diary/internal/crypto"
	"github.com/tail1887/offline-diary/internal/store"
	"github.com/tail1887/offline-diary/internal/validation"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.NewBoltStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewBoltStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(s)
}

func TestCreate_FillsGeneratedFields(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.Create(&store.Entry{
		Title:   "T",
		Content: "C",
		Date:    "2025-01-01",
		Tags:    []string{"x"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if entry.ID == "" {
		t.Error("ID not generated")
	}
	if entry.CreatedAt.IsZero() || entry.UpdatedAt.IsZero() {
		t.Error("timestamps not stamped")
	}
	if !entry.CreatedAt.Equal(entry.UpdatedAt) {
		t.Errorf("fresh entry has CreatedAt %v != UpdatedAt %v", entry.CreatedAt, entry.UpdatedAt)
	}

	got, err := svc.Read(entry.ID)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got == nil {
		t.Fatal("Read returned nil for a created entry")
	}
	if got.Title != "T" || got.Content != "C" {
		t.Errorf("Read = {%q %q}, want {T C}", got.Title, got.Content)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "x" {
		t.Errorf("Tags = %v, want [x]", got.Tags)
	}
}

func TestCreate_KeepsCallerFields(t *testing.T) {
	svc := newTestService(t)

	stamp := time.Date(2025, 9, 5, 12, 0, 0, 0, time.UTC)
	entry, err := svc.Create(&store.Entry{
		ID:        "caller-id",
		Title:     "T",
		CreatedAt: stamp,
		UpdatedAt: stamp,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if entry.ID != "caller-id" {
		t.Errorf("ID = %q, want caller-id", entry.ID)
	}
	if !entry.CreatedAt.Equal(stamp) {
		t.Errorf("CreatedAt = %v, want %v", entry.CreatedAt, stamp)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(&store.Entry{Title: "T", Date: "not-a-date"})
	if !errors.Is(err, validation.ErrInvalidDate) {
		t.Errorf("Create with bad date error = %v, want ErrInvalidDate", err)
	}
}

func TestRead_AbsentIsNotAnError(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Read("missing")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != nil {
		t.Errorf("Read of missing ID = %+v, want nil", got)
	}
}

func TestUpdate_Monotonic(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.Create(&store.Entry{Title: "CRUD Test", Content: "Diary Content"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	title := "Updated Title"
	updated, err := svc.Update(entry.ID, &store.EntryPatch{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Title != "Updated Title" {
		t.Errorf("Title = %q", updated.Title)
	}
	if updated.ID != entry.ID {
		t.Errorf("ID changed: %q", updated.ID)
	}
	if !updated.CreatedAt.Equal(entry.CreatedAt) {
		t.Errorf("CreatedAt changed: %v", updated.CreatedAt)
	}
	if !updated.UpdatedAt.After(entry.UpdatedAt) {
		t.Errorf("UpdatedAt not bumped: %v <= %v", updated.UpdatedAt, entry.UpdatedAt)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(t)

	title := "x"
	_, err := svc.Update("missing", &store.EntryPatch{Title: &title})
	if !errors.Is(err, store.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestDelete_ThenRead(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.Create(&store.Entry{Title: "bye"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	removed, err := svc.Delete(entry.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Error("Delete reported nothing removed")
	}

	got, err := svc.Read(entry.ID)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != nil {
		t.Errorf("Read after delete = %+v, want nil", got)
	}

	removed, err = svc.Delete(entry.ID)
	if err != nil {
		t.Fatalf("Delete second call: %v", err)
	}
	if removed {
		t.Error("Delete of a missing ID reported a removal")
	}
}

func TestList(t *testing.T) {
	svc := newTestService(t)

	for _, title := range []string{"one", "two", "three"} {
		if _, err := svc.Create(&store.Entry{Title: title}); err != nil {
			t.Fatalf("Create(%s): %v", title, err)
		}
	}

	entries, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("List returned %d entries, want 3", len(entries))
	}
}

func TestSealedContent_RoundTripThroughStore(t *testing.T) {
	svc := newTestService(t)

	sealed, err := SealContent("hello", "pw")
	if err != nil {
		t.Fatalf("SealContent: %v", err)
	}
	if sealed == "hello" {
		t.Fatal("SealContent left the plaintext visible")
	}

	entry, err := svc.Create(&store.Entry{
		Title:       "secret day",
		Content:     sealed,
		IsEncrypted: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	reloaded, err := svc.Read(entry.ID)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if reloaded == nil {
		t.Fatal("entry missing after create")
	}
	if !reloaded.IsEncrypted {
		t.Error("IsEncrypted not persisted")
	}

	plaintext, err := OpenContent(reloaded.Content, "pw")
	if err != nil {
		t.Fatalf("OpenContent: %v", err)
	}
	if plaintext != "hello" {
		t.Errorf("OpenContent = %q, want %q", plaintext, "hello")
	}

	if _, err := OpenContent(reloaded.Content, "wrong"); !errors.Is(err, crypto.ErrDecryptionFailed) {
		t.Errorf("OpenContent with wrong password error = %v, want ErrDecryptionFailed", err)
	}
}

func TestOpenContent_NotAnEnvelope(t *testing.T) {
	if _, err := OpenContent("plain diary text", "pw"); !errors.Is(err, crypto.ErrInvalidEnvelope) {
		t.Errorf("OpenContent of plaintext error = %v, want ErrInvalidEnvelope", err)
	}
}
