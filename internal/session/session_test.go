package session

import (
	"sync"
	"testing"
)

func TestSession_StartsEmpty(t *testing.T) {
	s := New()
	if user, ok := s.Current(); ok || user != "" {
		t.Errorf("fresh session Current() = (%q, %v), want empty", user, ok)
	}
}

func TestSession_SetAndClear(t *testing.T) {
	s := New()

	s.Set("alice")
	user, ok := s.Current()
	if !ok || user != "alice" {
		t.Errorf("Current() = (%q, %v), want (alice, true)", user, ok)
	}

	s.Clear()
	if user, ok := s.Current(); ok || user != "" {
		t.Errorf("after Clear, Current() = (%q, %v), want empty", user, ok)
	}
}

func TestSession_ClearIsIdempotent(t *testing.T) {
	s := New()
	s.Set("bob")

	s.Clear()
	s.Clear()

	if _, ok := s.Current(); ok {
		t.Error("session still set after double Clear")
	}
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Set("alice")
			s.Clear()
		}()
		go func() {
			defer wg.Done()
			s.Current()
		}()
	}
	wg.Wait()

	// Whatever interleaving happened, the slot ends up consistent.
	if user, ok := s.Current(); ok && user != "alice" {
		t.Errorf("unexpected final state: (%q, %v)", user, ok)
	}
}
