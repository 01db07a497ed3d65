package service

import "testing"

func TestSessionStore_PutAndGet(t *testing.T) {
	store := NewSessionStore()

	store.Put("s1", "some document text")

	text, found := store.Get("s1")
	if !found {
		t.Fatal("expected session s1 to exist")
	}
	if text != "some document text" {
		t.Fatalf("expected stored text, got %q", text)
	}
}

func TestSessionStore_GetMissingSession(t *testing.T) {
	store := NewSessionStore()

	text, found := store.Get("never-uploaded")
	if found {
		t.Fatal("expected missing session to report not found")
	}
	if text != "" {
		t.Fatalf("expected empty text for missing session, got %q", text)
	}
}

func TestSessionStore_LastWriteWins(t *testing.T) {
	store := NewSessionStore()

	store.Put("s1", "first document")
	store.Put("s1", "second document")

	text, found := store.Get("s1")
	if !found {
		t.Fatal("expected session s1 to exist")
	}
	if text != "second document" {
		t.Fatalf("expected only the second document to survive, got %q", text)
	}
}

func TestSessionStore_Clear(t *testing.T) {
	store := NewSessionStore()

	store.Put("s1", "text")
	store.Clear("s1")

	if _, found := store.Get("s1"); found {
		t.Fatal("expected cleared session to be gone")
	}
}

func TestSessionStore_ClearMissingSessionIsNoop(t *testing.T) {
	store := NewSessionStore()

	// Must not panic or create an entry.
	store.Clear("never-uploaded")

	if _, found := store.Get("never-uploaded"); found {
		t.Fatal("clear must not create an entry")
	}
}

func TestSessionStore_EmptyTextIsStoredButDistinctFromAbsent(t *testing.T) {
	store := NewSessionStore()

	store.Put("s1", "")

	text, found := store.Get("s1")
	if !found {
		t.Fatal("expected entry for empty upload to exist")
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}
