package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/teampulse/admin-console/internal/core/domain"
)

type recordingSink struct {
	successes []string
	errors    []string
}

func (s *recordingSink) Success(msg string) { s.successes = append(s.successes, msg) }
func (s *recordingSink) Error(msg string)   { s.errors = append(s.errors, msg) }

type stubConfirmer struct {
	answer bool
	asked  int
}

func (c *stubConfirmer) Confirm(string) bool {
	c.asked++
	return c.answer
}

func newTestStore(t *testing.T, confirm *stubConfirmer) (*Store, *FileStore, *recordingSink) {
	t.Helper()
	file := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	sink := &recordingSink{}
	store := NewStore(file, nil, sink, confirm, zerolog.Nop())
	store.Initialize()
	return store, file, sink
}

func TestStore_Login_AllMockCredentials(t *testing.T) {
	for _, cred := range domain.MockCredentials {
		store, _, _ := newTestStore(t, &stubConfirmer{})

		p, err := store.Login(cred.Email, cred.Password)
		if err != nil {
			t.Fatalf("login %s: unexpected error: %v", cred.Email, err)
		}
		if p.Role != cred.Role {
			t.Fatalf("login %s: expected role %s, got %s", cred.Email, cred.Role, p.Role)
		}
		if p.ID == "" {
			t.Fatalf("login %s: expected generated id", cred.Email)
		}
		if !store.Authenticated() {
			t.Fatalf("login %s: store not authenticated", cred.Email)
		}
	}
}

func TestStore_Login_WrongPassword(t *testing.T) {
	store, _, _ := newTestStore(t, &stubConfirmer{})

	if _, err := store.Login("admin@test.com", "wrong"); !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if store.Authenticated() {
		t.Fatalf("failed login must not authenticate")
	}
}

func TestStore_Login_EmailNotFound(t *testing.T) {
	store, _, _ := newTestStore(t, &stubConfirmer{})

	if _, err := store.Login("nobody@x.com", "x"); !errors.Is(err, domain.ErrEmailNotFound) {
		t.Fatalf("expected ErrEmailNotFound, got %v", err)
	}
}

func TestStore_Login_MissingCredentials(t *testing.T) {
	store, _, _ := newTestStore(t, &stubConfirmer{})

	if _, err := store.Login("", ""); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestStore_HasPermission(t *testing.T) {
	store, _, _ := newTestStore(t, &stubConfirmer{})

	if store.HasPermission(domain.RoleAdmin) {
		t.Fatalf("unauthenticated store must have no permissions")
	}

	if _, err := store.Login("manager@test.com", "manager123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if store.HasPermission(domain.RoleAdmin) {
		t.Fatalf("manager must not pass an admin-only check")
	}
	if !store.HasPermission(domain.RoleAdmin, domain.RoleManager) {
		t.Fatalf("manager must pass an admin+manager check")
	}
}

func TestStore_Logout_Cancelled(t *testing.T) {
	confirm := &stubConfirmer{answer: false}
	store, file, _ := newTestStore(t, confirm)

	if _, err := store.Login("user@test.com", "user123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if store.Logout() {
		t.Fatalf("cancelled logout must report false")
	}
	if confirm.asked != 1 {
		t.Fatalf("expected exactly one confirmation prompt, got %d", confirm.asked)
	}
	if !store.Authenticated() {
		t.Fatalf("cancelled logout must leave session untouched")
	}
	if p, _ := file.Load(); p == nil {
		t.Fatalf("cancelled logout must leave persisted session untouched")
	}
}

func TestStore_Logout_Confirmed(t *testing.T) {
	store, file, _ := newTestStore(t, &stubConfirmer{answer: true})

	if _, err := store.Login("user@test.com", "user123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if !store.Logout() {
		t.Fatalf("confirmed logout must report true")
	}
	if store.Authenticated() {
		t.Fatalf("logout must clear in-memory principal")
	}
	if p, _ := file.Load(); p != nil {
		t.Fatalf("logout must clear persisted principal")
	}
}

func TestStore_Initialize_RestoresPersistedPrincipal(t *testing.T) {
	dir := t.TempDir()
	file := NewFileStore(filepath.Join(dir, "session.json"))

	first := NewStore(file, nil, &recordingSink{}, &stubConfirmer{}, zerolog.Nop())
	first.Initialize()
	logged, err := first.Login("admin@test.com", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	second := NewStore(file, nil, &recordingSink{}, &stubConfirmer{}, zerolog.Nop())
	if !second.Loading() {
		t.Fatalf("store must report loading before Initialize")
	}
	second.Initialize()
	if second.Loading() {
		t.Fatalf("store must not report loading after Initialize")
	}

	restored := second.Principal()
	if restored == nil {
		t.Fatalf("expected restored principal")
	}
	if *restored != *logged {
		t.Fatalf("restored principal differs: got %+v, want %+v", restored, logged)
	}
}

func TestStore_Initialize_CorruptedRecordMeansNoSession(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write corrupted file: %v", err)
	}

	store := NewStore(NewFileStore(path), nil, &recordingSink{}, &stubConfirmer{}, zerolog.Nop())
	store.Initialize()

	if store.Authenticated() {
		t.Fatalf("corrupted record must yield unauthenticated state")
	}
	if store.Loading() {
		t.Fatalf("Initialize must resolve the loading flag")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("corrupted record should be discarded")
	}
}

func TestStore_Initialize_RunsOnce(t *testing.T) {
	store, file, _ := newTestStore(t, &stubConfirmer{})

	if _, err := store.Login("admin@test.com", "admin123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	_ = file.Clear()

	// A second Initialize must not reload (and so not drop) the session.
	store.Initialize()
	if !store.Authenticated() {
		t.Fatalf("repeated Initialize must be a no-op")
	}
}
