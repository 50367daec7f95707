// Package session owns the client's authenticated principal: who is logged
// in and what they may do. The store is an explicitly constructed object
// injected into the route guard and the API client, not ambient state.
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/teampulse/admin-console/internal/client/notify"
	"github.com/teampulse/admin-console/internal/core/domain"
)

// Confirmer asks the user a blocking yes/no question. Logout requires a
// confirmed answer before the session is touched.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Store is the single source of truth for the logged-in principal. At most
// one principal is held at a time; persisted and in-memory state are kept
// consistent within every mutation.
type Store struct {
	mu        sync.RWMutex
	principal *domain.Principal
	loading   bool

	persist Persistence
	creds   []domain.Credential
	notify  notify.Sink
	confirm Confirmer
	log     zerolog.Logger

	initOnce sync.Once
}

// NewStore builds a session store. A nil creds slice falls back to the
// built-in mock credential table.
func NewStore(persist Persistence, creds []domain.Credential, sink notify.Sink, confirm Confirmer, log zerolog.Logger) *Store {
	if creds == nil {
		creds = domain.MockCredentials
	}
	return &Store{
		persist: persist,
		loading: true,
		creds:   creds,
		notify:  sink,
		confirm: confirm,
		log:     log,
	}
}

// Initialize loads any persisted principal. It runs exactly once per process
// and must complete before the route guard makes its first decision. A
// malformed persisted record is discarded and the store starts unauthenticated.
func (s *Store) Initialize() {
	s.initOnce.Do(func() {
		p, err := s.persist.Load()
		if err != nil {
			s.log.Warn().Err(err).Msg("failed to load persisted session")
			p = nil
		}

		s.mu.Lock()
		s.principal = p
		s.loading = false
		s.mu.Unlock()

		if p != nil {
			s.log.Debug().Str("email", p.Email).Msg("session restored")
		}
	})
}

// Login validates credentials against the static table. Outcomes, in order:
// empty input, matching email+password, matching email with wrong password,
// unknown email. On success the new principal is persisted within the same
// operation that updates in-memory state.
func (s *Store) Login(email, password string) (*domain.Principal, error) {
	if email == "" || password == "" {
		s.notify.Error("Please enter both email and password")
		return nil, domain.ErrMissingCredentials
	}

	var matched *domain.Credential
	emailKnown := false
	for i := range s.creds {
		if s.creds[i].Email != email {
			continue
		}
		emailKnown = true
		if s.creds[i].Password == password {
			matched = &s.creds[i]
		}
		break
	}

	if matched == nil {
		if emailKnown {
			s.notify.Error("Incorrect password. Please try again.")
			return nil, domain.ErrWrongPassword
		}
		s.notify.Error("Email not found. Please check your email address.")
		return nil, domain.ErrEmailNotFound
	}

	p := &domain.Principal{
		ID:    uuid.NewString(),
		Email: matched.Email,
		Name:  matched.Name,
		Role:  matched.Role,
	}

	s.mu.Lock()
	if err := s.persist.Save(p); err != nil {
		s.mu.Unlock()
		s.log.Error().Err(err).Msg("failed to persist session")
		s.notify.Error("Login failed. Please try again.")
		return nil, err
	}
	s.principal = p
	s.mu.Unlock()

	s.notify.Success("Login successful!")
	s.log.Info().Str("email", p.Email).Str("role", string(p.Role)).Msg("logged in")
	return p, nil
}

// Logout asks for confirmation before tearing the session down. A cancelled
// prompt leaves the session untouched. The return value reports whether the
// user actually logged out.
func (s *Store) Logout() bool {
	if !s.confirm.Confirm("Are you sure you want to logout?") {
		s.log.Debug().Msg("logout cancelled")
		return false
	}

	s.Clear()
	s.notify.Success("Logged out successfully")
	return true
}

// Clear drops the principal from memory and from the persisted store. It is
// also the teardown path the API client invokes on a 401 response.
func (s *Store) Clear() {
	s.mu.Lock()
	s.principal = nil
	if err := s.persist.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear persisted session")
	}
	s.mu.Unlock()
}

// HasPermission reports whether the active principal's role is a member of
// allowed. It is false whenever nobody is logged in.
func (s *Store) HasPermission(allowed ...domain.Role) bool {
	p := s.Principal()
	if p == nil {
		return false
	}
	return p.Role.In(allowed...)
}

// Principal returns the active principal, or nil when unauthenticated.
func (s *Store) Principal() *domain.Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal
}

// Loading reports whether Initialize has not yet resolved.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Authenticated reports whether a principal is active.
func (s *Store) Authenticated() bool {
	return s.Principal() != nil
}
