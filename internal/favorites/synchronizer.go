// Package favorites keeps a signed-in user's favorite names in memory and in
// step with the remote store.
package favorites

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/oggyb/noor-names/internal/auth"
	"github.com/oggyb/noor-names/internal/catalog"
)

// Store is the remote per-user favorites collection.
type Store interface {
	List(ctx context.Context, userID string) ([]catalog.NameRecord, error)
	Insert(ctx context.Context, userID string, rec catalog.NameRecord) error
	Delete(ctx context.Context, userID, englishName string) error
}

type State int

const (
	Anonymous State = iota
	Loading
	Ready
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Synchronizer mirrors one user's favorites.
//
// Reads (IsFavorite, Favorites) never wait on the store. Mutations are
// serialized, and the cache only changes after the store confirms, so the
// cache always reflects persisted state. Until a load completes the cache is
// simply empty; there is no loading gate for readers.
type Synchronizer struct {
	store  Store
	logger *slog.Logger

	// write serializes Toggle, Load and SetUser.
	write sync.Mutex

	mu    sync.RWMutex
	user  *auth.Identity
	state State
	items []catalog.NameRecord
}

func New(store Store, logger *slog.Logger) *Synchronizer {
	return &Synchronizer{store: store, logger: logger}
}

func (s *Synchronizer) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the active identity, or nil when anonymous.
func (s *Synchronizer) User() *auth.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetUser follows the session. A nil identity clears everything; a new
// identity moves to Loading, fetches the remote set and ends in Ready.
// Setting the identity that is already active does nothing.
func (s *Synchronizer) SetUser(ctx context.Context, identity *auth.Identity) {
	s.write.Lock()
	defer s.write.Unlock()

	s.mu.Lock()
	if identity == nil {
		s.user, s.state, s.items = nil, Anonymous, nil
		s.mu.Unlock()
		return
	}
	if s.user != nil && s.user.ID == identity.ID {
		s.mu.Unlock()
		return
	}
	u := *identity
	s.user, s.state, s.items = &u, Loading, nil
	s.mu.Unlock()

	s.load(ctx, u.ID)
}

// Load replaces the cache with the remote favorites of userID. Store failures
// are logged and leave the cache as it was. Results for a user that is no
// longer active are dropped.
func (s *Synchronizer) Load(ctx context.Context, userID string) {
	s.write.Lock()
	defer s.write.Unlock()
	s.load(ctx, userID)
}

func (s *Synchronizer) load(ctx context.Context, userID string) {
	items, err := s.store.List(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil || s.user.ID != userID {
		s.logger.Debug("discarding favorites for inactive user", "user_id", userID)
		return
	}
	s.state = Ready
	if err != nil {
		s.logger.Error("failed to load favorites", "user_id", userID, "err", err)
		return
	}
	s.items = items
	s.logger.Debug("favorites loaded", "user_id", userID, "count", len(items))
}

// IsFavorite reports whether a favorite with the same English name exists.
// Gender is ignored.
func (s *Synchronizer) IsFavorite(rec catalog.NameRecord) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(rec.EnglishName) >= 0
}

func (s *Synchronizer) indexOf(englishName string) int {
	return slices.IndexFunc(s.items, func(r catalog.NameRecord) bool {
		return r.EnglishName == englishName
	})
}

// Toggle adds rec when it is not a favorite and removes it otherwise.
// It reports whether rec is a favorite afterwards.
//
// Without an active user it returns ErrAuthenticationRequired and does not
// touch the store. Store failures come back as *RemoteCallError with the
// cache unchanged.
func (s *Synchronizer) Toggle(ctx context.Context, rec catalog.NameRecord) (bool, error) {
	s.write.Lock()
	defer s.write.Unlock()

	s.mu.RLock()
	user := s.user
	exists := s.indexOf(rec.EnglishName) >= 0
	s.mu.RUnlock()

	if user == nil {
		return false, ErrAuthenticationRequired
	}

	if exists {
		if err := s.store.Delete(ctx, user.ID, rec.EnglishName); err != nil {
			s.logger.Error("failed to remove favorite", "user_id", user.ID, "name", rec.EnglishName, "err", err)
			return true, &RemoteCallError{Op: "delete", Err: err}
		}
		s.mu.Lock()
		s.items = slices.DeleteFunc(s.items, func(r catalog.NameRecord) bool {
			return r.EnglishName == rec.EnglishName
		})
		s.mu.Unlock()
		return false, nil
	}

	if err := s.store.Insert(ctx, user.ID, rec); err != nil {
		s.logger.Error("failed to add favorite", "user_id", user.ID, "name", rec.EnglishName, "err", err)
		return false, &RemoteCallError{Op: "insert", Err: err}
	}
	s.mu.Lock()
	s.items = append(s.items, rec)
	s.mu.Unlock()
	return true, nil
}

// Favorites returns a copy of the cached favorites in the order they were added.
func (s *Synchronizer) Favorites() []catalog.NameRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Export renders the favorites as a shareable plain-text list, one
// "English (Arabic) – meaning" line per name.
func (s *Synchronizer) Export() string {
	items := s.Favorites()
	lines := make([]string, 0, len(items))
	for _, r := range items {
		lines = append(lines, fmt.Sprintf("%s (%s) – %s", r.EnglishName, r.ArabicName, r.Meaning))
	}
	return strings.Join(lines, "\n")
}
