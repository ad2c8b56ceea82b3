// Package session keeps one favorites synchronizer per signed-in user and
// tracks which session tokens share it.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/oggyb/noor-names/internal/auth"
	"github.com/oggyb/noor-names/internal/favorites"
)

// AliveFunc reports whether a session token is still valid.
type AliveFunc func(ctx context.Context, token string) (bool, error)

type entry struct {
	sync     *favorites.Synchronizer
	sessions int
}

// Registry maps users to their synchronizer and session tokens to users.
// All sessions of one user share a synchronizer; it is built when the first
// session starts and cleared when the last one ends.
type Registry struct {
	store  favorites.Store
	logger *slog.Logger

	mu     sync.RWMutex
	users  map[string]*entry // user id -> synchronizer
	tokens map[string]string // session token -> user id
}

func NewRegistry(store favorites.Store, logger *slog.Logger) *Registry {
	return &Registry{
		store:  store,
		logger: logger,
		users:  make(map[string]*entry),
		tokens: make(map[string]string),
	}
}

// Attach subscribes the registry to session changes of the auth service.
func (r *Registry) Attach(svc *auth.Service) {
	svc.Subscribe(r.OnSessionChange)
}

// OnSessionChange is an auth.Listener: a non-nil identity opens a session and
// loads its favorites, nil closes it.
func (r *Registry) OnSessionChange(ctx context.Context, token string, identity *auth.Identity) {
	if identity == nil {
		r.Forget(ctx, token)
		return
	}
	r.open(ctx, token, identity)
}

func (r *Registry) open(ctx context.Context, token string, identity *auth.Identity) *favorites.Synchronizer {
	r.mu.RLock()
	e, known := r.users[identity.ID]
	if known && r.tokens[token] == identity.ID {
		r.mu.RUnlock()
		return e.sync
	}
	r.mu.RUnlock()

	var fresh *favorites.Synchronizer
	if !known {
		// Loaded before it is published so no caller sees it half-initialized.
		fresh = favorites.New(r.store, r.logger.With("user_id", identity.ID))
		fresh.SetUser(ctx, identity)
	}

	r.mu.Lock()
	if owner, ok := r.tokens[token]; ok && owner == identity.ID {
		s := r.users[owner].sync
		r.mu.Unlock()
		return s
	}
	released := r.releaseLocked(token)

	e, known = r.users[identity.ID]
	if !known && fresh == nil {
		// The user's last session ended between the two lookups.
		r.mu.Unlock()
		releaseSync(ctx, released)
		return r.open(ctx, token, identity)
	}
	if !known {
		e = &entry{sync: fresh}
		r.users[identity.ID] = e
	}
	e.sessions++
	r.tokens[token] = identity.ID
	r.mu.Unlock()

	releaseSync(ctx, released)
	return e.sync
}

// releaseLocked unlinks token and returns the synchronizer to clear when it
// was its user's last session. r.mu must be held.
func (r *Registry) releaseLocked(token string) *favorites.Synchronizer {
	userID, ok := r.tokens[token]
	if !ok {
		return nil
	}
	delete(r.tokens, token)
	e := r.users[userID]
	e.sessions--
	if e.sessions > 0 {
		return nil
	}
	delete(r.users, userID)
	return e.sync
}

func releaseSync(ctx context.Context, s *favorites.Synchronizer) {
	if s != nil {
		s.SetUser(ctx, nil)
	}
}

// Forget drops a session. When it was the user's last one, the user's
// synchronizer is cleared and released.
func (r *Registry) Forget(ctx context.Context, token string) {
	r.mu.Lock()
	released := r.releaseLocked(token)
	r.mu.Unlock()

	releaseSync(ctx, released)
}

// For returns the synchronizer of a session. When the registry lost it (for
// example after a restart) but the session is still valid, it is rebuilt from
// identity. With no identity an anonymous synchronizer is returned, which
// answers every toggle with favorites.ErrAuthenticationRequired.
func (r *Registry) For(ctx context.Context, token string, identity *auth.Identity) *favorites.Synchronizer {
	if identity == nil {
		return favorites.New(r.store, r.logger)
	}
	return r.open(ctx, token, identity)
}

// Prune forgets every session alive no longer vouches for and returns how
// many were dropped. Lookup errors keep the session.
func (r *Registry) Prune(ctx context.Context, alive AliveFunc) int {
	r.mu.RLock()
	tokens := make([]string, 0, len(r.tokens))
	for t := range r.tokens {
		tokens = append(tokens, t)
	}
	r.mu.RUnlock()

	dropped := 0
	for _, t := range tokens {
		ok, err := alive(ctx, t)
		if err != nil {
			r.logger.Warn("session liveness check failed", "err", err)
			continue
		}
		if !ok {
			r.Forget(ctx, t)
			dropped++
		}
	}
	return dropped
}

// Run prunes expired sessions every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, every time.Duration, alive AliveFunc) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Prune(ctx, alive); n > 0 {
				r.logger.Info("pruned expired sessions", "count", n)
			}
		}
	}
}

// Len returns the number of tracked sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}

// Users returns the number of users with at least one session.
func (r *Registry) Users() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
