// Package auth is the email/password authentication collaborator: sign-up
// with email confirmation, sign-in, sign-out and a session observable.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/oggyb/noor-names/internal/cache"
	"github.com/oggyb/noor-names/internal/config"
	"github.com/oggyb/noor-names/internal/db"
	"github.com/oggyb/noor-names/internal/repository"
)

// Listener is called after a session starts (identity set) or ends (identity nil).
type Listener func(ctx context.Context, token string, identity *Identity)

// Service owns accounts (through UserRepository) and sessions (in Redis).
type Service struct {
	users  *repository.UserRepository
	cache  *cache.RedisCache
	logger *slog.Logger

	sessionTTL     time.Duration
	confirmTTL     time.Duration
	bcryptCost     int
	minPasswordLen int
	now            func() time.Time

	mu        sync.RWMutex
	listeners []Listener
}

func NewService(users *repository.UserRepository, rc *cache.RedisCache, cfg *config.Config, logger *slog.Logger) *Service {
	return &Service{
		users:          users,
		cache:          rc,
		logger:         logger,
		sessionTTL:     cfg.Auth.SessionTTL,
		confirmTTL:     cfg.Auth.ConfirmTTL,
		bcryptCost:     cfg.Auth.BcryptCost,
		minPasswordLen: cfg.Auth.MinPasswordLen,
		now:            time.Now,
	}
}

// Subscribe registers a session-change listener. Listeners run synchronously
// on the goroutine that signed in or out.
func (s *Service) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Service) notify(ctx context.Context, token string, identity *Identity) {
	s.mu.RLock()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(ctx, token, identity)
	}
}

func (s *Service) validate(email, password string) (string, error) {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email address", ErrValidationFailed)
	}
	if len(password) < s.minPasswordLen {
		return "", fmt.Errorf("%w: password must be at least %d characters", ErrValidationFailed, s.minPasswordLen)
	}
	return strings.ToLower(email), nil
}

// SignUp creates an unconfirmed account and issues a confirmation token.
// The account cannot sign in until Confirm is called with that token.
func (s *Service) SignUp(ctx context.Context, email, password string) (SignUpResult, error) {
	email, err := s.validate(email, password)
	if err != nil {
		return SignUpResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return SignUpResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &db.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return SignUpResult{}, ErrEmailTaken
		}
		return SignUpResult{}, err
	}

	token := uuid.NewString()
	if err := s.cache.Set(ctx, s.cache.KeyForConfirmation(token), user.ID, s.confirmTTL); err != nil {
		return SignUpResult{}, fmt.Errorf("failed to store confirmation token: %w", err)
	}

	s.logger.Info("account created, awaiting confirmation", "user_id", user.ID)
	return SignUpResult{PendingConfirmation: true, ConfirmationToken: token}, nil
}

// Confirm consumes a confirmation token. Tokens are single use.
func (s *Service) Confirm(ctx context.Context, token string) error {
	userID, err := s.cache.Take(ctx, s.cache.KeyForConfirmation(token))
	if errors.Is(err, cache.ErrMiss) {
		return ErrInvalidToken
	} else if err != nil {
		return err
	}
	if err := s.users.MarkConfirmed(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	return nil
}

// SignIn checks credentials and opens a session.
func (s *Service) SignIn(ctx context.Context, email, password string) (Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return Session{}, fmt.Errorf("%w: email and password are required", ErrValidationFailed)
	}

	user, err := s.users.ByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Session{}, ErrInvalidCredentials
	} else if err != nil {
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}
	if !user.Confirmed {
		return Session{}, ErrNotConfirmed
	}

	identity := Identity{ID: user.ID, Email: user.Email, CreatedAt: user.CreatedAt}
	payload, err := json.Marshal(identity)
	if err != nil {
		return Session{}, err
	}

	token := uuid.NewString()
	if err := s.cache.Set(ctx, s.cache.KeyForSession(token), payload, s.sessionTTL); err != nil {
		return Session{}, fmt.Errorf("failed to store session: %w", err)
	}
	if err := s.users.TouchLastLogin(ctx, user.ID, s.now().UTC()); err != nil {
		s.logger.Warn("failed to record last login", "user_id", user.ID, "err", err)
	}

	s.logger.Info("signed in", "user_id", user.ID)
	s.notify(ctx, token, &identity)
	return Session{Token: token, Identity: identity}, nil
}

// SignOut ends a session. Signing out an unknown token is not an error.
func (s *Service) SignOut(ctx context.Context, token string) error {
	if err := s.cache.Del(ctx, s.cache.KeyForSession(token)); err != nil {
		return err
	}
	s.notify(ctx, token, nil)
	return nil
}

// Current resolves a session token. Returns ErrNoSession when the token is
// unknown or expired; the session TTL is refreshed on every hit.
func (s *Service) Current(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	key := s.cache.KeyForSession(token)
	raw, err := s.cache.Get(ctx, key)
	if errors.Is(err, cache.ErrMiss) {
		return nil, ErrNoSession
	} else if err != nil {
		return nil, err
	}

	var identity Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return nil, fmt.Errorf("corrupt session payload: %w", err)
	}
	_ = s.cache.Expire(ctx, key, s.sessionTTL)
	return &identity, nil
}

// Alive reports whether a session token is still valid. Unlike Current it
// does not refresh the session TTL.
func (s *Service) Alive(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return s.cache.Exists(ctx, s.cache.KeyForSession(token))
}
