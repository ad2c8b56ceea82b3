package auth_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oggyb/noor-names/internal/auth"
	"github.com/oggyb/noor-names/internal/cache"
	"github.com/oggyb/noor-names/internal/config"
	"github.com/oggyb/noor-names/internal/db"
	"github.com/oggyb/noor-names/internal/logger"
	"github.com/oggyb/noor-names/internal/repository"
)

// setupAuth wires the auth service over an in-memory SQLite DB and a miniredis.
func setupAuth(t *testing.T) (*auth.Service, *miniredis.Miniredis) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.Migrate(database))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.Auth.SessionTTL = time.Hour

	svc := auth.NewService(repository.NewUserRepository(database), cache.NewRedisCache(cfg), cfg, logger.Discard())
	return svc, mr
}

func signUpConfirmed(t *testing.T, svc *auth.Service, email, password string) {
	t.Helper()
	ctx := context.Background()
	res, err := svc.SignUp(ctx, email, password)
	require.NoError(t, err)
	require.NoError(t, svc.Confirm(ctx, res.ConfirmationToken))
}

func TestSignUp_Validation(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "not-an-email", "secret1")
	assert.ErrorIs(t, err, auth.ErrValidationFailed)

	_, err = svc.SignUp(ctx, "a@example.com", "short")
	assert.ErrorIs(t, err, auth.ErrValidationFailed)
}

func TestSignUp_PendingConfirmation(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()

	res, err := svc.SignUp(ctx, "parent@example.com", "secret1")
	require.NoError(t, err)
	assert.True(t, res.PendingConfirmation)
	assert.NotEmpty(t, res.ConfirmationToken)

	_, err = svc.SignIn(ctx, "parent@example.com", "secret1")
	assert.ErrorIs(t, err, auth.ErrNotConfirmed)

	_, err = svc.SignUp(ctx, "Parent@example.com", "another1")
	assert.ErrorIs(t, err, auth.ErrEmailTaken)
}

func TestConfirm_SingleUse(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()

	res, err := svc.SignUp(ctx, "parent@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.Confirm(ctx, res.ConfirmationToken))
	assert.ErrorIs(t, svc.Confirm(ctx, res.ConfirmationToken), auth.ErrInvalidToken)
	assert.ErrorIs(t, svc.Confirm(ctx, "bogus"), auth.ErrInvalidToken)
}

func TestSignIn_Credentials(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()
	signUpConfirmed(t, svc, "parent@example.com", "secret1")

	_, err := svc.SignIn(ctx, "parent@example.com", "wrong-pass")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, "ghost@example.com", "secret1")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, "", "")
	assert.ErrorIs(t, err, auth.ErrValidationFailed)

	sess, err := svc.SignIn(ctx, "parent@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "parent@example.com", sess.Identity.Email)

	current, err := svc.Current(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.Identity.ID, current.ID)
}

func TestSignOut_EndsSession(t *testing.T) {
	svc, mr := setupAuth(t)
	ctx := context.Background()
	signUpConfirmed(t, svc, "parent@example.com", "secret1")

	sess, err := svc.SignIn(ctx, "parent@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, sess.Token))
	_, err = svc.Current(ctx, sess.Token)
	assert.ErrorIs(t, err, auth.ErrNoSession)

	// expiry behaves the same as sign-out
	sess, err = svc.SignIn(ctx, "parent@example.com", "secret1")
	require.NoError(t, err)
	mr.FastForward(2 * time.Hour)
	_, err = svc.Current(ctx, sess.Token)
	assert.ErrorIs(t, err, auth.ErrNoSession)
}

func TestSubscribe_SessionEvents(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()
	signUpConfirmed(t, svc, "parent@example.com", "secret1")

	type event struct {
		token string
		email string
	}
	var events []event
	svc.Subscribe(func(_ context.Context, token string, id *auth.Identity) {
		e := event{token: token}
		if id != nil {
			e.email = id.Email
		}
		events = append(events, e)
	})

	sess, err := svc.SignIn(ctx, "parent@example.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(ctx, sess.Token))

	assert.Equal(t, []event{
		{token: sess.Token, email: "parent@example.com"},
		{token: sess.Token},
	}, events)
}
