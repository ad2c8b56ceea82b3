// Package servicetest runs the gRPC services in-process for tests: an
// in-memory SQLite database, a miniredis instance, the built-in catalog and
// a bufconn listener.
package servicetest

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oggyb/noor-names/internal/app"
	"github.com/oggyb/noor-names/internal/cache"
	"github.com/oggyb/noor-names/internal/catalog"
	"github.com/oggyb/noor-names/internal/config"
	"github.com/oggyb/noor-names/internal/db"
	"github.com/oggyb/noor-names/internal/logger"
	pb "github.com/oggyb/noor-names/internal/proto/names"
	"github.com/oggyb/noor-names/internal/server"
	"github.com/oggyb/noor-names/internal/service/account"
	"github.com/oggyb/noor-names/internal/service/bearer"
	"github.com/oggyb/noor-names/internal/service/explore"
	"github.com/oggyb/noor-names/internal/service/favorites"
)

// PageSize is the browse page size used by the test server.
const PageSize = 5

// Env is a running test server with a client for every service.
type Env struct {
	App   *app.AppContext
	Redis *miniredis.Miniredis

	Catalog   *pb.CatalogServiceClient
	Favorites *pb.FavoritesServiceClient
	Account   *pb.AccountServiceClient
}

// New starts the server and registers cleanup with t.
func New(t *testing.T) *Env {
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
	cfg.App.ENV = "development"
	cfg.Redis.Addr = mr.Addr()
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.Auth.SessionTTL = time.Hour
	cfg.Catalog.PageSize = PageSize
	cfg.Catalog.SearchLimit = catalog.DefaultSearchLimit

	records, err := catalog.LoadFile("")
	require.NoError(t, err)

	log := logger.Discard()
	appCtx := app.New(cfg, database, cache.NewRedisCache(cfg), log, catalog.New(records, cfg.Catalog.SearchLimit))

	lis := bufconn.Listen(1 << 20)
	srv := server.NewGRPCServer(log,
		explore.NewRegistrar(appCtx),
		favorites.NewRegistrar(appCtx),
		account.NewRegistrar(appCtx),
	)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &Env{
		App:       appCtx,
		Redis:     mr,
		Catalog:   pb.NewCatalogServiceClient(conn),
		Favorites: pb.NewFavoritesServiceClient(conn),
		Account:   pb.NewAccountServiceClient(conn),
	}
}

// SignIn creates a confirmed account for email and returns a context that
// carries its session token.
func (e *Env) SignIn(t *testing.T, email string) context.Context {
	t.Helper()
	ctx := context.Background()

	res, err := e.App.Auth.SignUp(ctx, email, "secret1")
	require.NoError(t, err)
	require.NoError(t, e.App.Auth.Confirm(ctx, res.ConfirmationToken))
	sess, err := e.App.Auth.SignIn(ctx, email, "secret1")
	require.NoError(t, err)

	return bearer.Outgoing(ctx, sess.Token)
}
