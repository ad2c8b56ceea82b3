package favorites

import (
	"context"
	"errors"
	"strings"

	"github.com/oggyb/noor-names/internal/app"
	"github.com/oggyb/noor-names/internal/auth"
	"github.com/oggyb/noor-names/internal/cache"
	"github.com/oggyb/noor-names/internal/catalog"
	svcErr "github.com/oggyb/noor-names/internal/errors"
	fav "github.com/oggyb/noor-names/internal/favorites"
	pb "github.com/oggyb/noor-names/internal/proto/names"
	"github.com/oggyb/noor-names/internal/repository"
	"github.com/oggyb/noor-names/internal/service/bearer"
	"github.com/oggyb/noor-names/internal/service/wire"
)

// Service implements the Favorites gRPC API.
// Each call resolves the caller's session to its synchronizer; reads are
// answered from the synchronizer cache, toggles go through the remote store.
type Service struct {
	appCtx       *app.AppContext
	favoriteRepo *repository.FavoriteRepository

	pb.UnimplementedFavoritesServiceServer
}

// NewFavoritesService creates a new Favorites service with dependencies from AppContext.
// Dependencies include:
//   - DB connection (via FavoriteRepository, for counts)
//   - RedisCache for favorite counters
//   - the session registry for per-session synchronizers
func NewFavoritesService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:       appCtx,
		favoriteRepo: repository.NewFavoriteRepository(appCtx.DB),
	}
}

// synchronizer returns the caller's synchronizer. Callers without a valid
// session get an anonymous one.
func (s *Service) synchronizer(ctx context.Context) (*fav.Synchronizer, error) {
	token, identity, err := bearer.Resolve(ctx, s.appCtx)
	if err != nil && !errors.Is(err, auth.ErrNoSession) {
		s.appCtx.Logger.Error("session lookup failed", "err", err)
		return nil, svcErr.Map(err)
	}
	return s.appCtx.Sessions.For(ctx, token, identity), nil
}

// ListFavorites returns the caller's favorites in the order they were added.
// Anonymous callers get an empty list.
func (s *Service) ListFavorites(ctx context.Context, _ *pb.ListFavoritesRequest) (*pb.ListFavoritesResponse, error) {
	sync, err := s.synchronizer(ctx)
	if err != nil {
		return nil, err
	}
	items := sync.Favorites()
	return &pb.ListFavoritesResponse{
		Names: wire.Names(items, func(catalog.NameRecord) bool { return true }),
		State: sync.State().String(),
	}, nil
}

// ToggleFavorite adds or removes a catalog name from the caller's favorites.
//
// Behavior:
//   - Unauthenticated when there is no session; nothing is written.
//   - The record is looked up in the catalog and stored as a snapshot.
//   - The local cache only changes after the store confirms the write.
//   - Store failures come back as Unavailable.
//   - The Redis favorite counter of the name is moved by ±1 when cached.
//
// Example:
//
//	svc.ToggleFavorite(ctx, &pb.ToggleFavoriteRequest{EnglishName: "Yusuf", Gender: "male"})
func (s *Service) ToggleFavorite(ctx context.Context, req *pb.ToggleFavoriteRequest) (*pb.ToggleFavoriteResponse, error) {
	s.appCtx.Logger.Debug("ToggleFavorite called", "name", req.EnglishName, "gender", req.Gender)

	sync, err := s.synchronizer(ctx)
	if err != nil {
		return nil, err
	}
	if sync.User() == nil {
		return nil, svcErr.Map(fav.ErrAuthenticationRequired)
	}

	gender := catalog.Gender(strings.ToLower(strings.TrimSpace(req.Gender)))
	rec, ok := s.appCtx.Catalog.Lookup(req.EnglishName, gender)
	if !ok {
		return nil, svcErr.NotFound("name not found in catalog")
	}

	added, err := sync.Toggle(ctx, rec)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	delta := int64(-1)
	if added {
		delta = 1
	}
	if err := s.appCtx.RedisCache.AdjustFavoriteCount(ctx, rec.EnglishName, delta); err != nil {
		s.appCtx.Logger.Warn("failed to adjust favorite counter", "name", rec.EnglishName, "err", err)
	}

	return &pb.ToggleFavoriteResponse{Favorite: added}, nil
}

// IsFavorite answers from the local cache only.
func (s *Service) IsFavorite(ctx context.Context, req *pb.IsFavoriteRequest) (*pb.IsFavoriteResponse, error) {
	sync, err := s.synchronizer(ctx)
	if err != nil {
		return nil, err
	}
	return &pb.IsFavoriteResponse{
		Favorite: sync.IsFavorite(catalog.NameRecord{EnglishName: req.EnglishName}),
	}, nil
}

// ExportFavorites returns the shareable text list of the caller's favorites.
func (s *Service) ExportFavorites(ctx context.Context, _ *pb.ExportFavoritesRequest) (*pb.ExportFavoritesResponse, error) {
	sync, err := s.synchronizer(ctx)
	if err != nil {
		return nil, err
	}
	return &pb.ExportFavoritesResponse{Text: sync.Export()}, nil
}

// CountFavorites returns how many users favorited a name.
// Cache-first strategy:
//  1. Attempts to read from Redis (favorites:count:<name>).
//  2. On a miss or error, falls back to DB via repository.CountByName.
//  3. On DB fetch, updates Redis with a 1h TTL.
func (s *Service) CountFavorites(ctx context.Context, req *pb.CountFavoritesRequest) (*pb.CountFavoritesResponse, error) {
	if strings.TrimSpace(req.EnglishName) == "" {
		return nil, svcErr.InvalidArgument("english_name is required")
	}

	if n, err := s.appCtx.RedisCache.GetFavoriteCount(ctx, req.EnglishName); err == nil && n >= 0 {
		return &pb.CountFavoritesResponse{Count: uint64(n)}, nil
	} else if err != nil && !errors.Is(err, cache.ErrMiss) {
		s.appCtx.Logger.Warn("favorite counter read failed", "name", req.EnglishName, "err", err)
	}

	count, err := s.favoriteRepo.CountByName(ctx, req.EnglishName)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	_ = s.appCtx.RedisCache.SetFavoriteCount(ctx, req.EnglishName, count)

	return &pb.CountFavoritesResponse{Count: uint64(count)}, nil
}
