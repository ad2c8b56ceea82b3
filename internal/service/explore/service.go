package explore

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/oggyb/noor-names/internal/app"
	"github.com/oggyb/noor-names/internal/auth"
	"github.com/oggyb/noor-names/internal/catalog"
	svcErr "github.com/oggyb/noor-names/internal/errors"
	pb "github.com/oggyb/noor-names/internal/proto/names"
	"github.com/oggyb/noor-names/internal/service/bearer"
	"github.com/oggyb/noor-names/internal/service/wire"
	"github.com/oggyb/noor-names/internal/utils/pagination"
)

// DefaultTrendingCount matches the home page carousel.
const DefaultTrendingCount = 8

// Service implements the Catalog gRPC API on top of the in-memory catalog.
// Every call is a pure query; signed-in callers additionally get their
// favorites marked on the returned names.
type Service struct {
	appCtx *app.AppContext

	pb.UnimplementedCatalogServiceServer
}

// NewExploreService creates a new Explore service with dependencies from AppContext.
func NewExploreService(appCtx *app.AppContext) *Service {
	return &Service{appCtx: appCtx}
}

// favoriteMarker returns the caller's membership test, or nil for anonymous
// callers. Browsing never fails because of a bad or expired token.
func (s *Service) favoriteMarker(ctx context.Context) func(catalog.NameRecord) bool {
	token, identity, err := bearer.Resolve(ctx, s.appCtx)
	if err != nil {
		if !errors.Is(err, auth.ErrNoSession) {
			s.appCtx.Logger.Warn("session lookup failed", "err", err)
		}
		return nil
	}
	return s.appCtx.Sessions.For(ctx, token, identity).IsFavorite
}

// Browse lists the catalog filtered by gender and initial letter, ordered by
// popularity, one page at a time.
//
// Example:
//
//	svc.Browse(ctx, &pb.BrowseRequest{Gender: "female", Letter: "M", Order: "desc"})
func (s *Service) Browse(ctx context.Context, req *pb.BrowseRequest) (*pb.BrowseResponse, error) {
	s.appCtx.Logger.Debug("Browse called", "gender", req.Gender, "letter", req.Letter, "order", req.Order)

	gender, err := catalog.ParseGenderFilter(req.Gender)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	order, err := catalog.ParseDirection(req.Order)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	letter := req.Letter
	if letter == "" {
		letter = catalog.AllLetters
	}

	q := catalog.Query{Gender: gender, Letter: letter, Order: order}
	all := s.appCtx.Catalog.Browse(q)

	filter := strings.Join([]string{gender, letter, string(order)}, "|")
	page, next, err := pagination.Page(all, req.PageToken, filter, s.appCtx.Config.Catalog.PageSize)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.BrowseResponse{
		Names:         wire.Names(page, s.favoriteMarker(ctx)),
		Total:         len(all),
		NextPageToken: next,
	}
	s.appCtx.Logger.Debug("Browse result", "count", len(resp.Names), "total", resp.Total)
	return resp, nil
}

// Search returns the ranked matches for a free-text query. An empty query
// returns no names.
func (s *Service) Search(ctx context.Context, req *pb.SearchRequest) (*pb.SearchResponse, error) {
	s.appCtx.Logger.Debug("Search called", "query", req.Query)

	found := s.appCtx.Catalog.Search(req.Query)
	return &pb.SearchResponse{Names: wire.Names(found, s.favoriteMarker(ctx))}, nil
}

// Trending returns a random pick of names. A non-zero seed makes the pick
// reproducible.
func (s *Service) Trending(ctx context.Context, req *pb.TrendingRequest) (*pb.TrendingResponse, error) {
	if req.Count < 0 {
		return nil, svcErr.InvalidArgument("count must not be negative")
	}
	n := int(req.Count)
	if n == 0 {
		n = DefaultTrendingCount
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	picked := s.appCtx.Catalog.Trending(n, rand.New(rand.NewSource(seed)))
	return &pb.TrendingResponse{Names: wire.Names(picked, s.favoriteMarker(ctx))}, nil
}

// Alphabet returns the letters that have at least one name.
func (s *Service) Alphabet(ctx context.Context, _ *pb.AlphabetRequest) (*pb.AlphabetResponse, error) {
	return &pb.AlphabetResponse{Letters: s.appCtx.Catalog.Alphabet()}, nil
}
