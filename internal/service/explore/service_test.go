package explore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/oggyb/noor-names/internal/proto/names"
	"github.com/oggyb/noor-names/internal/service/servicetest"
)

func names(items []*pb.Name) []string {
	out := make([]string, len(items))
	for i, n := range items {
		out[i] = n.EnglishName
	}
	return out
}

func TestBrowse_DefaultsToMostPopularFirst(t *testing.T) {
	env := servicetest.New(t)

	resp, err := env.Catalog.Browse(context.Background(), &pb.BrowseRequest{})
	require.NoError(t, err)

	assert.Equal(t, env.App.Catalog.Len(), resp.Total)
	assert.Equal(t, []string{"Muhammad", "Maryam", "Ahmad", "Fatima", "Yusuf"}, names(resp.Names))
	assert.NotEmpty(t, resp.NextPageToken)
	for _, n := range resp.Names {
		assert.False(t, n.Favorite, "anonymous callers never see favorites")
	}
}

func TestBrowse_WalksAllPages(t *testing.T) {
	env := servicetest.New(t)
	ctx := context.Background()

	seen := map[string]int{}
	req := &pb.BrowseRequest{Order: "asc"}
	var last float64
	pages := 0
	for {
		resp, err := env.Catalog.Browse(ctx, req)
		require.NoError(t, err)
		pages++
		for _, n := range resp.Names {
			assert.GreaterOrEqual(t, n.Popularity, last)
			last = n.Popularity
			seen[n.EnglishName+"/"+n.Gender]++
		}
		if resp.NextPageToken == "" {
			break
		}
		req.PageToken = resp.NextPageToken
	}

	total := env.App.Catalog.Len()
	assert.Len(t, seen, total)
	assert.Equal(t, (total+servicetest.PageSize-1)/servicetest.PageSize, pages)
}

func TestBrowse_GenderAndLetter(t *testing.T) {
	env := servicetest.New(t)
	ctx := context.Background()

	resp, err := env.Catalog.Browse(ctx, &pb.BrowseRequest{Letter: "Y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Yusuf", "Yasmin"}, names(resp.Names))

	resp, err = env.Catalog.Browse(ctx, &pb.BrowseRequest{Gender: "female", Letter: "Y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Yasmin"}, names(resp.Names))
	assert.Empty(t, resp.NextPageToken)

	// the initial-letter filter is case-sensitive
	resp, err = env.Catalog.Browse(ctx, &pb.BrowseRequest{Letter: "y"})
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.Empty(t, resp.Names)
}

func TestBrowse_InvalidInput(t *testing.T) {
	env := servicetest.New(t)
	ctx := context.Background()

	_, err := env.Catalog.Browse(ctx, &pb.BrowseRequest{Gender: "robot"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.Catalog.Browse(ctx, &pb.BrowseRequest{Order: "sideways"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.Catalog.Browse(ctx, &pb.BrowseRequest{PageToken: "%%%"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestBrowse_TokenIsPinnedToFilter(t *testing.T) {
	env := servicetest.New(t)
	ctx := context.Background()

	first, err := env.Catalog.Browse(ctx, &pb.BrowseRequest{Gender: "male"})
	require.NoError(t, err)
	require.NotEmpty(t, first.NextPageToken)

	_, err = env.Catalog.Browse(ctx, &pb.BrowseRequest{Gender: "female", PageToken: first.NextPageToken})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestBrowse_MarksCallerFavorites(t *testing.T) {
	env := servicetest.New(t)
	ctx := env.SignIn(t, "parent@example.com")

	_, err := env.Favorites.ToggleFavorite(ctx, &pb.ToggleFavoriteRequest{EnglishName: "Maryam", Gender: "female"})
	require.NoError(t, err)

	resp, err := env.Catalog.Browse(ctx, &pb.BrowseRequest{})
	require.NoError(t, err)
	for _, n := range resp.Names {
		assert.Equal(t, n.EnglishName == "Maryam", n.Favorite, n.EnglishName)
	}
}

func TestSearch_RanksAndCaps(t *testing.T) {
	env := servicetest.New(t)
	ctx := context.Background()

	resp, err := env.Catalog.Search(ctx, &pb.SearchRequest{Query: "AMIR"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Amir", "Amira"}, names(resp.Names))

	resp, err = env.Catalog.Search(ctx, &pb.SearchRequest{Query: "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ahmad", "Adam", "Amir", "Ali", "Aisha", "Amira"}, names(resp.Names))

	resp, err = env.Catalog.Search(ctx, &pb.SearchRequest{Query: ""})
	require.NoError(t, err)
	assert.Empty(t, resp.Names)
}

func TestSearch_MatchesArabicAndMeaning(t *testing.T) {
	env := servicetest.New(t)
	ctx := context.Background()

	resp, err := env.Catalog.Search(ctx, &pb.SearchRequest{Query: "يوسف"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Yusuf"}, names(resp.Names))

	resp, err = env.Catalog.Search(ctx, &pb.SearchRequest{Query: "jasmine"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Yasmin"}, names(resp.Names))
}

func TestTrending(t *testing.T) {
	env := servicetest.New(t)
	ctx := context.Background()

	a, err := env.Catalog.Trending(ctx, &pb.TrendingRequest{Count: 4, Seed: 7})
	require.NoError(t, err)
	b, err := env.Catalog.Trending(ctx, &pb.TrendingRequest{Count: 4, Seed: 7})
	require.NoError(t, err)
	assert.Len(t, a.Names, 4)
	assert.Equal(t, names(a.Names), names(b.Names))

	def, err := env.Catalog.Trending(ctx, &pb.TrendingRequest{})
	require.NoError(t, err)
	assert.Len(t, def.Names, 8)

	_, err = env.Catalog.Trending(ctx, &pb.TrendingRequest{Count: -1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestAlphabet(t *testing.T) {
	env := servicetest.New(t)

	resp, err := env.Catalog.Alphabet(context.Background(), &pb.AlphabetRequest{})
	require.NoError(t, err)
	assert.Contains(t, resp.Letters, "M")
	assert.NotContains(t, resp.Letters, "X")
	assert.IsIncreasing(t, resp.Letters)
}
