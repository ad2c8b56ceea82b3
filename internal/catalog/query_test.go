package catalog_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/noor-names/internal/catalog"
)

func sample() []catalog.NameRecord {
	return []catalog.NameRecord{
		{EnglishName: "Amir", ArabicName: "أمير", Meaning: "Prince", Gender: catalog.Male, Popularity: 10},
		{EnglishName: "Amira", ArabicName: "أميرة", Meaning: "Princess", Gender: catalog.Female, Popularity: 5},
		{EnglishName: "Samir", ArabicName: "سمير", Meaning: "Companion in evening talk", Gender: catalog.Male, Popularity: 7},
		{EnglishName: "Noor", ArabicName: "نور", Meaning: "Light", Gender: catalog.Female, Popularity: 7},
		{EnglishName: "Iman", ArabicName: "إيمان", Meaning: "Faith of a prince", Gender: catalog.Unisex, Popularity: 3},
		{EnglishName: "adam", ArabicName: "آدم", Meaning: "Earth", Gender: catalog.Male, Popularity: 9},
	}
}

func names(records []catalog.NameRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.EnglishName)
	}
	return out
}

func TestFilterByGender(t *testing.T) {
	records := sample()

	assert.Equal(t, records, catalog.FilterByGender(records, catalog.GenderAll))

	for _, g := range []catalog.Gender{catalog.Male, catalog.Female, catalog.Unisex} {
		got := catalog.FilterByGender(records, string(g))
		require.NotEmpty(t, got)
		for _, r := range got {
			assert.Equal(t, g, r.Gender)
		}
	}

	assert.Empty(t, catalog.FilterByGender(records, "Male"), "no case folding")
	assert.Empty(t, catalog.FilterByGender(nil, "male"))
}

func TestFilterByInitialLetter(t *testing.T) {
	records := sample()

	assert.Equal(t, records, catalog.FilterByInitialLetter(records, catalog.AllLetters))
	assert.Equal(t, []string{"Amir", "Amira"}, names(catalog.FilterByInitialLetter(records, "A")))
	// prefix match is case-sensitive
	assert.Equal(t, []string{"adam"}, names(catalog.FilterByInitialLetter(records, "a")))
	assert.Empty(t, catalog.FilterByInitialLetter(records, "Z"))
}

func TestSortByPopularity(t *testing.T) {
	records := sample()
	before := names(records)

	desc := catalog.SortByPopularity(records, catalog.Descending)
	assert.Equal(t, []string{"Amir", "adam", "Samir", "Noor", "Amira", "Iman"}, names(desc))

	asc := catalog.SortByPopularity(records, catalog.Ascending)
	assert.Equal(t, []string{"Iman", "Amira", "Samir", "Noor", "adam", "Amir"}, names(asc))

	// same multiset, input untouched
	assert.ElementsMatch(t, records, desc)
	assert.Equal(t, before, names(records))
}

func TestSearch_EmptyQuery(t *testing.T) {
	got := catalog.Search(sample(), "", 6)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSearch_TieredRanking(t *testing.T) {
	// "amir": Amir/Amira start with it, Samir contains it, nothing matches only by meaning
	got := catalog.Search(sample(), "AMIR", 6)
	assert.Equal(t, []string{"Amir", "Amira", "Samir"}, names(got))

	// "prince": no English name contains it, meaning matches keep input order
	got = catalog.Search(sample(), "prince", 6)
	assert.Equal(t, []string{"Amir", "Amira", "Iman"}, names(got))
}

func TestSearch_InputOrderWithinPrefixTier(t *testing.T) {
	records := []catalog.NameRecord{
		{EnglishName: "Amir", Gender: catalog.Male, Popularity: 10},
		{EnglishName: "Amira", Gender: catalog.Female, Popularity: 5},
	}
	assert.Equal(t, []string{"Amir", "Amira"}, names(catalog.Search(records, "ami", 6)))
}

func TestSearch_ArabicMatch(t *testing.T) {
	got := catalog.Search(sample(), "نور", 6)
	assert.Equal(t, []string{"Noor"}, names(got))
}

func TestSearch_Limit(t *testing.T) {
	var records []catalog.NameRecord
	for _, n := range []string{"Aa", "Ab", "Ac", "Ad", "Ae", "Af", "Ag", "Ah"} {
		records = append(records, catalog.NameRecord{EnglishName: n, Gender: catalog.Male})
	}
	assert.Len(t, catalog.Search(records, "a", 0), catalog.DefaultSearchLimit)
	assert.Len(t, catalog.Search(records, "a", 3), 3)
}

func TestApply_Pipeline(t *testing.T) {
	got := catalog.Apply(sample(), catalog.Query{Gender: "male", Letter: "A", Order: catalog.Ascending})
	assert.Equal(t, []string{"Amir"}, names(got))

	got = catalog.Apply(sample(), catalog.Query{})
	assert.Equal(t, names(catalog.SortByPopularity(sample(), catalog.Descending)), names(got))
}

func TestParseFilters(t *testing.T) {
	g, err := catalog.ParseGenderFilter("")
	require.NoError(t, err)
	assert.Equal(t, catalog.GenderAll, g)

	g, err = catalog.ParseGenderFilter(" Female ")
	require.NoError(t, err)
	assert.Equal(t, "female", g)

	_, err = catalog.ParseGenderFilter("other")
	assert.ErrorIs(t, err, catalog.ErrValidationFailed)

	d, err := catalog.ParseDirection("ASC")
	require.NoError(t, err)
	assert.Equal(t, catalog.Ascending, d)

	_, err = catalog.ParseDirection("sideways")
	assert.ErrorIs(t, err, catalog.ErrValidationFailed)
}

func TestAlphabet(t *testing.T) {
	assert.Equal(t, []string{"A", "I", "N", "S", "a"}, catalog.Alphabet(sample()))
	assert.Empty(t, catalog.Alphabet(nil))
}

func TestTrending(t *testing.T) {
	records := sample()

	a := catalog.Trending(records, 4, rand.New(rand.NewSource(42)))
	b := catalog.Trending(records, 4, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
	assert.Len(t, a, 4)

	seen := map[catalog.Key]bool{}
	for _, r := range a {
		assert.False(t, seen[r.Key()], "duplicate pick %s", r.EnglishName)
		seen[r.Key()] = true
	}

	assert.Len(t, catalog.Trending(records, 100, rand.New(rand.NewSource(1))), len(records))
	assert.Empty(t, catalog.Trending(nil, 3, rand.New(rand.NewSource(1))))
}
