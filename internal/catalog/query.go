package catalog

import (
	"fmt"
	"math/rand"
	"slices"
	"sort"
	"strings"
)

// DefaultSearchLimit caps search results when the caller passes no limit.
const DefaultSearchLimit = 6

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection accepts "asc"/"desc" (and their long forms). Empty means descending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc", "descending":
		return Descending, nil
	case "asc", "ascending":
		return Ascending, nil
	}
	return "", fmt.Errorf("%w: unknown sort direction %q", ErrValidationFailed, s)
}

// FilterByGender keeps records whose gender equals filter exactly.
// "all" returns the input unchanged.
func FilterByGender(records []NameRecord, filter string) []NameRecord {
	if filter == GenderAll {
		return records
	}
	out := make([]NameRecord, 0, len(records))
	for _, r := range records {
		if string(r.Gender) == filter {
			out = append(out, r)
		}
	}
	return out
}

// FilterByInitialLetter keeps records whose English name starts with letter
// (case-sensitive). AllLetters returns the input unchanged.
func FilterByInitialLetter(records []NameRecord, letter string) []NameRecord {
	if letter == AllLetters {
		return records
	}
	out := make([]NameRecord, 0, len(records))
	for _, r := range records {
		if strings.HasPrefix(r.EnglishName, letter) {
			out = append(out, r)
		}
	}
	return out
}

// SortByPopularity returns a stably sorted copy of records.
func SortByPopularity(records []NameRecord, dir Direction) []NameRecord {
	out := slices.Clone(records)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Ascending {
			return out[i].Popularity < out[j].Popularity
		}
		return out[i].Popularity > out[j].Popularity
	})
	return out
}

const (
	tierPrefix = iota
	tierContains
	tierOther
)

// Search matches query against English name, Arabic name and meaning,
// case-insensitively. An empty query matches nothing.
//
// Results are ranked in three tiers: English name starts with the query,
// English name contains it, everything else. Input order is kept inside a
// tier and at most limit results are returned.
//
// Lowercasing is plain strings.ToLower; there is no locale-aware folding or
// Arabic normalization.
func Search(records []NameRecord, query string, limit int) []NameRecord {
	if query == "" {
		return []NameRecord{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	q := strings.ToLower(query)

	var tiers [3][]NameRecord
	for _, r := range records {
		name := strings.ToLower(r.EnglishName)
		switch {
		case strings.HasPrefix(name, q):
			tiers[tierPrefix] = append(tiers[tierPrefix], r)
		case strings.Contains(name, q):
			tiers[tierContains] = append(tiers[tierContains], r)
		case strings.Contains(strings.ToLower(r.ArabicName), q),
			strings.Contains(strings.ToLower(r.Meaning), q):
			tiers[tierOther] = append(tiers[tierOther], r)
		}
	}

	out := make([]NameRecord, 0, limit)
	for _, tier := range tiers {
		for _, r := range tier {
			if len(out) == limit {
				return out
			}
			out = append(out, r)
		}
	}
	return out
}

// Query is the browse filter state.
type Query struct {
	Gender string
	Letter string
	Order  Direction
}

// DefaultQuery lists everything, most popular first.
func DefaultQuery() Query {
	return Query{Gender: GenderAll, Letter: AllLetters, Order: Descending}
}

// Apply runs the browse pipeline: gender, then initial letter, then popularity order.
func Apply(records []NameRecord, q Query) []NameRecord {
	if q.Gender == "" {
		q.Gender = GenderAll
	}
	if q.Letter == "" {
		q.Letter = AllLetters
	}
	if q.Order == "" {
		q.Order = Descending
	}
	out := FilterByGender(records, q.Gender)
	out = FilterByInitialLetter(out, q.Letter)
	return SortByPopularity(out, q.Order)
}

// Alphabet returns the distinct first letters of the English names, sorted.
func Alphabet(records []NameRecord) []string {
	seen := make(map[string]struct{})
	var letters []string
	for _, r := range records {
		if r.EnglishName == "" {
			continue
		}
		first := string([]rune(r.EnglishName)[0])
		if _, ok := seen[first]; ok {
			continue
		}
		seen[first] = struct{}{}
		letters = append(letters, first)
	}
	sort.Strings(letters)
	return letters
}

// Trending picks n distinct records at random. The caller owns rng so the
// pick can be reproduced.
func Trending(records []NameRecord, n int, rng *rand.Rand) []NameRecord {
	if n <= 0 || len(records) == 0 {
		return []NameRecord{}
	}
	if n > len(records) {
		n = len(records)
	}
	out := make([]NameRecord, 0, n)
	for _, i := range rng.Perm(len(records))[:n] {
		out = append(out, records[i])
	}
	return out
}
