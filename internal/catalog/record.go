// Package catalog holds the static name dataset and the pure query engine
// (filter, sort, search) that runs over it.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidationFailed marks malformed user input: an unknown gender filter,
// sort direction or a bad catalog entry.
var ErrValidationFailed = errors.New("validation failed")

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Unisex Gender = "unisex"
)

// GenderAll is the filter sentinel that disables gender filtering.
const GenderAll = "all"

// AllLetters is the filter sentinel that disables initial-letter filtering.
const AllLetters = "All"

func (g Gender) Valid() bool {
	switch g {
	case Male, Female, Unisex:
		return true
	}
	return false
}

// NameRecord is a single catalog entry. Records are treated as immutable
// values once the catalog is loaded.
type NameRecord struct {
	EnglishName string  `json:"english_name" yaml:"english_name"`
	ArabicName  string  `json:"arabic_name" yaml:"arabic_name"`
	Meaning     string  `json:"meaning" yaml:"meaning"`
	Gender      Gender  `json:"gender" yaml:"gender"`
	Popularity  float64 `json:"popularity" yaml:"popularity"`
}

// Key is the catalog identity of a record.
//
// Favorites compare on EnglishName alone, so two records that share an
// English name but differ in gender count as the same favorite.
type Key struct {
	EnglishName string
	Gender      Gender
}

func (r NameRecord) Key() Key {
	return Key{EnglishName: r.EnglishName, Gender: r.Gender}
}

func (r NameRecord) validate() error {
	if strings.TrimSpace(r.EnglishName) == "" {
		return fmt.Errorf("%w: english_name is required", ErrValidationFailed)
	}
	if !r.Gender.Valid() {
		return fmt.Errorf("%w: %q has unknown gender %q", ErrValidationFailed, r.EnglishName, r.Gender)
	}
	return nil
}

// ParseGenderFilter normalizes a user-supplied gender filter. Empty means "all".
func ParseGenderFilter(s string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == GenderAll {
		return GenderAll, nil
	}
	if !Gender(v).Valid() {
		return "", fmt.Errorf("%w: unknown gender %q", ErrValidationFailed, s)
	}
	return v, nil
}
