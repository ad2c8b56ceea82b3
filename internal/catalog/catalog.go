package catalog

import (
	"math/rand"
	"slices"
)

// Catalog is the read-only name collection loaded at startup. It is safe for
// concurrent use because nothing mutates it after New.
type Catalog struct {
	records     []NameRecord
	byKey       map[Key]int
	searchLimit int
}

// New copies records into a catalog. Duplicate (english_name, gender) pairs
// are rejected by the loader, not here; the last one wins in Lookup.
func New(records []NameRecord, searchLimit int) *Catalog {
	c := &Catalog{
		records:     slices.Clone(records),
		byKey:       make(map[Key]int, len(records)),
		searchLimit: searchLimit,
	}
	for i, r := range c.records {
		c.byKey[r.Key()] = i
	}
	return c
}

func (c *Catalog) Len() int { return len(c.records) }

// All returns a copy of every record in load order.
func (c *Catalog) All() []NameRecord { return slices.Clone(c.records) }

func (c *Catalog) Browse(q Query) []NameRecord { return Apply(c.records, q) }

func (c *Catalog) Search(query string) []NameRecord {
	return Search(c.records, query, c.searchLimit)
}

func (c *Catalog) Trending(n int, rng *rand.Rand) []NameRecord {
	return Trending(c.records, n, rng)
}

func (c *Catalog) Alphabet() []string { return Alphabet(c.records) }

// Lookup finds a record by its catalog identity.
func (c *Catalog) Lookup(englishName string, gender Gender) (NameRecord, bool) {
	i, ok := c.byKey[Key{EnglishName: englishName, Gender: gender}]
	if !ok {
		return NameRecord{}, false
	}
	return c.records[i], true
}
