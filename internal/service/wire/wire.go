// Package wire converts domain values to API messages.
package wire

import (
	"github.com/oggyb/noor-names/internal/catalog"
	pb "github.com/oggyb/noor-names/internal/proto/names"
)

func Name(r catalog.NameRecord, favorite bool) *pb.Name {
	return &pb.Name{
		EnglishName: r.EnglishName,
		ArabicName:  r.ArabicName,
		Meaning:     r.Meaning,
		Gender:      string(r.Gender),
		Popularity:  r.Popularity,
		Favorite:    favorite,
	}
}

// Names converts records; isFavorite may be nil for anonymous callers.
func Names(records []catalog.NameRecord, isFavorite func(catalog.NameRecord) bool) []*pb.Name {
	out := make([]*pb.Name, 0, len(records))
	for _, r := range records {
		out = append(out, Name(r, isFavorite != nil && isFavorite(r)))
	}
	return out
}
