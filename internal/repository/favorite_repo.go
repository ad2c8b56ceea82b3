package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/oggyb/noor-names/internal/catalog"
	"github.com/oggyb/noor-names/internal/db"
)

// FavoriteRepository is the remote favorites store: one row per
// (user, name snapshot). It satisfies favorites.Store.
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new repository bound to the given DB connection.
func NewFavoriteRepository(database *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: database}
}

// byEnglishName matches rows whose snapshot carries the given english_name.
func byEnglishName(englishName string) *datatypes.JSONQueryExpression {
	return datatypes.JSONQuery("name_data").Equals(englishName, "english_name")
}

// List returns every favorite snapshot of a user in the order they were added.
//
// Example:
//
//	repo.List(ctx, "3f1c...") // -> [{Yusuf ...} {Maryam ...}]
func (r *FavoriteRepository) List(ctx context.Context, userID string) ([]catalog.NameRecord, error) {
	var rows []db.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]catalog.NameRecord, 0, len(rows))
	for _, f := range rows {
		out = append(out, f.NameData.Data())
	}
	return out, nil
}

// Insert stores a snapshot of rec for the user. It does not check for an
// existing favorite with the same name; callers test membership first.
func (r *FavoriteRepository) Insert(ctx context.Context, userID string, rec catalog.NameRecord) error {
	fav := db.Favorite{
		UserID:   userID,
		NameData: datatypes.NewJSONType(rec),
	}
	return r.db.WithContext(ctx).Create(&fav).Error
}

// Delete removes every favorite of the user whose snapshot has the given
// English name, whatever its gender.
func (r *FavoriteRepository) Delete(ctx context.Context, userID, englishName string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(byEnglishName(englishName)).
		Delete(&db.Favorite{}).Error
}

// CountByName returns how many favorites across all users carry the given
// English name. Used as the fallback behind the Redis counter.
func (r *FavoriteRepository) CountByName(ctx context.Context, englishName string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Favorite{}).
		Where(byEnglishName(englishName)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
