package db

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/oggyb/noor-names/internal/catalog"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password"

// SeedDemoData resets the database and populates it with demo accounts and favorites.
//
// Behavior:
//  1. Clears existing data in `favorites` and `users`.
//  2. Creates `users` confirmed accounts parent1@example.com … parentN@example.com.
//  3. Gives each account up to 5 random favorites from the catalog, unique by English name.
//
// Compatible with both MySQL and SQLite.
func SeedDemoData(db *gorm.DB, records []catalog.NameRecord, users int, logger *slog.Logger) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	if err := db.Exec("DELETE FROM favorites").Error; err != nil {
		return fmt.Errorf("failed to clear favorites: %w", err)
	}
	if err := db.Exec("DELETE FROM users").Error; err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}
	if db.Dialector.Name() == "sqlite" {
		db.Exec("DELETE FROM sqlite_sequence WHERE name = 'favorites'")
	}
	logger.Info("cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	favoritesSeeded := 0
	for i := 1; i <= users; i++ {
		user := User{
			ID:           uuid.NewString(),
			Email:        fmt.Sprintf("parent%d@example.com", i),
			PasswordHash: string(hash),
			Confirmed:    true,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}

		seen := map[string]bool{}
		for _, idx := range r.Perm(len(records)) {
			if len(seen) == 5 {
				break
			}
			rec := records[idx]
			if seen[rec.EnglishName] {
				continue
			}
			seen[rec.EnglishName] = true

			fav := Favorite{UserID: user.ID, NameData: datatypes.NewJSONType(rec)}
			if err := db.Create(&fav).Error; err != nil {
				return fmt.Errorf("failed to seed favorite: %w", err)
			}
			favoritesSeeded++
		}
	}

	logger.Info("seeded demo data", "users", users, "favorites", favoritesSeeded)
	return nil
}
