package db

import (
	"time"

	"gorm.io/datatypes"

	"github.com/oggyb/noor-names/internal/catalog"
)

// User is an account of the authentication collaborator.
// ID is a UUID string so it can be handed out as an opaque identity.
type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Confirmed    bool   `gorm:"not null;default:false"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Favorite is a user's saved name.
//
// NameData is a full snapshot of the catalog record taken when the favorite
// was added, so later catalog edits do not rewrite existing favorites.
// Lookups by name go through NameData->english_name.
//
// Indexes:
//   - idx_favorites_user(user_id)
//     Loads every favorite of a user on sign-in.
type Favorite struct {
	ID        uint64                                 `gorm:"primaryKey;autoIncrement"`
	UserID    string                                 `gorm:"size:36;not null;index:idx_favorites_user"`
	NameData  datatypes.JSONType[catalog.NameRecord] `gorm:"not null"`
	CreatedAt time.Time                              `gorm:"autoCreateTime"`
}
