package db_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oggyb/noor-names/internal/catalog"
	"github.com/oggyb/noor-names/internal/db"
	"github.com/oggyb/noor-names/internal/logger"
)

func TestSeedDemoData(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.Migrate(database))

	records, err := catalog.LoadFile("")
	require.NoError(t, err)

	// run twice: the second run must wipe the first
	require.NoError(t, db.SeedDemoData(database, records, 3, logger.Discard()))
	require.NoError(t, db.SeedDemoData(database, records, 3, logger.Discard()))

	var users []db.User
	require.NoError(t, database.Find(&users).Error)
	require.Len(t, users, 3)
	for _, u := range users {
		assert.True(t, u.Confirmed)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(db.DemoPassword)))
	}

	var favs []db.Favorite
	require.NoError(t, database.Find(&favs).Error)
	assert.Len(t, favs, 15)

	perUser := map[string]map[string]bool{}
	for _, f := range favs {
		if perUser[f.UserID] == nil {
			perUser[f.UserID] = map[string]bool{}
		}
		name := f.NameData.Data().EnglishName
		assert.False(t, perUser[f.UserID][name], "duplicate favorite %s", name)
		perUser[f.UserID][name] = true
	}
}
