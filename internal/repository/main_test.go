package repository

import (
	"testing"
	"time"

	"reelgraph/internal/database"
	"reelgraph/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB opens a fresh in-memory database with the full schema and the
// reference catalogs.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	genres := []models.Genre{
		{ID: 1, Name: "Comedy"}, {ID: 2, Name: "Drama"}, {ID: 3, Name: "Animation"},
	}
	ratings := []models.Mpa{
		{ID: 1, Name: "G"}, {ID: 2, Name: "PG"}, {ID: 3, Name: "PG-13"},
	}
	require.NoError(t, db.Create(&genres).Error)
	require.NoError(t, db.Create(&ratings).Error)

	return db
}

func newUser(t *testing.T, db *gorm.DB, login string) models.User {
	t.Helper()
	user := models.User{
		Email:    login + "@example.com",
		Login:    login,
		Name:     login,
		Birthday: time.Date(1990, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func newFilm(t *testing.T, db *gorm.DB, name string, year int) models.Film {
	t.Helper()
	film := models.Film{
		Name:        name,
		Description: "test film",
		ReleaseDate: time.Date(year, time.May, 10, 0, 0, 0, 0, time.UTC),
		Duration:    100,
		MpaID:       1,
	}
	require.NoError(t, db.Omit("Mpa", "Genres", "Directors").Create(&film).Error)
	return film
}

func likeFilm(t *testing.T, db *gorm.DB, userID, filmID uint) {
	t.Helper()
	require.NoError(t, db.Create(&models.Like{UserID: userID, FilmID: filmID}).Error)
}
