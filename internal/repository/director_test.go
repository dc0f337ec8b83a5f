package repository

import (
	"context"
	"testing"

	"reelgraph/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorCreateDuplicateName(t *testing.T) {
	db := setupDB(t)
	repo := NewDirectorRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Director{Name: "Kubrick"}))

	err := repo.Create(ctx, &models.Director{Name: "Kubrick"})
	requireAppError(t, err, models.CodeBadRequest)
}

func TestDirectorUpdate(t *testing.T) {
	db := setupDB(t)
	repo := NewDirectorRepository(db)
	ctx := context.Background()

	d := &models.Director{Name: "Before"}
	require.NoError(t, repo.Create(ctx, d))

	require.NoError(t, repo.Update(ctx, &models.Director{ID: d.ID, Name: "After"}))

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
}

func TestDirectorUpdateMissing(t *testing.T) {
	db := setupDB(t)
	repo := NewDirectorRepository(db)

	err := repo.Update(context.Background(), &models.Director{ID: 999, Name: "Nobody"})
	requireAppError(t, err, models.CodeNotFound)
}

func TestDirectorDeleteDetachesFilms(t *testing.T) {
	db := setupDB(t)
	repo := NewDirectorRepository(db)
	ctx := context.Background()

	d := &models.Director{Name: "Detached"}
	require.NoError(t, repo.Create(ctx, d))

	film := newFilm(t, db, "Directed", 2005)
	require.NoError(t, db.Exec(
		"INSERT INTO film_directors (film_id, director_id) VALUES (?, ?)", film.ID, d.ID).Error)

	require.NoError(t, repo.Delete(ctx, d.ID))

	var linkCount int64
	require.NoError(t, db.Table("film_directors").
		Where("director_id = ?", d.ID).Count(&linkCount).Error)
	assert.Zero(t, linkCount)

	// The film itself survives the director removal.
	filmRepo := NewFilmRepository(db)
	_, err := filmRepo.GetByID(ctx, film.ID)
	require.NoError(t, err)
}

func TestDirectorDeleteMissing(t *testing.T) {
	db := setupDB(t)
	repo := NewDirectorRepository(db)

	err := repo.Delete(context.Background(), 999)
	requireAppError(t, err, models.CodeNotFound)
}

func TestDirectorList(t *testing.T) {
	db := setupDB(t)
	repo := NewDirectorRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Director{Name: "First"}))
	require.NoError(t, repo.Create(ctx, &models.Director{Name: "Second"}))

	directors, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, directors, 2)
	assert.Equal(t, "First", directors[0].Name)
}
