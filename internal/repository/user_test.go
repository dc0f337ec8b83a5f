package repository

import (
	"context"
	"testing"
	"time"

	"reelgraph/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateDuplicateLogin(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &models.User{Email: "one@example.com", Login: "shared"}
	require.NoError(t, repo.Create(ctx, first))

	err := repo.Create(ctx, &models.User{Email: "two@example.com", Login: "shared"})
	requireAppError(t, err, models.CodeBadRequest)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Email: "same@example.com", Login: "a"}))

	err := repo.Create(ctx, &models.User{Email: "same@example.com", Login: "b"})
	requireAppError(t, err, models.CodeBadRequest)
}

func TestUserUpdatePersistsFields(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := newUser(t, db, "before")
	birthday := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Update(ctx, &models.User{
		ID:       u.ID,
		Email:    "after@example.com",
		Login:    "after",
		Name:     "After",
		Birthday: birthday,
	}))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "after@example.com", got.Email)
	assert.Equal(t, "after", got.Login)
	assert.Equal(t, "After", got.Name)
	assert.True(t, got.Birthday.Equal(birthday))
}

func TestUserUpdateMissing(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	err := repo.Update(context.Background(), &models.User{
		ID:    999,
		Email: "ghost@example.com",
		Login: "ghost",
	})
	requireAppError(t, err, models.CodeNotFound)
}

func TestUserDeleteCascadesRelations(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	friendRepo := NewFriendRepository(db)
	ctx := context.Background()

	u := newUser(t, db, "leaving")
	other := newUser(t, db, "staying")
	film := newFilm(t, db, "Liked", 2010)

	likeFilm(t, db, u.ID, film.ID)
	require.NoError(t, friendRepo.AddEdge(ctx, u.ID, other.ID))
	require.NoError(t, friendRepo.AddEdge(ctx, other.ID, u.ID))

	require.NoError(t, repo.Delete(ctx, u.ID))

	var likeCount, friendCount int64
	require.NoError(t, db.Model(&models.Like{}).Where("user_id = ?", u.ID).Count(&likeCount).Error)
	require.NoError(t, db.Model(&models.Friendship{}).
		Where("sender_id = ? OR addressee_id = ?", u.ID, u.ID).Count(&friendCount).Error)
	assert.Zero(t, likeCount)
	assert.Zero(t, friendCount)

	_, err := repo.GetByID(ctx, u.ID)
	requireAppError(t, err, models.CodeNotFound)
}

func TestUserDeleteMissing(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	err := repo.Delete(context.Background(), 999)
	requireAppError(t, err, models.CodeNotFound)
}

func TestUserGetByIDsSkipsUnknown(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	a := newUser(t, db, "a")
	b := newUser(t, db, "b")

	users, err := repo.GetByIDs(ctx, []uint{b.ID, a.ID, 999})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, a.ID, users[0].ID)
	assert.Equal(t, b.ID, users[1].ID)

	empty, err := repo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUserList(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	newUser(t, db, "first")
	newUser(t, db, "second")

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "first", users[0].Login)
}
