package repository

import (
	"context"
	"testing"

	"reelgraph/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeIsDirected(t *testing.T) {
	db := setupDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	a := newUser(t, db, "a")
	b := newUser(t, db, "b")

	require.NoError(t, repo.AddEdge(ctx, a.ID, b.ID))

	aFriends, err := repo.Friends(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, aFriends, 1)
	assert.Equal(t, b.ID, aFriends[0].ID)

	// The reverse edge must not exist.
	bFriends, err := repo.Friends(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, bFriends)
}

func TestAddEdgeDuplicate(t *testing.T) {
	db := setupDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	a := newUser(t, db, "a")
	b := newUser(t, db, "b")

	require.NoError(t, repo.AddEdge(ctx, a.ID, b.ID))
	err := repo.AddEdge(ctx, a.ID, b.ID)
	requireAppError(t, err, models.CodeBadRequest)
}

func TestOppositeEdgesCoexist(t *testing.T) {
	db := setupDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	a := newUser(t, db, "a")
	b := newUser(t, db, "b")

	require.NoError(t, repo.AddEdge(ctx, a.ID, b.ID))
	require.NoError(t, repo.AddEdge(ctx, b.ID, a.ID))

	ids, err := repo.FriendIDs(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID}, ids)
}

func TestRemoveEdgeMissing(t *testing.T) {
	db := setupDB(t)
	repo := NewFriendRepository(db)

	a := newUser(t, db, "a")
	b := newUser(t, db, "b")

	err := repo.RemoveEdge(context.Background(), a.ID, b.ID)
	requireAppError(t, err, models.CodeNotFound)
}

func TestRemoveEdgeLeavesReverse(t *testing.T) {
	db := setupDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	a := newUser(t, db, "a")
	b := newUser(t, db, "b")

	require.NoError(t, repo.AddEdge(ctx, a.ID, b.ID))
	require.NoError(t, repo.AddEdge(ctx, b.ID, a.ID))
	require.NoError(t, repo.RemoveEdge(ctx, a.ID, b.ID))

	bFriends, err := repo.Friends(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, bFriends, 1)
	assert.Equal(t, a.ID, bFriends[0].ID)
}

func TestCommonFriends(t *testing.T) {
	db := setupDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()

	a := newUser(t, db, "a")
	b := newUser(t, db, "b")
	shared := newUser(t, db, "shared")
	onlyA := newUser(t, db, "onlya")

	require.NoError(t, repo.AddEdge(ctx, a.ID, shared.ID))
	require.NoError(t, repo.AddEdge(ctx, b.ID, shared.ID))
	require.NoError(t, repo.AddEdge(ctx, a.ID, onlyA.ID))

	common, err := repo.CommonFriends(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.Len(t, common, 1)
	assert.Equal(t, shared.ID, common[0].ID)
}

func TestCommonFriendsEmpty(t *testing.T) {
	db := setupDB(t)
	repo := NewFriendRepository(db)

	a := newUser(t, db, "a")
	b := newUser(t, db, "b")

	common, err := repo.CommonFriends(context.Background(), a.ID, b.ID)
	require.NoError(t, err)
	assert.Empty(t, common)
}
