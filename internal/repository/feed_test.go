package repository

import (
	"context"
	"testing"

	"reelgraph/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedNewestFirst(t *testing.T) {
	db := setupDB(t)
	repo := NewFeedRepository(db)
	ctx := context.Background()

	u := newUser(t, db, "u")

	require.NoError(t, repo.Record(ctx, u.ID, models.FeedEventLike, models.FeedOpAdd, 10))
	require.NoError(t, repo.Record(ctx, u.ID, models.FeedEventLike, models.FeedOpRemove, 10))

	events, err := repo.ForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Both writes can land in the same millisecond; the id tie-break keeps
	// the later append first.
	assert.Equal(t, models.FeedOpRemove, events[0].Operation)
	assert.Equal(t, models.FeedOpAdd, events[1].Operation)
}

func TestFeedScopedToUser(t *testing.T) {
	db := setupDB(t)
	repo := NewFeedRepository(db)
	ctx := context.Background()

	a := newUser(t, db, "a")
	b := newUser(t, db, "b")

	require.NoError(t, repo.Record(ctx, a.ID, models.FeedEventFriend, models.FeedOpAdd, b.ID))
	require.NoError(t, repo.Record(ctx, b.ID, models.FeedEventFriend, models.FeedOpAdd, a.ID))

	events, err := repo.ForUser(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, a.ID, events[0].UserID)
	assert.Equal(t, b.ID, events[0].EntityID)
}

func TestFeedTimestampAssigned(t *testing.T) {
	db := setupDB(t)
	repo := NewFeedRepository(db)
	ctx := context.Background()

	u := newUser(t, db, "u")
	require.NoError(t, repo.Record(ctx, u.ID, models.FeedEventReview, models.FeedOpAdd, 1))

	events, err := repo.ForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Positive(t, events[0].Timestamp)
	assert.Positive(t, events[0].ID)
}

func TestFeedEmptyForQuietUser(t *testing.T) {
	db := setupDB(t)
	repo := NewFeedRepository(db)

	u := newUser(t, db, "quiet")
	events, err := repo.ForUser(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Empty(t, events)
}
