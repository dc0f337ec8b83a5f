package repository

import (
	"context"
	"time"

	"reelgraph/internal/middleware"
	"reelgraph/internal/models"

	"gorm.io/gorm"
)

// FeedRepository records and reads the append-only activity log.
type FeedRepository interface {
	Record(ctx context.Context, userID uint, eventType models.FeedEventType, op models.FeedOperation, entityID uint) error
	ForUser(ctx context.Context, userID uint) ([]models.FeedEvent, error)
}

// feedRepository implements FeedRepository
type feedRepository struct {
	db *gorm.DB
}

// NewFeedRepository creates a new feed repository. Pass a transaction handle
// to make the append part of the caller's mutation.
func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) Record(ctx context.Context, userID uint, eventType models.FeedEventType, op models.FeedOperation, entityID uint) error {
	event := models.FeedEvent{
		UserID:    userID,
		EventType: eventType,
		Operation: op,
		EntityID:  entityID,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := r.db.WithContext(ctx).Create(&event).Error; err != nil {
		return models.NewInternalError(err)
	}
	middleware.FeedEventsWritten.WithLabelValues(string(eventType), string(op)).Inc()
	return nil
}

func (r *feedRepository) ForUser(ctx context.Context, userID uint) ([]models.FeedEvent, error) {
	var events []models.FeedEvent
	// Newest first; id breaks ties for events written in the same millisecond.
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Find(&events).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}
