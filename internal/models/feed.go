package models

// FeedEventType classifies what kind of entity a feed event is about.
type FeedEventType string

// FeedOperation classifies what happened to the entity.
type FeedOperation string

const (
	// FeedEventLike covers film like mutations.
	FeedEventLike FeedEventType = "LIKE"
	// FeedEventReview covers review mutations.
	FeedEventReview FeedEventType = "REVIEW"
	// FeedEventFriend covers friend edge mutations.
	FeedEventFriend FeedEventType = "FRIEND"

	// FeedOpAdd records a creation.
	FeedOpAdd FeedOperation = "ADD"
	// FeedOpRemove records a removal.
	FeedOpRemove FeedOperation = "REMOVE"
	// FeedOpUpdate records an in-place change.
	FeedOpUpdate FeedOperation = "UPDATE"
)

// FeedEvent is one row of a user's append-only activity log. Timestamp is
// server-assigned unix milliseconds at write time. Rows are never updated or
// deleted; the feed is consumed newest-first.
type FeedEvent struct {
	ID        uint          `gorm:"primaryKey" json:"event_id"`
	UserID    uint          `gorm:"not null;index" json:"user_id"`
	EventType FeedEventType `gorm:"type:varchar(16);not null" json:"event_type"`
	Operation FeedOperation `gorm:"type:varchar(16);not null" json:"operation"`
	EntityID  uint          `gorm:"not null" json:"entity_id"`
	Timestamp int64         `gorm:"not null;index" json:"timestamp"`
}

// TableName specifies the table name for GORM
func (FeedEvent) TableName() string {
	return "feed_events"
}
