package models

import (
	"time"
)

// Review is a user's review of a film. IsPositive is the review's polarity and
// is never null. Useful is derived from review votes on read: positive votes
// minus negative votes. It is not a stored column.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Content    string    `gorm:"not null" json:"content"`
	IsPositive *bool     `gorm:"not null" json:"is_positive"`
	UserID     uint      `gorm:"not null" json:"user_id"`
	FilmID     uint      `gorm:"not null" json:"film_id"`
	Useful     int64     `gorm:"->;-:migration" json:"useful"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
	Film Film `gorm:"foreignKey:FilmID" json:"-"`
}

// TableName specifies the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// ReviewLike is a user's single standing vote on a review. Re-voting replaces
// the prior value for the (review, user) pair instead of adding a row.
type ReviewLike struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ReviewID   uint      `gorm:"not null;uniqueIndex:idx_review_voter" json:"review_id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_review_voter" json:"user_id"`
	IsPositive bool      `gorm:"not null" json:"is_positive"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Review Review `gorm:"foreignKey:ReviewID" json:"-"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for GORM
func (ReviewLike) TableName() string {
	return "review_likes"
}
