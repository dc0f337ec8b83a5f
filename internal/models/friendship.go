package models

import (
	"time"
)

// Friendship is a directed friend edge from sender to addressee. The edge is
// never mirrored: "friends of X" returns only users X has added, and mutual
// friendship shows up as two independent rows. Self-loops are rejected before
// any store access.
type Friendship struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SenderID    uint      `gorm:"not null;uniqueIndex:idx_friendship_edge" json:"sender_id"`
	AddresseeID uint      `gorm:"not null;uniqueIndex:idx_friendship_edge" json:"addressee_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Sender    User `gorm:"foreignKey:SenderID" json:"-"`
	Addressee User `gorm:"foreignKey:AddresseeID" json:"-"`
}

// TableName specifies the table name for GORM
func (Friendship) TableName() string {
	return "friendships"
}
