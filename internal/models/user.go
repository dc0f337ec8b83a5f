// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered user. Name falls back to Login when blank; the
// fallback is applied by the service before the row is written. The friend set
// is derived from the friendships relation, never stored on the user row.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Login     string    `gorm:"unique;not null" json:"login"`
	Name      string    `json:"name"`
	Birthday  time.Time `json:"birthday"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName returns the user's name, falling back to the login.
func (u *User) DisplayName() string {
	if u.Name == "" {
		return u.Login
	}
	return u.Name
}
