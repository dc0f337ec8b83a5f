// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// EarliestReleaseDate is the release date of the first publicly screened film.
// No film in the catalog may predate it.
var EarliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

// MaxDescriptionLength bounds a film's description.
const MaxDescriptionLength = 200

// Mpa is an MPA age rating (G, PG, PG-13, R, NC-17).
type Mpa struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

// TableName specifies the table name for GORM
func (Mpa) TableName() string {
	return "mpa_ratings"
}

// Genre is a film genre from the fixed reference catalog.
type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

// Director represents a film director. Unique by name.
type Director struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

// Film represents a catalog entry. The genre and director sets are unordered
// and duplicate-free; updates replace both sets wholesale. Like data is
// authoritative in the likes relation, never on the film row itself.
type Film struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"size:200" json:"description"`
	ReleaseDate time.Time `gorm:"not null" json:"release_date"`
	Duration    int64     `gorm:"not null" json:"duration"`
	MpaID       uint      `gorm:"not null" json:"mpa_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Mpa       Mpa        `gorm:"foreignKey:MpaID" json:"mpa"`
	Genres    []Genre    `gorm:"many2many:film_genres" json:"genres"`
	Directors []Director `gorm:"many2many:film_directors" json:"directors"`
}

// ReleaseYear returns the year component of the film's release date.
func (f *Film) ReleaseYear() int {
	return f.ReleaseDate.Year()
}
