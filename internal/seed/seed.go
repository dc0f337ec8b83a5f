// Package seed provides database seeding utilities for development and testing.
package seed

import (
	_ "embed"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"reelgraph/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumFilms    int
	ShouldClean bool
}

//go:embed catalog.yml
var catalogYAML []byte

type catalogFile struct {
	Genres []models.Genre `yaml:"genres"`
	Mpa    []models.Mpa   `yaml:"mpa"`
}

// Catalogs seeds the fixed genre and MPA reference tables. It is idempotent:
// existing rows are left untouched.
func Catalogs(db *gorm.DB) error {
	var catalog catalogFile
	if err := yaml.Unmarshal(catalogYAML, &catalog); err != nil {
		return fmt.Errorf("failed to parse catalog data: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&catalog.Genres).Error; err != nil {
			return fmt.Errorf("failed to seed genres: %w", err)
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&catalog.Mpa).Error; err != nil {
			return fmt.Errorf("failed to seed mpa ratings: %w", err)
		}
		return nil
	})
}

// Run seeds the database with fake users, films, likes, friendships, and
// reviews for development.
func Run(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())

	if opts.NumUsers <= 0 {
		opts.NumUsers = 20
	}
	if opts.NumFilms <= 0 {
		opts.NumFilms = 50
	}

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return err
		}
	}

	if err := Catalogs(db); err != nil {
		return err
	}

	users, err := seedUsers(db, opts.NumUsers)
	if err != nil {
		return err
	}
	films, err := seedFilms(db, opts.NumFilms)
	if err != nil {
		return err
	}
	if err := seedLikes(db, users, films); err != nil {
		return err
	}
	if err := seedFriendships(db, users); err != nil {
		return err
	}
	if err := seedReviews(db, users, films); err != nil {
		return err
	}

	log.Printf("Seeded %d users and %d films", len(users), len(films))
	return nil
}

func clean(db *gorm.DB) error {
	// Delete in dependency order.
	for _, table := range []string{
		"feed_events", "review_likes", "reviews", "likes", "friendships",
		"film_genres", "film_directors", "films", "directors", "users",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clean %s: %w", table, err)
		}
	}
	return nil
}

func seedUsers(db *gorm.DB, n int) ([]models.User, error) {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		login := strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", i)
		users = append(users, models.User{
			Email:    fmt.Sprintf("%s@%s", login, gofakeit.DomainName()),
			Login:    login,
			Name:     gofakeit.Name(),
			Birthday: gofakeit.DateRange(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)),
		})
	}
	if err := db.Create(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}
	return users, nil
}

func seedFilms(db *gorm.DB, n int) ([]models.Film, error) {
	directors := make([]models.Director, 0, n/5+1)
	for i := 0; i < n/5+1; i++ {
		directors = append(directors, models.Director{
			Name: fmt.Sprintf("%s %d", gofakeit.Name(), i),
		})
	}
	if err := db.Create(&directors).Error; err != nil {
		return nil, fmt.Errorf("failed to seed directors: %w", err)
	}

	var genres []models.Genre
	if err := db.Find(&genres).Error; err != nil {
		return nil, err
	}
	var ratings []models.Mpa
	if err := db.Find(&ratings).Error; err != nil {
		return nil, err
	}

	films := make([]models.Film, 0, n)
	for i := 0; i < n; i++ {
		film := models.Film{
			Name:        gofakeit.MovieName(),
			Description: gofakeit.Sentence(8),
			ReleaseDate: gofakeit.DateRange(models.EarliestReleaseDate, time.Now()),
			Duration:    int64(rand.Intn(160) + 20),
			MpaID:       ratings[rand.Intn(len(ratings))].ID,
			Genres:      []models.Genre{genres[rand.Intn(len(genres))]},
			Directors:   []models.Director{directors[rand.Intn(len(directors))]},
		}
		films = append(films, film)
	}
	if err := db.Create(&films).Error; err != nil {
		return nil, fmt.Errorf("failed to seed films: %w", err)
	}
	return films, nil
}

func seedLikes(db *gorm.DB, users []models.User, films []models.Film) error {
	var likes []models.Like
	for _, u := range users {
		seen := make(map[uint]bool)
		for i := 0; i < rand.Intn(8); i++ {
			f := films[rand.Intn(len(films))]
			if seen[f.ID] {
				continue
			}
			seen[f.ID] = true
			likes = append(likes, models.Like{UserID: u.ID, FilmID: f.ID})
		}
	}
	if len(likes) == 0 {
		return nil
	}
	if err := db.Create(&likes).Error; err != nil {
		return fmt.Errorf("failed to seed likes: %w", err)
	}
	return nil
}

func seedFriendships(db *gorm.DB, users []models.User) error {
	var edges []models.Friendship
	for _, u := range users {
		seen := make(map[uint]bool)
		for i := 0; i < rand.Intn(4); i++ {
			other := users[rand.Intn(len(users))]
			if other.ID == u.ID || seen[other.ID] {
				continue
			}
			seen[other.ID] = true
			edges = append(edges, models.Friendship{SenderID: u.ID, AddresseeID: other.ID})
		}
	}
	if len(edges) == 0 {
		return nil
	}
	if err := db.Create(&edges).Error; err != nil {
		return fmt.Errorf("failed to seed friendships: %w", err)
	}
	return nil
}

func seedReviews(db *gorm.DB, users []models.User, films []models.Film) error {
	var reviews []models.Review
	for _, u := range users {
		if rand.Intn(3) != 0 {
			continue
		}
		positive := rand.Intn(2) == 0
		reviews = append(reviews, models.Review{
			Content:    gofakeit.Sentence(12),
			IsPositive: &positive,
			UserID:     u.ID,
			FilmID:     films[rand.Intn(len(films))].ID,
		})
	}
	if len(reviews) == 0 {
		return nil
	}
	if err := db.Create(&reviews).Error; err != nil {
		return fmt.Errorf("failed to seed reviews: %w", err)
	}
	return nil
}
