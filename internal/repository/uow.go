package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles transaction-scoped repository handles. Every handle in
// one bundle shares the same underlying transaction.
type Repositories struct {
	Users     UserRepository
	Films     FilmRepository
	Friends   FriendRepository
	Reviews   ReviewRepository
	Directors DirectorRepository
	Catalog   CatalogRepository
	Graph     GraphRepository
	Feed      FeedRepository
}

// UnitOfWork runs a function against a transaction-scoped repository bundle.
// The transaction commits when fn returns nil and rolls back otherwise, so a
// failed feed append aborts the mutation it describes.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(r Repositories) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a UnitOfWork backed by gorm transactions.
func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(r Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// NewRepositories builds a repository bundle over one db handle.
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:     NewUserRepository(db),
		Films:     NewFilmRepository(db),
		Friends:   NewFriendRepository(db),
		Reviews:   NewReviewRepository(db),
		Directors: NewDirectorRepository(db),
		Catalog:   NewCatalogRepository(db),
		Graph:     NewGraphRepository(db),
		Feed:      NewFeedRepository(db),
	}
}
