package service

import (
	"context"

	"reelgraph/internal/models"
	"reelgraph/internal/repository"
)

// Hand-rolled repository stubs shared by the service tests. Each noop
// constructor returns permissive defaults; tests override the functions they
// care about.

type userRepoStub struct {
	createFn   func(context.Context, *models.User) error
	getByIDFn  func(context.Context, uint) (*models.User, error)
	getByIDsFn func(context.Context, []uint) ([]models.User, error)
	existsFn   func(context.Context, uint) (bool, error)
	updateFn   func(context.Context, *models.User) error
	deleteFn   func(context.Context, uint) error
	listFn     func(context.Context) ([]models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:   func(context.Context, *models.User) error { return nil },
		getByIDFn:  func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByIDsFn: func(context.Context, []uint) ([]models.User, error) { return nil, nil },
		existsFn:   func(context.Context, uint) (bool, error) { return true, nil },
		updateFn:   func(context.Context, *models.User) error { return nil },
		deleteFn:   func(context.Context, uint) error { return nil },
		listFn:     func(context.Context) ([]models.User, error) { return nil, nil },
	}
}

type filmRepoStub struct {
	createFn        func(context.Context, *models.Film) error
	getByIDFn       func(context.Context, uint) (*models.Film, error)
	getByIDsFn      func(context.Context, []uint) ([]models.Film, error)
	existsFn        func(context.Context, uint) (bool, error)
	updateFn        func(context.Context, *models.Film) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context) ([]models.Film, error)
	searchFilmsFn   func(context.Context, string, bool, bool) ([]models.Film, error)
	topFilmsFn      func(context.Context, int, *uint, *uint) ([]models.Film, error)
	directorFilmsFn func(context.Context, uint, repository.FilmSort) ([]models.Film, error)
	commonFilmsFn   func(context.Context, uint, uint) ([]models.Film, error)
	addLikeFn       func(context.Context, uint, uint) error
	removeLikeFn    func(context.Context, uint, uint) error
}

func (s *filmRepoStub) Create(ctx context.Context, film *models.Film) error {
	return s.createFn(ctx, film)
}
func (s *filmRepoStub) GetByID(ctx context.Context, id uint) (*models.Film, error) {
	return s.getByIDFn(ctx, id)
}
func (s *filmRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]models.Film, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *filmRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *filmRepoStub) Update(ctx context.Context, film *models.Film) error {
	return s.updateFn(ctx, film)
}
func (s *filmRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *filmRepoStub) List(ctx context.Context) ([]models.Film, error) {
	return s.listFn(ctx)
}
func (s *filmRepoStub) SearchFilms(ctx context.Context, query string, byTitle, byDirector bool) ([]models.Film, error) {
	return s.searchFilmsFn(ctx, query, byTitle, byDirector)
}
func (s *filmRepoStub) TopFilms(ctx context.Context, count int, genreID, year *uint) ([]models.Film, error) {
	return s.topFilmsFn(ctx, count, genreID, year)
}
func (s *filmRepoStub) DirectorFilms(ctx context.Context, directorID uint, sortBy repository.FilmSort) ([]models.Film, error) {
	return s.directorFilmsFn(ctx, directorID, sortBy)
}
func (s *filmRepoStub) CommonFilms(ctx context.Context, userID, friendID uint) ([]models.Film, error) {
	return s.commonFilmsFn(ctx, userID, friendID)
}
func (s *filmRepoStub) AddLike(ctx context.Context, userID, filmID uint) error {
	return s.addLikeFn(ctx, userID, filmID)
}
func (s *filmRepoStub) RemoveLike(ctx context.Context, userID, filmID uint) error {
	return s.removeLikeFn(ctx, userID, filmID)
}

func noopFilmRepo() *filmRepoStub {
	return &filmRepoStub{
		createFn:        func(context.Context, *models.Film) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.Film, error) { return &models.Film{ID: id}, nil },
		getByIDsFn:      func(context.Context, []uint) ([]models.Film, error) { return nil, nil },
		existsFn:        func(context.Context, uint) (bool, error) { return true, nil },
		updateFn:        func(context.Context, *models.Film) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		listFn:          func(context.Context) ([]models.Film, error) { return nil, nil },
		searchFilmsFn:   func(context.Context, string, bool, bool) ([]models.Film, error) { return nil, nil },
		topFilmsFn:      func(context.Context, int, *uint, *uint) ([]models.Film, error) { return nil, nil },
		directorFilmsFn: func(context.Context, uint, repository.FilmSort) ([]models.Film, error) { return nil, nil },
		commonFilmsFn:   func(context.Context, uint, uint) ([]models.Film, error) { return nil, nil },
		addLikeFn:       func(context.Context, uint, uint) error { return nil },
		removeLikeFn:    func(context.Context, uint, uint) error { return nil },
	}
}

type friendRepoStub struct {
	addEdgeFn       func(context.Context, uint, uint) error
	removeEdgeFn    func(context.Context, uint, uint) error
	friendsFn       func(context.Context, uint) ([]models.User, error)
	friendIDsFn     func(context.Context, uint) ([]uint, error)
	commonFriendsFn func(context.Context, uint, uint) ([]models.User, error)
}

func (s *friendRepoStub) AddEdge(ctx context.Context, senderID, addresseeID uint) error {
	return s.addEdgeFn(ctx, senderID, addresseeID)
}
func (s *friendRepoStub) RemoveEdge(ctx context.Context, senderID, addresseeID uint) error {
	return s.removeEdgeFn(ctx, senderID, addresseeID)
}
func (s *friendRepoStub) Friends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.friendsFn(ctx, userID)
}
func (s *friendRepoStub) FriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.friendIDsFn(ctx, userID)
}
func (s *friendRepoStub) CommonFriends(ctx context.Context, userID, friendID uint) ([]models.User, error) {
	return s.commonFriendsFn(ctx, userID, friendID)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		addEdgeFn:       func(context.Context, uint, uint) error { return nil },
		removeEdgeFn:    func(context.Context, uint, uint) error { return nil },
		friendsFn:       func(context.Context, uint) ([]models.User, error) { return nil, nil },
		friendIDsFn:     func(context.Context, uint) ([]uint, error) { return nil, nil },
		commonFriendsFn: func(context.Context, uint, uint) ([]models.User, error) { return nil, nil },
	}
}

type reviewRepoStub struct {
	createFn      func(context.Context, *models.Review) error
	getByIDFn     func(context.Context, uint) (*models.Review, error)
	existsFn      func(context.Context, uint) (bool, error)
	updateFn      func(context.Context, *models.Review) error
	deleteFn      func(context.Context, uint) error
	listForFilmFn func(context.Context, uint, int) ([]models.Review, error)
	listAllFn     func(context.Context, int) ([]models.Review, error)
	voteFn        func(context.Context, uint, uint, bool) error
	unvoteFn      func(context.Context, uint, uint) error
}

func (s *reviewRepoStub) Create(ctx context.Context, review *models.Review) error {
	return s.createFn(ctx, review)
}
func (s *reviewRepoStub) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	return s.getByIDFn(ctx, id)
}
func (s *reviewRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *reviewRepoStub) Update(ctx context.Context, review *models.Review) error {
	return s.updateFn(ctx, review)
}
func (s *reviewRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *reviewRepoStub) ListForFilm(ctx context.Context, filmID uint, count int) ([]models.Review, error) {
	return s.listForFilmFn(ctx, filmID, count)
}
func (s *reviewRepoStub) ListAll(ctx context.Context, count int) ([]models.Review, error) {
	return s.listAllFn(ctx, count)
}
func (s *reviewRepoStub) Vote(ctx context.Context, reviewID, userID uint, isPositive bool) error {
	return s.voteFn(ctx, reviewID, userID, isPositive)
}
func (s *reviewRepoStub) Unvote(ctx context.Context, reviewID, userID uint) error {
	return s.unvoteFn(ctx, reviewID, userID)
}

func noopReviewRepo() *reviewRepoStub {
	positive := true
	return &reviewRepoStub{
		createFn: func(context.Context, *models.Review) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Review, error) {
			return &models.Review{ID: id, Content: "ok", IsPositive: &positive, UserID: 1, FilmID: 1}, nil
		},
		existsFn:      func(context.Context, uint) (bool, error) { return true, nil },
		updateFn:      func(context.Context, *models.Review) error { return nil },
		deleteFn:      func(context.Context, uint) error { return nil },
		listForFilmFn: func(context.Context, uint, int) ([]models.Review, error) { return nil, nil },
		listAllFn:     func(context.Context, int) ([]models.Review, error) { return nil, nil },
		voteFn:        func(context.Context, uint, uint, bool) error { return nil },
		unvoteFn:      func(context.Context, uint, uint) error { return nil },
	}
}

type directorRepoStub struct {
	createFn  func(context.Context, *models.Director) error
	getByIDFn func(context.Context, uint) (*models.Director, error)
	existsFn  func(context.Context, uint) (bool, error)
	updateFn  func(context.Context, *models.Director) error
	deleteFn  func(context.Context, uint) error
	listFn    func(context.Context) ([]models.Director, error)
}

func (s *directorRepoStub) Create(ctx context.Context, director *models.Director) error {
	return s.createFn(ctx, director)
}
func (s *directorRepoStub) GetByID(ctx context.Context, id uint) (*models.Director, error) {
	return s.getByIDFn(ctx, id)
}
func (s *directorRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *directorRepoStub) Update(ctx context.Context, director *models.Director) error {
	return s.updateFn(ctx, director)
}
func (s *directorRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *directorRepoStub) List(ctx context.Context) ([]models.Director, error) {
	return s.listFn(ctx)
}

func noopDirectorRepo() *directorRepoStub {
	return &directorRepoStub{
		createFn:  func(context.Context, *models.Director) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Director, error) { return &models.Director{ID: id}, nil },
		existsFn:  func(context.Context, uint) (bool, error) { return true, nil },
		updateFn:  func(context.Context, *models.Director) error { return nil },
		deleteFn:  func(context.Context, uint) error { return nil },
		listFn:    func(context.Context) ([]models.Director, error) { return nil, nil },
	}
}

type catalogRepoStub struct {
	genresFn      func(context.Context) ([]models.Genre, error)
	genreByIDFn   func(context.Context, uint) (*models.Genre, error)
	genreExistsFn func(context.Context, uint) (bool, error)
	mpaRatingsFn  func(context.Context) ([]models.Mpa, error)
	mpaByIDFn     func(context.Context, uint) (*models.Mpa, error)
	mpaExistsFn   func(context.Context, uint) (bool, error)
}

func (s *catalogRepoStub) Genres(ctx context.Context) ([]models.Genre, error) {
	return s.genresFn(ctx)
}
func (s *catalogRepoStub) GenreByID(ctx context.Context, id uint) (*models.Genre, error) {
	return s.genreByIDFn(ctx, id)
}
func (s *catalogRepoStub) GenreExists(ctx context.Context, id uint) (bool, error) {
	return s.genreExistsFn(ctx, id)
}
func (s *catalogRepoStub) MpaRatings(ctx context.Context) ([]models.Mpa, error) {
	return s.mpaRatingsFn(ctx)
}
func (s *catalogRepoStub) MpaByID(ctx context.Context, id uint) (*models.Mpa, error) {
	return s.mpaByIDFn(ctx, id)
}
func (s *catalogRepoStub) MpaExists(ctx context.Context, id uint) (bool, error) {
	return s.mpaExistsFn(ctx, id)
}

func noopCatalogRepo() *catalogRepoStub {
	return &catalogRepoStub{
		genresFn:      func(context.Context) ([]models.Genre, error) { return nil, nil },
		genreByIDFn:   func(_ context.Context, id uint) (*models.Genre, error) { return &models.Genre{ID: id}, nil },
		genreExistsFn: func(context.Context, uint) (bool, error) { return true, nil },
		mpaRatingsFn:  func(context.Context) ([]models.Mpa, error) { return nil, nil },
		mpaByIDFn:     func(_ context.Context, id uint) (*models.Mpa, error) { return &models.Mpa{ID: id}, nil },
		mpaExistsFn:   func(context.Context, uint) (bool, error) { return true, nil },
	}
}

type graphRepoStub struct {
	allLikesFn     func(context.Context) ([]models.Like, error)
	likedFilmIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *graphRepoStub) AllLikes(ctx context.Context) ([]models.Like, error) {
	return s.allLikesFn(ctx)
}
func (s *graphRepoStub) LikedFilmIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.likedFilmIDsFn(ctx, userID)
}

// feedRecorderStub captures feed events instead of writing them.
type feedRecorderStub struct {
	events []models.FeedEvent
}

func (s *feedRecorderStub) Record(_ context.Context, userID uint, eventType models.FeedEventType, op models.FeedOperation, entityID uint) error {
	s.events = append(s.events, models.FeedEvent{
		UserID:    userID,
		EventType: eventType,
		Operation: op,
		EntityID:  entityID,
	})
	return nil
}
func (s *feedRecorderStub) ForUser(context.Context, uint) ([]models.FeedEvent, error) {
	// Newest first, matching the real repository.
	out := make([]models.FeedEvent, len(s.events))
	for i, e := range s.events {
		out[len(s.events)-1-i] = e
	}
	return out, nil
}

// uowStub runs the unit-of-work body against a fixed repository bundle, no
// transaction involved.
type uowStub struct {
	repos repository.Repositories
}

func (u *uowStub) Do(_ context.Context, fn func(r repository.Repositories) error) error {
	return fn(u.repos)
}
