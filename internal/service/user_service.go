package service

import (
	"context"
	"strings"
	"time"

	"reelgraph/internal/models"
	"reelgraph/internal/repository"
)

// UserService provides user and social graph business logic. Friend edges are
// directed: adding a friend never creates the reverse edge.
type UserService struct {
	userRepo   repository.UserRepository
	friendRepo repository.FriendRepository
	feedRepo   repository.FeedRepository
	uow        repository.UnitOfWork
}

// NewUserService returns a new UserService.
func NewUserService(
	userRepo repository.UserRepository,
	friendRepo repository.FriendRepository,
	feedRepo repository.FeedRepository,
	uow repository.UnitOfWork,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		friendRepo: friendRepo,
		feedRepo:   feedRepo,
		uow:        uow,
	}
}

func validateUser(user *models.User) error {
	if strings.TrimSpace(user.Email) == "" || !strings.Contains(user.Email, "@") {
		return models.NewBadRequestError("Email must not be blank and must contain @")
	}
	if strings.TrimSpace(user.Login) == "" || strings.Contains(user.Login, " ") {
		return models.NewBadRequestError("Login must not be blank or contain spaces")
	}
	if user.Birthday.After(time.Now()) {
		return models.NewBadRequestError("Birthday must not be in the future")
	}
	return nil
}

// Create validates and stores a new user. A blank name falls back to the
// login before the row is written.
func (s *UserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, user.ID)
}

// Update validates and replaces a stored user.
func (s *UserService) Update(ctx context.Context, user *models.User) (*models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, user.ID); err != nil {
		return nil, err
	}
	if err := validateUser(user); err != nil {
		return nil, err
	}
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, user.ID)
}

// GetByID returns one user.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// Delete removes a user and the likes and friend edges that reference them.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// AddFriend creates the directed edge user->friend and a FRIEND/ADD feed
// event in one transaction. Self-friending is rejected before the store is
// touched.
func (s *UserService) AddFriend(ctx context.Context, userID, friendID uint) error {
	if userID == friendID {
		return models.NewBadRequestError("Cannot add yourself as a friend")
	}
	if err := s.checkUsers(ctx, userID, friendID); err != nil {
		return err
	}
	return s.uow.Do(ctx, func(r repository.Repositories) error {
		if err := r.Friends.AddEdge(ctx, userID, friendID); err != nil {
			return err
		}
		return r.Feed.Record(ctx, userID, models.FeedEventFriend, models.FeedOpAdd, friendID)
	})
}

// RemoveFriend deletes the directed edge user->friend and records a
// FRIEND/REMOVE feed event in one transaction. The reverse edge is untouched.
func (s *UserService) RemoveFriend(ctx context.Context, userID, friendID uint) error {
	if userID == friendID {
		return models.NewBadRequestError("Cannot remove yourself as a friend")
	}
	if err := s.checkUsers(ctx, userID, friendID); err != nil {
		return err
	}
	return s.uow.Do(ctx, func(r repository.Repositories) error {
		if err := r.Friends.RemoveEdge(ctx, userID, friendID); err != nil {
			return err
		}
		return r.Feed.Record(ctx, userID, models.FeedEventFriend, models.FeedOpRemove, friendID)
	})
}

// Friends returns the users the given user has added.
func (s *UserService) Friends(ctx context.Context, userID uint) ([]models.User, error) {
	if ok, err := s.userRepo.Exists(ctx, userID); err != nil {
		return nil, err
	} else if !ok {
		return nil, models.NewNotFoundError("User", userID)
	}
	return s.friendRepo.Friends(ctx, userID)
}

// CommonFriends returns users both sides have added.
func (s *UserService) CommonFriends(ctx context.Context, userID, otherID uint) ([]models.User, error) {
	if userID == otherID {
		return nil, models.NewBadRequestError("Cannot compute common friends with yourself")
	}
	if err := s.checkUsers(ctx, userID, otherID); err != nil {
		return nil, err
	}
	return s.friendRepo.CommonFriends(ctx, userID, otherID)
}

// Feed returns the user's activity log, newest first.
func (s *UserService) Feed(ctx context.Context, userID uint) ([]models.FeedEvent, error) {
	if ok, err := s.userRepo.Exists(ctx, userID); err != nil {
		return nil, err
	} else if !ok {
		return nil, models.NewNotFoundError("User", userID)
	}
	return s.feedRepo.ForUser(ctx, userID)
}

func (s *UserService) checkUsers(ctx context.Context, ids ...uint) error {
	for _, id := range ids {
		if ok, err := s.userRepo.Exists(ctx, id); err != nil {
			return err
		} else if !ok {
			return models.NewNotFoundError("User", id)
		}
	}
	return nil
}
