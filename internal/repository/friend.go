package repository

import (
	"context"
	"fmt"

	"reelgraph/internal/models"

	"gorm.io/gorm"
)

// FriendRepository defines the interface for friend edge operations. Edges are
// directed sender->addressee and are never mirrored by the repository.
type FriendRepository interface {
	AddEdge(ctx context.Context, senderID, addresseeID uint) error
	RemoveEdge(ctx context.Context, senderID, addresseeID uint) error
	Friends(ctx context.Context, userID uint) ([]models.User, error)
	FriendIDs(ctx context.Context, userID uint) ([]uint, error)
	CommonFriends(ctx context.Context, userID, friendID uint) ([]models.User, error)
}

// friendRepository implements FriendRepository
type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) AddEdge(ctx context.Context, senderID, addresseeID uint) error {
	edge := models.Friendship{SenderID: senderID, AddresseeID: addresseeID}
	if err := r.db.WithContext(ctx).Create(&edge).Error; err != nil {
		if isDuplicate(err) {
			return models.NewBadRequestError("Friend edge already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) RemoveEdge(ctx context.Context, senderID, addresseeID uint) error {
	res := r.db.WithContext(ctx).
		Where("sender_id = ? AND addressee_id = ?", senderID, addresseeID).
		Delete(&models.Friendship{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return &models.AppError{
			Code:    models.CodeNotFound,
			Message: fmt.Sprintf("User %d has no friend edge to user %d", senderID, addresseeID),
		}
	}
	return nil
}

func (r *friendRepository) Friends(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friendships f ON users.id = f.addressee_id").
		Where("f.sender_id = ?", userID).
		Order("users.id ASC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *friendRepository) FriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("sender_id = ?", userID).
		Order("addressee_id ASC").
		Pluck("addressee_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *friendRepository) CommonFriends(ctx context.Context, userID, friendID uint) ([]models.User, error) {
	// Intersection of both users' outgoing edges.
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friendships fu ON users.id = fu.addressee_id AND fu.sender_id = ?", userID).
		Joins("JOIN friendships ff ON users.id = ff.addressee_id AND ff.sender_id = ?", friendID).
		Order("users.id ASC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
