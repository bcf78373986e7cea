package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"inkwell/internal/models/db_models"
)

type IPinnedPostRepository interface {
	FindByAccount(ctx context.Context, accountID string) (*db_models.PinnedPost, error)
	Insert(ctx context.Context, pin *db_models.PinnedPost) error
	DeleteByAccount(ctx context.Context, accountID string) (bool, error)
}

type pinnedPostRepository struct {
	db *gorm.DB
}

func NewPinnedPostRepository(db *gorm.DB) IPinnedPostRepository {
	return &pinnedPostRepository{db: db}
}

func (r *pinnedPostRepository) FindByAccount(ctx context.Context, accountID string) (*db_models.PinnedPost, error) {
	var pin db_models.PinnedPost
	err := r.db.WithContext(ctx).
		Preload("Post").
		First(&pin, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &pin, nil
}

// Insert relies on the unique index on account_id as the authoritative guard:
// two concurrent pins cannot both succeed.
func (r *pinnedPostRepository) Insert(ctx context.Context, pin *db_models.PinnedPost) error {
	return r.db.WithContext(ctx).Create(pin).Error
}

// DeleteByAccount removes the row for real: a soft-deleted pin would still
// occupy the unique account_id slot and block the next pin.
func (r *pinnedPostRepository) DeleteByAccount(ctx context.Context, accountID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Unscoped().
		Where("account_id = ?", accountID).
		Delete(&db_models.PinnedPost{})

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}
