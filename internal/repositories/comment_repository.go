package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"inkwell/internal/models/db_models"
)

type ICommentRepository interface {
	Insert(ctx context.Context, comment *db_models.Comment) error
	Update(ctx context.Context, comment *db_models.Comment) error
	FindActiveById(ctx context.Context, id string) (*db_models.Comment, error)
	ListTopLevelByPost(ctx context.Context, postID string) ([]db_models.Comment, error)
	ListReplies(ctx context.Context, parentID string) ([]db_models.Comment, error)
	CountReplies(ctx context.Context, parentID string) (int64, error)
	Deactivate(ctx context.Context, id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) ICommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Insert(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) Update(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) FindActiveById(ctx context.Context, id string) (*db_models.Comment, error) {
	var comment db_models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ? AND is_active = ?", id, true).
		First(&comment).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepository) ListTopLevelByPost(ctx context.Context, postID string) ([]db_models.Comment, error) {
	var comments []db_models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ? AND is_active = ? AND parent_id IS NULL", postID, true).
		Order("created_at DESC").
		Find(&comments).Error

	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepository) ListReplies(ctx context.Context, parentID string) ([]db_models.Comment, error) {
	var replies []db_models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("parent_id = ? AND is_active = ?", parentID, true).
		Order("created_at ASC").
		Find(&replies).Error

	if err != nil {
		return nil, err
	}

	return replies, nil
}

func (r *commentRepository) CountReplies(ctx context.Context, parentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Comment{}).
		Where("parent_id = ? AND is_active = ?", parentID, true).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}

// Deactivate is the soft delete: the row stays so reply threads keep their anchor.
func (r *commentRepository) Deactivate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Comment{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
