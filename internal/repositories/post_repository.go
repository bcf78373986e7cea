package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"inkwell/internal/models/db_models"
)

type IPostRepository interface {
	Insert(ctx context.Context, post *db_models.Post) error
	Update(ctx context.Context, post *db_models.Post) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.Post, error)
	FindPublishedById(ctx context.Context, id string) (*db_models.Post, error)
	ListPublished(ctx context.Context, page int, pageSize int) ([]db_models.Post, error)
	IncrementViews(ctx context.Context, id string) error
	CountActiveComments(ctx context.Context, postID string) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) IPostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Insert(ctx context.Context, post *db_models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Update(ctx context.Context, post *db_models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Post{}, "id = ?", id).Error
}

func (r *postRepository) FindById(ctx context.Context, id string) (*db_models.Post, error) {
	var post db_models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		First(&post, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) FindPublishedById(ctx context.Context, id string) (*db_models.Post, error) {
	var post db_models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Where("id = ? AND status = ?", id, db_models.PostStatusPublished).
		First(&post).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) ListPublished(ctx context.Context, page int, pageSize int) ([]db_models.Post, error) {
	var posts []db_models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Where("status = ?", db_models.PostStatusPublished).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&posts).Error

	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Post{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *postRepository) CountActiveComments(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Comment{}).
		Where("post_id = ? AND is_active = ?", postID, true).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}
