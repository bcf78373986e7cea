package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"inkwell/internal/models/db_models"
)

type ICategoryRepository interface {
	Insert(ctx context.Context, category *db_models.Category) error
	FindById(ctx context.Context, id string) (*db_models.Category, error)
	FindByName(ctx context.Context, name string) (*db_models.Category, error)
	GetAll(ctx context.Context) ([]db_models.Category, error)
	CountPublishedPosts(ctx context.Context, categoryID string) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) ICategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Insert(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) FindById(ctx context.Context, id string) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &category, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "name = ?", name).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error

	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) CountPublishedPosts(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Post{}).
		Where("category_id = ? AND status = ?", categoryID, db_models.PostStatusPublished).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}
