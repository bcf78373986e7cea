package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"inkwell/internal/models/db_models"
	"inkwell/internal/models/request_models"
	"inkwell/internal/models/response_models"
	"inkwell/internal/repositories"
	"inkwell/pkg/utils"
)

const listContentLimit = 200

type PostServiceInterface interface {
	ListPublished(ctx context.Context, page int, pageSize int) ([]response_models.PostResponse, error)
	GetPostById(ctx context.Context, postId string) (*response_models.PostResponse, error)
	CreatePost(ctx context.Context, authorID uuid.UUID, req request_models.CreatePostRequest) (*response_models.PostResponse, error)
	UpdatePost(ctx context.Context, authorID uuid.UUID, postId string, req request_models.UpdatePostRequest) (*response_models.PostResponse, error)
	DeletePost(ctx context.Context, authorID uuid.UUID, postId string) error

	GetCategories(ctx context.Context) ([]response_models.CategoryResponse, error)
	CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error)
}

type PostService struct {
	postRepo     repositories.IPostRepository
	categoryRepo repositories.ICategoryRepository
}

func NewPostService(postRepo repositories.IPostRepository, categoryRepo repositories.ICategoryRepository) PostServiceInterface {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
	}
}

// ListPublished returns the public feed; list views truncate content the way
// the detail view does not.
func (p *PostService) ListPublished(ctx context.Context, page int, pageSize int) ([]response_models.PostResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	posts, err := p.postRepo.ListPublished(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.PostResponse, 0, len(posts))
	for i := range posts {
		resp := p.toPostResponse(ctx, &posts[i])

		if len(resp.Content) > listContentLimit {
			resp.Content = resp.Content[:listContentLimit] + "..."
		}

		result = append(result, *resp)
	}

	return result, nil
}

func (p *PostService) GetPostById(ctx context.Context, postId string) (*response_models.PostResponse, error) {
	post, err := p.postRepo.FindPublishedById(ctx, postId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	if err := p.postRepo.IncrementViews(ctx, postId); err != nil {
		return nil, utils.ErrDatabaseError
	}
	post.ViewsCount++

	return p.toPostResponse(ctx, post), nil
}

func (p *PostService) CreatePost(ctx context.Context, authorID uuid.UUID, req request_models.CreatePostRequest) (*response_models.PostResponse, error) {
	if req.CategoryID != nil {
		category, err := p.categoryRepo.FindById(ctx, req.CategoryID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if category == nil {
			return nil, utils.ErrCategoryNotFound
		}
	}

	status := db_models.PostStatusDraft
	if req.Status != "" {
		status = db_models.PostStatus(req.Status)
	}

	post := &db_models.Post{
		Title:      req.Title,
		Slug:       slug.Make(req.Title),
		Content:    req.Content,
		Image:      req.Image,
		Tags:       req.Tags,
		CategoryID: req.CategoryID,
		AuthorID:   authorID,
		Status:     status,
	}

	if err := p.postRepo.Insert(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return p.toPostResponse(ctx, post), nil
}

func (p *PostService) UpdatePost(ctx context.Context, authorID uuid.UUID, postId string, req request_models.UpdatePostRequest) (*response_models.PostResponse, error) {
	post, err := p.postRepo.FindById(ctx, postId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}
	if post.AuthorID != authorID {
		return nil, utils.ErrNotPostAuthor
	}

	if req.Title != nil {
		post.Title = *req.Title
		post.Slug = slug.Make(*req.Title)
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Image != nil {
		post.Image = *req.Image
	}
	if req.Tags != nil {
		post.Tags = req.Tags
	}
	if req.CategoryID != nil {
		category, err := p.categoryRepo.FindById(ctx, req.CategoryID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if category == nil {
			return nil, utils.ErrCategoryNotFound
		}
		post.CategoryID = req.CategoryID
	}
	if req.Status != nil {
		post.Status = db_models.PostStatus(*req.Status)
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return p.toPostResponse(ctx, post), nil
}

func (p *PostService) DeletePost(ctx context.Context, authorID uuid.UUID, postId string) error {
	post, err := p.postRepo.FindById(ctx, postId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if post == nil {
		return utils.ErrPostNotFound
	}
	if post.AuthorID != authorID {
		return utils.ErrNotPostAuthor
	}

	if err := p.postRepo.Delete(ctx, postId); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (p *PostService) GetCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := p.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.CategoryResponse, 0, len(categories))
	for i := range categories {
		count, err := p.categoryRepo.CountPublishedPosts(ctx, categories[i].ID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}

		result = append(result, response_models.CategoryResponse{
			ID:          categories[i].ID,
			Name:        categories[i].Name,
			Slug:        categories[i].Slug,
			Description: categories[i].Description,
			PostsCount:  count,
			CreatedAt:   categories[i].CreatedAt,
		})
	}

	return result, nil
}

func (p *PostService) CreateCategory(ctx context.Context, req request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error) {
	existing, err := p.categoryRepo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrCategoryExists
	}

	category := &db_models.Category{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
	}

	if err := p.categoryRepo.Insert(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}, nil
}

func (p *PostService) toPostResponse(ctx context.Context, post *db_models.Post) *response_models.PostResponse {
	commentsCount, err := p.postRepo.CountActiveComments(ctx, post.ID.String())
	if err != nil {
		commentsCount = 0
	}

	resp := &response_models.PostResponse{
		ID:            post.ID,
		Title:         post.Title,
		Slug:          post.Slug,
		Content:       post.Content,
		Image:         post.Image,
		Tags:          post.Tags,
		Status:        string(post.Status),
		ViewsCount:    post.ViewsCount,
		CommentsCount: commentsCount,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}

	if post.Author.ID != uuid.Nil {
		resp.Author = &response_models.AuthorInfo{
			ID:   post.Author.ID,
			Name: post.Author.Name,
		}
	}

	if post.Category != nil {
		resp.Category = &response_models.CategoryInfo{
			ID:   post.Category.ID,
			Name: post.Category.Name,
			Slug: post.Category.Slug,
		}
	}

	return resp
}
