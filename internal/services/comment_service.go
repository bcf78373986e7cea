package services

import (
	"context"

	"github.com/google/uuid"
	"inkwell/internal/models/db_models"
	"inkwell/internal/models/request_models"
	"inkwell/internal/models/response_models"
	"inkwell/internal/repositories"
	"inkwell/pkg/utils"
)

type CommentServiceInterface interface {
	CreateComment(ctx context.Context, authorID uuid.UUID, req request_models.CreateCommentRequest) (*response_models.CommentResponse, error)
	UpdateComment(ctx context.Context, authorID uuid.UUID, commentId string, req request_models.UpdateCommentRequest) (*response_models.CommentResponse, error)
	DeleteComment(ctx context.Context, authorID uuid.UUID, commentId string) error
	GetPostComments(ctx context.Context, postId string) (*response_models.PostCommentsResponse, error)
	GetReplies(ctx context.Context, commentId string) (*response_models.CommentRepliesResponse, error)
}

type CommentService struct {
	commentRepo repositories.ICommentRepository
	postRepo    repositories.IPostRepository
}

func NewCommentService(commentRepo repositories.ICommentRepository, postRepo repositories.IPostRepository) CommentServiceInterface {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (c *CommentService) CreateComment(ctx context.Context, authorID uuid.UUID, req request_models.CreateCommentRequest) (*response_models.CommentResponse, error) {
	post, err := c.postRepo.FindPublishedById(ctx, req.PostID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotPublished
	}

	if req.ParentID != nil {
		parent, err := c.commentRepo.FindActiveById(ctx, req.ParentID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if parent == nil {
			return nil, utils.ErrCommentNotFound
		}
		// A reply always threads under a comment of the same post.
		if parent.PostID != req.PostID {
			return nil, utils.ErrParentMismatch
		}
	}

	comment := &db_models.Comment{
		Content:  req.Content,
		PostID:   req.PostID,
		AuthorID: authorID,
		ParentID: req.ParentID,
		IsActive: true,
	}

	if err := c.commentRepo.Insert(ctx, comment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return c.toCommentResponse(ctx, comment), nil
}

func (c *CommentService) UpdateComment(ctx context.Context, authorID uuid.UUID, commentId string, req request_models.UpdateCommentRequest) (*response_models.CommentResponse, error) {
	comment, err := c.commentRepo.FindActiveById(ctx, commentId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if comment == nil {
		return nil, utils.ErrCommentNotFound
	}
	if comment.AuthorID != authorID {
		return nil, utils.ErrNotCommentAuthor
	}

	comment.Content = req.Content
	if err := c.commentRepo.Update(ctx, comment); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return c.toCommentResponse(ctx, comment), nil
}

func (c *CommentService) DeleteComment(ctx context.Context, authorID uuid.UUID, commentId string) error {
	comment, err := c.commentRepo.FindActiveById(ctx, commentId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if comment == nil {
		return utils.ErrCommentNotFound
	}
	if comment.AuthorID != authorID {
		return utils.ErrNotCommentAuthor
	}

	if err := c.commentRepo.Deactivate(ctx, commentId); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (c *CommentService) GetPostComments(ctx context.Context, postId string) (*response_models.PostCommentsResponse, error) {
	post, err := c.postRepo.FindPublishedById(ctx, postId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}

	comments, err := c.commentRepo.ListTopLevelByPost(ctx, postId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	total, err := c.postRepo.CountActiveComments(ctx, postId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.CommentResponse, 0, len(comments))
	for i := range comments {
		result = append(result, *c.toCommentResponse(ctx, &comments[i]))
	}

	return &response_models.PostCommentsResponse{
		Post: response_models.PostRef{
			ID:    post.ID,
			Title: post.Title,
			Slug:  post.Slug,
		},
		Comments:      result,
		CommentsCount: total,
	}, nil
}

func (c *CommentService) GetReplies(ctx context.Context, commentId string) (*response_models.CommentRepliesResponse, error) {
	parent, err := c.commentRepo.FindActiveById(ctx, commentId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if parent == nil {
		return nil, utils.ErrCommentNotFound
	}

	replies, err := c.commentRepo.ListReplies(ctx, commentId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.CommentResponse, 0, len(replies))
	for i := range replies {
		result = append(result, *c.toCommentResponse(ctx, &replies[i]))
	}

	return &response_models.CommentRepliesResponse{
		Parent:       *c.toCommentResponse(ctx, parent),
		Replies:      result,
		RepliesCount: int64(len(replies)),
	}, nil
}

func (c *CommentService) toCommentResponse(ctx context.Context, comment *db_models.Comment) *response_models.CommentResponse {
	repliesCount, err := c.commentRepo.CountReplies(ctx, comment.ID.String())
	if err != nil {
		repliesCount = 0
	}

	resp := &response_models.CommentResponse{
		ID:           comment.ID,
		Content:      comment.Content,
		PostID:       comment.PostID,
		ParentID:     comment.ParentID,
		IsReply:      comment.ParentID != nil,
		RepliesCount: repliesCount,
		IsActive:     comment.IsActive,
		CreatedAt:    comment.CreatedAt,
		UpdatedAt:    comment.UpdatedAt,
	}

	if comment.Author.ID != uuid.Nil {
		resp.Author = &response_models.AuthorInfo{
			ID:   comment.Author.ID,
			Name: comment.Author.Name,
		}
	}

	return resp
}
