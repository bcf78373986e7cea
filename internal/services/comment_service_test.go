package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"inkwell/internal/models/db_models"
	"inkwell/internal/models/request_models"
	"inkwell/internal/repositories"
	"inkwell/pkg/utils"
)

type commentFixture struct {
	db      *gorm.DB
	service CommentServiceInterface
	author  *db_models.Account
	post    *db_models.Post
}

func newCommentFixture(t *testing.T) *commentFixture {
	db := setupTestDB(t)
	author := createTestAccount(t, db, "author@example.com")

	return &commentFixture{
		db:      db,
		service: NewCommentService(repositories.NewCommentRepository(db), repositories.NewPostRepository(db)),
		author:  author,
		post:    createTestPost(t, db, author.ID, "commented-post", db_models.PostStatusPublished),
	}
}

func (f *commentFixture) comment(t *testing.T, content string, parentID *uuid.UUID) uuid.UUID {
	resp, err := f.service.CreateComment(context.Background(), f.author.ID, request_models.CreateCommentRequest{
		Content:  content,
		PostID:   f.post.ID,
		ParentID: parentID,
	})
	require.NoError(t, err)
	return resp.ID
}

func TestCreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("top level comment on a published post", func(t *testing.T) {
		f := newCommentFixture(t)

		resp, err := f.service.CreateComment(ctx, f.author.ID, request_models.CreateCommentRequest{
			Content: "nice post",
			PostID:  f.post.ID,
		})
		require.NoError(t, err)

		assert.Equal(t, "nice post", resp.Content)
		assert.False(t, resp.IsReply)
		assert.Nil(t, resp.ParentID)
	})

	t.Run("reply threads under its parent", func(t *testing.T) {
		f := newCommentFixture(t)
		parentID := f.comment(t, "parent", nil)

		resp, err := f.service.CreateComment(ctx, f.author.ID, request_models.CreateCommentRequest{
			Content:  "reply",
			PostID:   f.post.ID,
			ParentID: &parentID,
		})
		require.NoError(t, err)

		assert.True(t, resp.IsReply)
		require.NotNil(t, resp.ParentID)
		assert.Equal(t, parentID, *resp.ParentID)
	})

	t.Run("rejected on a draft post", func(t *testing.T) {
		f := newCommentFixture(t)
		draft := createTestPost(t, f.db, f.author.ID, "draft", db_models.PostStatusDraft)

		_, err := f.service.CreateComment(ctx, f.author.ID, request_models.CreateCommentRequest{
			Content: "too early",
			PostID:  draft.ID,
		})
		assert.ErrorIs(t, err, utils.ErrPostNotPublished)
	})

	t.Run("unknown parent", func(t *testing.T) {
		f := newCommentFixture(t)
		missing := uuid.New()

		_, err := f.service.CreateComment(ctx, f.author.ID, request_models.CreateCommentRequest{
			Content:  "orphan",
			PostID:   f.post.ID,
			ParentID: &missing,
		})
		assert.ErrorIs(t, err, utils.ErrCommentNotFound)
	})

	t.Run("parent must belong to the same post", func(t *testing.T) {
		f := newCommentFixture(t)
		parentID := f.comment(t, "on the first post", nil)
		otherPost := createTestPost(t, f.db, f.author.ID, "other-post", db_models.PostStatusPublished)

		_, err := f.service.CreateComment(ctx, f.author.ID, request_models.CreateCommentRequest{
			Content:  "cross-thread reply",
			PostID:   otherPost.ID,
			ParentID: &parentID,
		})
		assert.ErrorIs(t, err, utils.ErrParentMismatch)
	})

	t.Run("deactivated parent cannot be replied to", func(t *testing.T) {
		f := newCommentFixture(t)
		parentID := f.comment(t, "soon gone", nil)
		require.NoError(t, f.service.DeleteComment(ctx, f.author.ID, parentID.String()))

		_, err := f.service.CreateComment(ctx, f.author.ID, request_models.CreateCommentRequest{
			Content:  "reply",
			PostID:   f.post.ID,
			ParentID: &parentID,
		})
		assert.ErrorIs(t, err, utils.ErrCommentNotFound)
	})
}

func TestUpdateAndDeleteComment(t *testing.T) {
	ctx := context.Background()

	t.Run("author edits their comment", func(t *testing.T) {
		f := newCommentFixture(t)
		id := f.comment(t, "first draft", nil)

		resp, err := f.service.UpdateComment(ctx, f.author.ID, id.String(), request_models.UpdateCommentRequest{
			Content: "second draft",
		})
		require.NoError(t, err)
		assert.Equal(t, "second draft", resp.Content)
	})

	t.Run("only the author may edit", func(t *testing.T) {
		f := newCommentFixture(t)
		id := f.comment(t, "mine", nil)
		other := createTestAccount(t, f.db, "other@example.com")

		_, err := f.service.UpdateComment(ctx, other.ID, id.String(), request_models.UpdateCommentRequest{
			Content: "hijacked",
		})
		assert.ErrorIs(t, err, utils.ErrNotCommentAuthor)
	})

	t.Run("only the author may delete", func(t *testing.T) {
		f := newCommentFixture(t)
		id := f.comment(t, "mine", nil)
		other := createTestAccount(t, f.db, "other@example.com")

		assert.ErrorIs(t, f.service.DeleteComment(ctx, other.ID, id.String()), utils.ErrNotCommentAuthor)
	})

	t.Run("delete is soft and final", func(t *testing.T) {
		f := newCommentFixture(t)
		id := f.comment(t, "bye", nil)

		require.NoError(t, f.service.DeleteComment(ctx, f.author.ID, id.String()))

		_, err := f.service.UpdateComment(ctx, f.author.ID, id.String(), request_models.UpdateCommentRequest{
			Content: "necromancy",
		})
		assert.ErrorIs(t, err, utils.ErrCommentNotFound)
	})
}

func TestGetPostComments(t *testing.T) {
	ctx := context.Background()

	t.Run("lists top level comments with reply counts", func(t *testing.T) {
		f := newCommentFixture(t)
		parentID := f.comment(t, "top", nil)
		f.comment(t, "reply one", &parentID)
		f.comment(t, "reply two", &parentID)

		resp, err := f.service.GetPostComments(ctx, f.post.ID.String())
		require.NoError(t, err)

		assert.Equal(t, f.post.ID, resp.Post.ID)
		require.Len(t, resp.Comments, 1, "replies stay out of the top level list")
		assert.Equal(t, int64(2), resp.Comments[0].RepliesCount)
		assert.Equal(t, int64(3), resp.CommentsCount, "the count includes replies")
	})

	t.Run("unknown post", func(t *testing.T) {
		f := newCommentFixture(t)

		_, err := f.service.GetPostComments(ctx, uuid.NewString())
		assert.ErrorIs(t, err, utils.ErrPostNotFound)
	})
}

func TestGetReplies(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the thread under a comment", func(t *testing.T) {
		f := newCommentFixture(t)
		parentID := f.comment(t, "top", nil)
		f.comment(t, "reply one", &parentID)
		f.comment(t, "reply two", &parentID)

		resp, err := f.service.GetReplies(ctx, parentID.String())
		require.NoError(t, err)

		assert.Equal(t, parentID, resp.Parent.ID)
		assert.Len(t, resp.Replies, 2)
		assert.Equal(t, int64(2), resp.RepliesCount)
	})

	t.Run("unknown comment", func(t *testing.T) {
		f := newCommentFixture(t)

		_, err := f.service.GetReplies(ctx, uuid.NewString())
		assert.ErrorIs(t, err, utils.ErrCommentNotFound)
	})
}
