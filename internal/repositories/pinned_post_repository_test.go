package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"inkwell/internal/models/db_models"
)

func TestPinnedPostRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("one pin slot per account", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPinnedPostRepository(db)
		accountID := uuid.New()

		err := repo.Insert(ctx, &db_models.PinnedPost{AccountID: accountID, PostID: uuid.New(), PinnedAt: 1})
		require.NoError(t, err)

		err = repo.Insert(ctx, &db_models.PinnedPost{AccountID: accountID, PostID: uuid.New(), PinnedAt: 2})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey, "the unique index must reject a second pin")
	})

	t.Run("find returns nil nil when nothing is pinned", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPinnedPostRepository(db)

		pin, err := repo.FindByAccount(ctx, uuid.NewString())
		assert.NoError(t, err)
		assert.Nil(t, pin)
	})

	t.Run("delete reports whether a pin existed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPinnedPostRepository(db)
		accountID := uuid.New()

		deleted, err := repo.DeleteByAccount(ctx, accountID.String())
		require.NoError(t, err)
		assert.False(t, deleted)

		require.NoError(t, repo.Insert(ctx, &db_models.PinnedPost{AccountID: accountID, PostID: uuid.New(), PinnedAt: 1}))

		deleted, err = repo.DeleteByAccount(ctx, accountID.String())
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("slot reusable after delete", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewPinnedPostRepository(db)
		accountID := uuid.New()

		require.NoError(t, repo.Insert(ctx, &db_models.PinnedPost{AccountID: accountID, PostID: uuid.New(), PinnedAt: 1}))
		_, err := repo.DeleteByAccount(ctx, accountID.String())
		require.NoError(t, err)

		err = repo.Insert(ctx, &db_models.PinnedPost{AccountID: accountID, PostID: uuid.New(), PinnedAt: 2})
		assert.NoError(t, err)
	})
}
