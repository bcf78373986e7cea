package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"inkwell/internal/models/db_models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&db_models.Account{},
		&db_models.Plan{},
		&db_models.Post{},
		&db_models.Subscription{},
		&db_models.SubscriptionHistory{},
		&db_models.PinnedPost{},
	)
	require.NoError(t, err)

	return db
}

func seedSubscription(t *testing.T, db *gorm.DB, status db_models.SubscriptionStatus) *db_models.Subscription {
	now := time.Now().Unix()
	sub := &db_models.Subscription{
		AccountID: uuid.New(),
		PlanID:    uuid.New(),
		Status:    status,
		StartsAt:  now,
		EndsAt:    now + 30*86400,
	}
	require.NoError(t, db.Create(sub).Error)
	return sub
}

func TestSubscriptionRepository_CreateWithHistory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	sub := &db_models.Subscription{
		AccountID: uuid.New(),
		PlanID:    uuid.New(),
		Status:    db_models.SubStatusPending,
		StartsAt:  100,
		EndsAt:    200,
	}
	history := &db_models.SubscriptionHistory{
		Action:      db_models.HistoryCreated,
		Description: "Subscription created",
	}

	require.NoError(t, repo.CreateWithHistory(ctx, sub, history))

	entries, err := repo.ListHistory(ctx, sub.ID.String())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, sub.ID, entries[0].SubscriptionID)
	assert.Equal(t, db_models.HistoryCreated, entries[0].Action)
}

func TestSubscriptionRepository_Transition(t *testing.T) {
	ctx := context.Background()

	t.Run("swaps when the stored status matches", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSubscriptionRepository(db)
		sub := seedSubscription(t, db, db_models.SubStatusPending)

		swapped, err := repo.Transition(ctx, sub.ID, db_models.SubStatusPending, db_models.SubStatusActive, nil,
			&db_models.SubscriptionHistory{Action: db_models.HistoryActivated})
		require.NoError(t, err)
		assert.True(t, swapped)

		found, err := repo.FindById(ctx, sub.ID.String())
		require.NoError(t, err)
		assert.Equal(t, db_models.SubStatusActive, found.Status)
	})

	t.Run("loses when the stored status moved on, and writes no history", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSubscriptionRepository(db)
		sub := seedSubscription(t, db, db_models.SubStatusCancelled)

		swapped, err := repo.Transition(ctx, sub.ID, db_models.SubStatusActive, db_models.SubStatusExpired, nil,
			&db_models.SubscriptionHistory{Action: db_models.HistoryExpired})
		require.NoError(t, err)
		assert.False(t, swapped)

		entries, err := repo.ListHistory(ctx, sub.ID.String())
		require.NoError(t, err)
		assert.Empty(t, entries, "a lost swap must not append history")
	})

	t.Run("only one of two identical transitions wins", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSubscriptionRepository(db)
		sub := seedSubscription(t, db, db_models.SubStatusActive)

		first, err := repo.Transition(ctx, sub.ID, db_models.SubStatusActive, db_models.SubStatusExpired, nil,
			&db_models.SubscriptionHistory{Action: db_models.HistoryExpired})
		require.NoError(t, err)
		second, err := repo.Transition(ctx, sub.ID, db_models.SubStatusActive, db_models.SubStatusExpired, nil,
			&db_models.SubscriptionHistory{Action: db_models.HistoryExpired})
		require.NoError(t, err)

		assert.True(t, first)
		assert.False(t, second)

		entries, err := repo.ListHistory(ctx, sub.ID.String())
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("optionally moves the end timestamp", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSubscriptionRepository(db)
		sub := seedSubscription(t, db, db_models.SubStatusActive)

		newEnd := sub.EndsAt + 30*86400
		swapped, err := repo.Transition(ctx, sub.ID, db_models.SubStatusActive, db_models.SubStatusActive, &newEnd,
			&db_models.SubscriptionHistory{Action: db_models.HistoryRenewed})
		require.NoError(t, err)
		assert.True(t, swapped)

		found, err := repo.FindById(ctx, sub.ID.String())
		require.NoError(t, err)
		assert.Equal(t, newEnd, found.EndsAt)
	})
}

func TestSubscriptionRepository_FindLatestByAccount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	t.Run("nil nil when the account never subscribed", func(t *testing.T) {
		sub, err := repo.FindLatestByAccount(ctx, uuid.NewString())
		assert.NoError(t, err)
		assert.Nil(t, sub)
	})

	t.Run("picks the most recent window", func(t *testing.T) {
		accountID := uuid.New()
		old := &db_models.Subscription{
			AccountID: accountID,
			PlanID:    uuid.New(),
			Status:    db_models.SubStatusExpired,
			StartsAt:  1000,
			EndsAt:    2000,
		}
		require.NoError(t, db.Create(old).Error)

		current := &db_models.Subscription{
			AccountID: accountID,
			PlanID:    uuid.New(),
			Status:    db_models.SubStatusActive,
			StartsAt:  5000,
			EndsAt:    6000,
		}
		require.NoError(t, db.Create(current).Error)

		found, err := repo.FindLatestByAccount(ctx, accountID.String())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, current.ID, found.ID)
	})
}
