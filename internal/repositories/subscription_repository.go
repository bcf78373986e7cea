package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"inkwell/internal/models/db_models"
)

type ISubscriptionRepository interface {
	FindLatestByAccount(ctx context.Context, accountID string) (*db_models.Subscription, error)
	FindById(ctx context.Context, id string) (*db_models.Subscription, error)

	// CreateWithHistory persists the subscription row and its "created" history
	// entry in a single transaction: both rows or neither.
	CreateWithHistory(ctx context.Context, sub *db_models.Subscription, history *db_models.SubscriptionHistory) error

	// Transition flips status from -> to with a compare-and-swap style
	// conditional update and, only when the swap won, appends the history
	// entry in the same transaction. Optional new end timestamp for renewals.
	// Returns false when the stored status no longer matched "from".
	Transition(ctx context.Context, id uuid.UUID, from, to db_models.SubscriptionStatus,
		newEndsAt *int64, history *db_models.SubscriptionHistory) (bool, error)

	ListHistory(ctx context.Context, subscriptionID string) ([]db_models.SubscriptionHistory, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) ISubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) FindLatestByAccount(ctx context.Context, accountID string) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("account_id = ?", accountID).
		Order("starts_at DESC, created_at DESC").
		First(&sub).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (r *subscriptionRepository) FindById(ctx context.Context, id string) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := r.db.WithContext(ctx).
		Preload("Plan").
		First(&sub, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (r *subscriptionRepository) CreateWithHistory(ctx context.Context, sub *db_models.Subscription, history *db_models.SubscriptionHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		history.SubscriptionID = sub.ID
		return tx.Create(history).Error
	})
}

func (r *subscriptionRepository) Transition(ctx context.Context, id uuid.UUID, from, to db_models.SubscriptionStatus,
	newEndsAt *int64, history *db_models.SubscriptionHistory) (bool, error) {

	swapped := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": to}
		if newEndsAt != nil {
			updates["ends_at"] = *newEndsAt
		}

		res := tx.Model(&db_models.Subscription{}).
			Where("id = ? AND status = ?", id, from).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Someone else won the transition; no history entry from us.
			return nil
		}

		swapped = true
		history.SubscriptionID = id
		return tx.Create(history).Error
	})

	if err != nil {
		return false, err
	}

	return swapped, nil
}

func (r *subscriptionRepository) ListHistory(ctx context.Context, subscriptionID string) ([]db_models.SubscriptionHistory, error) {
	var entries []db_models.SubscriptionHistory
	err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Order("created_at ASC").
		Find(&entries).Error

	if err != nil {
		return nil, err
	}

	return entries, nil
}
