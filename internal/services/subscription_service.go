package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"inkwell/internal/models/db_models"
	"inkwell/internal/models/request_models"
	"inkwell/internal/models/response_models"
	"inkwell/internal/repositories"
	"inkwell/pkg/utils"
)

const secondsPerDay = 86400

// Clock is injected so tests can time-travel past a subscription window.
type Clock func() time.Time

type SubscriptionServiceInterface interface {
	CreateSubscription(ctx context.Context, accountID uuid.UUID, req request_models.CreateSubscriptionRequest) (*response_models.SubscriptionResponse, error)
	Activate(ctx context.Context, subscriptionID string) (*response_models.SubscriptionResponse, error)
	Renew(ctx context.Context, subscriptionID string) (*response_models.SubscriptionResponse, error)
	Cancel(ctx context.Context, accountID uuid.UUID) error
	Status(ctx context.Context, accountID uuid.UUID) (*response_models.SubscriptionStatusResponse, error)
	History(ctx context.Context, accountID uuid.UUID) ([]response_models.HistoryEntryResponse, error)
	CanPinPosts(ctx context.Context, accountID uuid.UUID) (bool, error)
	PinPost(ctx context.Context, accountID uuid.UUID, postID uuid.UUID) (*response_models.PinnedPostResponse, error)
	UnpinPost(ctx context.Context, accountID uuid.UUID) error
}

type SubscriptionService struct {
	subRepo  repositories.ISubscriptionRepository
	planRepo repositories.IPlanRepository
	postRepo repositories.IPostRepository
	pinRepo  repositories.IPinnedPostRepository
	now      Clock
}

func NewSubscriptionService(
	subRepo repositories.ISubscriptionRepository,
	planRepo repositories.IPlanRepository,
	postRepo repositories.IPostRepository,
	pinRepo repositories.IPinnedPostRepository,
) SubscriptionServiceInterface {
	return NewSubscriptionServiceWithClock(subRepo, planRepo, postRepo, pinRepo, time.Now)
}

func NewSubscriptionServiceWithClock(
	subRepo repositories.ISubscriptionRepository,
	planRepo repositories.IPlanRepository,
	postRepo repositories.IPostRepository,
	pinRepo repositories.IPinnedPostRepository,
	clock Clock,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		subRepo:  subRepo,
		planRepo: planRepo,
		postRepo: postRepo,
		pinRepo:  pinRepo,
		now:      clock,
	}
}

func (s *SubscriptionService) CreateSubscription(ctx context.Context, accountID uuid.UUID, req request_models.CreateSubscriptionRequest) (*response_models.SubscriptionResponse, error) {
	plan, err := s.planRepo.GetPlanById(ctx, req.PlanID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	if !plan.IsActive {
		return nil, utils.ErrPlanInactive
	}

	now := s.now()

	existing, err := s.currentSubscription(ctx, accountID, now)
	if err != nil {
		return nil, err
	}
	if existing != nil && !existing.Status.IsTerminal() {
		return nil, utils.ErrSubscriptionExists
	}

	sub := &db_models.Subscription{
		AccountID: accountID,
		PlanID:    plan.ID,
		Status:    db_models.SubStatusPending,
		StartsAt:  now.Unix(),
		EndsAt:    now.Unix() + int64(plan.DurationDays)*secondsPerDay,
		AutoRenew: req.AutoRenew,
	}

	history := newHistoryEntry(db_models.HistoryCreated, "Subscription created", map[string]interface{}{
		"plan_id":   plan.ID.String(),
		"plan_code": plan.Code,
	})

	if err := s.subRepo.CreateWithHistory(ctx, sub, history); err != nil {
		return nil, utils.ErrDatabaseError
	}

	sub.Plan = *plan
	return s.toSubscriptionResponse(sub, now), nil
}

// Activate is the external activation trigger (e.g. a payment confirmation
// webhook). Activating an already-active subscription is a no-op so the
// operation stays idempotent under retry.
func (s *SubscriptionService) Activate(ctx context.Context, subscriptionID string) (*response_models.SubscriptionResponse, error) {
	now := s.now()

	sub, err := s.loadAndReconcile(ctx, subscriptionID, now)
	if err != nil {
		return nil, err
	}

	if sub.Status == db_models.SubStatusActive {
		return s.toSubscriptionResponse(sub, now), nil
	}
	if sub.Status.IsTerminal() {
		return nil, utils.ErrSubscriptionTerminal
	}

	history := newHistoryEntry(db_models.HistoryActivated, "Subscription activated", nil)
	swapped, err := s.subRepo.Transition(ctx, sub.ID, db_models.SubStatusPending, db_models.SubStatusActive, nil, history)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !swapped {
		// Lost a race; re-read to report whatever state won.
		return s.Activate(ctx, subscriptionID)
	}

	sub.Status = db_models.SubStatusActive
	return s.toSubscriptionResponse(sub, now), nil
}

// Renew extends an active subscription by one plan duration from its current
// end and records a "renewed" history entry.
func (s *SubscriptionService) Renew(ctx context.Context, subscriptionID string) (*response_models.SubscriptionResponse, error) {
	now := s.now()

	sub, err := s.loadAndReconcile(ctx, subscriptionID, now)
	if err != nil {
		return nil, err
	}

	if sub.Status != db_models.SubStatusActive {
		return nil, utils.ErrSubscriptionNotActive
	}

	newEndsAt := sub.EndsAt + int64(sub.Plan.DurationDays)*secondsPerDay
	history := newHistoryEntry(db_models.HistoryRenewed, "Subscription renewed", map[string]interface{}{
		"previous_end": sub.EndsAt,
		"new_end":      newEndsAt,
	})

	swapped, err := s.subRepo.Transition(ctx, sub.ID, db_models.SubStatusActive, db_models.SubStatusActive, &newEndsAt, history)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !swapped {
		return nil, utils.ErrSubscriptionNotActive
	}

	sub.EndsAt = newEndsAt
	return s.toSubscriptionResponse(sub, now), nil
}

// Cancel is terminal and irreversible; the only way forward afterwards is a
// brand-new subscription.
func (s *SubscriptionService) Cancel(ctx context.Context, accountID uuid.UUID) error {
	now := s.now()

	sub, err := s.currentSubscription(ctx, accountID, now)
	if err != nil {
		return err
	}
	if sub == nil {
		return utils.ErrSubscriptionNotFound
	}
	if sub.Status.IsTerminal() {
		return utils.ErrSubscriptionTerminal
	}

	history := newHistoryEntry(db_models.HistoryCancelled, "Subscription cancelled", nil)
	swapped, err := s.subRepo.Transition(ctx, sub.ID, sub.Status, db_models.SubStatusCancelled, nil, history)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !swapped {
		return utils.ErrSubscriptionTerminal
	}

	return nil
}

// CanPinPosts is the single authority for the pin entitlement: a user may pin
// exactly while they hold an active subscription. Recomputed on every check.
func (s *SubscriptionService) CanPinPosts(ctx context.Context, accountID uuid.UUID) (bool, error) {
	now := s.now()

	sub, err := s.currentSubscription(ctx, accountID, now)
	if err != nil {
		return false, err
	}

	return isActiveAt(sub, now), nil
}

func (s *SubscriptionService) PinPost(ctx context.Context, accountID uuid.UUID, postID uuid.UUID) (*response_models.PinnedPostResponse, error) {
	now := s.now()

	// All checks run before any write; a failed pin has no side effects.
	post, err := s.postRepo.FindPublishedById(ctx, postID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if post == nil {
		return nil, utils.ErrPostNotFound
	}
	if post.AuthorID != accountID {
		return nil, utils.ErrNotPostAuthor
	}

	sub, err := s.currentSubscription(ctx, accountID, now)
	if err != nil {
		return nil, err
	}
	if !isActiveAt(sub, now) {
		return nil, utils.ErrNoEntitlement
	}

	existing, err := s.pinRepo.FindByAccount(ctx, accountID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrAlreadyPinned
	}

	pin := &db_models.PinnedPost{
		AccountID: accountID,
		PostID:    post.ID,
		PinnedAt:  now.Unix(),
	}
	if err := s.pinRepo.Insert(ctx, pin); err != nil {
		// The unique index is the authoritative guard under concurrent pins.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrAlreadyPinned
		}
		return nil, utils.ErrDatabaseError
	}

	pin.Post = *post
	return toPinnedPostResponse(pin), nil
}

// UnpinPost deliberately skips the entitlement check: a user whose
// subscription lapsed must still be able to release the slot.
func (s *SubscriptionService) UnpinPost(ctx context.Context, accountID uuid.UUID) error {
	deleted, err := s.pinRepo.DeleteByAccount(ctx, accountID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrPinNotFound
	}

	return nil
}

// Status assembles ledger, entitlement and pin state into one snapshot. All
// sub-reads are computed from the same clock reading so the entitlement
// cannot flip between fields.
func (s *SubscriptionService) Status(ctx context.Context, accountID uuid.UUID) (*response_models.SubscriptionStatusResponse, error) {
	now := s.now()

	sub, err := s.currentSubscription(ctx, accountID, now)
	if err != nil {
		return nil, err
	}

	active := isActiveAt(sub, now)

	resp := &response_models.SubscriptionStatusResponse{
		HasSubscription: sub != nil,
		IsActive:        active,
		CanPinPosts:     active,
	}

	if sub != nil {
		resp.Subscription = s.toSubscriptionResponse(sub, now)
	}

	// The pin slot may outlive the entitlement, but the status view only
	// surfaces it while the subscription is active.
	if active {
		pin, err := s.pinRepo.FindByAccount(ctx, accountID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if pin != nil {
			resp.PinnedPost = toPinnedPostResponse(pin)
		}
	}

	return resp, nil
}

func (s *SubscriptionService) History(ctx context.Context, accountID uuid.UUID) ([]response_models.HistoryEntryResponse, error) {
	now := s.now()

	sub, err := s.currentSubscription(ctx, accountID, now)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}

	entries, err := s.subRepo.ListHistory(ctx, sub.ID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, toHistoryResponse(entry))
	}

	return result, nil
}

// currentSubscription looks up the user's subscription record, reconciling a
// stale "active" status against the clock before anything reads it.
func (s *SubscriptionService) currentSubscription(ctx context.Context, accountID uuid.UUID, now time.Time) (*db_models.Subscription, error) {
	sub, err := s.subRepo.FindLatestByAccount(ctx, accountID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, nil
	}

	return s.reconcile(ctx, sub, now)
}

func (s *SubscriptionService) loadAndReconcile(ctx context.Context, subscriptionID string, now time.Time) (*db_models.Subscription, error) {
	sub, err := s.subRepo.FindById(ctx, subscriptionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}

	return s.reconcile(ctx, sub, now)
}

// reconcile flips a time-expired subscription from active to expired before
// the caller's read returns. The conditional update means concurrent readers
// converge on the same terminal state with exactly one "expired" history row.
func (s *SubscriptionService) reconcile(ctx context.Context, sub *db_models.Subscription, now time.Time) (*db_models.Subscription, error) {
	if sub.Status != db_models.SubStatusActive || now.Unix() < sub.EndsAt {
		return sub, nil
	}

	history := newHistoryEntry(db_models.HistoryExpired, "Subscription period elapsed", map[string]interface{}{
		"ends_at": sub.EndsAt,
	})
	if _, err := s.subRepo.Transition(ctx, sub.ID, db_models.SubStatusActive, db_models.SubStatusExpired, nil, history); err != nil {
		return nil, utils.ErrDatabaseError
	}

	sub.Status = db_models.SubStatusExpired
	return sub, nil
}

func isActiveAt(sub *db_models.Subscription, now time.Time) bool {
	return sub != nil && sub.Status == db_models.SubStatusActive && now.Unix() < sub.EndsAt
}

func newHistoryEntry(action db_models.HistoryAction, description string, metadata map[string]interface{}) *db_models.SubscriptionHistory {
	entry := &db_models.SubscriptionHistory{
		Action:      action,
		Description: description,
	}

	if metadata != nil {
		if raw, err := json.Marshal(metadata); err == nil {
			entry.Metadata = raw
		}
	}

	return entry
}

func (s *SubscriptionService) toSubscriptionResponse(sub *db_models.Subscription, now time.Time) *response_models.SubscriptionResponse {
	resp := &response_models.SubscriptionResponse{
		ID:            sub.ID,
		UserID:        sub.AccountID,
		PlanID:        sub.PlanID,
		Status:        string(sub.Status),
		StartsAt:      sub.StartsAt,
		EndsAt:        sub.EndsAt,
		DaysRemaining: utils.DaysRemainingAt(sub.EndsAt, now.Unix()),
		AutoRenew:     sub.AutoRenew,
		IsActive:      isActiveAt(sub, now),
		CreatedAt:     sub.CreatedAt,
		UpdatedAt:     sub.UpdatedAt,
	}

	if sub.Plan.ID != uuid.Nil {
		resp.PlanInfo = toPlanResponse(&sub.Plan)
	}

	return resp
}

func toPinnedPostResponse(pin *db_models.PinnedPost) *response_models.PinnedPostResponse {
	resp := &response_models.PinnedPostResponse{
		ID:       pin.ID,
		PostID:   pin.PostID,
		PinnedAt: pin.PinnedAt,
	}

	if pin.Post.ID != uuid.Nil {
		resp.PostInfo = &response_models.PostSummary{
			ID:         pin.Post.ID,
			Title:      pin.Post.Title,
			Slug:       pin.Post.Slug,
			Content:    pin.Post.Content,
			Image:      pin.Post.Image,
			ViewsCount: pin.Post.ViewsCount,
			CreatedAt:  pin.Post.CreatedAt,
		}
	}

	return resp
}

func toHistoryResponse(entry db_models.SubscriptionHistory) response_models.HistoryEntryResponse {
	metadata := map[string]interface{}{}
	if len(entry.Metadata) > 0 {
		_ = json.Unmarshal(entry.Metadata, &metadata)
	}

	return response_models.HistoryEntryResponse{
		ID:          entry.ID,
		Action:      string(entry.Action),
		Description: entry.Description,
		Metadata:    metadata,
		CreatedAt:   entry.CreatedAt,
	}
}
