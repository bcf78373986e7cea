package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"inkwell/internal/models/db_models"
)

type IPlanRepository interface {
	GetPlanById(ctx context.Context, planID string) (*db_models.Plan, error)
	GetPlanByCode(ctx context.Context, code string) (*db_models.Plan, error)
	GetActivePlans(ctx context.Context) ([]db_models.Plan, error)
	GetAllPlans(ctx context.Context) ([]db_models.Plan, error)
	Insert(ctx context.Context, plan *db_models.Plan) error
	Update(ctx context.Context, plan *db_models.Plan) error
	Delete(ctx context.Context, planID string) error
	HasLiveSubscriptions(ctx context.Context, planID string) (bool, error)
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (p *PlanRepository) GetPlanById(ctx context.Context, planID string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p *PlanRepository) GetPlanByCode(ctx context.Context, code string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "code = ?", code).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p *PlanRepository) GetActivePlans(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := p.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price_minor ASC").
		Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (p *PlanRepository) GetAllPlans(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := p.db.WithContext(ctx).Find(&plans).Error

	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (p *PlanRepository) Insert(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

func (p *PlanRepository) Update(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Save(plan).Error
}

func (p *PlanRepository) Delete(ctx context.Context, planID string) error {
	return p.db.WithContext(ctx).Delete(&db_models.Plan{}, "id = ?", planID).Error
}

// HasLiveSubscriptions reports whether any non-terminal subscription still
// references the plan. Such plans may be deactivated but never deleted.
func (p *PlanRepository) HasLiveSubscriptions(ctx context.Context, planID string) (bool, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("plan_id = ? AND status IN ?", planID,
			[]db_models.SubscriptionStatus{db_models.SubStatusPending, db_models.SubStatusActive}).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
