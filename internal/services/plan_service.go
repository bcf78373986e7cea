package services

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"inkwell/internal/models/db_models"
	"inkwell/internal/models/request_models"
	"inkwell/internal/models/response_models"
	"inkwell/internal/repositories"
	"inkwell/pkg/utils"
)

type PlanServiceInterface interface {
	GetActivePlans(ctx context.Context) ([]response_models.PlanResponse, error)
	GetAllPlans(ctx context.Context) ([]response_models.PlanResponse, error)
	GetPlanById(ctx context.Context, planId string) (*response_models.PlanResponse, error)
	CreatePlan(ctx context.Context, req request_models.CreatePlanRequest) (*response_models.PlanResponse, error)
	UpdatePlan(ctx context.Context, planId string, req request_models.UpdatePlanRequest) (*response_models.PlanResponse, error)
	DeletePlan(ctx context.Context, planId string) error
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{
		planRepo: planRepo,
	}
}

func (p *PlanService) GetActivePlans(ctx context.Context) ([]response_models.PlanResponse, error) {
	plans, err := p.planRepo.GetActivePlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.PlanResponse, 0, len(plans))
	for i := range plans {
		result = append(result, *toPlanResponse(&plans[i]))
	}

	return result, nil
}

// GetAllPlans is the admin catalog view: retired plans included.
func (p *PlanService) GetAllPlans(ctx context.Context) ([]response_models.PlanResponse, error) {
	plans, err := p.planRepo.GetAllPlans(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.PlanResponse, 0, len(plans))
	for i := range plans {
		result = append(result, *toPlanResponse(&plans[i]))
	}

	return result, nil
}

func (p *PlanService) GetPlanById(ctx context.Context, planId string) (*response_models.PlanResponse, error) {
	plan, err := p.planRepo.GetPlanById(ctx, planId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	return toPlanResponse(plan), nil
}

func (p *PlanService) CreatePlan(ctx context.Context, req request_models.CreatePlanRequest) (*response_models.PlanResponse, error) {
	existing, err := p.planRepo.GetPlanByCode(ctx, req.Code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrPlanCodeExists
	}

	plan := &db_models.Plan{
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		PriceMinor:   req.PriceMinor,
		Currency:     req.Currency,
		DurationDays: req.DurationDays,
		IsActive:     true,
		Features:     featuresToJSON(req.Features),
	}

	if err := p.planRepo.Insert(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toPlanResponse(plan), nil
}

// UpdatePlan edits catalog fields; duration is fixed at creation so existing
// subscription windows never shift retroactively. Deactivation is the only
// way to retire a plan still referenced by live subscriptions.
func (p *PlanService) UpdatePlan(ctx context.Context, planId string, req request_models.UpdatePlanRequest) (*response_models.PlanResponse, error) {
	plan, err := p.planRepo.GetPlanById(ctx, planId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = req.Description
	}
	if req.PriceMinor != nil {
		plan.PriceMinor = *req.PriceMinor
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if req.Features != nil {
		plan.Features = featuresToJSON(req.Features)
	}

	if err := p.planRepo.Update(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toPlanResponse(plan), nil
}

// DeletePlan removes a plan no subscription ever used, or refuses. Plans with
// live subscribers can only be deactivated, so history keeps resolving.
func (p *PlanService) DeletePlan(ctx context.Context, planId string) error {
	plan, err := p.planRepo.GetPlanById(ctx, planId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrPlanNotFound
	}

	referenced, err := p.planRepo.HasLiveSubscriptions(ctx, planId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if referenced {
		return utils.ErrPlanReferenced
	}

	if err := p.planRepo.Delete(ctx, planId); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func toPlanResponse(plan *db_models.Plan) *response_models.PlanResponse {
	features := map[string]interface{}{}
	if len(plan.Features) > 0 {
		_ = json.Unmarshal(plan.Features, &features)
	}

	return &response_models.PlanResponse{
		ID:           plan.ID,
		Code:         plan.Code,
		Name:         plan.Name,
		Description:  plan.Description,
		Price:        plan.PriceMinor,
		Currency:     plan.Currency,
		DurationDays: plan.DurationDays,
		Features:     features,
		IsActive:     plan.IsActive,
		CreatedAt:    plan.CreatedAt,
	}
}

func featuresToJSON(features map[string]interface{}) datatypes.JSON {
	if features == nil {
		return nil
	}
	raw, err := json.Marshal(features)
	if err != nil {
		return nil
	}
	return raw
}
