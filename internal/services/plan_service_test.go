package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/models/request_models"
	"inkwell/internal/repositories"
	"inkwell/pkg/utils"
)

func TestPlanService(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T) PlanServiceInterface {
		return NewPlanService(repositories.NewPlanRepository(setupTestDB(t)))
	}

	t.Run("create and fetch", func(t *testing.T) {
		service := newService(t)

		created, err := service.CreatePlan(ctx, request_models.CreatePlanRequest{
			Code:         "premium_yearly",
			Name:         "Premium Yearly",
			PriceMinor:   9900,
			Currency:     "USD",
			DurationDays: 365,
			Features:     map[string]interface{}{"pin_posts": true},
		})
		require.NoError(t, err)
		assert.True(t, created.IsActive, "new plans start active")
		assert.Equal(t, true, created.Features["pin_posts"])

		fetched, err := service.GetPlanById(ctx, created.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "premium_yearly", fetched.Code)
		assert.Equal(t, int32(365), fetched.DurationDays)
	})

	t.Run("duplicate code rejected", func(t *testing.T) {
		service := newService(t)

		req := request_models.CreatePlanRequest{
			Code:         "basic",
			Name:         "Basic",
			PriceMinor:   999,
			Currency:     "USD",
			DurationDays: 30,
		}
		_, err := service.CreatePlan(ctx, req)
		require.NoError(t, err)

		_, err = service.CreatePlan(ctx, req)
		assert.ErrorIs(t, err, utils.ErrPlanCodeExists)
	})

	t.Run("unknown plan", func(t *testing.T) {
		service := newService(t)

		_, err := service.GetPlanById(ctx, uuid.NewString())
		assert.ErrorIs(t, err, utils.ErrPlanNotFound)
	})

	t.Run("active listing excludes retired plans", func(t *testing.T) {
		service := newService(t)

		created, err := service.CreatePlan(ctx, request_models.CreatePlanRequest{
			Code:         "short_lived",
			Name:         "Short Lived",
			PriceMinor:   500,
			Currency:     "USD",
			DurationDays: 7,
		})
		require.NoError(t, err)

		retired := false
		_, err = service.UpdatePlan(ctx, created.ID.String(), request_models.UpdatePlanRequest{
			IsActive: &retired,
		})
		require.NoError(t, err)

		plans, err := service.GetActivePlans(ctx)
		require.NoError(t, err)
		assert.Empty(t, plans)
	})

	t.Run("admin listing includes retired plans", func(t *testing.T) {
		service := newService(t)

		created, err := service.CreatePlan(ctx, request_models.CreatePlanRequest{
			Code:         "retired",
			Name:         "Retired",
			PriceMinor:   100,
			Currency:     "USD",
			DurationDays: 30,
		})
		require.NoError(t, err)

		off := false
		_, err = service.UpdatePlan(ctx, created.ID.String(), request_models.UpdatePlanRequest{IsActive: &off})
		require.NoError(t, err)

		plans, err := service.GetAllPlans(ctx)
		require.NoError(t, err)
		assert.Len(t, plans, 1)
	})

	t.Run("delete refused while a live subscription references the plan", func(t *testing.T) {
		f := newSubscriptionFixture(t)
		planService := NewPlanService(repositories.NewPlanRepository(f.db))
		f.subscribe(t)

		err := planService.DeletePlan(ctx, f.plan.ID.String())
		assert.ErrorIs(t, err, utils.ErrPlanReferenced)
	})

	t.Run("delete allowed once the subscription is terminal", func(t *testing.T) {
		f := newSubscriptionFixture(t)
		planService := NewPlanService(repositories.NewPlanRepository(f.db))
		f.subscribeActive(t)
		require.NoError(t, f.service.Cancel(ctx, f.account.ID))

		require.NoError(t, planService.DeletePlan(ctx, f.plan.ID.String()))

		_, err := planService.GetPlanById(ctx, f.plan.ID.String())
		assert.ErrorIs(t, err, utils.ErrPlanNotFound)
	})

	t.Run("update touches only the provided fields", func(t *testing.T) {
		service := newService(t)

		created, err := service.CreatePlan(ctx, request_models.CreatePlanRequest{
			Code:         "basic",
			Name:         "Basic",
			PriceMinor:   999,
			Currency:     "USD",
			DurationDays: 30,
		})
		require.NoError(t, err)

		newPrice := int64(1299)
		updated, err := service.UpdatePlan(ctx, created.ID.String(), request_models.UpdatePlanRequest{
			PriceMinor: &newPrice,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1299), updated.Price)
		assert.Equal(t, "Basic", updated.Name)
		assert.Equal(t, int32(30), updated.DurationDays, "duration is fixed at creation")
	})
}
