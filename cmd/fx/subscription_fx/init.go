package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"inkwell/internal/api/controllers"
	"inkwell/internal/repositories"
	"inkwell/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo, providePinnedPostRepo, provideSubscriptionService, provideSubscriptionController,
)

func provideSubscriptionRepo(db *gorm.DB) repositories.ISubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func providePinnedPostRepo(db *gorm.DB) repositories.IPinnedPostRepository {
	return repositories.NewPinnedPostRepository(db)
}

func provideSubscriptionService(
	subRepo repositories.ISubscriptionRepository,
	planRepo repositories.IPlanRepository,
	postRepo repositories.IPostRepository,
	pinRepo repositories.IPinnedPostRepository,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subRepo, planRepo, postRepo, pinRepo)
}

func provideSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *controllers.SubscriptionController {
	return controllers.NewSubscriptionController(subscriptionService)
}
