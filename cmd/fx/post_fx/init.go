package post_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"inkwell/internal/api/controllers"
	"inkwell/internal/repositories"
	"inkwell/internal/services"
)

var Module = fx.Provide(
	providePostRepo, provideCategoryRepo, providePostService, providePostController,
)

func providePostRepo(db *gorm.DB) repositories.IPostRepository {
	return repositories.NewPostRepository(db)
}

func provideCategoryRepo(db *gorm.DB) repositories.ICategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func providePostService(postRepo repositories.IPostRepository, categoryRepo repositories.ICategoryRepository) services.PostServiceInterface {
	return services.NewPostService(postRepo, categoryRepo)
}

func providePostController(postService services.PostServiceInterface) *controllers.PostController {
	return controllers.NewPostController(postService)
}
