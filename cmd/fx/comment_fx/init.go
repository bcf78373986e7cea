package comment_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"inkwell/internal/api/controllers"
	"inkwell/internal/repositories"
	"inkwell/internal/services"
)

var Module = fx.Provide(
	provideCommentRepo, provideCommentService, provideCommentController,
)

func provideCommentRepo(db *gorm.DB) repositories.ICommentRepository {
	return repositories.NewCommentRepository(db)
}

func provideCommentService(commentRepo repositories.ICommentRepository, postRepo repositories.IPostRepository) services.CommentServiceInterface {
	return services.NewCommentService(commentRepo, postRepo)
}

func provideCommentController(commentService services.CommentServiceInterface) *controllers.CommentController {
	return controllers.NewCommentController(commentService)
}
