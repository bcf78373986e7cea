package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"inkwell/cmd/fx/account_fx"
	"inkwell/cmd/fx/comment_fx"
	"inkwell/cmd/fx/db_fx"
	"inkwell/cmd/fx/mail_fx"
	"inkwell/cmd/fx/memcache_fx"
	"inkwell/cmd/fx/plan_fx"
	"inkwell/cmd/fx/post_fx"
	"inkwell/cmd/fx/subscription_fx"
	"inkwell/internal/api/controllers"
	"inkwell/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		plan_fx.Module,
		post_fx.Module,
		comment_fx.Module,
		subscription_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	postController *controllers.PostController,
	commentController *controllers.CommentController,
	subscriptionController *controllers.SubscriptionController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, planController, postController, commentController, subscriptionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	planController *controllers.PlanController,
	postController *controllers.PostController,
	commentController *controllers.CommentController,
	subscriptionController *controllers.SubscriptionController) {

	auth := middleware.JWTAuthMiddleware()
	admin := middleware.RoleMiddleware("admin")

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)
	accounts.GET("/me", auth, accountController.Me)

	plans := r.Group("/plans")
	plans.GET("", planController.ListPlans)
	plans.GET("/all", auth, admin, planController.ListAllPlans)
	plans.GET("/:id", planController.GetPlan)
	plans.POST("", auth, admin, planController.CreatePlan)
	plans.PUT("/:id", auth, admin, planController.UpdatePlan)
	plans.DELETE("/:id", auth, admin, planController.DeletePlan)

	posts := r.Group("/posts")
	posts.GET("", postController.ListPosts)
	posts.GET("/:id", postController.GetPost)
	posts.GET("/:id/comments", commentController.GetPostComments)
	posts.POST("", auth, postController.CreatePost)
	posts.PUT("/:id", auth, postController.UpdatePost)
	posts.DELETE("/:id", auth, postController.DeletePost)

	categories := r.Group("/categories")
	categories.GET("", postController.ListCategories)
	categories.POST("", auth, admin, postController.CreateCategory)

	comments := r.Group("/comments")
	comments.GET("/:id/replies", commentController.GetReplies)
	comments.POST("", auth, commentController.CreateComment)
	comments.PUT("/:id", auth, commentController.UpdateComment)
	comments.DELETE("/:id", auth, commentController.DeleteComment)

	subscriptions := r.Group("/subscriptions", auth)
	subscriptions.POST("", subscriptionController.CreateSubscription)
	subscriptions.GET("/status", subscriptionController.GetStatus)
	subscriptions.GET("/history", subscriptionController.GetHistory)
	subscriptions.POST("/cancel", subscriptionController.Cancel)
	subscriptions.POST("/:id/activate", admin, subscriptionController.Activate)
	subscriptions.POST("/:id/renew", admin, subscriptionController.Renew)
	subscriptions.POST("/pin", subscriptionController.PinPost)
	subscriptions.DELETE("/pin", subscriptionController.UnpinPost)
}
