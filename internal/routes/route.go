package routes

import (
	"github.com/devlink/server/internal/container"
	"github.com/devlink/server/internal/handlers"
	"github.com/devlink/server/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	// Set Gin mode for production
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID", middleware.TokenHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	auth := middleware.AuthMiddleware(container.Logger)

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "devlink-api",
			})
		})

		api.POST("/users", handlers.RegisterUser(container.UserService))
		api.POST("/auth", handlers.LoginUser(container.UserService))
		api.GET("/auth", auth, handlers.CurrentUser(container.UserService))
	}

	profileRoutes := api.Group("/profile")
	{
		profileRoutes.GET("", handlers.ListProfiles(container.ProfileService))
		profileRoutes.POST("", auth, handlers.UpsertProfile(container.ProfileService))
		profileRoutes.DELETE("", auth, handlers.DeleteAccount(container.ProfileService))
		profileRoutes.GET("/me", auth, handlers.GetMyProfile(container.ProfileService))
		profileRoutes.GET("/user/:user_id", handlers.GetProfileByUser(container.ProfileService))
		profileRoutes.PUT("/experience", auth, handlers.AddExperience(container.ProfileService))
		profileRoutes.DELETE("/experience/:exp_id", auth, handlers.RemoveExperience(container.ProfileService))
		profileRoutes.PUT("/education", auth, handlers.AddEducation(container.ProfileService))
		profileRoutes.DELETE("/education/:edu_id", auth, handlers.RemoveEducation(container.ProfileService))
		profileRoutes.GET("/github/:username", handlers.GithubRepos(container.GithubService))
	}

	postRoutes := api.Group("/posts", auth)
	{
		postRoutes.POST("", handlers.CreatePost(container.PostService))
		postRoutes.GET("", handlers.ListPosts(container.PostService))
		postRoutes.GET("/:post_id", handlers.GetPost(container.PostService))
		postRoutes.DELETE("/:post_id", handlers.DeletePost(container.PostService))
		postRoutes.PUT("/like/:post_id", handlers.LikePost(container.PostService))
		postRoutes.PUT("/unlike/:post_id", handlers.UnlikePost(container.PostService))
		postRoutes.PUT("/comment/:post_id", handlers.AddComment(container.PostService))
		postRoutes.DELETE("/comment/:post_id/:comment_id", handlers.RemoveComment(container.PostService))
	}

	return r
}
