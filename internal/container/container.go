package container

import (
	"log/slog"

	"github.com/devlink/server/internal/cache"
	"github.com/devlink/server/internal/config"
	"github.com/devlink/server/internal/models"
	"github.com/devlink/server/internal/services"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	MongoDBClient *mongo.Client

	UserService    *services.UserService
	ProfileService *services.ProfileService
	PostService    *services.PostService
	GithubService  *services.GithubService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	mongoDBClient *mongo.Client,
	redisClient *redis.Client,
) *Container {
	// Initialize repositories
	mongoRepo := models.MongodbNewRepo(mongoDBClient)
	repoCache := cache.New(redisClient)

	userService := services.NewUserService(mongoRepo)
	profileService := services.NewProfileService(mongoRepo, mongoRepo, mongoRepo)
	postService := services.NewPostService(mongoRepo, mongoRepo)
	githubService := services.NewGithubService("", cfg.GithubToken, repoCache)

	return &Container{
		Logger:         logger,
		MongoDBClient:  mongoDBClient,
		UserService:    userService,
		ProfileService: profileService,
		PostService:    postService,
		GithubService:  githubService,
	}
}
