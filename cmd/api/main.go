package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cookbookd/backend/config"
	"github.com/cookbookd/backend/internal/api"
	"github.com/cookbookd/backend/internal/database"
	"github.com/cookbookd/backend/internal/middleware"
	"github.com/cookbookd/backend/internal/router"
	"github.com/cookbookd/backend/internal/server"
	"github.com/cookbookd/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, "migrations"); err != nil {
		logrus.Fatalf("failed to run migrations: %v", err)
	}

	// Redis is optional; without it the rating endpoint is simply unthrottled.
	var ratingLimiter *middleware.RateLimiter
	if cfg.RedisEnabled() {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			logrus.Warnf("failed to connect to Redis, rating rate limiting disabled: %v", err)
		} else {
			ratingLimiter = middleware.NewRatingRateLimiter(redisClient, cfg.RatingRateLimit)
		}
	}

	// S3 is optional; without a bucket the image upload endpoint reports 503.
	var imageService *service.ImageService
	s3Config, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		logrus.Warnf("failed to initialize S3, image upload disabled: %v", err)
	} else if s3Config != nil {
		imageService = service.NewImageService(s3Config)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	recipeService := service.NewRecipeService(db)
	categoryService := service.NewCategoryService(db)
	tagService := service.NewTagService(db)

	engine := router.SetupRouter(router.Handlers{
		DB:         db,
		Recipes:    api.NewRecipeHandler(recipeService, imageService, ratingLimiter),
		Categories: api.NewCategoryHandler(categoryService),
		Tags:       api.NewTagHandler(tagService),
		Admin:      api.NewAdminHandler(authService),
		Auth:       authService,
	})

	srv := server.New(cfg, engine)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logrus.Fatalf("server error: %v", err)
		}
	case sig := <-quit:
		logrus.Infof("received signal: %v", sig)
	}

	logrus.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("server shutdown error: %v", err)
	}
	logrus.Info("server stopped")
}
