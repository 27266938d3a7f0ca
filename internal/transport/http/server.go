package http

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"go.uber.org/zap"

	"github.com/PSINGLA1407/socialmedia/internal/cache"
	"github.com/PSINGLA1407/socialmedia/internal/config"
	"github.com/PSINGLA1407/socialmedia/internal/database"
	"github.com/PSINGLA1407/socialmedia/internal/handler"
	"github.com/PSINGLA1407/socialmedia/internal/logger"
	appredis "github.com/PSINGLA1407/socialmedia/internal/redis"
	"github.com/PSINGLA1407/socialmedia/internal/repository"
	"github.com/PSINGLA1407/socialmedia/internal/service"
	"github.com/PSINGLA1407/socialmedia/internal/storage"
)

func Run() error {
	ctx := context.Background()

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	// 3. Connect to Database
	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// 4. Feed cache (optional; the feed works without Redis)
	var feedCache cache.FeedCache
	if cfg.RedisURL != "" {
		redisClient, err := appredis.NewClient(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := redisClient.Ping(ctx); err != nil {
			return fmt.Errorf("failed to reach redis: %w", err)
		}
		defer redisClient.Close()
		feedCache = cache.NewFeedCache(redisClient.Client, time.Duration(cfg.FeedCacheTTLSec)*time.Second, log)
		log.Info("feed cache enabled", zap.Int("ttl_seconds", cfg.FeedCacheTTLSec))
	} else {
		log.Info("feed cache disabled, no REDIS_URL configured")
	}

	// 5. Object storage
	uploader, err := newUploader(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create storage backend: %w", err)
	}
	log.Info("storage backend ready", zap.String("backend", cfg.StorageBackend))

	// 6. Repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	// 7. Services
	authService := service.NewAuthService(userRepo, cfg, log)
	mediaService := service.NewMediaService(uploader, log)
	postService := service.NewPostService(postRepo, uploader, feedCache, cfg.PublicBaseURL, log)
	feedService := service.NewFeedService(postRepo, userRepo, feedCache, cfg.PublicBaseURL, log)
	profileService := service.NewProfileService(profileRepo, userRepo, postRepo, mediaService, cfg.PublicBaseURL, log)

	// 8. Handlers and Router
	router := NewRouter(RouterConfig{
		AuthHandler:    handler.NewAuthHandler(authService, cfg),
		FeedHandler:    handler.NewFeedHandler(feedService, postService),
		PostHandler:    handler.NewPostHandler(postService),
		ProfileHandler: handler.NewProfileHandler(profileService),
		JWTSecret:      cfg.JWTSecret,
	})

	addr := ":" + cfg.ServerPort
	log.Info("starting server", zap.String("addr", addr))
	return stdhttp.ListenAndServe(addr, router)
}

// newUploader selects the storage backend. The S3-compatible bucket is the
// canonical one; gcs keeps the legacy deployment working and local serves
// development.
func newUploader(ctx context.Context, cfg *config.Config) (storage.Uploader, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendS3:
		return storage.NewS3Uploader(ctx, cfg)
	case config.StorageBackendGCS:
		return storage.NewGCSUploader(ctx, cfg)
	case config.StorageBackendLocal:
		return storage.NewLocalUploader(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
