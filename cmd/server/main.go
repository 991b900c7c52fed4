// @title         mood-service API
// @version       1.0
// @description   Personal mood journal: daily mood entries, history queries and statistics.
// @BasePath      /
// @schemes       http
// @host          localhost:5000
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Access token. Both "Bearer <JWT>" and "<JWT>" are accepted.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/artem13815/mood/docs"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"

	// internal imports
	"github.com/artem13815/mood/api/http"
	"github.com/artem13815/mood/api/http/handlers"
	"github.com/artem13815/mood/pkg/auth"
	"github.com/artem13815/mood/pkg/config"
	"github.com/artem13815/mood/pkg/health"
	"github.com/artem13815/mood/pkg/health/checkers"
	"github.com/artem13815/mood/pkg/mood"
	pgrepo "github.com/artem13815/mood/pkg/repository/postgres"
	"github.com/artem13815/mood/pkg/security/jwt"
	"github.com/artem13815/mood/pkg/storage/files"
	"github.com/artem13815/mood/pkg/storage/postgres"
	"github.com/artem13815/mood/pkg/storage/redis"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run wires the service and blocks until the server stops. Every resource
// opened here is released by its deferred close before run returns.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration from env/.env and optional CONFIG_FILE
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Connect to PostgreSQL and bring the schema up to date
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("postgres connect: %w", err)
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("postgres migrate: %w", err)
	}

	checks := []health.Checker{checkers.NewPostgresChecker(pool)}

	// Optional statistics cache
	var statsCache mood.StatsCache
	if cfg.Redis.Addr != "" {
		rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer rdb.Close()
		statsCache = redis.NewStatsCache(rdb, time.Duration(cfg.Redis.StatsTTLSeconds)*time.Second)
		checks = append(checks, checkers.NewRedisChecker(rdb))
		log.Printf("stats cache enabled at %s", cfg.Redis.Addr)
	}

	// Profile images on MinIO when configured, local disk otherwise
	var store files.Store
	if cfg.Minio.Endpoint != "" {
		ms, err := files.NewMinioStore(ctx, cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.UseSSL)
		if err != nil {
			return fmt.Errorf("minio: %w", err)
		}
		store = ms
		checks = append(checks, checkers.NewMinioChecker(ms))
		log.Printf("profile images stored in bucket %q", cfg.Minio.Bucket)
	} else {
		ls, err := files.NewLocalStore(cfg.UploadDir)
		if err != nil {
			return fmt.Errorf("upload dir: %w", err)
		}
		store = ls
	}
	images := files.NewImages(store, cfg.UploadMaxBytes)

	// Wire dependencies
	tokens := jwt.NewManager(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	authUC := auth.NewAuthService(pgrepo.NewUserRepository(pool), tokens, images)
	moodUC := mood.NewService(pgrepo.NewMoodRepository(pool), statsCache)

	app := fiber.New(fiber.Config{
		AppName:   "mood-service",
		BodyLimit: cfg.BodyLimitBytes,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Register routes
	http.Register(app, tokens, http.Handlers{
		User:    handlers.NewUserHandler(authUC, images),
		Mood:    handlers.NewMoodHandler(moodUC),
		Uploads: handlers.NewUploadsHandler(images),
		Health:  handlers.NewHealthHandler(health.NewService(checks...)),
	})

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	// Start server
	log.Printf("HTTP server listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
