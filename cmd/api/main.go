package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"streamhub/internal/config"
	"streamhub/internal/database"
	"streamhub/internal/handler"
	"streamhub/internal/middleware"
	"streamhub/internal/repository"
	"streamhub/internal/service"
	"streamhub/internal/storage"
	"streamhub/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	redis, err := config.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (stats caching disabled)", err)
	}
	if redis != nil {
		defer redis.Close()
	}

	banners, err := newBannerStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize banner storage: %v", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, banners, redis, cfg)
	handlers := handler.NewHandlers(services, cfg.MaxBannerSize)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		Views:        web.NewEngine(),
		BodyLimit:    int(cfg.MaxBannerSize) + 1024*1024,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	app.Static("/static", cfg.StaticDir)
	handler.RegisterRoutes(app, handlers)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newBannerStore(ctx context.Context, cfg *config.Config) (storage.BannerStore, error) {
	if cfg.BannerStorage != config.BannerStorageMinIO {
		store, err := storage.NewLocalStore(".", cfg.BannerDir)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	client, err := config.NewMinIOClient(ctx, cfg, storage.MinIOPrefix)
	if err != nil {
		return nil, err
	}
	return storage.NewMinIOStore(client, cfg.MinIOBucket, cfg.MinIOPublicEndpoint, cfg.MinIOPublicUseSSL), nil
}
