package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"healthcare-portal-api/internal/handler"
	"healthcare-portal-api/internal/middleware"
	"healthcare-portal-api/internal/store"
)

func main() {
	_ = godotenv.Load()
	port := env("PORT", "8080")
	userID := env("DEFAULT_USER_ID", store.SeedUserID)

	replyDelay := time.Second
	if d, err := time.ParseDuration(env("CHAT_REPLY_DELAY", "1s")); err == nil {
		replyDelay = d
	}

	// store: Postgres when DATABASE_URL is set, seeded in-memory otherwise
	var st store.Store
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		pool, err := pgxpool.New(context.Background(), dbURL)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer pool.Close()
		if err := pool.Ping(context.Background()); err != nil {
			log.Fatalf("db ping: %v", err)
		}
		log.Println("connected to postgres")

		if migration, err := os.ReadFile("db/migrations/001_init.sql"); err != nil {
			log.Printf("migration file not found, skipping: %v", err)
		} else if _, err := pool.Exec(context.Background(), string(migration)); err != nil {
			log.Printf("migration warning: %v", err)
		} else {
			log.Println("migration applied")
		}

		st = store.NewPostgres(pool)
	} else {
		mem := store.NewMemory()
		if err := mem.Seed(); err != nil {
			log.Fatalf("seed: %v", err)
		}
		st = mem
		log.Println("using in-memory store, contents reset on restart")
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(middleware.RateLimit(middleware.NewRateLimiter(5, 10)))
	app.Use(middleware.Identity(userID))

	handler.New(st, replyDelay).Register(app)

	go func() {
		log.Printf("http on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Printf("http: %v", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Println("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
