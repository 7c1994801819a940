package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-sim/internal/config"
	"github.com/KirkDiggler/dungeon-sim/internal/events"
	"github.com/KirkDiggler/dungeon-sim/internal/handlers/console"
	"github.com/KirkDiggler/dungeon-sim/internal/notifiers"
	"github.com/KirkDiggler/dungeon-sim/internal/repositories/rosters"
	"github.com/KirkDiggler/dungeon-sim/internal/services/combat"
	"github.com/KirkDiggler/dungeon-sim/internal/services/dungeon"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Kill notifications fan out to the console and the kill log
	bus := events.NewBus()
	bus.Subscribe(events.EventTypeKill, notifiers.NewConsoleNotifier(os.Stdout))

	logNotifier := notifiers.NewLogFileNotifier(cfg.Dungeon.KillLogPath)
	defer func() { _ = logNotifier.Close() }()
	bus.Subscribe(events.EventTypeKill, logNotifier)

	fileRepo := rosters.NewFileRepository(&rosters.FileRepoConfig{})

	// Redis-backed rosters are optional; without them only file targets work
	var redisRepo rosters.Repository
	if cfg.Redis.Enabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis unreachable at %s, redis: targets disabled: %v", cfg.Redis.Addr, err)
			_ = redisClient.Close()
		} else {
			log.Printf("Connected to Redis at %s", cfg.Redis.Addr)
			redisRepo = rosters.NewRedisRepository(&rosters.RedisRepoConfig{
				Client: redisClient,
			})
			defer func() { _ = redisClient.Close() }()
		}
		cancel()
	}

	service := dungeon.NewService(&dungeon.ServiceConfig{
		FileRepository:  fileRepo,
		RedisRepository: redisRepo,
		Resolver:        combat.NewResolver(&combat.ResolverConfig{Bus: bus}),
	})

	handler := console.NewHandler(&console.HandlerConfig{
		Service: service,
		Input:   os.Stdin,
		Output:  os.Stdout,
		Prompt:  cfg.Dungeon.Prompt,
	})

	if err := handler.Run(context.Background()); err != nil {
		log.Fatalf("Command loop failed: %v", err)
	}
}
