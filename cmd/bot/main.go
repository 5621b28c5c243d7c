package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpsbot/internal/common/clock"
	"github.com/KirkDiggler/rpsbot/internal/common/logger"
	"github.com/KirkDiggler/rpsbot/internal/common/uuid"
	"github.com/KirkDiggler/rpsbot/internal/config"
	"github.com/KirkDiggler/rpsbot/internal/handlers/discord"
	discordPlatform "github.com/KirkDiggler/rpsbot/internal/platform/discord"
	"github.com/KirkDiggler/rpsbot/internal/random"
	"github.com/KirkDiggler/rpsbot/internal/repositories/results"
	"github.com/KirkDiggler/rpsbot/internal/scheduler"
	gameService "github.com/KirkDiggler/rpsbot/internal/services/game"
	"github.com/KirkDiggler/rpsbot/internal/services/messaging"
	"github.com/KirkDiggler/rpsbot/internal/services/roulette"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logr.Sync()

	// Initialize the results ledger when Redis is configured
	var resultsRepo results.Repository
	if cfg.ResultsEnabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()

		repo, err := results.NewRedis(&results.Config{
			RedisClient: redisClient,
			TTL:         cfg.ResultsTTL,
		})
		if err != nil {
			logr.Fatal("failed to create results repository", zap.Error(err))
		}
		resultsRepo = repo
	} else {
		logr.Info("REDIS_ADDR not set, stats are disabled")
	}

	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		logr.Fatal("failed to create Discord session", zap.Error(err))
	}

	platformClient, err := discordPlatform.New(&discordPlatform.Config{
		Session: session,
		Logger:  logr,
	})
	if err != nil {
		logr.Fatal("failed to create platform client", zap.Error(err))
	}

	picker := random.New(&random.Config{Seed: cfg.RandomSeed})

	messagingSvc, err := messaging.New(&messaging.Config{
		Picker: picker,
	})
	if err != nil {
		logr.Fatal("failed to create messaging service", zap.Error(err))
	}

	timers := scheduler.New()

	gameSvc, err := gameService.New(&gameService.Config{
		GameDuration:    cfg.GameDuration,
		MinParticipants: cfg.MinParticipants,
		Platform:        platformClient,
		Messaging:       messagingSvc,
		Results:         resultsRepo,
		Scheduler:       timers,
		Clock:           clock.New(),
		UUIDGenerator:   uuid.New(),
		Picker:          picker,
		Logger:          logr,
	})
	if err != nil {
		logr.Fatal("failed to create game service", zap.Error(err))
	}

	rouletteSvc, err := roulette.New(&roulette.Config{
		MinMembers:       cfg.MinMembers,
		EnumerationLimit: cfg.EnumerationLimit,
		ExcludeAdmins:    cfg.ExcludeAdmins,
		Platform:         platformClient,
		Messaging:        messagingSvc,
		Results:          resultsRepo,
		Picker:           picker,
		Clock:            clock.New(),
		UUIDGenerator:    uuid.New(),
		Logger:           logr,
	})
	if err != nil {
		logr.Fatal("failed to create roulette service", zap.Error(err))
	}

	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		GameDuration:  cfg.GameDuration,
		GameService:   gameSvc,
		Roulette:      rouletteSvc,
		Platform:      platformClient,
		Messaging:     messagingSvc,
		Results:       resultsRepo,
		Logger:        logr,
	})
	if err != nil {
		logr.Fatal("failed to create Discord bot", zap.Error(err))
	}

	if err := bot.Start(); err != nil {
		logr.Fatal("failed to start Discord bot", zap.Error(err))
	}

	// Wait for interrupt signal to gracefully shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()
	<-ctx.Done()

	// Pending rounds are dropped, sessions do not survive a restart
	gameSvc.Close()

	done := make(chan error, 1)
	go func() { done <- bot.Stop() }()
	select {
	case err := <-done:
		if err != nil {
			logr.Error("error stopping bot", zap.Error(err))
		}
	case <-time.After(10 * time.Second):
		logr.Warn("timed out stopping bot")
	}

	logr.Info("bot has been shut down")
}
