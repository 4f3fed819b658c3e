package main

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	auction "sealed-auction/internal/auctionService"
	"sealed-auction/internal/audit"
	bidding "sealed-auction/internal/biddingService"
	"sealed-auction/internal/cache"
	"sealed-auction/internal/config"
	"sealed-auction/internal/database"
	payment "sealed-auction/internal/paymentService"
	reporting "sealed-auction/internal/reportingService"
	"sealed-auction/internal/repository"
	"sealed-auction/internal/server"
	user "sealed-auction/internal/userService"
	"sealed-auction/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	utils.SetLevel(cfg.LogLevel)

	repo, closeRepo := openStore(ctx, cfg)
	defer closeRepo()

	recorder, closeRecorder := buildRecorder(cfg, repo)
	defer closeRecorder()

	var auctionOpts []auction.Option
	if c := openCache(cfg); c != nil {
		auctionOpts = append(auctionOpts, auction.WithCache(c, cfg.AuctionCacheTTL))
	}

	auctionSvc := auction.NewAuctionService(repo, recorder, auctionOpts...)
	biddingSvc := bidding.NewBiddingService(repo, auctionSvc, recorder)

	ln, err := net.Listen("tcp", cfg.Port)
	if err != nil {
		utils.Fatal("failed to listen", map[string]any{"port": cfg.Port, "error": err.Error()})
	}

	router := server.SetupRouter(server.Services{
		Auctions:  auctionSvc,
		Bidding:   biddingSvc,
		Users:     user.NewUserService(repo, recorder),
		Payments:  payment.NewPaymentService(repo, repo, recorder),
		Reporting: reporting.NewReportingService(auctionSvc, biddingSvc),
	}, server.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))

	utils.Info("starting auction server", map[string]any{"port": cfg.Port})
	if err := server.Serve(ctx, ln, router); err != nil {
		utils.Error("server exited with error", map[string]any{"error": err.Error()})
		return
	}
	utils.Info("server stopped", nil)
}

// openStore connects to PostgreSQL when DATABASE_URL is set, otherwise
// everything lives in memory for the lifetime of the process
func openStore(ctx context.Context, cfg *config.Config) (repository.Store, func()) {
	if cfg.DatabaseURL == "" {
		utils.Warn("DATABASE_URL not set, using in-memory store", nil)
		return repository.NewMemoryRepo(), func() {}
	}

	db, err := database.NewConnection(ctx, cfg.DatabaseURL, cfg.DBConnectRetries)
	if err != nil {
		utils.Fatal("failed to connect to database", map[string]any{"error": err.Error()})
	}
	if err := database.RunMigrations(db); err != nil {
		db.Close()
		utils.Fatal("failed to run migrations", map[string]any{"error": err.Error()})
	}

	return repository.NewPostgresRepo(db), func() {
		if err := db.Close(); err != nil {
			utils.Warn("failed to close database", map[string]any{"error": err.Error()})
		}
	}
}

// openCache returns nil when Redis is not configured or unreachable
func openCache(cfg *config.Config) cache.Cache {
	if cfg.RedisURL == "" {
		return nil
	}
	c, err := cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		utils.Warn("redis unavailable, continuing without auction cache", map[string]any{"error": err.Error()})
		return nil
	}
	utils.Info("auction cache enabled", map[string]any{"ttl": cfg.AuctionCacheTTL.String()})
	return c
}

func buildRecorder(cfg *config.Config, log repository.AuditLog) (audit.Recorder, func()) {
	store := audit.NewStoreRecorder(log)
	if len(cfg.KafkaBrokers) == 0 {
		return store, func() {}
	}

	kafkaRecorder := audit.NewKafkaRecorder(cfg.KafkaBrokers, cfg.KafkaAuditTopic)
	utils.Info("publishing audit events to kafka", map[string]any{
		"brokers": cfg.KafkaBrokers,
		"topic":   cfg.KafkaAuditTopic,
	})
	return audit.Multi{store, kafkaRecorder}, func() {
		if err := kafkaRecorder.Close(); err != nil {
			utils.Warn("failed to close kafka writer", map[string]any{"error": err.Error()})
		}
	}
}
