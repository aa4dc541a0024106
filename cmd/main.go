package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/grishma-roka/Campus-Cart/internal/cache"
	"github.com/grishma-roka/Campus-Cart/internal/db"
	"github.com/grishma-roka/Campus-Cart/internal/kafka"
	"github.com/grishma-roka/Campus-Cart/internal/logger"
	"github.com/grishma-roka/Campus-Cart/internal/repository/postgresql"
	"github.com/grishma-roka/Campus-Cart/internal/server"
	"github.com/grishma-roka/Campus-Cart/internal/storage"
)

func main() {
	db.LoadEnv()

	zapLogger := logger.New()
	defer func() { _ = zapLogger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.NewDb(ctx)
	if err != nil {
		zapLogger.Fatal("database init failed", zap.Error(err))
	}
	defer database.GetPool().Close()

	itemRepo := postgresql.NewItemRepo(database)
	orderRepo := postgresql.NewOrderRepo(database)
	deliveryRepo := postgresql.NewDeliveryRepo(database)
	borrowRepo := postgresql.NewBorrowRepo(database)
	conditionRepo := postgresql.NewConditionRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()
	userRepo := postgresql.NewUserRepo(database)

	seedAdmin(ctx, userRepo, zapLogger)

	itemCache := cache.NewItemCache(itemRepo)
	if err := itemCache.LoadInitialData(ctx); err != nil {
		zapLogger.Warn("item cache warm-up failed, serving from the store", zap.Error(err))
	}

	marketplace := storage.NewMarketplace(
		database, itemRepo, orderRepo, deliveryRepo, borrowRepo,
		conditionRepo, outboxRepo, itemCache, zapLogger)

	producer := newProducer()
	defer func() { _ = producer.Close() }()

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    20,
		MaxAttempts:  5,
	})
	go publisher.Run(ctx)

	auditManager := server.NewAuditManager(2, 5, 500*time.Millisecond, producer)
	srv := server.New(marketplace, userRepo, auditManager)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "9000"
	}

	go func() {
		if err := srv.Run(ctx, port); err != nil {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	publisher.Shutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
	}

	log.Println("Server gracefully stopped")
}

// newProducer picks the real Kafka writer when brokers are configured and
// the console fallback otherwise.
func newProducer() kafka.Producer {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return kafka.NewConsoleProducer()
	}
	return kafka.NewWriterProducer(strings.Split(brokers, ","))
}

// seedAdmin creates the bootstrap admin account when the env asks for one.
// An already existing account is not an error.
func seedAdmin(ctx context.Context, users storage.UserRepository, zapLogger *zap.Logger) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}
	if err := users.CreateUser(ctx, username, password, storage.RoleAdmin); err != nil {
		zapLogger.Warn("admin seed skipped", zap.Error(err))
		return
	}
	zapLogger.Info("admin account seeded", zap.String("username", username))
}
