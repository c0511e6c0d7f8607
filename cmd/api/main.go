package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/setu-events/ticket-service/internal/adapter/cache"
	"github.com/setu-events/ticket-service/internal/adapter/codec"
	"github.com/setu-events/ticket-service/internal/adapter/handler"
	"github.com/setu-events/ticket-service/internal/adapter/mq"
	"github.com/setu-events/ticket-service/internal/adapter/repository/postgres"
	"github.com/setu-events/ticket-service/internal/core/ports"
	"github.com/setu-events/ticket-service/internal/core/services"
	"github.com/setu-events/ticket-service/internal/platform/config"
	"github.com/setu-events/ticket-service/internal/platform/database"
	"github.com/setu-events/ticket-service/internal/platform/logger"
	"github.com/setu-events/ticket-service/internal/platform/telemetry"
)

var version = "dev"

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zl.Sync()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("service stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, telemetry.TracingConfig{
		ServiceName: cfg.Tracing.ServiceName,
		Version:     version,
		Environment: cfg.Environment,
		Endpoint:    cfg.Tracing.Endpoint,
	})
	if err != nil {
		return err
	}
	defer shutdownTracer(context.Background())

	db, err := database.NewPostgresDB(ctx, database.Config{
		Host:            cfg.DB.Host,
		Port:            cfg.DB.Port,
		User:            cfg.DB.User,
		Password:        cfg.DB.Password,
		DBName:          cfg.DB.Name,
		SSLMode:         cfg.DB.SSLMode,
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	}, zl)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(db, zl); err != nil {
			return err
		}
	}

	zl.Info("connecting to redis", zap.String("addr", cfg.Redis.Addr()))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	defer cancelPing()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return err
	}

	var publisher ports.EventPublisher = mq.NoopPublisher{}
	if cfg.Rabbit.URL != "" {
		pub, err := mq.NewPublisher(cfg.Rabbit.URL, cfg.Rabbit.Exchange)
		if err != nil {
			return err
		}
		defer pub.Close()
		publisher = pub
	} else {
		zl.Warn("RABBIT_URL not set, ticket events will not be published")
	}

	tokenCodec, err := codec.New(cfg.Ticket.TokenCodec, cfg.Ticket.TokenSecret)
	if err != nil {
		return err
	}

	ticketRepo := postgres.NewTicketRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	statsCache := cache.NewRedisCache(redisClient, cfg.Ticket.StatsCacheTTL, cfg.Ticket.ParticipantsTTL)

	ticketService := services.NewTicketService(
		ticketRepo,
		participantRepo,
		eventRepo,
		tokenCodec,
		statsCache,
		publisher,
		zl,
		services.WithLocation(cfg.StatsLocation()),
	)
	registry := services.NewParticipantRegistry(participantRepo, eventRepo, statsCache, zl)

	go ticketService.RunCheckInReconciler(ctx, cfg.Ticket.ReconcileInterval)

	gin.SetMode(gin.ReleaseMode)
	ticketHandler := handler.NewTicketHandler(ticketService, registry, participantRepo, zl)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler.NewRouter(ticketHandler, zl),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		zl.Info("server starting", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	zl.Info("server exiting")

	return nil
}
