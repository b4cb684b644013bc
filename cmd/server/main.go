package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightadmin/config"
	"github.com/Domenick1991/flightadmin/internal/bootstrap"
	"github.com/Domenick1991/flightadmin/internal/cache"
	"github.com/Domenick1991/flightadmin/internal/kafka"
	"github.com/Domenick1991/flightadmin/internal/metrics"
	"github.com/Domenick1991/flightadmin/internal/repository"
	"github.com/Domenick1991/flightadmin/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatalw("connect postgres", "error", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis,
		time.Duration(cfg.Admin.FlightsCacheTTLSec)*time.Second,
		time.Duration(cfg.Admin.SessionTTLMinutes)*time.Minute,
	)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	m := metrics.New()

	flightRepo := repository.NewFlightRepository(pool)
	flightService := flights.NewFlightService(flightRepo, redisCache, logger,
		flights.WithAuditProducer(producer, cfg.Kafka.AuditTopic),
		flights.WithMetrics(m),
	)

	if err := bootstrap.Run(ctx, cfg, flightService, redisCache, m, logger); err != nil {
		logger.Fatalw("server error", "error", err)
	}
}
