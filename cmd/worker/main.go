package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/flightadmin/config"
	"github.com/Domenick1991/flightadmin/internal/audit"
	"github.com/Domenick1991/flightadmin/internal/kafka"
	"github.com/Domenick1991/flightadmin/internal/repository"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatalw("connect postgres", "error", err)
	}
	defer pool.Close()

	auditRepo := repository.NewAuditRepository(pool)
	recorder := audit.NewRecorder(auditRepo, logger)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.AuditTopic, logger)
	defer consumer.Close()

	go func() {
		if err := consumer.Consume(ctx, recorder.Handle); err != nil {
			logger.Errorw("consumer stopped", "error", err)
		}
	}()

	sweepMinutes := cfg.Worker.LivenessSweepMinutes
	if sweepMinutes <= 0 {
		sweepMinutes = 5
	}
	liveness := time.NewTicker(time.Duration(sweepMinutes) * time.Minute)
	defer liveness.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-liveness.C:
			recent, err := auditRepo.ListRecent(ctx, 1)
			if err != nil {
				logger.Warnw("audit liveness check", "error", err)
				continue
			}
			if len(recent) > 0 {
				logger.Infow("audit worker alive", "last_recorded_at", recent[0].RecordedAt)
			} else {
				logger.Infow("audit worker alive", "last_recorded_at", nil)
			}
		case s := <-sig:
			logger.Infow("shutting down", "signal", s.String())
			return
		}
	}
}
