package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/24svcs/svcs-api/config"
	"github.com/24svcs/svcs-api/internal/queue"
	"github.com/24svcs/svcs-api/internal/repository"
	"github.com/24svcs/svcs-api/pkg/logger"
	"github.com/24svcs/svcs-api/pkg/snowflake"
	"github.com/24svcs/svcs-api/storage"
	"github.com/24svcs/svcs-api/storage/database"
)

func main() {

	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Logger.Info("Received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer storage.Close()

	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	logger.Logger.Info("Worker service starting",
		zap.String("service", config.Cfg.ServiceName+"-worker"),
		zap.String("environment", config.Cfg.Environment),
	)

	db := database.DB()
	consumer := queue.NewAlertConsumer(
		repository.NewOrganizationRepo(db),
		repository.NewEmployeeRepo(db),
		repository.NewAlertRepo(db),
	)

	// 消费者断开后退避重连
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if err := consumer.Start(ctx); err != nil {
				logger.Logger.Error("Alert consumer stopped", zap.Error(err))
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
			}

			logger.Logger.Info("Restarting alert consumer...")
		}
	}()

	<-ctx.Done()
	<-done

	logger.Logger.Info("Worker service shutting down gracefully")
}
