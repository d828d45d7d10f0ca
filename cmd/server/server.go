package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/24svcs/svcs-api/config"
	"github.com/24svcs/svcs-api/internal/middleware"
	"github.com/24svcs/svcs-api/internal/router"
	"github.com/24svcs/svcs-api/pkg/logger"
	"github.com/24svcs/svcs-api/pkg/snowflake"
	"github.com/24svcs/svcs-api/pkg/token"
	"github.com/24svcs/svcs-api/storage"

	otelpkg "github.com/24svcs/svcs-api/pkg/otel"
)

func main() {
	// 日志部分
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

	// 初始化存储层，记得关闭外部连接
	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer storage.Close()

	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	if config.Cfg.TracingEnabled {
		shutdown, err := otelpkg.InitOpenTelemetry(ctx, otelpkg.Config{
			ServiceName:  config.Cfg.ServiceName,
			Environment:  config.Cfg.Environment,
			OTLPEndpoint: config.Cfg.TracingEndpoint,
			SampleRatio:  config.Cfg.TracingSampler,
		})
		if err != nil {
			logger.Logger.Warn("Failed to initialize OpenTelemetry, tracing disabled", zap.Error(err))
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					logger.Logger.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
				}
			}()
		}
	}

	if err := middleware.InitMetrics(otel.Meter("hertz-server")); err != nil {
		logger.Logger.Fatal("Failed to initialize HTTP metrics", zap.Error(err))
	}

	// token 在中间件前初始化，middleware 依赖 token
	if err := token.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize token package", zap.Error(err))
	}

	if err := middleware.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize middlewares", zap.Error(err))
	}

	logger.Logger.Info("Server starting",
		zap.String("service", config.Cfg.ServiceName),
		zap.String("port", config.Cfg.ServerPort),
		zap.String("environment", config.Cfg.Environment),
	)

	addr := net.JoinHostPort(config.Cfg.ServerHost, config.Cfg.ServerPort)
	h := server.Default(server.WithHostPorts(addr))

	router.Register(h)

	// 优雅关闭：在单独的 goroutine 中监听关闭信号并调用 Shutdown
	go func() {
		<-ctx.Done()
		logger.Logger.Info("Initiating graceful shutdown...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.Shutdown(shutdownCtx); err != nil {
			logger.Logger.Error("Failed to shutdown HTTP server", zap.Error(err))
		}
	}()

	logger.Logger.Info("HTTP server listening", zap.String("addr", addr))

	h.Spin()

	logger.Logger.Info("Server shutting down gracefully")
}
