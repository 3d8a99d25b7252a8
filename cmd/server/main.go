package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	answerbiz "github.com/answerd/answerd/internal/answer/biz"
	answerservice "github.com/answerd/answerd/internal/answer/service"
	"github.com/answerd/answerd/internal/conf"
	intentservice "github.com/answerd/answerd/internal/intent/service"
	"github.com/answerd/answerd/internal/pkg/logger"
	"github.com/answerd/answerd/internal/pkg/sse"
	"github.com/answerd/answerd/internal/server"
	"github.com/answerd/answerd/internal/websearch/provider"
	"github.com/answerd/answerd/internal/websearch/types"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "config.yaml", "config file path")
)

func main() {
	flag.Parse()

	// Load configuration
	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger with config
	logConfig := &logger.Config{
		Level:            config.Log.Level,
		Format:           config.Log.Format,
		Output:           config.Log.Output,
		EnableCaller:     config.Log.EnableCaller,
		EnableStacktrace: config.Log.EnableStacktrace,
		File: logger.FileConfig{
			Filename:   config.Log.File.Filename,
			MaxSize:    config.Log.File.MaxSize,
			MaxAge:     config.Log.File.MaxAge,
			MaxBackups: config.Log.File.MaxBackups,
			Compress:   config.Log.File.Compress,
		},
	}

	log, err := logger.New(logConfig)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if err := logger.InitGlobal(logConfig); err != nil {
		log.Fatal("failed to initialize global logger", zap.Error(err))
	}

	log.Info("config loaded successfully")

	// Initialize search provider
	searchProvider, err := provider.NewDuckDuckGoProvider(&types.ProviderConfig{
		ID:      types.ProviderDuckDuckGo,
		Name:    "DuckDuckGo",
		APIHost: config.Search.APIHost,
		Timeout: int(config.Search.Timeout / time.Second),
	})
	if err != nil {
		log.Fatal("failed to initialize search provider", zap.Error(err))
	}

	// Initialize use cases
	queryUseCase := answerbiz.NewQueryUseCase(searchProvider, config.AI.APIKey, log.Logger)
	if config.AI.APIKey == "" {
		log.Warn("no AI credential configured, generative fallback is disabled")
	}

	// Initialize services
	hub := sse.NewHub()
	queryService := answerservice.NewQueryService(queryUseCase, log.Logger)
	intentService := intentservice.NewIntentService(hub, log.Logger)

	// Initialize server
	httpServer := server.NewHTTPServer(config, log, queryService, intentService)

	go func() {
		if err := httpServer.Start(); err != nil {
			log.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	log.Info("server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Stop(ctx); err != nil {
		log.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
