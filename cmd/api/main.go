package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"maxbot-api/config"
	_ "maxbot-api/docs" // Swagger docs
	"maxbot-api/internal/httpserver"
	"maxbot-api/internal/identity/usecase"
	"maxbot-api/pkg/log"
	"maxbot-api/pkg/maxbot"
)

// @title       Max Bot Identity API
// @description Exposes the identity of the configured Max messenger bot (GET /me of the Max Bot API).
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Max Bot Identity API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Max API URL: %s", cfg.MaxBot.BaseURL)

	// 3. Max Bot API clients
	opts := clientOptions(cfg.MaxBot, logger)

	client, err := maxbot.NewWithBaseURL(cfg.MaxBot.AccessToken, cfg.MaxBot.BaseURL, opts...)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Max client: ", err)
		return
	}
	asyncClient, err := maxbot.NewAsyncWithBaseURL(cfg.MaxBot.AccessToken, cfg.MaxBot.BaseURL, opts...)
	if err != nil {
		logger.Error(ctx, "Failed to initialize async Max client: ", err)
		return
	}

	// 4. Identity domain
	identityUC := usecase.New(logger, client, asyncClient, cfg.IdentityCache.TTL)

	// Outcome is logged by the use case; /ready reports it.
	identityUC.Warmup(ctx)

	// 5. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		IdentityUseCase: identityUC,
		RequestsPerMin:  cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
	logger.Info(context.Background(), "Server stopped")
}

func clientOptions(cfg config.MaxBotConfig, logger log.Logger) []maxbot.Option {
	opts := []maxbot.Option{
		maxbot.WithHTTPSOnly(cfg.HTTPSOnly),
		maxbot.WithTimeout(cfg.Timeout),
		maxbot.WithLogger(logger),
	}
	if cfg.StrictTransport {
		opts = append(opts, maxbot.WithStrictTransport())
	}
	if cfg.AuthMode == config.AuthModeHeader {
		opts = append(opts, maxbot.WithAuthenticator(maxbot.HeaderAuth{}))
	}
	return opts
}
