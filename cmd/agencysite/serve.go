package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/osa911/agencysite/internal/server"
	"github.com/osa911/agencysite/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadRuntime()
		defer logger.Close()

		logger.Info("Starting agencysite in %s mode", cfg.Environment)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		shutdownTracing, err := telemetry.Init(ctx, cfg, logger)
		if err != nil {
			logger.Error("Failed to initialize tracing: %v", err)
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := shutdownTracing(shutdownCtx); err != nil {
				logger.Warn("Failed to flush traces: %v", err)
			}
		}()

		inquiries, _ := buildPipeline(cfg)
		if captcha, mail := inquiries.DeliveryReady(); !captcha || !mail {
			logger.Warn("Contact form is not fully configured (captcha=%v mail=%v); submissions will be refused", captcha, mail)
		}

		srv := server.NewServer(cfg, logger, inquiries)
		if err := srv.Start(ctx); err != nil {
			logger.Error("Server error: %v", err)
			os.Exit(1)
		}
		logger.Info("Server stopped")
	},
}
