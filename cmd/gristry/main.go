package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/gristry/internal/cache"
	"github.com/xxxsen/gristry/internal/config"
	"github.com/xxxsen/gristry/internal/grist"
	"github.com/xxxsen/gristry/internal/handler"
	"github.com/xxxsen/gristry/internal/service"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gristry",
		Short: "read-only items/tags API over a Grist document",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			logger.Init("", cfg.LogLevel, 0, 0, 0, true)
			logutil.GetLogger(context.Background()).Info("config loaded",
				zap.String("grist_base_url", cfg.GristBaseURL),
				zap.Duration("cache_ttl", cfg.CacheTTL),
			)
			return runServer(cfg)
		},
	}

	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServer(cfg *config.Config) error {
	client := grist.NewClient(cfg.GristBaseURL, cfg.GristAPIKey, &http.Client{
		Timeout: cfg.GristTimeout,
	})
	tables := cache.Wrap(client, cfg.CacheTTL)
	catalog := service.NewCatalogService(tables)

	router := handler.NewRouter(handler.RouterDeps{
		Items:           handler.NewItemHandler(catalog),
		Tags:            handler.NewTagHandler(catalog),
		Docs:            handler.NewDocsHandler(),
		CORSOrigins:     cfg.CORSOrigins,
		RateLimitWindow: cfg.RateLimitWindow,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
