package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/termfolio/internal/httpserver"
	"github.com/tinytelemetry/termfolio/internal/profile"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio, typewriter frames and shell over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context(), c.cfg, c.logger)
		},
	}
}

// runServer starts the HTTP API and blocks until SIGINT or SIGTERM.
func runServer(parent context.Context, cfg appConfig, logger *zap.Logger) error {
	p, err := profile.Load(cfg.Profile)
	if err != nil {
		return err
	}

	apiServer := httpserver.NewServer(cfg.APIAddr, p, httpserver.Options{
		Typewriter:     cfg.typewriterConfig(),
		CursorInterval: cfg.CursorInterval,
		Logger:         logger.Named("http"),
	})
	if err := apiServer.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}
	fmt.Printf("termfolio API listening on http://%s\n", cfg.APIAddr)

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		select {
		case sig := <-sigCh:
			fmt.Println("\nShutting down gracefully...")
			logger.Info("signal received", zap.String("signal", sig.String()))
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		start := time.Now()
		if err := apiServer.Stop(); err != nil {
			return fmt.Errorf("stopping API server: %w", err)
		}
		logger.Info("api stopped", zap.Duration("took", time.Since(start)))
		return nil
	})

	return g.Wait()
}
