package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"payroll-engine/internal/handler"
	"payroll-engine/internal/logger"
	"payroll-engine/internal/metrics"
)

func newServeCmd(load loader) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, tables, err := load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Server.Port = port
			}

			log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			var m *metrics.Metrics
			if cfg.Metrics.Enabled {
				m = metrics.New()
			}
			h := handler.New(tables, log, m)

			server := &fasthttp.Server{
				Handler:      h.Route,
				Name:         "payroll-engine",
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info("payroll engine starting",
					zap.String("addr", cfg.Addr()),
					zap.Int("fiscal_year", tables.FiscalYear()),
					zap.Bool("metrics", cfg.Metrics.Enabled),
				)
				errCh <- server.ListenAndServe(cfg.Addr())
			}()

			select {
			case err := <-errCh:
				return fmt.Errorf("server failed: %w", err)
			case <-ctx.Done():
			}

			log.Info("shutting down")
			if err := server.ShutdownWithContext(context.Background()); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "Port to listen on (overrides server.port)")
	return cmd
}
