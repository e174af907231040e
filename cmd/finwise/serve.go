package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/thesoham2203/FinWise-Teen/internal/api"
	"github.com/thesoham2203/FinWise-Teen/internal/config"
	"github.com/thesoham2203/FinWise-Teen/internal/market"
	"github.com/thesoham2203/FinWise-Teen/internal/planner"
	"github.com/thesoham2203/FinWise-Teen/internal/store"
)

func serveCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if lv, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
				logger = logger.Level(lv)
			}
			if !cfg.Log.Pretty {
				logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(logger.GetLevel())
			}

			st, err := store.Open(cfg.Database.Path, logger)
			if err != nil {
				return err
			}
			defer st.Close()

			var remote planner.Generator
			if cfg.Planner.BaseURL != "" {
				remote = planner.NewClient(
					cfg.Planner.BaseURL,
					cfg.Planner.APIKey,
					time.Duration(cfg.Planner.TimeoutSeconds)*time.Second,
					logger,
				)
			}
			planSvc := planner.NewService(remote, logger)

			marketSvc := market.NewService(market.NewYahooClient(cfg.Market.Proxy), logger)
			if err := marketSvc.StartRefresh(cfg.Market.RefreshCron); err != nil {
				return err
			}
			defer marketSvc.Stop()

			handlers := api.NewHandlers(st, planSvc, marketSvc, version, logger)
			server := api.NewServer(cfg.Server.Port, handlers, logger)

			errCh := make(chan error, 1)
			go func() { errCh <- server.Start() }()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-stop:
				logger.Info().Str("signal", sig.String()).Msg("shutting down")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(ctx)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "finwise.yaml", "config file path")
	return cmd
}
