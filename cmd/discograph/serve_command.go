package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"discograph/internal/catalog"
	"discograph/internal/config"
	"discograph/internal/logging"
	"discograph/internal/server"
)

func newServeCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmdCtx.withStore(func(cfg *config.Config, store *catalog.Store) error {
				logger, err := logging.NewFromConfig(cfg)
				if err != nil {
					return err
				}

				srv, err := server.New(cfg, store, logger)
				if err != nil {
					return err
				}

				ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				if err := srv.Start(ctx); err != nil {
					return err
				}
				defer srv.Stop()

				<-ctx.Done()
				logger.Info("shutting down")
				return nil
			})
		},
	}
}
