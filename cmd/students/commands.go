package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/yigit/studentdesk/internal/bootstrap"
	"github.com/yigit/studentdesk/internal/config"
	"github.com/yigit/studentdesk/internal/db"
	"github.com/yigit/studentdesk/internal/pkg/logger"
	"github.com/yigit/studentdesk/internal/server"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "students",
		Short:         "Student records service",
		Long:          "students serves a CRUD API over a single students table backed by PostgreSQL.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "path to the YAML config file")

	root.AddCommand(newServeCmd(&configPath), newMigrateCmd(&configPath))
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.NewServer(*configPath)
			if err != nil {
				return err
			}
			return srv.Run()
		},
	}
}

func newMigrateCmd(configPath *string) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the students table if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
			if err != nil {
				return err
			}
			lgr := logger.WithField("command", "migrate")

			database, err := db.NewPostgresDB(cfg)
			if err != nil {
				return err
			}
			defer database.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			if err := database.Ping(ctx); err != nil {
				return err
			}
			return bootstrap.EnsureSchema(ctx, database, lgr)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "how long to wait for the database")
	return cmd
}
