package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/termtrans-backend/internal/adapter/postgres"
	"github.com/heartmarshall/termtrans-backend/internal/app"
	"github.com/heartmarshall/termtrans-backend/internal/config"
	"github.com/heartmarshall/termtrans-backend/internal/service/auth"
	"github.com/heartmarshall/termtrans-backend/migrations"
)

// configPath is bound to the persistent --config flag.
var configPath string

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "termctl",
		Short:         "Operate the terminology translation backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (defaults to CONFIG_PATH or ./config.yaml)")

	cmd.AddCommand(
		migrateCmd(),
		harvestCmd(),
		ldesCmd(),
		promoteCmd(),
		userCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
			},
		},
	)
	return cmd
}

func migrateCmd() *cobra.Command {
	var dsn string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.PersistentFlags().StringVar(&dsn, "dsn", "", "database DSN (defaults to the configured one)")

	resolve := func() (string, *slog.Logger, error) {
		if dsn != "" {
			return dsn, slog.Default(), nil
		}
		cfg, err := loadConfig()
		if err != nil {
			return "", nil, err
		}
		return cfg.Database.DSN, app.NewLogger(cfg.Log), nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, logger, err := resolve()
			if err != nil {
				return err
			}
			return postgres.Migrate(cmd.Context(), target, migrations.FS, logger)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, _, err := resolve()
			if err != nil {
				return err
			}
			status, err := postgres.MigrationStatus(cmd.Context(), target, migrations.FS)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
			for _, s := range status {
				applied := "-"
				if !s.AppliedAt.IsZero() {
					applied = s.AppliedAt.Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
			}
			return tw.Flush()
		},
	})
	return cmd
}

func harvestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "harvest <source-id>",
		Short: "Harvest a SPARQL source synchronously",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withContainer(cmd.Context(), func(c *app.Container) error {
				res, err := c.Harvest.Harvest(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}
}

func ldesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ldes <source-id>",
		Short: "Generate the LDES fragment of a source synchronously",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withContainer(cmd.Context(), func(c *app.Container) error {
				res, err := c.LDES.Generate(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}
}

func promoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <username>",
		Short: "Grant admin rights to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd.Context(), func(c *app.Container) error {
				user, err := c.Users.PromoteByUsername(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "user %s (%s) is now an admin\n", user.Username, user.ID)
				return nil
			})
		},
	}
}

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	var input auth.LoginInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a user without logging in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withContainer(cmd.Context(), func(c *app.Container) error {
				user, err := c.Auth.CreateUser(cmd.Context(), input)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), user)
			})
		},
	}
	create.Flags().StringVar(&input.Username, "username", "", "username")
	create.Flags().StringVar(&input.ORCID, "orcid", "", "ORCID iD (0000-0000-0000-0000)")
	create.Flags().StringVar(&input.Name, "name", "", "display name")
	create.MarkFlagsOneRequired("username", "orcid")

	cmd.AddCommand(create)
	return cmd
}

func withContainer(ctx context.Context, fn func(c *app.Container) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := app.NewContainer(ctx, cfg, app.NewLogger(cfg.Log))
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid source id %q: %w", s, err)
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
