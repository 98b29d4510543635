package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelhouse/internal/logging"
	"reelhouse/internal/session"
	"reelhouse/internal/snapshot"
)

func newSnapshotCommand(ctx *commandContext) *cobra.Command {
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Copy the library to or from a SQLite snapshot (admin)",
	}

	snapshotCmd.AddCommand(newSnapshotExportCommand(ctx))
	snapshotCmd.AddCommand(newSnapshotImportCommand(ctx))
	snapshotCmd.AddCommand(newSnapshotStatsCommand(ctx))

	return snapshotCmd
}

func (c *commandContext) snapshotPath(args []string) (string, error) {
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.Paths.SnapshotFile, nil
}

func (c *commandContext) withSnapshot(cmd *cobra.Command, args []string, fn func(*snapshot.Store) error) error {
	path, err := c.snapshotPath(args)
	if err != nil {
		return err
	}
	store, err := snapshot.Open(cmd.Context(), path)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func newSnapshotExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Write the current library into a snapshot database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.asAdmin(cmd, false, func(sess *session.Session) error {
				return ctx.withSnapshot(cmd, args, func(store *snapshot.Store) error {
					lib := sess.Library()
					if err := store.Export(cmd.Context(), lib.Catalog(), lib.Accounts()); err != nil {
						return err
					}
					sess.Logger().Info("snapshot exported", logging.String("path", store.Path()))
					return printSnapshotStats(cmd, ctx, store, "Exported to "+store.Path())
				})
			})
		},
	}
}

func newSnapshotImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import [path]",
		Short: "Replace the library with the contents of a snapshot database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.asAdmin(cmd, true, func(sess *session.Session) error {
				return ctx.withSnapshot(cmd, args, func(store *snapshot.Store) error {
					cat, accounts, err := store.Import(cmd.Context())
					if err != nil {
						return err
					}
					sess.Replace(cat, accounts)
					sess.Logger().Info("snapshot imported", logging.String("path", store.Path()))
					return printSnapshotStats(cmd, ctx, store, "Imported from "+store.Path())
				})
			})
		},
	}
}

func newSnapshotStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [path]",
		Short: "Show row counts of a snapshot database",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.identity().RequireAdmin(); err != nil {
				return fmt.Errorf("%w (pass --admin)", err)
			}
			return ctx.withSnapshot(cmd, args, func(store *snapshot.Store) error {
				return printSnapshotStats(cmd, ctx, store, "Snapshot "+store.Path())
			})
		},
	}
}

func printSnapshotStats(cmd *cobra.Command, ctx *commandContext, store *snapshot.Store, heading string) error {
	stats, err := store.Stats(cmd.Context())
	if err != nil {
		return err
	}
	if ctx.jsonOutput() {
		return writeJSON(cmd, stats)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, heading)
	fmt.Fprintf(out, "Movies: %d, TV shows: %d, users: %d, rentals: %d, purchases: %d\n",
		stats.Movies, stats.TVShows, stats.Accounts, stats.Rentals, stats.Purchases)
	return nil
}
