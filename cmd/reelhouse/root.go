package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "reelhouse",
		Short:         "Media rental catalog and ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&flags.json, "json", false, "Write machine-readable JSON")
	rootCmd.PersistentFlags().StringVarP(&flags.user, "user", "u", "", "Act as this user")
	rootCmd.PersistentFlags().BoolVar(&flags.admin, "admin", false, "Act as the administrator")
	rootCmd.MarkFlagsMutuallyExclusive("user", "admin")

	rootCmd.AddCommand(newContentCommand(ctx))
	rootCmd.AddCommand(newBrowseCommand(ctx))
	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newSignupCommand(ctx))
	rootCmd.AddCommand(newRentCommand(ctx))
	rootCmd.AddCommand(newReturnCommand(ctx))
	rootCmd.AddCommand(newPurchaseCommand(ctx))
	rootCmd.AddCommand(newRentalsCommand(ctx))
	rootCmd.AddCommand(newPurchasesCommand(ctx))
	rootCmd.AddCommand(newChargesCommand(ctx))
	rootCmd.AddCommand(newUsersCommand(ctx))
	rootCmd.AddCommand(newSnapshotCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
