package main

import (
	"os"

	"github.com/spf13/cobra"

	_ "time/tzdata"

	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/cli/migrate"
	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/cli/reconcile"
	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/cli/server"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "goldvault",
		Short:   "GoldVault - gold investment admin backend",
		Long:    `GoldVault manages investment plans, user subscriptions, deposits and gold inventory.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		reconcile.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
