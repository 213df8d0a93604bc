package cli

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	cmd := &cobra.Command{
		Use:           "stockroom",
		Short:         "Inventory backend for suppliers and products",
		SilenceUsage:  true,
		SilenceErrors: true,
		//サブコマンドなしはserve
		RunE: serve.RunE,
	}
	cmd.PersistentFlags().String("env-file", ".env", "dotenv file loaded before reading the environment")
	cmd.AddCommand(serve)
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

func Execute() error {
	return newRootCmd().Execute()
}
