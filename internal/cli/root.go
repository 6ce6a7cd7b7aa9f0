package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dzimiks/uniswap-contracts/internal/adapters/progress"
	"github.com/dzimiks/uniswap-contracts/internal/app"
	"github.com/dzimiks/uniswap-contracts/internal/config"
	"github.com/dzimiks/uniswap-contracts/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "udeploy",
		Short: "Deployment ledger for Uniswap protocol contracts",
		Long: `udeploy maintains per-network deployment logs for Uniswap protocol
contracts: each registration records the creation transaction, block
timestamp and decoded constructor arguments, and regenerates the markdown
documentation via forge-chronicles.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot)
			config.BindGlobalFlags(v, cmd)

			var sink usecase.ProgressSink
			if v.GetBool("non_interactive") || v.GetBool("json") {
				sink = progress.NewNopSink()
			} else {
				sink = progress.NewSpinnerSink()
			}

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable spinners and prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., mainnet, sepolia)")

	rootCmd.AddCommand(NewRegisterCmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewShowCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance, ok := cmd.Context().Value(appKey).(*app.App)
	if !ok {
		return nil, fmt.Errorf("app not initialized")
	}
	return appInstance, nil
}
