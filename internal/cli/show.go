package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dzimiks/uniswap-contracts/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <contract>",
		Short: "Show the latest record and history of one contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if app.Config.Network == nil {
				return fmt.Errorf("no active network set in config, --network flag is required")
			}

			result, err := app.ShowDeployment.Run(cmd.Context(), usecase.ShowDeploymentParams{
				ContractName: args[0],
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return json.NewEncoder(os.Stdout).Encode(result)
			}

			bold := color.New(color.Bold)
			fmt.Printf("%s\n", bold.Sprint(result.ContractName))
			fmt.Printf("  address:        %s\n", result.Latest.Address)
			fmt.Printf("  deployment txn: %s\n", result.Latest.DeploymentTxn)
			fmt.Printf("  deployed:       %s\n", time.Unix(int64(result.Latest.Timestamp), 0).UTC().Format(time.RFC3339))
			if result.Latest.CommitHash != "" {
				fmt.Printf("  commit:         %s\n", result.Latest.CommitHash)
			}
			if result.Latest.PoolInitCodeHash != "" {
				fmt.Printf("  pool init code hash: %s\n", result.Latest.PoolInitCodeHash)
			}

			fmt.Printf("\nHistory (%d):\n", len(result.History))
			for _, entry := range result.History {
				record := entry.Contracts[result.ContractName]
				fmt.Printf("  %s  %s\n",
					time.Unix(int64(entry.Timestamp), 0).UTC().Format(time.RFC3339),
					record.Address)
				if len(record.Input.Constructor) > 0 {
					ctor, err := json.Marshal(record.Input.Constructor)
					if err == nil {
						fmt.Printf("      constructor: %s\n", string(ctor))
					}
				}
			}
			return nil
		},
	}

	return cmd
}
