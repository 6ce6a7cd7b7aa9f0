package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/dzimiks/uniswap-contracts/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var includeHistory bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the latest known deployments for a network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if app.Config.Network == nil {
				return fmt.Errorf("no active network set in config, --network flag is required")
			}

			result, err := app.ListDeployments.Run(cmd.Context(), usecase.ListDeploymentsParams{
				IncludeHistory: includeHistory,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return json.NewEncoder(os.Stdout).Encode(result)
			}

			if len(result.Latest) == 0 {
				fmt.Printf("No deployments recorded for chain %s\n", result.ChainID)
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Contract", "Address", "Deployed", "Transaction"})
			t.SetColumnConfigs([]table.ColumnConfig{
				{Name: "Deployed", Align: text.AlignRight},
			})
			for _, dep := range result.Latest {
				t.AppendRow(table.Row{
					dep.ContractName,
					dep.Record.Address,
					time.Unix(int64(dep.Record.Timestamp), 0).UTC().Format(time.DateOnly),
					dep.Record.DeploymentTxn,
				})
			}
			t.Render()

			if includeHistory {
				fmt.Printf("\n%d history entries\n", len(result.History))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeHistory, "history", false, "Include the full registration history")

	return cmd
}
