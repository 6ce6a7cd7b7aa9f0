package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dzimiks/uniswap-contracts/internal/usecase"
)

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a deployed contract in the network's deployment log",
		Long: `Register a contract that is already deployed and verified so it appears in
the deployment log and the generated documentation.

The command will:
1. Fetch the contract name, ABI and constructor arguments from the explorer
2. Check that a compiled artifact exists in the foundry 'out' directory
3. Reject the address if it is already present in the log
4. Resolve the creation transaction's block timestamp from the chain
5. Append a history entry, rebuild the 'latest' view and write the log
6. Regenerate the markdown docs via forge-chronicles

Examples:
  # Register a contract on mainnet
  udeploy register --address 0x1F98431c8aD98523631AE4a59f267346ea31F984 -n mainnet

  # Register against a locally configured default network
  udeploy register --address 0xabcd...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if app.Config.Network == nil {
				return fmt.Errorf("no active network set in config, --network flag is required")
			}
			if address == "" {
				return fmt.Errorf("contract address is required (--address)")
			}

			result, err := app.RegisterDeployment.Run(cmd.Context(), usecase.RegisterDeploymentParams{
				Address: address,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return json.NewEncoder(os.Stdout).Encode(result)
			}

			fmt.Printf("%s Registered %s at %s\n",
				color.GreenString("✓"),
				color.New(color.Bold).Sprint(result.ContractName),
				result.Address)
			fmt.Printf("  deployment txn: %s\n", result.TransactionHash)
			fmt.Printf("  timestamp:      %d\n", result.Timestamp)
			if result.PoolInitCodeHash != "" {
				fmt.Printf("  pool init code hash: %s\n", result.PoolInitCodeHash)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "On-chain address of the deployed contract")

	return cmd
}
