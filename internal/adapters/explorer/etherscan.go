package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
	"github.com/dzimiks/uniswap-contracts/internal/usecase"
)

// defaultAPIURL is Etherscan's unified multi-chain endpoint, used when
// foundry.toml has no explorer entry for the active network.
const defaultAPIURL = "https://api.etherscan.io/v2/api"

// EtherscanClient resolves contract metadata through an Etherscan-compatible
// explorer API.
type EtherscanClient struct {
	config *config.RuntimeConfig
	client *http.Client
	log    *slog.Logger
}

// NewEtherscanClient creates a new explorer client
func NewEtherscanClient(cfg *config.RuntimeConfig, log *slog.Logger) *EtherscanClient {
	return &EtherscanClient{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log.With("component", "EtherscanClient"),
	}
}

// apiResponse is the explorer's envelope. Result shapes vary per action.
type apiResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

type sourceCodeResult struct {
	ContractName         string `json:"ContractName"`
	ABI                  string `json:"ABI"`
	ConstructorArguments string `json:"ConstructorArguments"`
}

type contractCreationResult struct {
	ContractAddress string `json:"contractAddress"`
	ContractCreator string `json:"contractCreator"`
	TxHash          string `json:"txHash"`
}

// GetContractData fetches the verified source metadata for a contract: its
// name, the raw constructor argument bytes and the constructor parameter
// specs parsed out of the verified ABI.
func (c *EtherscanClient) GetContractData(ctx context.Context, address string) (*usecase.ContractData, error) {
	var results []sourceCodeResult
	err := c.call(ctx, url.Values{
		"module":  {"contract"},
		"action":  {"getsourcecode"},
		"address": {address},
	}, &results)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 || results[0].ContractName == "" {
		return nil, fmt.Errorf("contract %s is not verified on the explorer", address)
	}
	src := results[0]
	if strings.Contains(src.ABI, "not verified") {
		return nil, fmt.Errorf("contract %s source code is not verified", address)
	}

	parsed, err := abi.JSON(strings.NewReader(src.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	return &usecase.ContractData{
		Name:            src.ContractName,
		ConstructorArgs: common.FromHex(src.ConstructorArguments),
		Constructor:     parsed.Constructor.Inputs,
	}, nil
}

// GetCreationTransactionHash fetches the hash of the transaction that
// created the contract.
func (c *EtherscanClient) GetCreationTransactionHash(ctx context.Context, address string) (string, error) {
	var results []contractCreationResult
	err := c.call(ctx, url.Values{
		"module":            {"contract"},
		"action":            {"getcontractcreation"},
		"contractaddresses": {address},
	}, &results)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", fmt.Errorf("no creation transaction found for %s", address)
	}
	return results[0].TxHash, nil
}

// call issues one explorer API request and decodes the result payload.
func (c *EtherscanClient) call(ctx context.Context, params url.Values, result any) error {
	apiURL, apiKey, chainID := c.endpoint()
	if apiKey != "" {
		params.Set("apikey", apiKey)
	}
	if chainID != "" {
		params.Set("chainid", chainID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	c.log.Debug("explorer request", "action", params.Get("action"))
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("explorer request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read explorer response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("explorer returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to decode explorer response: %w", err)
	}
	if envelope.Status != "1" {
		return fmt.Errorf("explorer error: %s: %s", envelope.Message, string(envelope.Result))
	}
	return json.Unmarshal(envelope.Result, result)
}

// endpoint resolves the API URL, key and chainid parameter for the active
// network: a foundry.toml [etherscan] entry wins, otherwise the unified
// endpoint with the network's chain ID.
func (c *EtherscanClient) endpoint() (apiURL, apiKey, chainID string) {
	network := c.config.Network
	if network == nil {
		return defaultAPIURL, os.Getenv("ETHERSCAN_API_KEY"), ""
	}

	if c.config.FoundryConfig != nil {
		if entry, ok := c.config.FoundryConfig.Etherscan[network.Name]; ok && entry.URL != "" {
			return entry.URL, entry.APIKey, ""
		}
	}
	return defaultAPIURL, os.Getenv("ETHERSCAN_API_KEY"), strconv.FormatUint(network.ChainID, 10)
}

var _ usecase.ExplorerClient = (*EtherscanClient)(nil)
