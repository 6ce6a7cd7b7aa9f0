package config

import (
	"time"
)

// RuntimeConfig is the fully resolved configuration injected into use cases.
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Network *Network // nil if not specified

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	Timeout        time.Duration

	// Resolved configurations
	FoundryConfig *FoundryConfig
	LocalConfig   *LocalConfig
}

// Network represents network configuration
type Network struct {
	ChainID     uint64 `json:"chainId"`
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
}

// EtherscanConfig is one [etherscan.<network>] entry from foundry.toml.
type EtherscanConfig struct {
	URL    string
	APIKey string
	Chain  string
}

// FoundryConfig is the subset of foundry.toml this tool consumes.
type FoundryConfig struct {
	RpcEndpoints map[string]string
	Etherscan    map[string]EtherscanConfig
}

// LocalConfig holds per-checkout defaults persisted under the data directory.
type LocalConfig struct {
	Network string `yaml:"network,omitempty"`
}
