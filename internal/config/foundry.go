package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
)

// foundryTOML is the raw foundry.toml structure, limited to the tables this
// tool consumes.
type foundryTOML struct {
	RpcEndpoints map[string]string            `toml:"rpc_endpoints"`
	Etherscan    map[string]map[string]string `toml:"etherscan"`
}

// LoadFoundryConfig loads and parses foundry.toml, expanding ${VAR}
// references against the environment (.env files included).
func LoadFoundryConfig(projectRoot string) (*config.FoundryConfig, error) {
	// Load .env files first so rpc/explorer entries can reference them.
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	foundryPath := filepath.Join(projectRoot, "foundry.toml")
	var raw foundryTOML
	if _, err := toml.DecodeFile(foundryPath, &raw); err != nil {
		if os.IsNotExist(err) {
			return &config.FoundryConfig{
				RpcEndpoints: map[string]string{},
				Etherscan:    map[string]config.EtherscanConfig{},
			}, nil
		}
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	cfg := &config.FoundryConfig{
		RpcEndpoints: make(map[string]string),
		Etherscan:    make(map[string]config.EtherscanConfig),
	}

	for name, url := range raw.RpcEndpoints {
		cfg.RpcEndpoints[name] = os.ExpandEnv(url)
	}

	for network, ethConfig := range raw.Etherscan {
		ec := config.EtherscanConfig{}
		if url, ok := ethConfig["url"]; ok {
			ec.URL = os.ExpandEnv(url)
		}
		if key, ok := ethConfig["key"]; ok {
			ec.APIKey = os.ExpandEnv(key)
		}
		if chain, ok := ethConfig["chain"]; ok {
			ec.Chain = chain
		}
		cfg.Etherscan[network] = ec
	}

	return cfg, nil
}
