package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
)

// NetworkResolver resolves a network name or chain ID to a full network
// configuration, combining a built-in chain table with foundry.toml
// rpc_endpoints overrides.
type NetworkResolver struct {
	networks      map[string]*config.Network
	chainIDLookup map[uint64]string
}

// NewNetworkResolver creates a resolver seeded with well-known networks and
// the project's rpc_endpoints.
func NewNetworkResolver(foundryConfig *config.FoundryConfig) *NetworkResolver {
	r := &NetworkResolver{
		networks:      make(map[string]*config.Network),
		chainIDLookup: make(map[uint64]string),
	}

	defaults := []config.Network{
		{ChainID: 1, Name: "mainnet", ExplorerURL: "https://etherscan.io"},
		{ChainID: 11155111, Name: "sepolia", ExplorerURL: "https://sepolia.etherscan.io"},
		{ChainID: 10, Name: "optimism", ExplorerURL: "https://optimistic.etherscan.io"},
		{ChainID: 42161, Name: "arbitrum", ExplorerURL: "https://arbiscan.io"},
		{ChainID: 137, Name: "polygon", ExplorerURL: "https://polygonscan.com"},
		{ChainID: 1101, Name: "polygon-zkevm", ExplorerURL: "https://zkevm.polygonscan.com"},
		{ChainID: 8453, Name: "base", ExplorerURL: "https://basescan.org"},
		{ChainID: 56, Name: "bsc", ExplorerURL: "https://bscscan.com"},
		{ChainID: 31337, Name: "localhost", RPCURL: "http://localhost:8545"},
	}
	for i := range defaults {
		r.addNetwork(&defaults[i])
	}

	if foundryConfig != nil {
		for name, rpcURL := range foundryConfig.RpcEndpoints {
			if network, ok := r.networks[strings.ToLower(name)]; ok {
				network.RPCURL = rpcURL
				continue
			}
			r.addNetwork(&config.Network{Name: name, RPCURL: rpcURL})
		}
	}

	return r
}

func (r *NetworkResolver) addNetwork(network *config.Network) {
	r.networks[strings.ToLower(network.Name)] = network
	if network.ChainID != 0 {
		r.chainIDLookup[network.ChainID] = network.Name
	}
}

// Resolve looks a network up by name or decimal chain ID.
func (r *NetworkResolver) Resolve(input string) (*config.Network, error) {
	if input == "" {
		return nil, fmt.Errorf("network not specified")
	}

	if network, ok := r.networks[strings.ToLower(input)]; ok {
		return network, nil
	}

	if chainID, err := strconv.ParseUint(input, 10, 64); err == nil {
		if name, ok := r.chainIDLookup[chainID]; ok {
			return r.networks[strings.ToLower(name)], nil
		}
	}

	return nil, fmt.Errorf("unknown network: %s", input)
}

// Names returns the known network names.
func (r *NetworkResolver) Names() []string {
	names := make([]string, 0, len(r.networks))
	for name := range r.networks {
		names = append(names, name)
	}
	return names
}
