package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
)

func TestNetworkResolver(t *testing.T) {
	t.Run("resolves a well-known network by name", func(t *testing.T) {
		r := NewNetworkResolver(nil)

		network, err := r.Resolve("mainnet")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), network.ChainID)
		assert.Equal(t, "https://etherscan.io", network.ExplorerURL)
	})

	t.Run("name lookup is case-insensitive", func(t *testing.T) {
		r := NewNetworkResolver(nil)

		network, err := r.Resolve("Mainnet")

		require.NoError(t, err)
		assert.Equal(t, uint64(1), network.ChainID)
	})

	t.Run("resolves by decimal chain ID", func(t *testing.T) {
		r := NewNetworkResolver(nil)

		network, err := r.Resolve("137")

		require.NoError(t, err)
		assert.Equal(t, "polygon", network.Name)
	})

	t.Run("rpc_endpoints override a known network's RPC URL", func(t *testing.T) {
		r := NewNetworkResolver(&config.FoundryConfig{
			RpcEndpoints: map[string]string{
				"mainnet": "https://eth.example.com/rpc",
			},
		})

		network, err := r.Resolve("mainnet")

		require.NoError(t, err)
		assert.Equal(t, "https://eth.example.com/rpc", network.RPCURL)
		assert.Equal(t, uint64(1), network.ChainID)
	})

	t.Run("rpc_endpoints introduce custom networks", func(t *testing.T) {
		r := NewNetworkResolver(&config.FoundryConfig{
			RpcEndpoints: map[string]string{
				"devnet": "http://localhost:9545",
			},
		})

		network, err := r.Resolve("devnet")

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9545", network.RPCURL)
	})

	t.Run("unknown network is an error", func(t *testing.T) {
		r := NewNetworkResolver(nil)

		_, err := r.Resolve("gondor")
		assert.Error(t, err)

		_, err = r.Resolve("")
		assert.Error(t, err)
	})
}
