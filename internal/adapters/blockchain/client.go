package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/dzimiks/uniswap-contracts/internal/domain/models"
	"github.com/dzimiks/uniswap-contracts/internal/usecase"
)

// ClientAdapter implements the ChainClient port using ethclient
type ClientAdapter struct {
	client  *ethclient.Client
	chainID uint64
	log     *slog.Logger
}

// NewClientAdapter creates a new chain client adapter
func NewClientAdapter(log *slog.Logger) *ClientAdapter {
	return &ClientAdapter{log: log.With("component", "ChainClient")}
}

// Connect establishes the RPC connection and verifies the chain ID matches
// the configured network.
func (c *ClientAdapter) Connect(ctx context.Context, rpcURL string, chainID uint64) error {
	if rpcURL == "" {
		return fmt.Errorf("RPC URL not configured")
	}
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC: %w", err)
	}

	networkChainID, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %w", err)
	}
	if chainID != 0 && networkChainID.Uint64() != chainID {
		return fmt.Errorf("chain ID mismatch: expected %d, got %d", chainID, networkChainID.Uint64())
	}

	c.client = client
	c.chainID = networkChainID.Uint64()
	return nil
}

// BlockNumberByTransactionHash returns the number of the block containing
// the transaction.
func (c *ClientAdapter) BlockNumberByTransactionHash(ctx context.Context, txHash string) (uint64, error) {
	if c.client == nil {
		return 0, fmt.Errorf("not connected to blockchain")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	receipt, err := c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		return 0, fmt.Errorf("failed to fetch receipt for %s: %w", txHash, err)
	}
	return receipt.BlockNumber.Uint64(), nil
}

// BlockTimestamp returns the timestamp of a block, in seconds since epoch.
func (c *ClientAdapter) BlockTimestamp(ctx context.Context, blockNumber uint64) (uint64, error) {
	if c.client == nil {
		return 0, fmt.Errorf("not connected to blockchain")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	header, err := c.client.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return 0, fmt.Errorf("failed to fetch block %d: %w", blockNumber, err)
	}
	return header.Time, nil
}

// PoolInitCodeHash reads the pool init code hash from the factory itself
// with an eth_call pinned at the deployment block.
func (c *ClientAdapter) PoolInitCodeHash(ctx context.Context, factory string, kind models.FactoryKind, blockNumber uint64) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("not connected to blockchain")
	}

	var getter string
	switch kind {
	case models.FactoryV2:
		getter = "INIT_CODE_PAIR_HASH()"
	case models.FactoryV3:
		getter = "POOL_INIT_CODE_HASH()"
	default:
		return "", fmt.Errorf("unrecognized factory kind %q", kind)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	addr := common.HexToAddress(factory)
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: crypto.Keccak256([]byte(getter))[:4],
	}
	c.log.Debug("reading pool init code hash", "factory", factory, "getter", getter, "block", blockNumber)

	out, err := c.client.CallContract(ctx, msg, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return "", fmt.Errorf("failed to call %s on %s: %w", getter, factory, err)
	}
	if len(out) != 32 {
		return "", fmt.Errorf("unexpected init code hash length %d from %s", len(out), factory)
	}
	return hexutil.Encode(out), nil
}

var _ usecase.ChainClient = (*ClientAdapter)(nil)
