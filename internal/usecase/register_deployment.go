package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dzimiks/uniswap-contracts/internal/domain"
	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
	"github.com/dzimiks/uniswap-contracts/internal/domain/models"
)

// RegisterDeploymentParams contains parameters for registering a deployment
type RegisterDeploymentParams struct {
	Address string // On-chain address of the deployed contract
}

// RegisterDeploymentResult contains the result of registering a deployment
type RegisterDeploymentResult struct {
	ContractName     string
	Address          string
	TransactionHash  string
	Timestamp        uint64
	PoolInitCodeHash string
}

// RegisterDeployment appends one registration event to a network's deployment
// log: it resolves on-chain metadata through the explorer and chain clients,
// guards against duplicates, decodes constructor arguments, reconciles the
// history into the latest projection and persists the result.
type RegisterDeployment struct {
	config    *config.RuntimeConfig
	repo      DeploymentLogRepository
	explorer  ExplorerClient
	chain     ChainClient
	artifacts ArtifactRepository
	codec     ConstructorCodec
	docs      DocsGenerator
	progress  ProgressSink
}

// NewRegisterDeployment creates a new RegisterDeployment use case
func NewRegisterDeployment(
	cfg *config.RuntimeConfig,
	repo DeploymentLogRepository,
	explorer ExplorerClient,
	chain ChainClient,
	artifacts ArtifactRepository,
	codec ConstructorCodec,
	docs DocsGenerator,
	progress ProgressSink,
) *RegisterDeployment {
	return &RegisterDeployment{
		config:    cfg,
		repo:      repo,
		explorer:  explorer,
		chain:     chain,
		artifacts: artifacts,
		codec:     codec,
		docs:      docs,
		progress:  progress,
	}
}

// Run executes the register deployment use case. Every step fails fast: a
// failure before SaveLog leaves the on-disk log untouched.
func (uc *RegisterDeployment) Run(ctx context.Context, params RegisterDeploymentParams) (*RegisterDeploymentResult, error) {
	if uc.config.Network == nil {
		return nil, fmt.Errorf("network must be configured")
	}
	if !common.IsHexAddress(params.Address) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, params.Address)
	}
	address := common.HexToAddress(params.Address).Hex()
	chainID := models.NewChainID(strconv.FormatUint(uc.config.Network.ChainID, 10))

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := uc.chain.Connect(connectCtx, uc.config.Network.RPCURL, uc.config.Network.ChainID); err != nil {
		return nil, fmt.Errorf("failed to connect to blockchain: %w", err)
	}

	log, err := uc.repo.LoadLog(ctx, chainID)
	if err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageExplorer, Message: "Fetching contract data", Spinner: true})
	data, err := uc.explorer.GetContractData(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contract data: %w", err)
	}

	// Registering a contract whose compiled interface is not available
	// locally is almost always a sign of the wrong working directory.
	ok, err := uc.artifacts.HasArtifact(ctx, data.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.ArtifactNotFoundError{Contract: data.Name}
	}

	if err := log.DetectDuplicate(address); err != nil {
		return nil, err
	}

	txHash, err := uc.explorer.GetCreationTransactionHash(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch creation transaction: %w", err)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageChain, Message: "Resolving block timestamp", Spinner: true})
	blockNumber, err := uc.chain.BlockNumberByTransactionHash(ctx, txHash)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve block number: %w", err)
	}
	timestamp, err := uc.chain.BlockTimestamp(ctx, blockNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve block timestamp: %w", err)
	}

	constructorArgs := models.ConstructorArgs{}
	if len(data.Constructor) > 0 {
		constructorArgs, err = uc.codec.DecodeConstructorArgs(data.Constructor, data.ConstructorArgs)
		if err != nil {
			return nil, err
		}
	}

	var poolInitCodeHash string
	if kind, isFactory := models.FactoryKindOf(data.Name); isFactory {
		poolInitCodeHash, err = uc.chain.PoolInitCodeHash(ctx, address, kind, blockNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch pool init code hash: %w", err)
		}
	}

	entry := models.HistoryEntry{
		Timestamp: timestamp,
		Contracts: map[string]models.ContractRecord{
			data.Name: {
				Address: address,
				// Proxy detection is not implemented; the flag is a
				// placeholder carried for format compatibility.
				Proxy:            false,
				DeploymentTxn:    txHash,
				Input:            models.RecordInput{Constructor: constructorArgs},
				PoolInitCodeHash: poolInitCodeHash,
			},
		},
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageReconciling, Message: "Updating deployment log"})
	log.History = append(log.History, entry)
	log.Reconcile()
	if err := uc.repo.SaveLog(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to save deployment log: %w", err)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageDocs, Message: "Generating markdown documentation", Spinner: true})
	if err := uc.docs.Generate(ctx, chainID); err != nil {
		return nil, err
	}

	return &RegisterDeploymentResult{
		ContractName:     data.Name,
		Address:          address,
		TransactionHash:  txHash,
		Timestamp:        timestamp,
		PoolInitCodeHash: poolInitCodeHash,
	}, nil
}
