package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
	"github.com/dzimiks/uniswap-contracts/internal/domain/models"
)

// DeploymentLogRepository handles persistence of per-network deployment logs.
type DeploymentLogRepository interface {
	// LoadLog loads the log for a network, or returns a fresh empty log when
	// none exists on disk yet.
	LoadLog(ctx context.Context, chainID models.ChainID) (*models.DeploymentLog, error)
	// SaveLog persists the full log, creating missing directories.
	SaveLog(ctx context.Context, log *models.DeploymentLog) error
}

// ContractData is the explorer's verified-source metadata for a contract.
type ContractData struct {
	Name string
	// ConstructorArgs holds the raw ABI-encoded constructor argument bytes.
	ConstructorArgs []byte
	// Constructor lists the constructor parameter specs; empty when the
	// contract has no constructor.
	Constructor abi.Arguments
}

// ExplorerClient looks up contract metadata from a block explorer service.
type ExplorerClient interface {
	GetContractData(ctx context.Context, address string) (*ContractData, error)
	GetCreationTransactionHash(ctx context.Context, address string) (string, error)
}

// ChainClient queries a chain node for block data and factory state.
type ChainClient interface {
	Connect(ctx context.Context, rpcURL string, chainID uint64) error
	BlockNumberByTransactionHash(ctx context.Context, txHash string) (uint64, error)
	BlockTimestamp(ctx context.Context, blockNumber uint64) (uint64, error)
	// PoolInitCodeHash reads the pool init code hash from a recognized
	// factory contract, pinned at the deployment block.
	PoolInitCodeHash(ctx context.Context, factory string, kind models.FactoryKind, blockNumber uint64) (string, error)
}

// ArtifactRepository checks local foundry build artifacts.
type ArtifactRepository interface {
	HasArtifact(ctx context.Context, contractName string) (bool, error)
}

// ConstructorCodec decodes raw constructor bytes into JSON-safe values.
type ConstructorCodec interface {
	DecodeConstructorArgs(inputs abi.Arguments, data []byte) (models.ConstructorArgs, error)
}

// DocsGenerator regenerates the markdown deployment documentation.
type DocsGenerator interface {
	Generate(ctx context.Context, chainID models.ChainID) error
}

// LocalConfigRepository manages local configuration persistence
type LocalConfigRepository interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, cfg *config.LocalConfig) error
	GetPath() string
}

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Registration stages reported through the progress sink.
const (
	StageExplorer    = "Explorer"
	StageChain       = "Chain"
	StageReconciling = "Reconciling"
	StageDocs        = "Docs"
)
