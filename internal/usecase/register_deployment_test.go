package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	abiadapter "github.com/dzimiks/uniswap-contracts/internal/adapters/abi"
	"github.com/dzimiks/uniswap-contracts/internal/domain"
	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
	"github.com/dzimiks/uniswap-contracts/internal/domain/models"
	"github.com/dzimiks/uniswap-contracts/internal/usecase"
)

// MockLogRepository is a mock implementation of DeploymentLogRepository
type MockLogRepository struct {
	mock.Mock
}

func (m *MockLogRepository) LoadLog(ctx context.Context, chainID models.ChainID) (*models.DeploymentLog, error) {
	args := m.Called(ctx, chainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DeploymentLog), args.Error(1)
}

func (m *MockLogRepository) SaveLog(ctx context.Context, log *models.DeploymentLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// MockExplorerClient is a mock implementation of ExplorerClient
type MockExplorerClient struct {
	mock.Mock
}

func (m *MockExplorerClient) GetContractData(ctx context.Context, address string) (*usecase.ContractData, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ContractData), args.Error(1)
}

func (m *MockExplorerClient) GetCreationTransactionHash(ctx context.Context, address string) (string, error) {
	args := m.Called(ctx, address)
	return args.String(0), args.Error(1)
}

// MockChainClient is a mock implementation of ChainClient
type MockChainClient struct {
	mock.Mock
}

func (m *MockChainClient) Connect(ctx context.Context, rpcURL string, chainID uint64) error {
	args := m.Called(ctx, rpcURL, chainID)
	return args.Error(0)
}

func (m *MockChainClient) BlockNumberByTransactionHash(ctx context.Context, txHash string) (uint64, error) {
	args := m.Called(ctx, txHash)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockChainClient) BlockTimestamp(ctx context.Context, blockNumber uint64) (uint64, error) {
	args := m.Called(ctx, blockNumber)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockChainClient) PoolInitCodeHash(ctx context.Context, factory string, kind models.FactoryKind, blockNumber uint64) (string, error) {
	args := m.Called(ctx, factory, kind, blockNumber)
	return args.String(0), args.Error(1)
}

// MockArtifactRepository is a mock implementation of ArtifactRepository
type MockArtifactRepository struct {
	mock.Mock
}

func (m *MockArtifactRepository) HasArtifact(ctx context.Context, contractName string) (bool, error) {
	args := m.Called(ctx, contractName)
	return args.Bool(0), args.Error(1)
}

// MockDocsGenerator is a mock implementation of DocsGenerator
type MockDocsGenerator struct {
	mock.Mock
}

func (m *MockDocsGenerator) Generate(ctx context.Context, chainID models.ChainID) error {
	args := m.Called(ctx, chainID)
	return args.Error(0)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(string)  {}
func (m *MockProgressSink) Error(string) {}

type registerFixture struct {
	cfg       *config.RuntimeConfig
	repo      *MockLogRepository
	explorer  *MockExplorerClient
	chain     *MockChainClient
	artifacts *MockArtifactRepository
	docs      *MockDocsGenerator
	progress  *MockProgressSink
	uc        *usecase.RegisterDeployment
}

func newRegisterFixture() *registerFixture {
	f := &registerFixture{
		cfg: &config.RuntimeConfig{
			Network: &config.Network{
				ChainID: 1,
				Name:    "mainnet",
				RPCURL:  "http://localhost:8545",
			},
		},
		repo:      new(MockLogRepository),
		explorer:  new(MockExplorerClient),
		chain:     new(MockChainClient),
		artifacts: new(MockArtifactRepository),
		docs:      new(MockDocsGenerator),
		progress:  &MockProgressSink{},
	}
	f.uc = usecase.NewRegisterDeployment(
		f.cfg, f.repo, f.explorer, f.chain, f.artifacts,
		abiadapter.NewCodec(), f.docs, f.progress,
	)
	return f
}

const (
	registerAddr = "0x1F98431c8aD98523631AE4a59f267346ea31F984"
	registerTx   = "0xdeadbeef00000000000000000000000000000000000000000000000000000001"
)

func TestRegisterDeployment(t *testing.T) {
	ctx := context.Background()

	t.Run("registers into an empty log", func(t *testing.T) {
		f := newRegisterFixture()

		f.chain.On("Connect", mock.Anything, "http://localhost:8545", uint64(1)).Return(nil)
		f.repo.On("LoadLog", ctx, models.NewChainID("1")).
			Return(models.NewDeploymentLog(models.NewChainID("1")), nil)
		f.explorer.On("GetContractData", ctx, registerAddr).
			Return(&usecase.ContractData{Name: "SwapRouter"}, nil)
		f.artifacts.On("HasArtifact", ctx, "SwapRouter").Return(true, nil)
		f.explorer.On("GetCreationTransactionHash", ctx, registerAddr).Return(registerTx, nil)
		f.chain.On("BlockNumberByTransactionHash", ctx, registerTx).Return(uint64(12369621), nil)
		f.chain.On("BlockTimestamp", ctx, uint64(12369621)).Return(uint64(1620250931), nil)

		var saved *models.DeploymentLog
		f.repo.On("SaveLog", ctx, mock.AnythingOfType("*models.DeploymentLog")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*models.DeploymentLog)
			}).Return(nil)
		f.docs.On("Generate", ctx, models.NewChainID("1")).Return(nil)

		result, err := f.uc.Run(ctx, usecase.RegisterDeploymentParams{Address: registerAddr})

		require.NoError(t, err)
		assert.Equal(t, "SwapRouter", result.ContractName)
		assert.Equal(t, registerAddr, result.Address)
		assert.Equal(t, registerTx, result.TransactionHash)
		assert.Equal(t, uint64(1620250931), result.Timestamp)
		assert.Empty(t, result.PoolInitCodeHash)

		require.NotNil(t, saved)
		require.Len(t, saved.History, 1)
		record := saved.History[0].Contracts["SwapRouter"]
		assert.Equal(t, registerAddr, record.Address)
		assert.Equal(t, registerTx, record.DeploymentTxn)
		assert.False(t, record.Proxy)
		// No constructor means an empty, non-nil argument map.
		require.NotNil(t, record.Input.Constructor)
		assert.Empty(t, record.Input.Constructor)

		latest := saved.Latest["SwapRouter"]
		assert.Equal(t, registerAddr, latest.Address)
		assert.Equal(t, uint64(1620250931), latest.Timestamp)

		f.repo.AssertExpectations(t)
		f.explorer.AssertExpectations(t)
		f.chain.AssertExpectations(t)
		f.docs.AssertExpectations(t)
	})

	t.Run("decodes constructor arguments", func(t *testing.T) {
		f := newRegisterFixture()

		addressType, err := abi.NewType("address", "", nil)
		require.NoError(t, err)
		uintType, err := abi.NewType("uint24", "", nil)
		require.NoError(t, err)
		inputs := abi.Arguments{
			{Name: "_factory", Type: addressType},
			{Name: "_fee", Type: uintType},
		}
		data, err := inputs.Pack(common.HexToAddress(registerAddr), big.NewInt(3000))
		require.NoError(t, err)

		f.chain.On("Connect", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.repo.On("LoadLog", ctx, models.NewChainID("1")).
			Return(models.NewDeploymentLog(models.NewChainID("1")), nil)
		f.explorer.On("GetContractData", ctx, registerAddr).
			Return(&usecase.ContractData{
				Name:            "UniswapV3Pool",
				Constructor:     inputs,
				ConstructorArgs: data,
			}, nil)
		f.artifacts.On("HasArtifact", ctx, "UniswapV3Pool").Return(true, nil)
		f.explorer.On("GetCreationTransactionHash", ctx, registerAddr).Return(registerTx, nil)
		f.chain.On("BlockNumberByTransactionHash", ctx, registerTx).Return(uint64(100), nil)
		f.chain.On("BlockTimestamp", ctx, uint64(100)).Return(uint64(1000), nil)

		var saved *models.DeploymentLog
		f.repo.On("SaveLog", ctx, mock.AnythingOfType("*models.DeploymentLog")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*models.DeploymentLog)
			}).Return(nil)
		f.docs.On("Generate", ctx, models.NewChainID("1")).Return(nil)

		_, err = f.uc.Run(ctx, usecase.RegisterDeploymentParams{Address: registerAddr})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, models.ConstructorArgs{
			"_factory": registerAddr,
			"_fee":     "3000",
		}, saved.History[0].Contracts["UniswapV3Pool"].Input.Constructor)
	})

	t.Run("factory registration records the pool init code hash", func(t *testing.T) {
		f := newRegisterFixture()
		hash := "0x96e8ac4277198ff8b6f785478aa9a39f403cb768dd02cbee326c3e7da348845f"

		f.chain.On("Connect", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.repo.On("LoadLog", ctx, models.NewChainID("1")).
			Return(models.NewDeploymentLog(models.NewChainID("1")), nil)
		f.explorer.On("GetContractData", ctx, registerAddr).
			Return(&usecase.ContractData{Name: "UniswapV2Factory"}, nil)
		f.artifacts.On("HasArtifact", ctx, "UniswapV2Factory").Return(true, nil)
		f.explorer.On("GetCreationTransactionHash", ctx, registerAddr).Return(registerTx, nil)
		f.chain.On("BlockNumberByTransactionHash", ctx, registerTx).Return(uint64(10000835), nil)
		f.chain.On("BlockTimestamp", ctx, uint64(10000835)).Return(uint64(1588610042), nil)
		f.chain.On("PoolInitCodeHash", ctx, registerAddr, models.FactoryV2, uint64(10000835)).
			Return(hash, nil)

		var saved *models.DeploymentLog
		f.repo.On("SaveLog", ctx, mock.AnythingOfType("*models.DeploymentLog")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*models.DeploymentLog)
			}).Return(nil)
		f.docs.On("Generate", ctx, models.NewChainID("1")).Return(nil)

		result, err := f.uc.Run(ctx, usecase.RegisterDeploymentParams{Address: registerAddr})

		require.NoError(t, err)
		assert.Equal(t, hash, result.PoolInitCodeHash)
		assert.Equal(t, hash, saved.History[0].Contracts["UniswapV2Factory"].PoolInitCodeHash)
		assert.Equal(t, hash, saved.Latest["UniswapV2Factory"].PoolInitCodeHash)
		f.chain.AssertExpectations(t)
	})

	t.Run("duplicate address aborts before saving", func(t *testing.T) {
		f := newRegisterFixture()

		log := models.NewDeploymentLog(models.NewChainID("1"))
		log.History = []models.HistoryEntry{{
			Timestamp: 1000,
			Contracts: map[string]models.ContractRecord{
				"SwapRouter": {Address: registerAddr},
			},
		}}

		f.chain.On("Connect", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.repo.On("LoadLog", ctx, models.NewChainID("1")).Return(log, nil)
		f.explorer.On("GetContractData", ctx, registerAddr).
			Return(&usecase.ContractData{Name: "SwapRouter"}, nil)
		f.artifacts.On("HasArtifact", ctx, "SwapRouter").Return(true, nil)

		_, err := f.uc.Run(ctx, usecase.RegisterDeploymentParams{Address: registerAddr})

		var dup *domain.DuplicateContractError
		require.True(t, errors.As(err, &dup))
		f.repo.AssertNotCalled(t, "SaveLog", mock.Anything, mock.Anything)
		f.docs.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("missing artifact aborts registration", func(t *testing.T) {
		f := newRegisterFixture()

		f.chain.On("Connect", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.repo.On("LoadLog", ctx, models.NewChainID("1")).
			Return(models.NewDeploymentLog(models.NewChainID("1")), nil)
		f.explorer.On("GetContractData", ctx, registerAddr).
			Return(&usecase.ContractData{Name: "Unknown"}, nil)
		f.artifacts.On("HasArtifact", ctx, "Unknown").Return(false, nil)

		_, err := f.uc.Run(ctx, usecase.RegisterDeploymentParams{Address: registerAddr})

		var notFound *domain.ArtifactNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "Unknown", notFound.Contract)
		f.repo.AssertNotCalled(t, "SaveLog", mock.Anything, mock.Anything)
	})

	t.Run("invalid address is rejected up front", func(t *testing.T) {
		f := newRegisterFixture()

		_, err := f.uc.Run(ctx, usecase.RegisterDeploymentParams{Address: "not-an-address"})

		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
		f.chain.AssertNotCalled(t, "Connect", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("address is normalized to checksum form", func(t *testing.T) {
		f := newRegisterFixture()

		f.chain.On("Connect", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.repo.On("LoadLog", ctx, models.NewChainID("1")).
			Return(models.NewDeploymentLog(models.NewChainID("1")), nil)
		f.explorer.On("GetContractData", ctx, registerAddr).
			Return(&usecase.ContractData{Name: "SwapRouter"}, nil)
		f.artifacts.On("HasArtifact", ctx, "SwapRouter").Return(true, nil)
		f.explorer.On("GetCreationTransactionHash", ctx, registerAddr).Return(registerTx, nil)
		f.chain.On("BlockNumberByTransactionHash", ctx, registerTx).Return(uint64(1), nil)
		f.chain.On("BlockTimestamp", ctx, uint64(1)).Return(uint64(1), nil)
		f.repo.On("SaveLog", ctx, mock.Anything).Return(nil)
		f.docs.On("Generate", ctx, models.NewChainID("1")).Return(nil)

		lower := "0x1f98431c8ad98523631ae4a59f267346ea31f984"
		result, err := f.uc.Run(ctx, usecase.RegisterDeploymentParams{Address: lower})

		require.NoError(t, err)
		assert.Equal(t, registerAddr, result.Address)
	})

	t.Run("docs generation failure propagates after save", func(t *testing.T) {
		f := newRegisterFixture()

		f.chain.On("Connect", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.repo.On("LoadLog", ctx, models.NewChainID("1")).
			Return(models.NewDeploymentLog(models.NewChainID("1")), nil)
		f.explorer.On("GetContractData", ctx, registerAddr).
			Return(&usecase.ContractData{Name: "SwapRouter"}, nil)
		f.artifacts.On("HasArtifact", ctx, "SwapRouter").Return(true, nil)
		f.explorer.On("GetCreationTransactionHash", ctx, registerAddr).Return(registerTx, nil)
		f.chain.On("BlockNumberByTransactionHash", ctx, registerTx).Return(uint64(1), nil)
		f.chain.On("BlockTimestamp", ctx, uint64(1)).Return(uint64(1), nil)
		f.repo.On("SaveLog", ctx, mock.Anything).Return(nil)
		f.docs.On("Generate", ctx, models.NewChainID("1")).Return(domain.ErrDocGeneratorMissing)

		_, err := f.uc.Run(ctx, usecase.RegisterDeploymentParams{Address: registerAddr})

		assert.ErrorIs(t, err, domain.ErrDocGeneratorMissing)
		f.repo.AssertCalled(t, "SaveLog", ctx, mock.Anything)
	})
}
