package adapters

import (
	"github.com/google/wire"

	abicodec "github.com/dzimiks/uniswap-contracts/internal/adapters/abi"
	"github.com/dzimiks/uniswap-contracts/internal/adapters/blockchain"
	"github.com/dzimiks/uniswap-contracts/internal/adapters/explorer"
	"github.com/dzimiks/uniswap-contracts/internal/adapters/forge"
	"github.com/dzimiks/uniswap-contracts/internal/adapters/fs"
	"github.com/dzimiks/uniswap-contracts/internal/adapters/repository/deployments"
	"github.com/dzimiks/uniswap-contracts/internal/usecase"
)

// RepositorySet provides the file-backed deployment log store
var RepositorySet = wire.NewSet(
	deployments.NewFileRepository,
	wire.Bind(new(usecase.DeploymentLogRepository), new(*deployments.FileRepository)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewArtifactRepository,
	wire.Bind(new(usecase.ArtifactRepository), new(*fs.ArtifactRepository)),

	fs.NewLocalConfigStore,
	wire.Bind(new(usecase.LocalConfigRepository), new(*fs.LocalConfigStore)),
)

// ABISet provides the constructor argument codec
var ABISet = wire.NewSet(
	abicodec.NewCodec,
	wire.Bind(new(usecase.ConstructorCodec), new(*abicodec.Codec)),
)

// NetworkSet provides the explorer and chain clients
var NetworkSet = wire.NewSet(
	explorer.NewEtherscanClient,
	wire.Bind(new(usecase.ExplorerClient), new(*explorer.EtherscanClient)),

	blockchain.NewClientAdapter,
	wire.Bind(new(usecase.ChainClient), new(*blockchain.ClientAdapter)),
)

// ForgeSet provides the docs generator
var ForgeSet = wire.NewSet(
	forge.NewChroniclesAdapter,
	wire.Bind(new(usecase.DocsGenerator), new(*forge.ChroniclesAdapter)),
)

// AllAdapters bundles every adapter set
var AllAdapters = wire.NewSet(
	RepositorySet,
	FSSet,
	ABISet,
	NetworkSet,
	ForgeSet,
)
