//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/dzimiks/uniswap-contracts/internal/adapters"
	"github.com/dzimiks/uniswap-contracts/internal/config"
	"github.com/dzimiks/uniswap-contracts/internal/logging"
	"github.com/dzimiks/uniswap-contracts/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewRegisterDeployment,
		usecase.NewListDeployments,
		usecase.NewShowDeployment,
		usecase.NewShowConfig,
		usecase.NewSetConfig,

		// App
		NewApp,
	)
	return nil, nil
}
