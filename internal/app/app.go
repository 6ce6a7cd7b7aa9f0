package app

import (
	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
	"github.com/dzimiks/uniswap-contracts/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	RegisterDeployment *usecase.RegisterDeployment
	ListDeployments    *usecase.ListDeployments
	ShowDeployment     *usecase.ShowDeployment
	ShowConfig         *usecase.ShowConfig
	SetConfig          *usecase.SetConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	registerDeployment *usecase.RegisterDeployment,
	listDeployments *usecase.ListDeployments,
	showDeployment *usecase.ShowDeployment,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
) (*App, error) {
	return &App{
		Config:             cfg,
		RegisterDeployment: registerDeployment,
		ListDeployments:    listDeployments,
		ShowDeployment:     showDeployment,
		ShowConfig:         showConfig,
		SetConfig:          setConfig,
	}, nil
}
