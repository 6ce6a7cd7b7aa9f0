package usecase

import (
	"context"

	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
)

// ShowConfigResult contains the local configuration and where it lives.
type ShowConfigResult struct {
	Config *config.LocalConfig
	Path   string
	Exists bool
}

// ShowConfig reads the persisted per-checkout defaults.
type ShowConfig struct {
	repo LocalConfigRepository
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(repo LocalConfigRepository) *ShowConfig {
	return &ShowConfig{repo: repo}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	result := &ShowConfigResult{
		Path:   uc.repo.GetPath(),
		Exists: uc.repo.Exists(),
	}
	if !result.Exists {
		result.Config = &config.LocalConfig{}
		return result, nil
	}

	cfg, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	result.Config = cfg
	return result, nil
}
