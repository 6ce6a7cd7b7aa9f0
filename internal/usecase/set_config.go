package usecase

import (
	"context"
	"fmt"

	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
)

// SetConfigParams contains parameters for updating the local config
type SetConfigParams struct {
	Key   string
	Value string
}

// SetConfig updates one key of the persisted per-checkout defaults.
type SetConfig struct {
	repo LocalConfigRepository
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(repo LocalConfigRepository) *SetConfig {
	return &SetConfig{repo: repo}
}

// Run executes the set config use case
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*config.LocalConfig, error) {
	cfg := &config.LocalConfig{}
	if uc.repo.Exists() {
		loaded, err := uc.repo.Load(ctx)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	switch params.Key {
	case "network":
		cfg.Network = params.Value
	default:
		return nil, fmt.Errorf("unknown config key: %s", params.Key)
	}

	if err := uc.repo.Save(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
