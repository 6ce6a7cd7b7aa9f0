package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	internalconfig "github.com/dzimiks/uniswap-contracts/internal/config"
	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
	"github.com/dzimiks/uniswap-contracts/internal/usecase"
)

// LocalConfigStore persists per-checkout defaults as YAML in the data
// directory.
type LocalConfigStore struct {
	path string
}

// NewLocalConfigStore creates a new local config store
func NewLocalConfigStore(cfg *config.RuntimeConfig) *LocalConfigStore {
	return &LocalConfigStore{
		path: filepath.Join(cfg.DataDir, internalconfig.LocalConfigFile),
	}
}

// Exists reports whether a local config file is present.
func (s *LocalConfigStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the local config file.
func (s *LocalConfigStore) Load(ctx context.Context) (*config.LocalConfig, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read local config: %w", err)
	}
	cfg := &config.LocalConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse local config: %w", err)
	}
	return cfg, nil
}

// Save writes the local config file, creating the data directory if needed.
func (s *LocalConfigStore) Save(ctx context.Context, cfg *config.LocalConfig) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal local config: %w", err)
	}
	return os.WriteFile(s.path, data, 0644)
}

// GetPath returns the config file location.
func (s *LocalConfigStore) GetPath() string {
	return s.path
}

var _ usecase.LocalConfigRepository = (*LocalConfigStore)(nil)
