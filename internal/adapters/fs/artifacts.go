package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
	"github.com/dzimiks/uniswap-contracts/internal/usecase"
)

// ArtifactRepository checks for compiled contract artifacts in the foundry
// out directory. Only existence matters; the artifact content is never read.
type ArtifactRepository struct {
	projectRoot string
}

// NewArtifactRepository creates a new artifact repository
func NewArtifactRepository(cfg *config.RuntimeConfig) *ArtifactRepository {
	return &ArtifactRepository{projectRoot: cfg.ProjectRoot}
}

// HasArtifact reports whether out/<Name>.sol/<Name>.json exists.
func (r *ArtifactRepository) HasArtifact(ctx context.Context, contractName string) (bool, error) {
	path := filepath.Join(r.projectRoot, "out", contractName+".sol", contractName+".json")
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check artifact %s: %w", path, err)
	}
	return true, nil
}

var _ usecase.ArtifactRepository = (*ArtifactRepository)(nil)
