package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
)

func TestHasArtifact(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	artifact := filepath.Join(dir, "out", "SwapRouter.sol", "SwapRouter.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(artifact), 0755))
	require.NoError(t, os.WriteFile(artifact, []byte("{}"), 0644))

	repo := NewArtifactRepository(&config.RuntimeConfig{ProjectRoot: dir})

	ok, err := repo.HasArtifact(ctx, "SwapRouter")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.HasArtifact(ctx, "UniswapV3Factory")
	require.NoError(t, err)
	assert.False(t, ok)
}
