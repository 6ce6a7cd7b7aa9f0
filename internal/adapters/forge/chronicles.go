package forge

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/dzimiks/uniswap-contracts/internal/domain"
	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
	"github.com/dzimiks/uniswap-contracts/internal/domain/models"
	"github.com/dzimiks/uniswap-contracts/internal/usecase"
)

// ChroniclesAdapter regenerates the markdown deployment docs by invoking the
// forge-chronicles script installed as a foundry library.
type ChroniclesAdapter struct {
	projectRoot string
	log         *slog.Logger
}

// NewChroniclesAdapter creates a new docs generator adapter
func NewChroniclesAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ChroniclesAdapter {
	return &ChroniclesAdapter{
		projectRoot: cfg.ProjectRoot,
		log:         log.With("component", "ChroniclesAdapter"),
	}
}

// Generate runs `node lib/forge-chronicles/index.js -c <chainId> -s` in the
// project root. A missing installation is a hard error; the generator's own
// exit status is deliberately not checked.
func (a *ChroniclesAdapter) Generate(ctx context.Context, chainID models.ChainID) error {
	script := filepath.Join(a.projectRoot, "lib", "forge-chronicles", "index.js")
	if _, err := os.Stat(script); err != nil {
		return domain.ErrDocGeneratorMissing
	}

	cmd := exec.CommandContext(ctx, "node", script, "-c", chainID.String(), "-s")
	cmd.Dir = a.projectRoot

	if out, err := cmd.CombinedOutput(); err != nil {
		a.log.Debug("forge-chronicles exited with error", "error", err, "output", string(out))
	}
	return nil
}

var _ usecase.DocsGenerator = (*ChroniclesAdapter)(nil)
