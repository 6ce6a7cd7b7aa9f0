package deployments

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/dzimiks/uniswap-contracts/internal/domain"
	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
	"github.com/dzimiks/uniswap-contracts/internal/domain/models"
	"github.com/dzimiks/uniswap-contracts/internal/usecase"
)

const (
	DeploymentsDir = "deployments"
	JSONDir        = "json"
)

// FileRepository stores one deployment log per network as a JSON file at
// deployments/json/<chainId>.json. The whole structure is rewritten on every
// save; there is no cross-process locking, so concurrent registrations
// against the same network are a documented single-writer constraint.
type FileRepository struct {
	rootDir string
	log     *slog.Logger
	mu      sync.RWMutex
}

// NewFileRepository creates a new file-backed deployment log repository
func NewFileRepository(cfg *config.RuntimeConfig, log *slog.Logger) *FileRepository {
	return &FileRepository{
		rootDir: cfg.ProjectRoot,
		log:     log.With("component", "FileRepository"),
	}
}

// LoadLog reads a network's log from disk, or initializes an empty one when
// the file does not exist yet.
func (m *FileRepository) LoadLog(ctx context.Context, chainID models.ChainID) (*models.DeploymentLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path := m.logPath(chainID)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		m.log.Debug("no deployment log on disk, starting empty", "path", path)
		return models.NewDeploymentLog(chainID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment log: %w", err)
	}

	var log models.DeploymentLog
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, &domain.MalformedLogError{Path: path, Err: err}
	}
	if log.Latest == nil {
		log.Latest = map[string]models.LatestRecord{}
	}
	if log.History == nil {
		log.History = []models.HistoryEntry{}
	}
	return &log, nil
}

// SaveLog writes the full log back to disk. The write goes through a temp
// file and an atomic rename so a crash mid-write cannot corrupt the log.
func (m *FileRepository) SaveLog(ctx context.Context, log *models.DeploymentLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.logPath(log.ChainID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create deployments directory: %w", err)
	}

	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal deployment log: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write deployment log: %w", err)
	}
	return os.Rename(tmpPath, path)
}

// logPath returns the conventional per-network log location.
func (m *FileRepository) logPath(chainID models.ChainID) string {
	return filepath.Join(m.rootDir, DeploymentsDir, JSONDir, chainID.String()+".json")
}

var _ usecase.DeploymentLogRepository = (*FileRepository)(nil)
