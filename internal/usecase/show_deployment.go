package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dzimiks/uniswap-contracts/internal/domain"
	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
	"github.com/dzimiks/uniswap-contracts/internal/domain/models"
)

// ShowDeploymentParams contains parameters for showing a deployment
type ShowDeploymentParams struct {
	ContractName string
}

// ShowDeploymentResult contains the latest record and the full history of one
// contract name.
type ShowDeploymentResult struct {
	ContractName string
	Latest       models.LatestRecord
	History      []models.HistoryEntry
}

// ShowDeployment looks up a single contract in a network's deployment log.
type ShowDeployment struct {
	config *config.RuntimeConfig
	repo   DeploymentLogRepository
}

// NewShowDeployment creates a new ShowDeployment use case
func NewShowDeployment(cfg *config.RuntimeConfig, repo DeploymentLogRepository) *ShowDeployment {
	return &ShowDeployment{config: cfg, repo: repo}
}

// Run executes the show deployment use case
func (uc *ShowDeployment) Run(ctx context.Context, params ShowDeploymentParams) (*ShowDeploymentResult, error) {
	if uc.config.Network == nil {
		return nil, fmt.Errorf("network must be configured")
	}
	chainID := models.NewChainID(strconv.FormatUint(uc.config.Network.ChainID, 10))

	log, err := uc.repo.LoadLog(ctx, chainID)
	if err != nil {
		return nil, err
	}

	latest, ok := log.Latest[params.ContractName]
	if !ok {
		return nil, fmt.Errorf("deployment %s on chain %s: %w", params.ContractName, chainID, domain.ErrNotFound)
	}

	var history []models.HistoryEntry
	for _, entry := range log.History {
		if _, ok := entry.Contracts[params.ContractName]; ok {
			history = append(history, entry)
		}
	}

	return &ShowDeploymentResult{
		ContractName: params.ContractName,
		Latest:       latest,
		History:      history,
	}, nil
}
