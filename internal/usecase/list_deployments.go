package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/samber/lo"

	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
	"github.com/dzimiks/uniswap-contracts/internal/domain/models"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	IncludeHistory bool
}

// LatestDeployment pairs a contract name with its latest record.
type LatestDeployment struct {
	ContractName string
	Record       models.LatestRecord
}

// ListDeploymentsResult contains the result of listing deployments
type ListDeploymentsResult struct {
	ChainID models.ChainID
	Latest  []LatestDeployment
	History []models.HistoryEntry
}

// ListDeployments reads a network's deployment log and returns the latest
// projection, sorted by contract name for stable output.
type ListDeployments struct {
	config *config.RuntimeConfig
	repo   DeploymentLogRepository
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(cfg *config.RuntimeConfig, repo DeploymentLogRepository) *ListDeployments {
	return &ListDeployments{config: cfg, repo: repo}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*ListDeploymentsResult, error) {
	if uc.config.Network == nil {
		return nil, fmt.Errorf("network must be configured")
	}
	chainID := models.NewChainID(strconv.FormatUint(uc.config.Network.ChainID, 10))

	log, err := uc.repo.LoadLog(ctx, chainID)
	if err != nil {
		return nil, err
	}

	names := lo.Keys(log.Latest)
	sort.Strings(names)

	result := &ListDeploymentsResult{
		ChainID: log.ChainID,
		Latest: lo.Map(names, func(name string, _ int) LatestDeployment {
			return LatestDeployment{ContractName: name, Record: log.Latest[name]}
		}),
	}
	if params.IncludeHistory {
		result.History = log.History
	}
	return result, nil
}
