package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzimiks/uniswap-contracts/internal/domain"
	"github.com/dzimiks/uniswap-contracts/internal/domain/config"
	"github.com/dzimiks/uniswap-contracts/internal/domain/models"
	"github.com/dzimiks/uniswap-contracts/internal/usecase"
)

func listConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		Network: &config.Network{ChainID: 1, Name: "mainnet"},
	}
}

func populatedLog() *models.DeploymentLog {
	log := models.NewDeploymentLog(models.NewChainID("1"))
	log.History = []models.HistoryEntry{
		{
			Timestamp: 2000,
			Contracts: map[string]models.ContractRecord{
				"UniswapV3Factory": {Address: "0xF1", DeploymentTxn: "0xT2"},
			},
		},
		{
			Timestamp: 1000,
			Contracts: map[string]models.ContractRecord{
				"SwapRouter": {Address: "0xR1", DeploymentTxn: "0xT1"},
			},
		},
	}
	log.Reconcile()
	return log
}

func TestListDeployments(t *testing.T) {
	ctx := context.Background()

	t.Run("latest is sorted by contract name", func(t *testing.T) {
		repo := new(MockLogRepository)
		repo.On("LoadLog", ctx, models.NewChainID("1")).Return(populatedLog(), nil)

		uc := usecase.NewListDeployments(listConfig(), repo)
		result, err := uc.Run(ctx, usecase.ListDeploymentsParams{})

		require.NoError(t, err)
		require.Len(t, result.Latest, 2)
		assert.Equal(t, "SwapRouter", result.Latest[0].ContractName)
		assert.Equal(t, "UniswapV3Factory", result.Latest[1].ContractName)
		assert.Nil(t, result.History)

		repo.AssertExpectations(t)
	})

	t.Run("history is included on request", func(t *testing.T) {
		repo := new(MockLogRepository)
		repo.On("LoadLog", ctx, models.NewChainID("1")).Return(populatedLog(), nil)

		uc := usecase.NewListDeployments(listConfig(), repo)
		result, err := uc.Run(ctx, usecase.ListDeploymentsParams{IncludeHistory: true})

		require.NoError(t, err)
		require.Len(t, result.History, 2)
		assert.Equal(t, uint64(2000), result.History[0].Timestamp)
	})

	t.Run("empty log yields an empty listing", func(t *testing.T) {
		repo := new(MockLogRepository)
		repo.On("LoadLog", ctx, models.NewChainID("1")).
			Return(models.NewDeploymentLog(models.NewChainID("1")), nil)

		uc := usecase.NewListDeployments(listConfig(), repo)
		result, err := uc.Run(ctx, usecase.ListDeploymentsParams{})

		require.NoError(t, err)
		assert.Empty(t, result.Latest)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		repo := new(MockLogRepository)
		expectedErr := errors.New("disk error")
		repo.On("LoadLog", ctx, models.NewChainID("1")).Return(nil, expectedErr)

		uc := usecase.NewListDeployments(listConfig(), repo)
		result, err := uc.Run(ctx, usecase.ListDeploymentsParams{})

		assert.ErrorIs(t, err, expectedErr)
		assert.Nil(t, result)
	})
}

func TestShowDeployment(t *testing.T) {
	ctx := context.Background()

	t.Run("returns latest and matching history entries", func(t *testing.T) {
		log := populatedLog()
		log.History = append(log.History, models.HistoryEntry{
			Timestamp: 3000,
			Contracts: map[string]models.ContractRecord{
				"SwapRouter": {Address: "0xR2", DeploymentTxn: "0xT3"},
			},
		})
		log.Reconcile()

		repo := new(MockLogRepository)
		repo.On("LoadLog", ctx, models.NewChainID("1")).Return(log, nil)

		uc := usecase.NewShowDeployment(listConfig(), repo)
		result, err := uc.Run(ctx, usecase.ShowDeploymentParams{ContractName: "SwapRouter"})

		require.NoError(t, err)
		assert.Equal(t, "0xR2", result.Latest.Address)
		require.Len(t, result.History, 2)
		assert.Equal(t, uint64(3000), result.History[0].Timestamp)
		assert.Equal(t, uint64(1000), result.History[1].Timestamp)
	})

	t.Run("unknown contract returns not found", func(t *testing.T) {
		repo := new(MockLogRepository)
		repo.On("LoadLog", ctx, models.NewChainID("1")).Return(populatedLog(), nil)

		uc := usecase.NewShowDeployment(listConfig(), repo)
		_, err := uc.Run(ctx, usecase.ShowDeploymentParams{ContractName: "Permit2"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
