package api

import (
	"context"
	"errors"
	"fmt"

	"poker-stack-go/internal/ledger"
	"poker-stack-go/internal/models"
	"poker-stack-go/internal/store"

	"go.uber.org/zap"
)

// CreatePlayer validates and stores a new player
func (s *LedgerService) CreatePlayer(ctx context.Context, params models.PlayerCreate) (*models.Player, error) {
	if err := params.Validate(); err != nil {
		zap.L().Warn("Rejected player", zap.String("name", params.Name), zap.Error(err))
		return nil, NewError(ErrCodeValidationFailed, err)
	}

	player, err := s.db.CreatePlayer(ctx, params)
	if err != nil {
		zap.L().Error("Failed to create player", zap.String("name", params.Name), zap.Error(err))
		return nil, NewError(ErrCodeOperationFailed, err)
	}

	return player, nil
}

// ListPlayers returns a freshly computed summary for every player. When there
// are no players the transaction table is not queried.
func (s *LedgerService) ListPlayers(ctx context.Context) ([]models.PlayerSummary, error) {
	players, err := s.db.GetPlayers(ctx)
	if err != nil {
		zap.L().Error("Failed to list players", zap.Error(err))
		return nil, NewError(ErrCodeOperationFailed, err)
	}

	if len(players) == 0 {
		return []models.PlayerSummary{}, nil
	}

	playerIds := make([]int64, len(players))
	for i, player := range players {
		playerIds[i] = player.Id
	}

	transactions, err := s.db.GetTransactionsForPlayers(ctx, playerIds)
	if err != nil {
		zap.L().Error("Failed to load player transactions", zap.Int("player_count", len(players)), zap.Error(err))
		return nil, NewError(ErrCodeOperationFailed, err)
	}

	summaries := ledger.ComputeSummaries(players, transactions)

	zap.L().Debug("Computed player summaries",
		zap.Int("players", len(summaries)),
		zap.Int("transactions", len(transactions)))

	return summaries, nil
}

// GetPlayerSummary returns the summary for a single player
func (s *LedgerService) GetPlayerSummary(ctx context.Context, playerId int64) (*models.PlayerSummary, error) {
	player, err := s.db.GetPlayerById(ctx, playerId)
	if err != nil {
		return nil, s.lookupError(playerId, err)
	}

	transactions, err := s.db.GetTransactionsForPlayers(ctx, []int64{playerId})
	if err != nil {
		return nil, NewError(ErrCodeOperationFailed, err)
	}

	summaries := ledger.ComputeSummaries([]models.Player{*player}, transactions)
	return &summaries[0], nil
}

func (s *LedgerService) lookupError(playerId int64, err error) error {
	if errors.Is(err, store.ErrPlayerNotFound) {
		return NewError(ErrCodePlayerNotFound, err)
	}
	zap.L().Error("Failed to look up player", zap.Int64("player_id", playerId), zap.Error(err))
	return NewError(ErrCodeOperationFailed, fmt.Errorf("player lookup: %w", err))
}
