package api

import (
	"context"

	"poker-stack-go/internal/models"

	"go.uber.org/zap"
)

// RecordTransaction validates and appends a transaction to the ledger.
// A player id that does not exist surfaces as a storage failure.
func (s *LedgerService) RecordTransaction(ctx context.Context, params models.TransactionCreate) (*models.Transaction, error) {
	if err := params.Validate(); err != nil {
		zap.L().Warn("Rejected transaction",
			zap.Int64("player_id", params.PlayerId),
			zap.String("type", params.Type.String()),
			zap.String("amount", params.Amount.String()),
			zap.Error(err))
		return nil, NewError(ErrCodeValidationFailed, err)
	}

	tx, err := s.db.CreateTransaction(ctx, params)
	if err != nil {
		zap.L().Error("Transaction recording failed",
			zap.Int64("player_id", params.PlayerId),
			zap.String("type", params.Type.String()),
			zap.String("amount", params.Amount.String()),
			zap.Error(err))
		return nil, NewError(ErrCodeOperationFailed, err)
	}

	return tx, nil
}

// ListTransactions returns transactions newest first, optionally for one player
func (s *LedgerService) ListTransactions(ctx context.Context, playerId *int64) ([]models.TransactionRecord, error) {
	transactions, err := s.db.GetTransactions(ctx, playerId)
	if err != nil {
		zap.L().Error("Failed to get transaction history", zap.Error(err))
		return nil, NewError(ErrCodeOperationFailed, err)
	}

	return toRecords(transactions, nil), nil
}

// Dashboard assembles the player summaries and full history for the index page
func (s *LedgerService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	summaries, err := s.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	transactions, err := s.db.GetTransactions(ctx, nil)
	if err != nil {
		zap.L().Error("Failed to get transaction history", zap.Error(err))
		return nil, NewError(ErrCodeOperationFailed, err)
	}

	names := make(map[int64]string, len(summaries))
	for _, summary := range summaries {
		names[summary.Id] = summary.Name
	}

	return &models.Dashboard{
		Players:          summaries,
		Transactions:     toRecords(transactions, names),
		TransactionTypes: models.TransactionTypes,
	}, nil
}

func toRecords(transactions []models.Transaction, names map[int64]string) []models.TransactionRecord {
	result := make([]models.TransactionRecord, len(transactions))
	for i, tx := range transactions {
		result[i] = models.TransactionRecord{
			Id:         tx.Id,
			PlayerId:   tx.PlayerId,
			PlayerName: names[tx.PlayerId],
			Type:       tx.Type,
			Amount:     tx.Amount,
			Note:       tx.Note,
			CreatedAt:  tx.CreatedAt,
		}
	}
	return result
}
