package database

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"poker-stack-go/internal/models"
)

// GetPlayerTotals sums a player's stored amounts per transaction type at full
// decimal precision. It reads the rows through its own query and is a
// cross-check of the in-process fold, not its source.
func (s *Service) GetPlayerTotals(ctx context.Context, playerId int64) (map[models.TransactionType]decimal.Decimal, error) {
	zap.L().Debug("Getting player totals", zap.Int64("player_id", playerId))

	rows, err := s.db.QueryContext(ctx, queryGetPlayerAmounts, playerId)
	if err != nil {
		zap.L().Error("Failed to get player totals", zap.Int64("player_id", playerId), zap.Error(err))
		return nil, fmt.Errorf("failed to get player totals: %w", err)
	}
	defer closeRows(rows)

	totals := make(map[models.TransactionType]decimal.Decimal, len(models.TransactionTypes))
	for _, t := range models.TransactionTypes {
		totals[t] = decimal.Zero
	}

	for rows.Next() {
		var txType, amountStr string
		if err := rows.Scan(&txType, &amountStr); err != nil {
			return nil, fmt.Errorf("failed to scan player amount: %w", err)
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
		}
		t := models.TransactionType(txType)
		totals[t] = totals[t].Add(amount)
	}

	// Check for errors during iteration
	if err := rows.Err(); err != nil {
		zap.L().Error("Error during totals row iteration", zap.Error(err))
		return nil, fmt.Errorf("error iterating totals rows: %w", err)
	}

	return totals, nil
}
