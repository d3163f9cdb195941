package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"poker-stack-go/internal/models"
)

// CreateTransaction appends a single row to the ledger. The amount is stored
// as its exact decimal string so summaries never see float drift.
func (s *Service) CreateTransaction(ctx context.Context, params models.TransactionCreate) (*models.Transaction, error) {
	createdAt := params.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	createdAt = createdAt.UTC()

	zap.L().Info("Recording transaction",
		zap.Int64("player_id", params.PlayerId),
		zap.String("type", params.Type.String()),
		zap.String("amount", params.Amount.String()))

	var id int64
	err := s.db.QueryRowContext(ctx, queryInsertTransaction,
		params.PlayerId, string(params.Type), params.Amount.String(), nullableString(params.Note), createdAt).
		Scan(&id)
	if err != nil {
		zap.L().Error("Failed to insert transaction",
			zap.Int64("player_id", params.PlayerId),
			zap.Error(err))
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	zap.L().Info("Transaction recorded successfully",
		zap.Int64("transaction_id", id),
		zap.Int64("player_id", params.PlayerId))

	return &models.Transaction{
		Id:        id,
		PlayerId:  params.PlayerId,
		Type:      params.Type,
		Amount:    params.Amount,
		Note:      params.Note,
		CreatedAt: createdAt,
	}, nil
}

// GetTransactionsForPlayers returns the transactions owned by the given players
func (s *Service) GetTransactionsForPlayers(ctx context.Context, playerIds []int64) ([]models.Transaction, error) {
	if len(playerIds) == 0 {
		return nil, nil
	}

	query, args := transactionsForPlayersQuery(playerIds)
	zap.L().Debug("Getting transactions for players", zap.Int("player_count", len(playerIds)))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for players: %w", err)
	}
	defer closeRows(rows)

	return scanTransactions(rows)
}

// GetTransactions returns transaction history newest first
func (s *Service) GetTransactions(ctx context.Context, playerId *int64) ([]models.Transaction, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if playerId != nil {
		zap.L().Debug("Getting transaction history", zap.Int64("player_id", *playerId))
		rows, err = s.db.QueryContext(ctx, queryGetPlayerTransactions, *playerId)
	} else {
		zap.L().Debug("Getting transaction history")
		rows, err = s.db.QueryContext(ctx, queryGetAllTransactions)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction history: %w", err)
	}
	defer closeRows(rows)

	return scanTransactions(rows)
}

func transactionsForPlayersQuery(playerIds []int64) (string, []any) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(playerIds)), ",")
	args := make([]any, len(playerIds))
	for i, id := range playerIds {
		args[i] = id
	}
	return fmt.Sprintf(queryGetTransactionsForPlayers, placeholders), args
}

func scanTransactions(rows *sql.Rows) ([]models.Transaction, error) {
	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		var txType, amountStr string
		var note sql.NullString
		err := rows.Scan(&tx.Id, &tx.PlayerId, &txType, &amountStr, &note, &tx.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		tx.Amount, err = decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
		}
		tx.Type = models.TransactionType(txType)
		tx.Note = stringPointer(note)

		transactions = append(transactions, tx)
	}

	// Check for errors during iteration
	if err := rows.Err(); err != nil {
		zap.L().Error("Error during transaction row iteration", zap.Error(err))
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return transactions, nil
}
