package store

import (
	"context"
	"errors"

	"poker-stack-go/internal/models"

	"github.com/shopspring/decimal"
)

// Sentinel errors shared across all backend implementations.
var (
	ErrPlayerNotFound = errors.New("player not found")
)

// LedgerStore defines the persistence contract consumed by the ledger service.
// Implementations own their connection lifecycle; callers release it with Close.
type LedgerStore interface {
	// --- Players ---
	CreatePlayer(ctx context.Context, params models.PlayerCreate) (*models.Player, error)
	GetPlayers(ctx context.Context) ([]models.Player, error)
	GetPlayerById(ctx context.Context, playerId int64) (*models.Player, error)

	// --- Transactions ---
	CreateTransaction(ctx context.Context, params models.TransactionCreate) (*models.Transaction, error)
	// GetTransactionsForPlayers returns every transaction whose player id is in playerIds.
	GetTransactionsForPlayers(ctx context.Context, playerIds []int64) ([]models.Transaction, error)
	// GetTransactions returns transactions newest first, optionally for a single player.
	GetTransactions(ctx context.Context, playerId *int64) ([]models.Transaction, error)
	GetPlayerTotals(ctx context.Context, playerId int64) (map[models.TransactionType]decimal.Decimal, error)

	// --- Lifecycle ---
	Ping(ctx context.Context) error
	Close()
}
