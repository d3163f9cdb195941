package mocks

import (
	"context"

	"poker-stack-go/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type LedgerStore struct {
	mock.Mock
}

func (m *LedgerStore) CreatePlayer(ctx context.Context, params models.PlayerCreate) (*models.Player, error) {
	args := m.Called(ctx, params)
	player, _ := args.Get(0).(*models.Player)
	return player, args.Error(1)
}

func (m *LedgerStore) GetPlayers(ctx context.Context) ([]models.Player, error) {
	args := m.Called(ctx)
	players, _ := args.Get(0).([]models.Player)
	return players, args.Error(1)
}

func (m *LedgerStore) GetPlayerById(ctx context.Context, playerId int64) (*models.Player, error) {
	args := m.Called(ctx, playerId)
	player, _ := args.Get(0).(*models.Player)
	return player, args.Error(1)
}

func (m *LedgerStore) CreateTransaction(ctx context.Context, params models.TransactionCreate) (*models.Transaction, error) {
	args := m.Called(ctx, params)
	tx, _ := args.Get(0).(*models.Transaction)
	return tx, args.Error(1)
}

func (m *LedgerStore) GetTransactionsForPlayers(ctx context.Context, playerIds []int64) ([]models.Transaction, error) {
	args := m.Called(ctx, playerIds)
	transactions, _ := args.Get(0).([]models.Transaction)
	return transactions, args.Error(1)
}

func (m *LedgerStore) GetTransactions(ctx context.Context, playerId *int64) ([]models.Transaction, error) {
	args := m.Called(ctx, playerId)
	transactions, _ := args.Get(0).([]models.Transaction)
	return transactions, args.Error(1)
}

func (m *LedgerStore) GetPlayerTotals(ctx context.Context, playerId int64) (map[models.TransactionType]decimal.Decimal, error) {
	args := m.Called(ctx, playerId)
	totals, _ := args.Get(0).(map[models.TransactionType]decimal.Decimal)
	return totals, args.Error(1)
}

func (m *LedgerStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *LedgerStore) Close() {
	m.Called()
}
