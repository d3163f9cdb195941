package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"poker-stack-go/internal/models"
	"poker-stack-go/internal/store"

	"github.com/shopspring/decimal"
)

func TestCreatePlayer_OptionalTelegram(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	handle := "alice_poker"

	withHandle, err := service.CreatePlayer(ctx, models.PlayerCreate{Name: "Alice", TelegramUsername: &handle})
	if err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}
	withoutHandle, err := service.CreatePlayer(ctx, models.PlayerCreate{Name: "Alice"})
	if err != nil {
		t.Fatalf("CreatePlayer without telegram failed: %v", err)
	}

	if withHandle.Id == withoutHandle.Id {
		t.Errorf("Expected distinct ids for players sharing a name")
	}

	players, err := service.GetPlayers(ctx)
	if err != nil {
		t.Fatalf("GetPlayers failed: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("Expected 2 players, got %d", len(players))
	}
	if players[0].TelegramUsername == nil || *players[0].TelegramUsername != handle {
		t.Errorf("Expected telegram %q, got %v", handle, players[0].TelegramUsername)
	}
	if players[1].TelegramUsername != nil {
		t.Errorf("Expected nil telegram, got %q", *players[1].TelegramUsername)
	}
}

func TestGetPlayerById_NotFound(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	_, err := service.GetPlayerById(context.Background(), 99)
	if !errors.Is(err, store.ErrPlayerNotFound) {
		t.Errorf("Expected ErrPlayerNotFound, got %v", err)
	}
}

func TestGetPlayerTotals(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	player := createTestPlayer(t, service, "Alice")
	now := time.Now()
	recordTestTransaction(t, service, player.Id, models.TransactionTypeBuyIn, "100", now)
	recordTestTransaction(t, service, player.Id, models.TransactionTypeWin, "250", now)
	recordTestTransaction(t, service, player.Id, models.TransactionTypeWin, "0.25", now)

	totals, err := service.GetPlayerTotals(context.Background(), player.Id)
	if err != nil {
		t.Fatalf("GetPlayerTotals failed: %v", err)
	}

	if !totals[models.TransactionTypeBuyIn].Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected buy-in total 100, got %s", totals[models.TransactionTypeBuyIn].String())
	}
	if !totals[models.TransactionTypeWin].Equal(decimal.RequireFromString("250.25")) {
		t.Errorf("Expected win total 250.25, got %s", totals[models.TransactionTypeWin].String())
	}
	if !totals[models.TransactionTypeLoss].IsZero() {
		t.Errorf("Expected zero loss total, got %s", totals[models.TransactionTypeLoss].String())
	}
}

func TestGetPlayerTotals_ExactBeyondFloatPrecision(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	player := createTestPlayer(t, service, "Alice")
	now := time.Now()
	for i := 0; i < 3; i++ {
		recordTestTransaction(t, service, player.Id, models.TransactionTypeWin, "999999999999.99999999", now)
	}

	totals, err := service.GetPlayerTotals(context.Background(), player.Id)
	if err != nil {
		t.Fatalf("GetPlayerTotals failed: %v", err)
	}

	want := decimal.RequireFromString("2999999999999.99999997")
	if !totals[models.TransactionTypeWin].Equal(want) {
		t.Errorf("Expected win total %s, got %s", want.String(), totals[models.TransactionTypeWin].String())
	}
}

func TestNewService_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  models.DatabaseConfig
	}{
		{"empty path", models.DatabaseConfig{MaxOpenConns: 1, PingTimeout: time.Second}},
		{"zero conns", models.DatabaseConfig{Path: ":memory:", PingTimeout: time.Second}},
		{"negative idle", models.DatabaseConfig{Path: ":memory:", MaxOpenConns: 1, MaxIdleConns: -1, PingTimeout: time.Second}},
		{"zero ping", models.DatabaseConfig{Path: ":memory:", MaxOpenConns: 1}},
	}
	for _, tt := range tests {
		if _, err := NewService(context.Background(), tt.cfg); err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
	}
}

func TestNewService_DummyPlayers(t *testing.T) {
	service, err := NewService(context.Background(), models.DatabaseConfig{
		Path:               ":memory:",
		MaxOpenConns:       1,
		MaxIdleConns:       1,
		PingTimeout:        time.Second,
		CreateDummyPlayers: true,
	})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	defer service.Close()

	players, err := service.GetPlayers(context.Background())
	if err != nil {
		t.Fatalf("GetPlayers failed: %v", err)
	}
	if len(players) != 3 {
		t.Errorf("Expected 3 dummy players, got %d", len(players))
	}
}
