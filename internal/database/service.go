/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"poker-stack-go/internal/models"
	"poker-stack-go/internal/store"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Compile-time check: *Service must satisfy store.LedgerStore.
var _ store.LedgerStore = (*Service)(nil)

type Service struct {
	db  *sql.DB
	now func() time.Time
}

func NewService(ctx context.Context, cfg models.DatabaseConfig) (*Service, error) {
	// Validate configuration
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if cfg.MaxOpenConns <= 0 {
		return nil, fmt.Errorf("max open connections must be positive, got %d", cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns < 0 {
		return nil, fmt.Errorf("max idle connections cannot be negative, got %d", cfg.MaxIdleConns)
	}
	if cfg.PingTimeout <= 0 {
		return nil, fmt.Errorf("ping timeout must be positive, got %v", cfg.PingTimeout)
	}

	zap.L().Info("Opening SQLite database", zap.String("file", cfg.Path))
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	// Set connection timeouts and limits
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test connection with timeout
	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			zap.L().Warn("Failed to close database after ping failure", zap.Error(closeErr))
		}
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	service := &Service{db: db, now: time.Now}
	if err := service.initSchema(ctx, cfg.CreateDummyPlayers); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			zap.L().Warn("Failed to close database after schema failure", zap.Error(closeErr))
		}
		return nil, fmt.Errorf("unable to initialize schema: %w", err)
	}

	zap.L().Info("Database service initialized successfully")
	return service, nil
}

func (s *Service) Close() {
	if err := s.db.Close(); err != nil {
		zap.L().Warn("Failed to close database connection", zap.Error(err))
	}
}

func (s *Service) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Service) initSchema(ctx context.Context, createDummyPlayers bool) error {
	schema := `
	-- Create player table
	CREATE TABLE IF NOT EXISTS player (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		telegram_username TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_player_name ON player(name);
	CREATE INDEX IF NOT EXISTS idx_player_telegram_username ON player(telegram_username);

	-- Create transaction table; rows are append-only
	CREATE TABLE IF NOT EXISTS "transaction" (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_id INTEGER NOT NULL REFERENCES player(id),
		type TEXT NOT NULL CHECK (type IN ('buy_in', 'win', 'loss')),
		amount TEXT NOT NULL,
		note TEXT,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_transaction_player_id ON "transaction"(player_id);
	CREATE INDEX IF NOT EXISTS idx_transaction_created_at ON "transaction"(created_at);
	`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return err
	}

	if !createDummyPlayers {
		zap.L().Info("Skipping dummy player creation (CREATE_DUMMY_PLAYERS=false)")
		return nil
	}

	var count int
	if err := s.db.QueryRowContext(ctx, queryCountPlayers).Scan(&count); err != nil {
		return fmt.Errorf("unable to count players: %w", err)
	}
	if count > 0 {
		zap.L().Info("Players already present, skipping dummy players", zap.Int("count", count))
		return nil
	}

	players := []struct {
		name     string
		telegram string
	}{
		{"Alice Johnson", "alice_j"},
		{"Bob Smith", "bobsmith"},
		{"Carol Williams", "carol_w"},
	}

	for _, player := range players {
		var id int64
		err := s.db.QueryRowContext(ctx, queryInsertPlayer, player.name, player.telegram).Scan(&id)
		if err != nil {
			zap.L().Error("Failed to insert dummy player", zap.String("name", player.name), zap.Error(err))
		} else {
			zap.L().Info("Dummy player created", zap.Int64("id", id), zap.String("name", player.name))
		}
	}

	return nil
}

func nullableString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func stringPointer(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	v := value.String
	return &v
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		zap.L().Warn("Failed to close rows", zap.Error(err))
	}
}
