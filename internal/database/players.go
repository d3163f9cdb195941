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
	"errors"
	"fmt"

	"poker-stack-go/internal/models"
	"poker-stack-go/internal/store"

	"go.uber.org/zap"
)

func (s *Service) GetPlayers(ctx context.Context) ([]models.Player, error) {
	zap.L().Debug("Querying players")

	rows, err := s.db.QueryContext(ctx, queryGetPlayers)
	if err != nil {
		zap.L().Error("Failed to query players", zap.Error(err))
		return nil, fmt.Errorf("unable to query players: %w", err)
	}
	defer closeRows(rows)

	var players []models.Player
	for rows.Next() {
		var player models.Player
		var telegram sql.NullString
		if err := rows.Scan(&player.Id, &player.Name, &telegram); err != nil {
			zap.L().Error("Failed to scan player row", zap.Error(err))
			return nil, fmt.Errorf("unable to scan player row: %w", err)
		}
		player.TelegramUsername = stringPointer(telegram)

		players = append(players, player)
	}

	// Check for errors during iteration
	if err := rows.Err(); err != nil {
		zap.L().Error("Error during player row iteration", zap.Error(err))
		return nil, fmt.Errorf("error iterating player rows: %w", err)
	}

	zap.L().Debug("Retrieved players", zap.Int("count", len(players)))
	return players, nil
}

func (s *Service) GetPlayerById(ctx context.Context, playerId int64) (*models.Player, error) {
	zap.L().Debug("Querying player by ID", zap.Int64("player_id", playerId))

	var player models.Player
	var telegram sql.NullString
	err := s.db.QueryRowContext(ctx, queryGetPlayerById, playerId).Scan(&player.Id, &player.Name, &telegram)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", store.ErrPlayerNotFound, playerId)
		}
		zap.L().Error("Failed to query player by ID", zap.Int64("player_id", playerId), zap.Error(err))
		return nil, fmt.Errorf("unable to query player by ID: %w", err)
	}
	player.TelegramUsername = stringPointer(telegram)

	return &player, nil
}

func (s *Service) CreatePlayer(ctx context.Context, params models.PlayerCreate) (*models.Player, error) {
	zap.L().Info("Creating player", zap.String("name", params.Name))

	var id int64
	err := s.db.QueryRowContext(ctx, queryInsertPlayer, params.Name, nullableString(params.TelegramUsername)).Scan(&id)
	if err != nil {
		zap.L().Error("Failed to insert player", zap.String("name", params.Name), zap.Error(err))
		return nil, fmt.Errorf("unable to insert player: %w", err)
	}

	zap.L().Info("Player created successfully", zap.Int64("id", id), zap.String("name", params.Name))

	return &models.Player{
		Id:               id,
		Name:             params.Name,
		TelegramUsername: params.TelegramUsername,
	}, nil
}
