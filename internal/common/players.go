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

package common

import (
	"context"
	"fmt"

	"poker-stack-go/internal/models"

	"go.uber.org/zap"
)

// PlayerSource is the part of the ledger service the CLI utilities read from
type PlayerSource interface {
	ListPlayers(ctx context.Context) ([]models.PlayerSummary, error)
	GetPlayerSummary(ctx context.Context, playerId int64) (*models.PlayerSummary, error)
}

// InitializePlayers retrieves player summaries based on an optional id filter.
// A positive playerFilter returns that single player; zero returns everyone.
func InitializePlayers(ctx context.Context, source PlayerSource, playerFilter int64, logger *zap.Logger) ([]models.PlayerSummary, error) {
	var players []models.PlayerSummary

	if playerFilter > 0 {
		logger.Info("Looking up player by id", zap.Int64("player_id", playerFilter))
		summary, err := source.GetPlayerSummary(ctx, playerFilter)
		if err != nil {
			return nil, fmt.Errorf("player not found: %w", err)
		}
		players = append(players, *summary)
	} else {
		all, err := source.ListPlayers(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get players: %w", err)
		}
		players = all
	}

	logger.Info("Retrieved players", zap.Int("count", len(players)))
	return players, nil
}
