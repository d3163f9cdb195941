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

package api

import (
	"context"
	"fmt"

	"poker-stack-go/internal/ledger"
	"poker-stack-go/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReconcilePlayer verifies that the in-process fold of a player's history
// matches the store's own aggregate, both rounded to display precision
func (s *LedgerService) ReconcilePlayer(ctx context.Context, playerId int64) error {
	zap.L().Info("Reconciling player totals", zap.Int64("player_id", playerId))

	summary, err := s.GetPlayerSummary(ctx, playerId)
	if err != nil {
		return err
	}

	stored, err := s.db.GetPlayerTotals(ctx, playerId)
	if err != nil {
		zap.L().Error("Failed to get stored totals", zap.Int64("player_id", playerId), zap.Error(err))
		return NewError(ErrCodeOperationFailed, err)
	}

	computed := map[models.TransactionType]decimal.Decimal{
		models.TransactionTypeBuyIn: summary.BuyInsTotal,
		models.TransactionTypeWin:   summary.WinningsTotal,
		models.TransactionTypeLoss:  summary.LossesTotal,
	}

	for _, txType := range models.TransactionTypes {
		want := computed[txType]
		got := stored[txType].Round(ledger.DisplayPlaces)
		if !want.Equal(got) {
			zap.L().Error("Player reconciliation failed",
				zap.Int64("player_id", playerId),
				zap.String("type", txType.String()),
				zap.String("computed", want.String()),
				zap.String("stored", got.String()),
				zap.String("difference", want.Sub(got).String()))
			return NewError(ErrCodeBalanceMismatch,
				fmt.Errorf("%w: %s computed=%s, stored=%s", ErrBalanceMismatch, txType, want.String(), got.String()))
		}
	}

	zap.L().Info("Player reconciliation successful",
		zap.Int64("player_id", playerId),
		zap.String("balance", summary.Balance.String()))
	return nil
}
