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

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlayerSummary is the per-player view derived from the transaction log.
// It is recomputed on every read and never persisted.
type PlayerSummary struct {
	Id               int64           `json:"id"`
	Name             string          `json:"name"`
	TelegramUsername *string         `json:"telegram_username"`
	BuyInsTotal      decimal.Decimal `json:"buy_ins_total"`
	WinningsTotal    decimal.Decimal `json:"winnings_total"`
	LossesTotal      decimal.Decimal `json:"losses_total"`
	Balance          decimal.Decimal `json:"balance"`
}

// TransactionRecord represents a transaction in the dashboard history
type TransactionRecord struct {
	Id         int64           `json:"id"`
	PlayerId   int64           `json:"player_id"`
	PlayerName string          `json:"player_name,omitempty"`
	Type       TransactionType `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Note       *string         `json:"note"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Dashboard carries everything the index page renders
type Dashboard struct {
	Players          []PlayerSummary     `json:"players"`
	Transactions     []TransactionRecord `json:"transactions"`
	TransactionTypes []TransactionType   `json:"transaction_types"`
}
