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

// Player represents a participant in the poker night
type Player struct {
	Id               int64   `db:"id"`
	Name             string  `db:"name"`
	TelegramUsername *string `db:"telegram_username"`
}

// Transaction represents an immutable cash movement for a player
type Transaction struct {
	Id        int64           `db:"id"`
	PlayerId  int64           `db:"player_id"`
	Type      TransactionType `db:"type"`
	Amount    decimal.Decimal `db:"amount"`
	Note      *string         `db:"note"`
	CreatedAt time.Time       `db:"created_at"`
}

// PlayerCreate holds the fields accepted when registering a player
type PlayerCreate struct {
	Name             string
	TelegramUsername *string
}

// TransactionCreate holds the fields accepted when recording a transaction.
// A zero CreatedAt is replaced by the store's clock at insert time.
type TransactionCreate struct {
	PlayerId  int64
	Type      TransactionType
	Amount    decimal.Decimal
	Note      *string
	CreatedAt time.Time
}
