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

const (
	// Player queries
	queryGetPlayers = `
		SELECT id, name, telegram_username
		FROM player
		ORDER BY id`

	queryInsertPlayer = `
		INSERT INTO player (name, telegram_username) VALUES (?, ?)
		RETURNING id`

	queryGetPlayerById = `
		SELECT id, name, telegram_username
		FROM player
		WHERE id = ?`

	queryCountPlayers = `
		SELECT COUNT(*) FROM player`

	// Transaction queries
	queryInsertTransaction = `
		INSERT INTO "transaction" (player_id, type, amount, note, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`

	// queryGetTransactionsForPlayers is completed with a placeholder list by transactionsForPlayersQuery
	queryGetTransactionsForPlayers = `
		SELECT id, player_id, type, amount, note, created_at
		FROM "transaction"
		WHERE player_id IN (%s)
		ORDER BY id`

	queryGetAllTransactions = `
		SELECT id, player_id, type, amount, note, created_at
		FROM "transaction"
		ORDER BY created_at DESC, id DESC`

	queryGetPlayerTransactions = `
		SELECT id, player_id, type, amount, note, created_at
		FROM "transaction"
		WHERE player_id = ?
		ORDER BY created_at DESC, id DESC`

	// Totals queries. Amounts are summed in Go; SQLite arithmetic on the TEXT
	// column would go through float64 and lose digits past ~15.
	queryGetPlayerAmounts = `
		SELECT type, amount
		FROM "transaction"
		WHERE player_id = ?`
)
