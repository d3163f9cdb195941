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

package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"poker-stack-go/internal/common"
	"poker-stack-go/internal/config"
	"poker-stack-go/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func parseAndValidateFlags() (*models.TransactionCreate, error) {
	playerFlag := flag.Int64("player", 0, "Player id (required)")
	typeFlag := flag.String("type", "", "Transaction type: buy_in, win or loss (required)")
	amountFlag := flag.String("amount", "", "Amount (required)")
	noteFlag := flag.String("note", "", "Free-form note (optional)")
	flag.Parse()

	if *playerFlag == 0 || *typeFlag == "" || *amountFlag == "" {
		return nil, fmt.Errorf("flags are required: --player, --type, --amount")
	}

	txType, err := models.ParseTransactionType(*typeFlag)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(*amountFlag))
	if err != nil {
		return nil, fmt.Errorf("invalid amount format: %w", err)
	}

	params := &models.TransactionCreate{
		PlayerId: *playerFlag,
		Type:     txType,
		Amount:   amount,
		Note:     noteFlag,
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	params, err := parseAndValidateFlags()
	if err != nil {
		zap.L().Fatal("Invalid arguments", zap.Error(err))
	}

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	// The foreign key would reject an unknown id, but a lookup gives a clearer message
	summary, err := services.LedgerService.GetPlayerSummary(ctx, params.PlayerId)
	if err != nil {
		zap.L().Fatal("Player lookup failed", zap.Int64("player_id", params.PlayerId), zap.Error(err))
	}

	tx, err := services.LedgerService.RecordTransaction(ctx, *params)
	if err != nil {
		zap.L().Fatal("Failed to record transaction", zap.Error(err))
	}

	updated, err := services.LedgerService.GetPlayerSummary(ctx, params.PlayerId)
	if err != nil {
		zap.L().Fatal("Failed to refresh player summary", zap.Error(err))
	}

	fmt.Println()
	common.PrintHeader("TRANSACTION RECORDED", common.DefaultWidth)
	common.PrintField("ID", tx.Id)
	common.PrintField("Player", fmt.Sprintf("%s (%d)", summary.Name, summary.Id))
	common.PrintField("Type", tx.Type.Label())
	common.PrintField("Amount", common.FormatAmount(tx.Amount))
	if tx.Note != nil {
		common.PrintField("Note", *tx.Note)
	}
	common.PrintField("Balance", common.FormatAmount(summary.Balance)+" -> "+common.FormatAmount(updated.Balance))
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Println()

	zap.L().Info("Transaction recorded successfully",
		zap.Int64("transaction_id", tx.Id),
		zap.Int64("player_id", tx.PlayerId))
}
