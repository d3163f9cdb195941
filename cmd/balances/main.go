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

	"poker-stack-go/internal/api"
	"poker-stack-go/internal/common"
	"poker-stack-go/internal/config"
	"poker-stack-go/internal/models"

	"go.uber.org/zap"
)

type balanceStats struct {
	totalPlayers      int
	playersInProfit   int
	reconcileFailures int
}

func printTotals(summary models.PlayerSummary) {
	common.PrintBoxRow("Buy-ins", summary.BuyInsTotal, false)
	common.PrintBoxRow("Winnings", summary.WinningsTotal, false)
	common.PrintBoxRow("Losses", summary.LossesTotal, false)
	common.PrintBoxRow("Balance", summary.Balance, true)
}

func printPlayerHeader(summary models.PlayerSummary) {
	if summary.TelegramUsername != nil {
		fmt.Printf("\n┌─ Player: %s (@%s)\n", summary.Name, *summary.TelegramUsername)
	} else {
		fmt.Printf("\n┌─ Player: %s\n", summary.Name)
	}
	fmt.Printf("│  ID: %d\n", summary.Id)
	common.PrintBoxSeparator(78)
}

func generateReport(ctx context.Context, players []models.PlayerSummary, ledger *api.LedgerService, reconcile bool, logger *zap.Logger) balanceStats {
	stats := balanceStats{}

	for _, summary := range players {
		stats.totalPlayers++
		if summary.Balance.IsPositive() {
			stats.playersInProfit++
		}

		printPlayerHeader(summary)
		printTotals(summary)

		if !reconcile {
			continue
		}
		if err := ledger.ReconcilePlayer(ctx, summary.Id); err != nil {
			stats.reconcileFailures++
			logger.Error("Reconciliation failed",
				zap.Int64("player_id", summary.Id),
				zap.String("player_name", summary.Name),
				zap.Error(err))
			fmt.Printf("   ✗ reconciliation failed: %v\n", err)
			continue
		}
		fmt.Println("   ✓ reconciled")
	}

	return stats
}

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	// Parse command line flags
	playerFlag := flag.Int64("player", 0, "Filter by specific player id (optional)")
	reconcileFlag := flag.Bool("reconcile", false, "Cross-check each player's totals against the store")
	flag.Parse()

	logger.Info("Starting balance query")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Connecting to database", zap.String("path", cfg.Database.Path))
	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	players, err := common.InitializePlayers(ctx, services.LedgerService, *playerFlag, logger)
	if err != nil {
		logger.Fatal("Failed to initialize players", zap.Error(err))
	}

	common.PrintHeader("PLAYER BALANCE REPORT", common.DefaultWidth)

	stats := generateReport(ctx, players, services.LedgerService, *reconcileFlag, logger)

	summary := fmt.Sprintf("SUMMARY: %d players, %d in profit", stats.totalPlayers, stats.playersInProfit)
	if *reconcileFlag {
		summary += fmt.Sprintf(", %d reconciliation failures", stats.reconcileFailures)
	}
	common.PrintFooter(summary, common.DefaultWidth)

	logger.Info("Balance query completed",
		zap.Int("players_queried", stats.totalPlayers),
		zap.Int("players_in_profit", stats.playersInProfit),
		zap.Int("reconcile_failures", stats.reconcileFailures))
}
