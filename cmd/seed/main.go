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

	"poker-stack-go/internal/common"
	"poker-stack-go/internal/config"

	"go.uber.org/zap"
)

type seedStats struct {
	playersCreated      int
	transactionsCreated int
	failures            int
}

func seedPlayer(ctx context.Context, services *common.Services, player common.SeedPlayer, stats *seedStats) {
	created, err := services.LedgerService.CreatePlayer(ctx, player.ToCreate())
	if err != nil {
		zap.L().Error("Failed to create player", zap.String("name", player.Name), zap.Error(err))
		fmt.Printf("✗ %s: failed to create player\n", player.Name)
		stats.failures++
		return
	}
	stats.playersCreated++
	fmt.Printf("✓ %s (id %d)\n", created.Name, created.Id)

	for i, entry := range player.Transactions {
		params, err := entry.ToCreate(created.Id)
		if err != nil {
			zap.L().Error("Invalid seed transaction", zap.String("player", player.Name), zap.Int("index", i), zap.Error(err))
			stats.failures++
			continue
		}
		tx, err := services.LedgerService.RecordTransaction(ctx, params)
		if err != nil {
			zap.L().Error("Failed to record seed transaction", zap.String("player", player.Name), zap.Int("index", i), zap.Error(err))
			fmt.Printf("   ✗ %s %s\n", params.Type.Label(), common.FormatAmount(params.Amount))
			stats.failures++
			continue
		}
		stats.transactionsCreated++
		fmt.Printf("   ✓ %s %s\n", tx.Type.Label(), common.FormatAmount(tx.Amount))
	}
}

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	fileFlag := flag.String("file", cfg.Server.SeedFile, "Path to the YAML seed file")
	flag.Parse()

	zap.L().Info("Loading seed file", zap.String("file", *fileFlag))
	seed, err := common.LoadSeedConfig(*fileFlag)
	if err != nil {
		zap.L().Fatal("Failed to load seed file", zap.Error(err))
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	common.PrintHeader(fmt.Sprintf("SEEDING %d PLAYERS", len(seed.Players)), common.DefaultWidth)

	stats := &seedStats{}
	for _, player := range seed.Players {
		seedPlayer(ctx, services, player, stats)
	}

	common.PrintFooter(fmt.Sprintf("SUMMARY: %d players, %d transactions, %d failures",
		stats.playersCreated, stats.transactionsCreated, stats.failures), common.DefaultWidth)

	zap.L().Info("Seeding completed",
		zap.Int("players_created", stats.playersCreated),
		zap.Int("transactions_created", stats.transactionsCreated),
		zap.Int("failures", stats.failures))
}
