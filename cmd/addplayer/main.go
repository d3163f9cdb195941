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
	"poker-stack-go/internal/models"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	_, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	// Parse command line flags
	nameFlag := flag.String("name", "", "Player's display name (required)")
	telegramFlag := flag.String("telegram", "", "Player's Telegram username (optional)")
	flag.Parse()

	if *nameFlag == "" {
		zap.L().Fatal("Flag is required: --name")
	}

	zap.L().Info("Starting player creation",
		zap.String("name", *nameFlag),
		zap.String("telegram_username", *telegramFlag))

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("Failed to load config", zap.Error(err))
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	player, err := services.LedgerService.CreatePlayer(ctx, models.PlayerCreate{
		Name:             *nameFlag,
		TelegramUsername: telegramFlag,
	})
	if err != nil {
		zap.L().Fatal("Failed to create player", zap.Error(err))
	}

	fmt.Println()
	common.PrintHeader("PLAYER CREATED", common.DefaultWidth)
	common.PrintField("ID", player.Id)
	common.PrintField("Name", player.Name)
	if player.TelegramUsername != nil {
		common.PrintField("Telegram", "@"+*player.TelegramUsername)
	}
	common.PrintSeparator("=", common.DefaultWidth)
	fmt.Println()

	zap.L().Info("Player created successfully", zap.Int64("id", player.Id))
}
