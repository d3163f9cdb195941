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
	"errors"
	"net"

	"poker-stack-go/internal/api"
	"poker-stack-go/internal/common"
	"poker-stack-go/internal/config"
	"poker-stack-go/internal/database"
	"poker-stack-go/internal/metrics"
	"poker-stack-go/internal/models"
	"poker-stack-go/internal/store"
	"poker-stack-go/internal/web"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	fx.New(
		fx.Supply(logger),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Provide(
			config.Load,
			newDatabase,
			api.NewLedgerService,
			metrics.NewMetrics,
			newHandler,
			newApp,
		),
		fx.Invoke(startServer),
	).Run()
}

func newDatabase(lc fx.Lifecycle, cfg *models.Config) (store.LedgerStore, error) {
	zap.L().Info("Opening database", zap.String("path", cfg.Database.Path))
	db, err := database.NewService(context.Background(), cfg.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			db.Close()
			return nil
		},
	})
	return db, nil
}

func newHandler(logger *zap.Logger, ledger *api.LedgerService, m *metrics.Metrics) *web.Handler {
	return web.NewHandler(logger, ledger, m)
}

func newApp(cfg *models.Config, handler *web.Handler, m *metrics.Metrics, logger *zap.Logger) *fiber.App {
	return web.NewApp(cfg.Server, handler, m, logger)
}

func startServer(app *fiber.App, cfg *models.Config, lc fx.Lifecycle, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", cfg.Server.Address)
			if err != nil {
				return err
			}
			zap.L().Info("Poker stack server listening", zap.String("address", cfg.Server.Address))
			go func() {
				if err := app.Listener(ln); err != nil && !errors.Is(err, net.ErrClosed) {
					zap.L().Error("Server stopped unexpectedly", zap.Error(err))
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			zap.L().Info("Shutting down server")
			stopCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return app.ShutdownWithContext(stopCtx)
		},
	})
}
