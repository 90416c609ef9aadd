// Package main provides the entry point for the FridgeChef API service
package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	appinventory "github.com/fridgechef/v1/internal/application/inventory"
	apprecipe "github.com/fridgechef/v1/internal/application/recipe"
	"github.com/fridgechef/v1/internal/infrastructure/ai/openai"
	"github.com/fridgechef/v1/internal/infrastructure/config"
	"github.com/fridgechef/v1/internal/infrastructure/http/server"
	gormrepo "github.com/fridgechef/v1/internal/infrastructure/persistence/gorm"
	"github.com/fridgechef/v1/internal/infrastructure/persistence/memory"
	"github.com/fridgechef/v1/internal/infrastructure/persistence/postgres"
	"github.com/fridgechef/v1/internal/infrastructure/persistence/redis"
	"github.com/fridgechef/v1/internal/infrastructure/persistence/sqlite"
	"github.com/fridgechef/v1/internal/infrastructure/storage"
	"github.com/fridgechef/v1/internal/ports/inbound"
	"github.com/fridgechef/v1/internal/ports/outbound"
	"github.com/fridgechef/v1/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	app := fx.New(
		fx.NopLogger,

		// Configuration
		fx.Provide(func() (*config.Config, error) {
			return config.Load(os.Getenv("FRIDGECHEF_CONFIG"))
		}),

		// Logger
		fx.Provide(func(cfg *config.Config) (*zap.Logger, error) {
			return logger.New(logger.Config{
				Level:       cfg.App.LogLevel,
				Format:      cfg.App.LogFormat,
				Development: cfg.App.Debug,
			})
		}),

		// Database
		fx.Provide(func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
			if cfg.Database.Driver == "postgres" {
				return postgres.Connect(cfg, log)
			}

			logLevel := gormlogger.Warn
			if cfg.App.Debug {
				logLevel = gormlogger.Info
			}
			return sqlite.SetupDatabase(cfg.Database.SQLitePath, logLevel)
		}),

		// Repositories
		fx.Provide(gormrepo.NewIngredientRepository),
		fx.Provide(gormrepo.NewRecipeRepository),
		fx.Provide(gormrepo.NewHistoryRepository),

		// Cache
		fx.Provide(func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
			if cfg.Redis.Enabled {
				return redis.NewCacheRepository(cfg, log)
			}
			return memory.NewCacheRepository(), nil
		}),

		// AI services
		fx.Provide(func(cfg *config.Config, log *zap.Logger) *openai.Client {
			return openai.NewClient(cfg, log)
		}),
		fx.Provide(func(client *openai.Client) outbound.ChefService { return client }),
		fx.Provide(func(client *openai.Client) outbound.ImageService { return client }),

		// Image storage
		fx.Provide(func(cfg *config.Config, log *zap.Logger) (outbound.ImageStore, error) {
			return storage.NewLocalImageStore(cfg.Storage.LocalPath, cfg.Storage.PublicURL, log)
		}),

		// Application services
		fx.Provide(func(
			ingredients outbound.IngredientRepository,
			recipes outbound.RecipeRepository,
			cache outbound.CacheRepository,
			cfg *config.Config,
			log *zap.Logger,
		) inbound.InventoryService {
			return appinventory.NewInventoryService(ingredients, recipes, cache, cfg.Redis.CacheTTL, log)
		}),
		fx.Provide(apprecipe.NewRecipeService),

		// HTTP server
		fx.Provide(server.NewServer),

		// Lifecycle
		fx.Invoke(registerLifecycleHooks),
	)

	app.Run()
}

func registerLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting FridgeChef API",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
				zap.Int("port", cfg.Server.Port),
			)

			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server failed to start", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
