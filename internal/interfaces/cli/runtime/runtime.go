// Package runtime opens the process-wide resources shared by every command.
package runtime

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/config"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/database"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/biztime"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

// Runtime is the loaded configuration plus the connections opened from it.
type Runtime struct {
	Env    string
	Config *config.Config
	Log    logger.Interface
	DB     *gorm.DB
	Redis  *redis.Client
}

// ResolveEnv lets the ENV variable override the --env flag.
func ResolveEnv(flagEnv string) string {
	if envVar := os.Getenv("ENV"); envVar != "" {
		return envVar
	}
	return flagEnv
}

// GinMode maps a deployment environment onto a gin mode.
func GinMode(environment string) string {
	switch strings.ToLower(environment) {
	case constants.EnvProduction, "prod", "release":
		return "release"
	case constants.EnvTest, "testing":
		return "test"
	default:
		return "debug"
	}
}

// LoadConfig reads configuration and initialises logging and the business
// timezone. It opens no connections.
func LoadConfig(env, configPath string) (*config.Config, logger.Interface, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath, GinMode(env))
	} else {
		cfg, err = config.Load(GinMode(env))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logger, cfg.Server.IsDebug()); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// Open loads configuration and connects to the database. Redis is connected
// only when withRedis is set.
func Open(ctx context.Context, env, configPath string, withRedis bool) (*Runtime, error) {
	cfg, log, err := LoadConfig(env, configPath)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	rt := &Runtime{Env: env, Config: cfg, Log: log, DB: db}
	if !withRedis {
		return rt, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())
	rt.Redis = client

	return rt, nil
}

// Close releases every connection the runtime opened.
func (rt *Runtime) Close() {
	if rt.Redis != nil {
		if err := rt.Redis.Close(); err != nil {
			rt.Log.Warnw("failed to close redis client", "error", err)
		}
	}
	if err := database.Close(rt.DB); err != nil {
		rt.Log.Warnw("failed to close database", "error", err)
	}
	_ = logger.Sync()
}
