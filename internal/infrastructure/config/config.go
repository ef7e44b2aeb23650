package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	sharedConfig "github.com/bdorababu707/goldvault-investment-module/internal/shared/config"
)

// Config is built once at startup and handed to components by value.
// Nothing in the process mutates it after Load returns.
type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Auth         sharedConfig.AuthConfig         `mapstructure:"auth"`
	Email        sharedConfig.EmailConfig        `mapstructure:"email"`
	Redis        sharedConfig.RedisConfig        `mapstructure:"redis"`
	Storage      sharedConfig.StorageConfig      `mapstructure:"storage"`
	Notification sharedConfig.NotificationConfig `mapstructure:"notification"`
	Investment   sharedConfig.InvestmentConfig   `mapstructure:"investment"`
	Reconcile    sharedConfig.ReconcileConfig    `mapstructure:"reconcile"`
	Timezone     string                          `mapstructure:"timezone"`
}

// Load loads configuration from configs/config.yaml and GOLDVAULT_* environment variables.
func Load(env string) (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	return load(v, env)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path, env string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	return load(v, env)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("GOLDVAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func load(v *viper.Viper, env string) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	if c.Auth.JWT.Secret == "" {
		return fmt.Errorf("auth.jwt.secret must be set")
	}
	if c.Investment.CycleDays <= 0 {
		return fmt.Errorf("investment.cycle_days must be positive, got %d", c.Investment.CycleDays)
	}
	if c.Storage.MaxConcurrentUploads <= 0 {
		return fmt.Errorf("storage.max_concurrent_uploads must be positive, got %d", c.Storage.MaxConcurrentUploads)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "goldvault_investments")
	v.SetDefault("database.max_idle_conns", 1)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	v.SetDefault("auth.password.memory", 64*1024)
	v.SetDefault("auth.password.iterations", 3)
	v.SetDefault("auth.password.parallelism", 2)
	v.SetDefault("auth.password.salt_length", 16)
	v.SetDefault("auth.password.key_length", 32)
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 60)
	v.SetDefault("auth.super_admin_secret_key", "")
	v.SetDefault("auth.login_rate_limit", 10)
	v.SetDefault("auth.login_rate_window_secs", 60)

	// Email defaults
	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.smtp_user", "")
	v.SetDefault("email.smtp_password", "")
	v.SetDefault("email.from_address", "noreply@goldvault.local")
	v.SetDefault("email.from_name", "GoldVault")

	// Redis defaults
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Storage defaults
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.base_dir", "app_documents")
	v.SetDefault("storage.allowed_extensions", ".pdf,.jpg,.jpeg,.png")
	v.SetDefault("storage.max_file_size_mb", 10)
	v.SetDefault("storage.max_concurrent_uploads", 5)

	// Notification defaults
	v.SetDefault("notification.queue_key", "goldvault:notifications")
	v.SetDefault("notification.inline_worker", true)
	v.SetDefault("notification.poll_timeout_secs", 5)

	// Investment defaults
	v.SetDefault("investment.cycle_days", 30)
	v.SetDefault("investment.default_currency", "AED")
	v.SetDefault("investment.lock_ttl_secs", 10)
	v.SetDefault("investment.lock_retries", 20)

	// Reconcile defaults
	v.SetDefault("reconcile.enabled", true)
	v.SetDefault("reconcile.schedule", "0 3 * * *")

	v.SetDefault("timezone", "Asia/Dubai")
}
