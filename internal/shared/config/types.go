package config

import (
	"fmt"
	"strings"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s ServerConfig) IsDebug() bool {
	return s.Mode == "debug"
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN builds a MySQL DSN. Times are parsed as UTC so calendar dates
// round-trip without a local offset.
func (d DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// PasswordConfig holds argon2id parameters.
type PasswordConfig struct {
	Memory      uint32 `mapstructure:"memory"`
	Iterations  uint32 `mapstructure:"iterations"`
	Parallelism uint8  `mapstructure:"parallelism"`
	SaltLength  uint32 `mapstructure:"salt_length"`
	KeyLength   uint32 `mapstructure:"key_length"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	Password            PasswordConfig `mapstructure:"password"`
	JWT                 JWTConfig      `mapstructure:"jwt"`
	SuperAdminSecretKey string         `mapstructure:"super_admin_secret_key"`
	LoginRateLimit      int            `mapstructure:"login_rate_limit"`
	LoginRateWindowSecs int            `mapstructure:"login_rate_window_secs"`
}

func (a AuthConfig) LoginRateWindow() time.Duration {
	return time.Duration(a.LoginRateWindowSecs) * time.Second
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// StorageConfig describes the S3 bucket used for KYC documents and media.
type StorageConfig struct {
	Region               string `mapstructure:"region"`
	Bucket               string `mapstructure:"bucket"`
	AccessKeyID          string `mapstructure:"access_key_id"`
	SecretAccessKey      string `mapstructure:"secret_access_key"`
	BaseDir              string `mapstructure:"base_dir"`
	AllowedExtensions    string `mapstructure:"allowed_extensions"`
	MaxFileSizeMB        int    `mapstructure:"max_file_size_mb"`
	MaxConcurrentUploads int    `mapstructure:"max_concurrent_uploads"`
}

// NormalizedExtensions splits the comma separated extension list into
// lowercase entries that always start with a dot.
func (s StorageConfig) NormalizedExtensions() []string {
	var out []string
	for _, ext := range strings.Split(s.AllowedExtensions, ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func (s StorageConfig) MaxFileSizeBytes() int64 {
	return int64(s.MaxFileSizeMB) * 1024 * 1024
}

type NotificationConfig struct {
	QueueKey     string `mapstructure:"queue_key"`
	InlineWorker bool   `mapstructure:"inline_worker"`
	PollTimeout  int    `mapstructure:"poll_timeout_secs"`
}

func (n NotificationConfig) PollTimeoutDuration() time.Duration {
	if n.PollTimeout <= 0 {
		return 5 * time.Second
	}
	return time.Duration(n.PollTimeout) * time.Second
}

// InvestmentConfig carries the tunables of the investment entry engine.
type InvestmentConfig struct {
	CycleDays       int    `mapstructure:"cycle_days"`
	DefaultCurrency string `mapstructure:"default_currency"`
	LockTTLSecs     int    `mapstructure:"lock_ttl_secs"`
	LockRetries     int    `mapstructure:"lock_retries"`
}

func (i InvestmentConfig) LockTTL() time.Duration {
	return time.Duration(i.LockTTLSecs) * time.Second
}

type ReconcileConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}
