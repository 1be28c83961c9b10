package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	Timezone       string   `mapstructure:"timezone"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// WriteRateLimit caps mutating requests per caller per minute. Zero disables it.
	WriteRateLimit int `mapstructure:"write_rate_limit"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// GetDSN builds the driver specific connection string.
func (d *DatabaseConfig) GetDSN() string {
	switch d.Driver {
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database)
	case "sqlite":
		return d.Path
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
			d.Username, d.Password, d.Host, d.Port, d.Database)
	}
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type EmailConfig struct {
	SMTPHost       string `mapstructure:"smtp_host"`
	SMTPPort       int    `mapstructure:"smtp_port"`
	SMTPUser       string `mapstructure:"smtp_user"`
	SMTPPassword   string `mapstructure:"smtp_password"`
	FromAddress    string `mapstructure:"from_address"`
	FromName       string `mapstructure:"from_name"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (e *EmailConfig) Timeout() time.Duration {
	if e.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(e.TimeoutSeconds) * time.Second
}

type RedisConfig struct {
	Host                   string `mapstructure:"host"`
	Port                   int    `mapstructure:"port"`
	Password               string `mapstructure:"password"`
	DB                     int    `mapstructure:"db"`
	ProductCacheTTLSeconds int    `mapstructure:"product_cache_ttl_seconds"`
}

func (r *RedisConfig) ProductCacheTTL() time.Duration {
	if r.ProductCacheTTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(r.ProductCacheTTLSeconds) * time.Second
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func (r *RedisConfig) Enabled() bool {
	return r.Host != ""
}

type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

type LocalStorageConfig struct {
	BaseDir string `mapstructure:"base_dir"`
}

type StorageConfig struct {
	Driver string             `mapstructure:"driver"`
	MinIO  MinIOConfig        `mapstructure:"minio"`
	Local  LocalStorageConfig `mapstructure:"local"`
}

type QualityConfig struct {
	DefaultAlertThreshold   string `mapstructure:"default_alert_threshold"`
	CertificateCodePrefix   string `mapstructure:"certificate_code_prefix"`
	NonConformityCodePrefix string `mapstructure:"nonconformity_code_prefix"`
	CodeRetryAttempts       int    `mapstructure:"code_retry_attempts"`
	NotificationTimeoutSecs int    `mapstructure:"notification_timeout_seconds"`
	CompanyName             string `mapstructure:"company_name"`
	Locale                  string `mapstructure:"locale"`
}

// DefaultThreshold parses the configured system-wide waste threshold.
func (q *QualityConfig) DefaultThreshold() (decimal.Decimal, error) {
	if q.DefaultAlertThreshold == "" {
		return decimal.NewFromInt(5), nil
	}
	d, err := decimal.NewFromString(q.DefaultAlertThreshold)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid quality.default_alert_threshold %q: %w", q.DefaultAlertThreshold, err)
	}
	return d, nil
}

func (q *QualityConfig) NotificationTimeout() time.Duration {
	if q.NotificationTimeoutSecs <= 0 {
		return time.Minute
	}
	return time.Duration(q.NotificationTimeoutSecs) * time.Second
}
