package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Services  ServicesConfig  `yaml:"services"`
	Search    SearchConfig    `yaml:"search"`
	Deposit   DepositConfig   `yaml:"deposit"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// RedisConfig holds the connection used for the deposit poll cursor.
type RedisConfig struct {
	Addr      string `yaml:"addr"       env:"REDIS_ADDR"       env-default:"localhost:6379"`
	Password  string `yaml:"password"   env:"REDIS_PASSWORD"`
	DB        int    `yaml:"db"         env:"REDIS_DB"         env-default:"0"`
	CursorKey string `yaml:"cursor_key" env:"REDIS_CURSOR_KEY" env-default:"libra:deposit:cursor"`
}

// ServicesConfig locates the per-service YAML files and names the
// authentication scope checked for every API request.
type ServicesConfig struct {
	ConfigDir   string `yaml:"config_dir"   env:"SERVICES_CONFIG_DIR"   env-default:"./config/services"`
	AuthService string `yaml:"auth_service" env:"SERVICES_AUTH_SERVICE" env-default:"api"`
	AuthScope   string `yaml:"auth_scope"   env:"SERVICES_AUTH_SCOPE"   env-default:"access"`
}

// Path returns the config file of the named service.
func (s ServicesConfig) Path(name string) string {
	return filepath.Join(s.ConfigDir, name+".yml")
}

// SearchConfig holds paging settings for the search index.
type SearchConfig struct {
	PageSize     int `yaml:"page_size"     env:"SEARCH_PAGE_SIZE"     env-default:"100"`
	DefaultLimit int `yaml:"default_limit" env:"SEARCH_DEFAULT_LIMIT" env-default:"100"`
	MaxLimit     int `yaml:"max_limit"     env:"SEARCH_MAX_LIMIT"     env-default:"1000"`
}

// DepositConfig holds defaults for works created from deposit requests.
type DepositConfig struct {
	DefaultEmailDomain string `yaml:"default_email_domain" env:"DEPOSIT_DEFAULT_EMAIL_DOMAIN" env-default:"virginia.edu"`
	DefaultPassword    string `yaml:"default_password"     env:"DEPOSIT_DEFAULT_PASSWORD"     env-default:"password"`
}

// RateLimitConfig limits requests per client IP.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"   env-default:"600"`
	Burst             int `yaml:"burst"               env:"RATE_LIMIT_BURST" env-default:"50"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
