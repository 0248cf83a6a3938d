package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Допустимые бэкенды хранения прогресса checkout
const (
	ProgressBackendMemory   = "memory"
	ProgressBackendRedis    = "redis"
	ProgressBackendPostgres = "postgres"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config корневая конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Backend   BackendConfig   `toml:"backend"`
	Auth      AuthConfig      `toml:"auth"`
	Progress  ProgressConfig  `toml:"progress"`
	Redis     RedisConfig     `toml:"redis"`
	Database  DatabaseConfig  `toml:"database"`
	CORS      CORSConfig      `toml:"cors"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Checkout  CheckoutConfig  `toml:"checkout"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BackendConfig удалённый REST бэкенд отелей
type BackendConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// AuthConfig проверка токенов бэкенда.
// Пустой JWTSecret: сессии привязываются к хешу токена, claims не используются.
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

// ProgressConfig хранилище прогресса checkout (memory | redis | postgres)
type ProgressConfig struct {
	Backend  string `toml:"backend"`
	TTLHours int    `toml:"ttl_hours"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// RateLimitConfig лимит запросов к платёжным эндпоинтам на одного пользователя
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// CheckoutConfig параметры визарда
type CheckoutConfig struct {
	ConfirmationPrefix string `toml:"confirmation_prefix"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load загружает .env (если есть), затем TOML файл и переопределения из окружения
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:     LogsConfig{Level: "info"},
		Metrics:  MetricsConfig{Path: "/metrics", ServiceName: "smc_hotel_checkout"},
		Backend:  BackendConfig{URL: "http://localhost:3000", Timeout: 10},
		Progress: ProgressConfig{Backend: ProgressBackendMemory, TTLHours: 24},
		Database: DatabaseConfig{SSLMode: "disable", MaxOpenConns: 10, MaxIdleConns: 5, ConnMaxLifetime: 300},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1,
			Burst:             3,
		},
		Checkout: CheckoutConfig{ConfirmationPrefix: "HOTEL"},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BACKEND_URL"); v != "" {
		cfg.Backend.URL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Backend.URL == "" {
		return fmt.Errorf("%w: backend.url is required", ErrInvalidConfig)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("%w: backend.timeout must be positive", ErrInvalidConfig)
	}
	if c.Progress.TTLHours <= 0 {
		return fmt.Errorf("%w: progress.ttl_hours must be positive", ErrInvalidConfig)
	}

	switch c.Progress.Backend {
	case ProgressBackendMemory:
	case ProgressBackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis progress backend", ErrInvalidConfig)
		}
	case ProgressBackendPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres progress backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown progress backend %q", ErrInvalidConfig, c.Progress.Backend)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}
	return nil
}
