package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/robfig/cron/v3"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Переменные окружения, перекрывающие секреты из файла
const (
	EnvDBPassword        = "DB_PASSWORD"
	EnvAdminAPIToken     = "ADMIN_API_TOKEN"
	EnvAdminPasswordHash = "ADMIN_PASSWORD_HASH"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Business BusinessConfig `toml:"business"`
	NoShow   NoShowConfig   `toml:"noshow"`
	Admin    AdminConfig    `toml:"admin"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BusinessConfig настройки барбершопа
type BusinessConfig struct {
	Timezone string `toml:"timezone"`

	location *time.Location
}

// Location возвращает часовой пояс барбершопа
func (c BusinessConfig) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// NoShowConfig настройки периодической проверки неявок
type NoShowConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"` // cron-выражение, например "*/5 * * * *"
}

// AdminConfig настройки доступа администратора
type AdminConfig struct {
	APIToken     string `toml:"api_token"`
	PasswordHash string `toml:"password_hash"` // bcrypt
	Email        string `toml:"email"`         // пишется в журнал удалений
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "barber",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "barber-service",
		},
		Business: BusinessConfig{
			Timezone: "America/Sao_Paulo",
		},
		NoShow: NoShowConfig{
			Enabled:  true,
			Schedule: "*/5 * * * *",
		},
		Admin: AdminConfig{
			Email: "admin@barbearia.local",
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvAdminAPIToken); v != "" {
		c.Admin.APIToken = v
	}
	if v := os.Getenv(EnvAdminPasswordHash); v != "" {
		c.Admin.PasswordHash = v
	}
}

// Validate проверяет конфигурацию и вычисляет производные значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}

	loc, err := time.LoadLocation(c.Business.Timezone)
	if err != nil {
		return fmt.Errorf("%w: business.timezone %q: %v", ErrInvalidConfig, c.Business.Timezone, err)
	}
	c.Business.location = loc

	if c.NoShow.Enabled {
		if _, err := cron.ParseStandard(c.NoShow.Schedule); err != nil {
			return fmt.Errorf("%w: noshow.schedule %q: %v", ErrInvalidConfig, c.NoShow.Schedule, err)
		}
	}

	if c.Admin.APIToken == "" {
		return fmt.Errorf("%w: admin.api_token is required (or %s)", ErrInvalidConfig, EnvAdminAPIToken)
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("%w: admin.password_hash is required (or %s)", ErrInvalidConfig, EnvAdminPasswordHash)
	}

	return nil
}
