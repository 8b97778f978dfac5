package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the service.
const EnvPrefix = "SHAREIT"

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN returns the keyword/value connection string used by GORM.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// DatabaseURL returns the URL form used by the migration runner.
func (c DatabaseConfig) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// ServiceConfig holds all configuration for the shareit service.
type ServiceConfig struct {
	Port           string
	AppEnv         string
	TimeZone       string
	MigrationsPath string
	CORSOrigins    []string
	DBConfig       DatabaseConfig
}

// IsDevelopment reports whether the service runs in development mode.
func (c *ServiceConfig) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Load reads configuration from a .env file, when present, and the environment.
func Load() (*ServiceConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", ":9090")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("TIME_ZONE", "Local")
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "shareit")
	v.SetDefault("DB_PASSWORD", "shareit")
	v.SetDefault("DB_NAME", "shareit")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	return v
}

// FromViper builds the service configuration from v.
func FromViper(v *viper.Viper) (*ServiceConfig, error) {
	port := v.GetString("SERVICE_PORT")
	if port != "" && !strings.Contains(port, ":") {
		port = ":" + port
	}

	cfg := &ServiceConfig{
		Port:           port,
		AppEnv:         strings.ToLower(v.GetString("APP_ENV")),
		TimeZone:       v.GetString("TIME_ZONE"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		CORSOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		DBConfig: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
	}

	if cfg.DBConfig.Port <= 0 {
		return nil, fmt.Errorf("invalid %s_DB_PORT: %q", EnvPrefix, v.GetString("DB_PORT"))
	}
	if cfg.DBConfig.MaxIdleConns > cfg.DBConfig.MaxOpenConns {
		cfg.DBConfig.MaxIdleConns = cfg.DBConfig.MaxOpenConns
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
