package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name      string `envconfig:"APP_NAME" default:"Contabil"`
		Port      int    `envconfig:"PORT" default:"8080"`
		User      string `envconfig:"APP_USER" default:"tui@localhost"`
		JWTSecret string `envconfig:"JWT_SECRET"`
		// CORSOrigins is a comma separated list.
		CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
	}

	DB struct {
		Host            string        `envconfig:"DB_HOST" default:"localhost"`
		Port            int           `envconfig:"DB_PORT" default:"5432"`
		User            string        `envconfig:"DB_USER" default:"postgres"`
		Password        string        `envconfig:"DB_PASSWORD" default:""`
		Name            string        `envconfig:"DB_NAME" default:"contabil"`
		MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
		Migrate         bool          `envconfig:"DB_MIGRATE" default:"false"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Log struct {
		Level      string `envconfig:"LOG_LEVEL" default:"info"`
		Format     string `envconfig:"LOG_FORMAT" default:"text"`
		File       string `envconfig:"LOG_FILE"`
		MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"10"`
		MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
		MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"30"`
	}

	Import struct {
		MaxUploadMB int `envconfig:"IMPORT_MAX_UPLOAD_MB" default:"20"`
		BatchSize   int `envconfig:"IMPORT_BATCH_SIZE" default:"500"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// MaxUploadBytes is the multipart memory limit for import uploads.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Import.MaxUploadMB) << 20
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Import.BatchSize <= 0 {
		return nil, fmt.Errorf("IMPORT_BATCH_SIZE must be positive, got %d", cfg.Import.BatchSize)
	}

	return &cfg, nil
}
