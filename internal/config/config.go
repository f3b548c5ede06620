package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Bambora  BamboraConfig  `koanf:"bambora"`
	Database DatabaseConfig `koanf:"database"`
	Logger   LoggerConfig   `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

type BamboraConfig struct {
	MerchantID     string        `koanf:"merchant_id" validate:"required"`
	PaymentsAPIKey string        `koanf:"payments_api_key" validate:"required"`
	BaseURL        string        `koanf:"base_url" validate:"omitempty,url"`
	Timeout        time.Duration `koanf:"timeout"`
}

// DatabaseConfig is only validated when the journal is enabled.
type DatabaseConfig struct {
	Enabled         bool          `koanf:"enabled"`
	Host            string        `koanf:"host" validate:"required_with=Enabled"`
	Port            int           `koanf:"port" validate:"required_with=Enabled"`
	User            string        `koanf:"user" validate:"required_with=Enabled"`
	Password        string        `koanf:"password" validate:"required_with=Enabled"`
	Name            string        `koanf:"name" validate:"required_with=Enabled"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required_with=Enabled"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required_with=Enabled"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required_with=Enabled"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required_with=Enabled"`
}

type LoggerConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Env   string `koanf:"-"`
}

// NewLogger builds a JSON logger, or a text logger in development.
func (c LoggerConfig) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.level()}

	var handler slog.Handler
	if c.Env == "development" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

func (c LoggerConfig) level() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	err := k.Load(env.Provider("GATEWAY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "GATEWAY_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	mainConfig.Logger.Env = mainConfig.Primary.Env
	if mainConfig.Server.RequestTimeout <= 0 {
		mainConfig.Server.RequestTimeout = mainConfig.Server.WriteTimeout
	}

	return mainConfig, nil
}
