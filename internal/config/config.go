// Package config loads server configuration from defaults, an optional YAML
// file, a .env file and BILLSPLIT_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mmynk/billsplit/internal/paymentqr"
	"github.com/mmynk/billsplit/internal/storage"
)

// EnvPrefix prefixes every environment override, e.g. BILLSPLIT_SERVER_PORT.
const EnvPrefix = "BILLSPLIT"

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
	Upload  UploadConfig  `mapstructure:"upload"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port" validate:"min=1,max=65535"`
	StaticPath     string   `mapstructure:"static_path"`
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"min=1"`
}

// StorageConfig selects where bills are kept. An empty Path keeps them in
// memory only.
type StorageConfig struct {
	Path        string `mapstructure:"path"`
	BillKey     string `mapstructure:"bill_key" validate:"required"`
	DiscountKey string `mapstructure:"discount_key" validate:"required,nefield=BillKey"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

type UploadConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes" validate:"gt=0"`
}

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.static_path", "../frontend/static")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("storage.path", "./data/bills.db")
	v.SetDefault("storage.bill_key", storage.BillKey)
	v.SetDefault("storage.discount_key", storage.DiscountKey)
	v.SetDefault("log.level", "info")
	v.SetDefault("upload.max_bytes", paymentqr.DefaultMaxUploadBytes)
}

// Load reads the configuration. configFile may be empty.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Older deployments set these without the prefix.
	_ = v.BindEnv("storage.path", EnvPrefix+"_STORAGE_PATH", "DB_PATH")
	_ = v.BindEnv("server.static_path", EnvPrefix+"_SERVER_STATIC_PATH", "STATIC_PATH")
	_ = v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
