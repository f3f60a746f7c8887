package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	// Remote catalog API
	Catalog CatalogConfig

	// Derived catalog view
	View ViewConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string
	MaxSizeMB    int
	MaxBackups   int
	MaxAgeDays   int
}

type CatalogConfig struct {
	BaseURL         string
	AccessToken     string
	RateLimitPerMin int

	// Selected-image previews
	PreviewDir        string
	PreviewTTLMinutes int
}

type ViewConfig struct {
	ItemsPerPage int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = viper.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = viper.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = viper.GetInt("logger.max_age_days")

	cfg.Catalog.BaseURL = viper.GetString("catalog.base_url")
	cfg.Catalog.AccessToken = viper.GetString("catalog.access_token")
	cfg.Catalog.RateLimitPerMin = viper.GetInt("catalog.rate_limit_per_min")
	cfg.Catalog.PreviewDir = viper.GetString("catalog.preview_dir")
	cfg.Catalog.PreviewTTLMinutes = viper.GetInt("catalog.preview_ttl_minutes")
	if catalogURL := viper.GetString("catalog_base_url"); catalogURL != "" {
		cfg.Catalog.BaseURL = catalogURL
	}
	if catalogToken := viper.GetString("catalog_access_token"); catalogToken != "" {
		cfg.Catalog.AccessToken = catalogToken
	}

	cfg.View.ItemsPerPage = viper.GetInt("view.items_per_page")

	if cfg.Catalog.BaseURL == "" {
		return nil, fmt.Errorf("catalog.base_url is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("logger.max_size_mb", 50)
	viper.SetDefault("logger.max_backups", 5)
	viper.SetDefault("logger.max_age_days", 14)
	viper.SetDefault("catalog.rate_limit_per_min", 120)
	viper.SetDefault("catalog.preview_ttl_minutes", 30)
	viper.SetDefault("view.items_per_page", 10)
}
