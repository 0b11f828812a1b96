package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"travelnews/internal/domain"
)

const (
	configPathEnv = "TRAVELNEWS_CONFIG"
	dbPathEnv     = "TRAVELNEWS_DB_PATH"
	exportPathEnv = "TRAVELNEWS_EXPORT_PATH"
	logFileEnv    = "TRAVELNEWS_LOG_FILE"
	logLevelEnv   = "TRAVELNEWS_LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Storage StorageConfig `yaml:"storage"`
	Sites   []SiteConfig  `yaml:"sites"`
}

// LoggingConfig controls log level and the persistent log file.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// StorageConfig names the durable store and the flat-file export paths.
type StorageConfig struct {
	DatabasePath string `yaml:"databasePath"`
	ExportPath   string `yaml:"exportPath"`
}

// SiteConfig describes a single site with its scanner strategy.
type SiteConfig struct {
	Name    string `yaml:"name"`
	Scanner string `yaml:"scanner"`
	URL     string `yaml:"url"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Sites) == 0 {
		cfg.Sites = defaultConfig().Sites
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(dbPathEnv); v != "" {
		c.Storage.DatabasePath = v
	}

	if v := os.Getenv(exportPathEnv); v != "" {
		c.Storage.ExportPath = v
	}

	if v := os.Getenv(logFileEnv); v != "" {
		c.Logging.File = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.File != "" {
		base.Logging.File = override.Logging.File
	}

	if override.Storage.DatabasePath != "" {
		base.Storage.DatabasePath = override.Storage.DatabasePath
	}
	if override.Storage.ExportPath != "" {
		base.Storage.ExportPath = override.Storage.ExportPath
	}

	if len(override.Sites) > 0 {
		base.Sites = override.Sites
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", File: "news_pipeline.log"},
		Storage: StorageConfig{DatabasePath: "news.db", ExportPath: "articles.csv"},
		Sites: []SiteConfig{
			{Name: domain.SourceSkift, Scanner: "skift", URL: "https://skift.com"},
			{Name: domain.SourcePhocusWire, Scanner: "phocuswire", URL: "https://www.phocuswire.com/Latest-News"},
		},
	}
}
