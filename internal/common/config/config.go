package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type (
	// APIServerConfig is the top-level configuration for the apiserver binary.
	APIServerConfig struct {
		Port     int            `yaml:"port"`
		Database DatabaseConfig `yaml:"database"`
		Logger   LoggerConfig   `yaml:"logger"`
		Session  SessionConfig  `yaml:"session"`
		Upload   UploadConfig   `yaml:"upload"`
		Web      WebConfig      `yaml:"web"`
		Seed     SeedConfig     `yaml:"seed"`
		Listings ListingsConfig `yaml:"listings"`
	}

	DatabaseConfig struct {
		Type     string `yaml:"type"`     // mysql, postgres, sqlite
		Host     string `yaml:"host"`     // localhost
		Port     int    `yaml:"port"`     // 3306 (mysql), 5432 (postgres)
		User     string `yaml:"user"`     // root (mysql), postgres (postgres)
		Password string `yaml:"password"` // password
		DBName   string `yaml:"dbname"`   // database name, file path for sqlite
		SSLMode  string `yaml:"sslmode"`  // disable (postgres)
	}

	// LoggerConfig represents the logger configuration
	LoggerConfig struct {
		Level      string `yaml:"level"`       // debug, info, warn, error
		Format     string `yaml:"format"`      // json, console
		Output     string `yaml:"output"`      // stdout, file
		FilePath   string `yaml:"file_path"`   // path to log file when output is file
		MaxSize    int    `yaml:"max_size"`    // max size of log file in MB
		MaxBackups int    `yaml:"max_backups"` // max number of backup files
		MaxAge     int    `yaml:"max_age"`     // max age of backup files in days
		Compress   bool   `yaml:"compress"`    // whether to compress backup files
		Color      bool   `yaml:"color"`       // whether to use color in console output
		Stacktrace bool   `yaml:"stacktrace"`  // whether to include stacktrace in error logs
		TimeZone   string `yaml:"time_zone"`   // time zone for log timestamps
		TimeFormat string `yaml:"time_format"` // time format for log timestamps
	}

	// SessionConfig represents the session storage configuration.
	SessionConfig struct {
		Type  string             `yaml:"type"` // "memory" or "redis"
		TTL   time.Duration      `yaml:"ttl"`  // inactivity window, refreshed on write
		Redis SessionRedisConfig `yaml:"redis"`
	}

	SessionRedisConfig struct {
		Addr     string `yaml:"addr"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Prefix   string `yaml:"prefix"`
	}

	// UploadConfig locates the root directory for uploaded documents.
	UploadConfig struct {
		Dir string `yaml:"dir"`
	}

	// WebConfig locates the static frontend and asset directories.
	WebConfig struct {
		FrontendDir string `yaml:"frontend_dir"`
		AssetsDir   string `yaml:"assets_dir"`
	}

	// SeedConfig locates the JSON fixture files for the one-shot seed routes.
	SeedConfig struct {
		DataDir string `yaml:"data_dir"`
	}

	// ListingsConfig locates the per-category JSON files the listing
	// submission endpoint appends to.
	ListingsConfig struct {
		DataDir string `yaml:"data_dir"`
	}
)

// GetDSN returns the database connection string.
func (c *DatabaseConfig) GetDSN() string {
	switch c.Type {
	case "postgres":
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
			c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.User, c.Password, c.Host, c.Port, c.DBName)
	case "sqlite":
		return c.DBName // for sqlite, DBName is the file path
	default:
		return ""
	}
}

type Type interface {
	APIServerConfig
}

// LoadConfig loads configuration from a YAML file with environment variable
// placeholder support. A .env file in the working directory is honored before
// placeholders are resolved.
func LoadConfig[T Type](filename string) (*T, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return nil, err
	}

	data = resolveEnv(data)
	var cfg T
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if apiCfg, ok := any(&cfg).(*APIServerConfig); ok {
		apiCfg.setDefaults()
	}

	return &cfg, nil
}

func (c *APIServerConfig) setDefaults() {
	if c.Port == 0 {
		c.Port = 3000
	}
	if c.Session.Type == "" {
		c.Session.Type = "memory"
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = 5 * time.Minute
	}
	if c.Upload.Dir == "" {
		c.Upload.Dir = "uploads"
	}
	if c.Seed.DataDir == "" {
		c.Seed.DataDir = "data"
	}
	if c.Listings.DataDir == "" {
		c.Listings.DataDir = "data"
	}
}

// resolveEnv replaces ${VAR} and ${VAR:default} placeholders in YAML content.
func resolveEnv(content []byte) []byte {
	regex := regexp.MustCompile(`\$\{(\w+)(?::([^}]*))?\}`)

	return regex.ReplaceAllFunc(content, func(match []byte) []byte {
		matches := regex.FindSubmatch(match)
		envKey := string(matches[1])
		var defaultValue string

		if len(matches) > 2 {
			defaultValue = string(matches[2])
		}

		if value, exists := os.LookupEnv(envKey); exists {
			return []byte(value)
		}
		return []byte(defaultValue)
	})
}
