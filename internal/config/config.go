// Package config provides application configuration management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultDirName is the data directory created under the user's home.
	DefaultDirName = ".offdiary"

	// DBFilename is the bbolt database file inside the data directory.
	DBFilename = "diary.db"
)

// Config holds all application configuration.
type Config struct {
	// DataDir is the directory holding the diary database.
	DataDir string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// DBPath returns the full path of the diary database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, DBFilename)
}

// Load reads configuration from an optional config file and the
// environment. Priority: OFFDIARY_* env vars > config file > defaults.
func Load() (*Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetDefault("data_dir", filepath.Join(home, DefaultDirName))
	v.SetDefault("log.level", "info")

	v.AddConfigPath(filepath.Join(home, DefaultDirName))
	v.SetConfigType("yaml")
	v.SetConfigName("config")

	v.SetEnvPrefix("OFFDIARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The config file is optional.
	_ = v.ReadInConfig()

	cfg := &Config{
		DataDir:  v.GetString("data_dir"),
		LogLevel: v.GetString("log.level"),
	}

	if cfg.DataDir == "" {
		return nil, fmt.Errorf("data_dir must not be empty")
	}

	return cfg, nil
}
