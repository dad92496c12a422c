package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	APIBaseURL     string `mapstructure:"API_BASE_URL"`
	AuthToken      string `mapstructure:"AUTH_TOKEN"`
	RequestTimeout int    `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
	HistoryPath    string `mapstructure:"HISTORY_PATH"`
	PreviewDir     string `mapstructure:"PREVIEW_DIR"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	LogFile        string `mapstructure:"LOG_FILE"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("AUTH_TOKEN", "")
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("HISTORY_PATH", filepath.Join(dataDir(), "history.db"))
	viper.SetDefault("PREVIEW_DIR", "")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("LOG_FILE", filepath.Join(dataDir(), "legalbot.log"))

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath(dataDir())

	viper.SetEnvPrefix("LEGALBOT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// dataDir is where the history database and log file live by default.
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".legalbot"
	}
	return filepath.Join(home, ".legalbot")
}
