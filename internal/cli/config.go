package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds CLI-level settings. The compiler itself takes no
// configuration; these only steer where the CLI reads and writes.
type Config struct {
	OutputDir string `mapstructure:"output_dir"`
	Database  string `mapstructure:"database"`
	TaskQueue string `mapstructure:"task_queue"` // default when the record has none
}

// LoadConfig reads latchc.yaml from the working directory or
// ~/.config/latchc, with LATCHC_* environment overrides. A missing
// config file is fine; defaults apply.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("latchc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/latchc")

	v.SetEnvPrefix("LATCHC")
	v.AutomaticEnv()

	v.SetDefault("output_dir", "dist")
	v.SetDefault("database", "latchc.db")
	v.SetDefault("task_queue", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
