package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/knowledge"
)

// Config drives the local chat command. Seed 0 means a random seed.
type Config struct {
	Seed    uint64         `mapstructure:"seed"`
	Prompt  string         `mapstructure:"prompt"`
	Profile domain.Profile `mapstructure:"profile"`
}

func loadConfig(cmd *cobra.Command, cfgFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("seed", 0)
	v.SetDefault("prompt", "> ")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("portfolio-chat")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if f := cmd.Root().PersistentFlags().Lookup("seed"); f != nil {
		if err := v.BindPFlag("seed", f); err != nil {
			return Config{}, fmt.Errorf("cli: bind seed flag: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return Config{}, fmt.Errorf("cli: read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("cli: decode config: %w", err)
	}
	if !v.IsSet("profile") {
		cfg.Profile = knowledge.DefaultProfile()
	}
	return cfg, nil
}
