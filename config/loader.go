package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/LambdaTest/statusbridge/pkg/constants"
	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagKeys maps cli flags onto config keys.
var flagKeys = map[string]string{
	"env":            "Data.Env",
	"verbose":        "Data.Verbose",
	"port":           "Data.Port",
	"log-file":       "Data.LogFile",
	"log-backend":    "Data.LogBackend",
	"api-url":        "Data.GitHub.APIURL",
	"status-context": "Data.GitHub.StatusContext",
	"backend":        "Data.Credentials.Backend",
	"credentials":    "Data.Credentials.Path",
	"timeout":        "Data.RequestTimeout",
}

// Load loads config from command instance to predefined config variables
func Load(cmd *cobra.Command) (*Config, error) {
	for name, key := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := viper.BindPFlag(key, flag); err != nil {
				return nil, err
			}
		}
	}

	// default viper configs
	viper.SetEnvPrefix("SB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// set default configs
	setDefaultConfig()

	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".sb")
		viper.AddConfigPath("./")
		if home, err := homeConfigDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return populateConfig(new(ConfigWrapper))
}

func populateConfig(wrapper *ConfigWrapper) (*Config, error) {
	if err := viper.Unmarshal(wrapper, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	}); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg := &wrapper.Config
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.GitHub.APIURL == "" {
		return fmt.Errorf("%w: GitHub.APIURL", errs.ErrConfigNotFound)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: RequestTimeout must be positive, got %s", errs.ErrInvalidConfig, cfg.RequestTimeout)
	}
	if cfg.GracefulTimeout <= 0 {
		return fmt.Errorf("%w: GracefulTimeout must be positive, got %s", errs.ErrInvalidConfig, cfg.GracefulTimeout)
	}
	switch cfg.Credentials.Backend {
	case constants.BackendFile, constants.BackendVault, constants.BackendRedis:
	default:
		return fmt.Errorf("%w: %q", errs.ErrUnknownBackend, cfg.Credentials.Backend)
	}
	if _, err := lumber.InstanceFromName(cfg.LogBackend); err != nil {
		return fmt.Errorf("%w: LogBackend %q", err, cfg.LogBackend)
	}
	return nil
}

func homeConfigDir() (string, error) {
	dir := filepath.Dir(defaultCredentialsPath())
	if dir == "." {
		return "", fmt.Errorf("%w: home directory", errs.ErrConfigNotFound)
	}
	return dir, nil
}
