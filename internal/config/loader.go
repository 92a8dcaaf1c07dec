package config

import (
	"os"
	"path/filepath"

	"github.com/anjalxbt/mooncap/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".mooncap.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/mooncap"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'mooncap init' to create one, or specify a path with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	// Re-apply fallbacks for values that unmarshalled to zero
	cfg.Chain = NormalizeChain(cfg.Chain)
	if cfg.TargetMarketCap <= 0 {
		cfg.TargetMarketCap = DefaultTargetMarketCap
	}
	if cfg.IntervalSeconds == 0 {
		cfg.IntervalSeconds = DefaultIntervalSeconds
	}
	if cfg.AlarmDurationSeconds == 0 {
		cfg.AlarmDurationSeconds = DefaultAlarmDurationSeconds
	}

	return cfg, nil
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .mooncap.yaml in current directory
// 3. ~/.config/mooncap/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	// 2. Current directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// 3. Global config
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults if
// no config file exists. Commands like 'mooncap init' rely on this.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// setDefaults seeds viper with the documented defaults so a sparse config
// file still produces a complete Config.
func setDefaults(v *viper.Viper) {
	v.SetDefault("chain", DefaultChain)
	v.SetDefault("target", DefaultTargetMarketCap)
	v.SetDefault("interval", DefaultIntervalSeconds)
	v.SetDefault("alarm_duration", DefaultAlarmDurationSeconds)
}
