package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the application configuration for both the web server and the
// terminal client.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Dataset  DatasetConfig  `mapstructure:"dataset"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// DatasetConfig selects the dataset source: a profile name from the profile
// registry, with Profiles pointing at the registry file.
type DatasetConfig struct {
	Profiles string `mapstructure:"profiles"`
	Profile  string `mapstructure:"profile"`
}

// DefaultsConfig controls how wide the initial filter selection is.
// Zero means "all values" for that dimension.
type DefaultsConfig struct {
	Countries  int `mapstructure:"countries"`
	Industries int `mapstructure:"industries"`
}

// LoadConfig reads the application config file and applies defaults.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("dataset.profile", "default")
	v.SetDefault("defaults.countries", 5)
	v.SetDefault("defaults.industries", 3)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
