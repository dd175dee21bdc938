package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Standards struct {
		// Endpoint for the industry-standards refresh call. Empty (the
		// default) disables the outbound request entirely; see the note
		// on standards.Provider about what this request carries before
		// pointing it anywhere.
		Endpoint       string `mapstructure:"endpoint"`
		ClientID       string `mapstructure:"client_id"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"standards"`

	History struct {
		DSN string `mapstructure:"dsn"` // sqlite path, ":memory:" allowed
	} `mapstructure:"history"`

	Server struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"server"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("standards.endpoint", "")
	viper.SetDefault("standards.client_id", "resumatic-cli")
	viper.SetDefault("standards.timeout_seconds", 5)
	viper.SetDefault("history.dsn", "resumatic.db")
	viper.SetDefault("server.addr", ":8080")

	viper.AutomaticEnv()
	// Explicit bindings so the refresh boundary can be pointed elsewhere
	// (or disabled) without a config file.
	viper.BindEnv("standards.endpoint", "RESUMATIC_STANDARDS_ENDPOINT")
	viper.BindEnv("standards.client_id", "RESUMATIC_CLIENT_ID")
	viper.BindEnv("history.dsn", "RESUMATIC_HISTORY_DSN")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
