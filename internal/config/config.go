// Package config loads aggql command settings from flags, environment,
// .env files and an optional YAML config file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. AGGQL_DIALECT.
const EnvPrefix = "AGGQL"

// Defaults.
const (
	DefaultDialect  = "duckdb"
	DefaultLogLevel = "warn"
)

// Keys shared by flags, environment and config file.
const (
	KeyDialect   = "dialect"
	KeyLogLevel  = "log_level"
	KeyLogPretty = "log_pretty"
)

// Config holds the command configuration.
type Config struct {
	Dialect   string
	LogLevel  string
	LogPretty bool
	// File is the config file that was read, empty if none was found.
	File string
}

// Load resolves configuration into v. Values set in .env and .env.local are
// exported first without overriding the process environment. When file is
// empty, .aggql.yaml is searched in the working directory, the home directory
// and ~/.config/aggql; a missing file is not an error but an unreadable or
// malformed one is.
func Load(fs afero.Fs, v *viper.Viper, file string) (*Config, error) {
	if err := loadDotEnv(fs, ".env", false); err != nil {
		return nil, err
	}
	if err := loadDotEnv(fs, ".env.local", true); err != nil {
		return nil, err
	}

	v.SetFs(fs)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyDialect, DefaultDialect)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogPretty, false)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	} else {
		v.SetConfigName(".aggql")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
			v.AddConfigPath(filepath.Join(home, ".config", "aggql"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config %s: %w", v.ConfigFileUsed(), err)
			}
		}
	}

	return &Config{
		Dialect:   v.GetString(KeyDialect),
		LogLevel:  v.GetString(KeyLogLevel),
		LogPretty: v.GetBool(KeyLogPretty),
		File:      v.ConfigFileUsed(),
	}, nil
}

// loadDotEnv exports the variables of a dotenv file. Unless override is set,
// variables that already hold a value are kept.
func loadDotEnv(fs afero.Fs, name string, override bool) error {
	data, err := afero.ReadFile(fs, name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", name, err)
	}
	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	for key, value := range vars {
		if !override && os.Getenv(key) != "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("exporting %s from %s: %w", key, name, err)
		}
	}
	return nil
}
