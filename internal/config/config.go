// Package config loads clerk's configuration from .clerk.yaml (or a file
// given with --config) via viper, with environment overrides. Everything
// has a default so a bare invocation works without any file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Capacities holds the per-kind ceilings of the in-memory collections.
// Zero disables the ceiling for that kind.
type Capacities struct {
	Rooms       int `mapstructure:"rooms"`
	Guests      int `mapstructure:"guests"`
	Bookings    int `mapstructure:"bookings"`
	Customers   int `mapstructure:"customers"`
	Accounts    int `mapstructure:"accounts"`
	Loans       int `mapstructure:"loans"`
	Students    int `mapstructure:"students"`
	Courses     int `mapstructure:"courses"`
	Enrollments int `mapstructure:"enrollments"`
	Teams       int `mapstructure:"teams"`
	Players     int `mapstructure:"players"`
	Matches     int `mapstructure:"matches"`
	Appearances int `mapstructure:"appearances"`
}

// Config is the resolved clerk configuration.
type Config struct {
	DataDir    string     `mapstructure:"data_dir"`
	LogLevel   string     `mapstructure:"log_level"`
	Capacities Capacities `mapstructure:"capacities"`
}

// DefaultCapacities mirrors the ranges the record layouts were sized for.
func DefaultCapacities() Capacities {
	return Capacities{
		Rooms:       500,
		Guests:      2000,
		Bookings:    5000,
		Customers:   2000,
		Accounts:    2000,
		Loans:       1000,
		Students:    2000,
		Courses:     500,
		Enrollments: 5000,
		Teams:       100,
		Players:     1000,
		Matches:     2000,
		Appearances: 5000,
	}
}

func setDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault("data_dir", dataDir)
	v.SetDefault("log_level", "info")

	caps := DefaultCapacities()
	v.SetDefault("capacities.rooms", caps.Rooms)
	v.SetDefault("capacities.guests", caps.Guests)
	v.SetDefault("capacities.bookings", caps.Bookings)
	v.SetDefault("capacities.customers", caps.Customers)
	v.SetDefault("capacities.accounts", caps.Accounts)
	v.SetDefault("capacities.loans", caps.Loans)
	v.SetDefault("capacities.students", caps.Students)
	v.SetDefault("capacities.courses", caps.Courses)
	v.SetDefault("capacities.enrollments", caps.Enrollments)
	v.SetDefault("capacities.teams", caps.Teams)
	v.SetDefault("capacities.players", caps.Players)
	v.SetDefault("capacities.matches", caps.Matches)
	v.SetDefault("capacities.appearances", caps.Appearances)
}

// Load resolves the configuration. When cfgFile is empty the lookup is
// .clerk.yaml in the home directory and a missing file falls back to the
// defaults; an explicitly named file must exist.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	setDefaults(v, filepath.Join(home, ".clerk"))

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(home)
		v.SetConfigName(".clerk")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("CLERK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if !notFound && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
