// Package config loads the envconfig-tagged Config structs of this library
// from the process environment, optionally seeded from a .env file.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load populates spec from environment variables according to its
// `envconfig` struct tags. A .env file in the working directory is loaded
// first when present; variables already set in the environment win over the
// file. The prefix is applied to every tag name and may be empty.
//
// Example:
//
//	var cfg logger.Config
//	if err := config.Load("", &cfg); err != nil {
//	    return err
//	}
//	gate := logger.NewGate(cfg.Level)
func Load(prefix string, spec interface{}) error {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	if err := envconfig.Process(prefix, spec); err != nil {
		return fmt.Errorf("processing environment config: %w", err)
	}
	return nil
}

// MustLoad is Load, panicking on failure. Intended for program init paths
// where a broken environment should stop the process immediately.
func MustLoad(prefix string, spec interface{}) {
	if err := Load(prefix, spec); err != nil {
		panic(err)
	}
}
