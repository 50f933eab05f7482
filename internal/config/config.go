// Package config holds the environment configuration of the exercises CLI.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Config is read from EXERCISES_* variables; command-line flags take
// precedence.
type Config struct {
	Verbose     bool   `env:"EXERCISES_VERBOSE"`
	Locale      string `env:"EXERCISES_LOCALE" envDefault:"und"`
	PowersBase  int64  `env:"EXERCISES_POWERS_BASE" envDefault:"2"`
	PowersLimit int64  `env:"EXERCISES_POWERS_LIMIT" envDefault:"10"`
}

// Load reads Config from the environment and checks that Locale parses.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Language(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv fills any env-tagged struct, such as Config.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Language parses Locale as a BCP 47 tag.
func (c Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// Exitf reports a fatal CLI error as "exercises: <message>" on stderr and
// exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "exercises: "+format+"\n", args...)
	os.Exit(1)
}
