package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/mcoot/linea/internal/services/game"
	"github.com/mcoot/linea/internal/services/rules"
)

// Config holds CLI configuration
type Config struct {
	Columns int    `env:"LINEA_COLUMNS" envDefault:"7"`
	Rows    int    `env:"LINEA_ROWS" envDefault:"6"`
	Variant string `env:"LINEA_VARIANT" envDefault:"C"`
	Lang    string `env:"LINEA_LANG" envDefault:"en"`
	Output  string `env:"LINEA_OUTPUT" envDefault:"text"`
	Verbose bool   `env:"LINEA_VERBOSE" envDefault:"false"`
}

// LoadConfig reads the configuration from the process environment
func LoadConfig() (*Config, error) {
	return loadConfig(env.Options{})
}

// loadConfigFrom reads the configuration from the given variables only
func loadConfigFrom(environ map[string]string) (*Config, error) {
	return loadConfig(env.Options{Environment: environ})
}

func loadConfig(opts env.Options) (*Config, error) {
	c := &Config{}
	if err := env.ParseWithOptions(c, opts); err != nil {
		// Keep usable defaults so flags can still be registered
		return defaultConfig(), fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

func defaultConfig() *Config {
	def := game.DefaultConfig()
	return &Config{
		Columns: def.Columns,
		Rows:    def.Rows,
		Variant: def.Variant.String(),
		Lang:    "en",
		Output:  "text",
	}
}

// GameConfig converts the CLI settings into game construction parameters
func (c *Config) GameConfig() (game.Config, error) {
	variant, err := rules.ParseVariant(c.Variant)
	if err != nil {
		return game.Config{}, err
	}
	return game.Config{
		Columns: c.Columns,
		Rows:    c.Rows,
		Variant: variant,
	}, nil
}

// Validate checks settings that do not belong to the game itself
func (c *Config) Validate() error {
	if c.Output != "text" && c.Output != "json" {
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	return nil
}
