package joincmd

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds nurbsjoin command configuration.
type Config struct {
	Input   string `env:"NURBSJOIN_INPUT"    envDefault:"-"`
	Indent  string `env:"NURBSJOIN_INDENT"   envDefault:"  "`
	Samples int    `env:"NURBSJOIN_SAMPLES"  envDefault:"0"`
	NoColor bool   `env:"NURBSJOIN_NO_COLOR"`
	Verbose bool   `env:"NURBSJOIN_VERBOSE"`
}

// ParseConfig parses the environment and then flags into a Config. Flags
// take precedence.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Input, "input", cfg.Input, "path to the JSON segment description, - for stdin")
	fs.StringVar(&cfg.Indent, "indent", cfg.Indent, "indentation of the JSON output")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "number of points to evaluate along the joined curve")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored diagnostics")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log the joined result")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Samples < 0 {
		return Config{}, fmt.Errorf("samples must not be negative, got %d", cfg.Samples)
	}
	if cfg.Input == "" {
		return Config{}, fmt.Errorf("input path is required")
	}
	return cfg, nil
}
