package project

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"cglogic/internal/dialect"
)

// Config is the decoded cglogic.toml. Missing keys keep Default values.
type Config struct {
	Check  CheckConfig  `toml:"check"`
	Output OutputConfig `toml:"output"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

type CheckConfig struct {
	Notation       string   `toml:"notation"` // cgif | cl | auto
	MaxDiagnostics int      `toml:"max_diagnostics"`
	Jobs           int      `toml:"jobs"` // 0 = GOMAXPROCS
	Validate       bool     `toml:"validate"`
	Cache          bool     `toml:"cache"`
	Exclude        []string `toml:"exclude"` // имена каталогов, пропускаемых при обходе
}

type OutputConfig struct {
	Format string `toml:"format"` // pretty | json | short
	Color  string `toml:"color"`  // auto | on | off
}

var (
	// ErrUnknownKey is wrapped when the file holds keys Config does not know.
	ErrUnknownKey = errors.New("unknown configuration key")
	// ErrInvalidValue is wrapped for out-of-range values.
	ErrInvalidValue = errors.New("invalid configuration value")
)

// Default returns the configuration used when no cglogic.toml exists.
func Default() Config {
	return Config{
		Check: CheckConfig{
			Notation:       "auto",
			MaxDiagnostics: 100,
			Validate:       true,
		},
		Output: OutputConfig{
			Format: "pretty",
			Color:  "auto",
		},
	}
}

// Load decodes path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds cglogic.toml above startDir and loads it; without a file it
// returns Default.
func Discover(startDir string) (Config, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) validate() error {
	if !strings.EqualFold(c.Check.Notation, "auto") {
		if _, ok := dialect.ParseNotation(c.Check.Notation); !ok {
			return fmt.Errorf("%w: check.notation %q (expected cgif|cl|auto)", ErrInvalidValue, c.Check.Notation)
		}
	}
	if c.Check.MaxDiagnostics < 0 {
		return fmt.Errorf("%w: check.max_diagnostics must be >= 0", ErrInvalidValue)
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("%w: check.jobs must be >= 0", ErrInvalidValue)
	}
	if !slices.Contains([]string{"pretty", "json", "short"}, c.Output.Format) {
		return fmt.Errorf("%w: output.format %q (expected pretty|json|short)", ErrInvalidValue, c.Output.Format)
	}
	if !slices.Contains([]string{"auto", "on", "off"}, c.Output.Color) {
		return fmt.Errorf("%w: output.color %q (expected auto|on|off)", ErrInvalidValue, c.Output.Color)
	}
	return nil
}

// Notation returns the configured notation; Unknown means "auto".
func (c Config) Notation() dialect.Notation {
	n, _ := dialect.ParseNotation(c.Check.Notation)
	return n
}

// Excluded reports whether a directory with this base name is skipped.
func (c Config) Excluded(name string) bool {
	return slices.Contains(c.Check.Exclude, name)
}
