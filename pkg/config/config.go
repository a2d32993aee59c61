package config

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/load"
	"github.com/arthur-debert/pricat/pkg/mapping"
	"github.com/pelletier/go-toml/v2"
)

// Config is the effective pricat configuration
type Config struct {
	CSV     CSV     `koanf:"csv" toml:"csv"`
	Mapping Mapping `koanf:"mapping" toml:"mapping"`
	Output  Output  `koanf:"output" toml:"output"`
	Log     Log     `koanf:"log" toml:"log"`

	// Sources lists the files that contributed, lowest precedence first
	Sources []string `koanf:"-" toml:"-"`
}

// CSV configures the table reader
type CSV struct {
	Delimiter string `koanf:"delimiter" toml:"delimiter"`
	Encoding  string `koanf:"encoding" toml:"encoding"`
}

// Mapping configures the rule compiler
type Mapping struct {
	StrictDuplicates bool            `koanf:"strict_duplicates" toml:"strict_duplicates"`
	Columns          mapping.Columns `koanf:"columns" toml:"columns"`
}

// Output configures the catalog document
type Output struct {
	Format string `koanf:"format" toml:"format"`
	Path   string `koanf:"path" toml:"path"`
	Indent int    `koanf:"indent" toml:"indent"`
}

// Log configures logging sinks
type Log struct {
	File bool `koanf:"file" toml:"file"`
}

// Validate checks the values no layer can be trusted to get right
func (c *Config) Validate() error {
	if n := utf8.RuneCountInString(c.CSV.Delimiter); n != 1 || c.CSV.Delimiter == "\n" || c.CSV.Delimiter == "\r" {
		return invalid("csv.delimiter", "must be a single character other than a line break, got %q", c.CSV.Delimiter)
	}
	if strings.TrimSpace(c.CSV.Encoding) == "" {
		return invalid("csv.encoding", "must not be empty")
	}

	seen := make(map[string]bool, 4)
	for _, name := range c.Mapping.Columns.Names() {
		if strings.TrimSpace(name) == "" {
			return invalid("mapping.columns", "column names must not be empty")
		}
		if seen[name] {
			return invalid("mapping.columns", "column %q is used twice", name)
		}
		seen[name] = true
	}

	if _, err := load.ParseFormat(c.Output.Format); err != nil {
		return invalid("output.format", "must be one of %s, got %q", strings.Join(load.FormatNames(), ", "), c.Output.Format)
	}
	if c.Output.Indent < 0 {
		return invalid("output.indent", "must not be negative")
	}
	return nil
}

func invalid(key, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrConfigValid, "Invalid configuration value for "+key+": "+format, args...).
		WithDetail("key", key)
}

// TOML renders the configuration as a TOML document
func (c *Config) TOML() ([]byte, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrEncode, "Failed to render configuration")
	}
	return out, nil
}
