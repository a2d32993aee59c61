package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pricat/pkg/errors"
	"github.com/arthur-debert/pricat/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "PRICAT_"
	// FileName is the project configuration file looked up in the working
	// directory
	FileName = "pricat.toml"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions selects the files Load reads
type LoadOptions struct {
	// Path is an explicit configuration file. It must exist. When empty,
	// pricat.toml in WorkDir is used if present.
	Path string
	// WorkDir defaults to the current directory
	WorkDir string
	// SkipUser ignores the per-user configuration file
	SkipUser bool
	// SkipEnv ignores PRICAT_* environment variables
	SkipEnv bool
}

// Default returns the embedded defaults
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic(err)
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic(err)
	}
	return cfg
}

// DefaultContent returns the embedded defaults file, comments included
func DefaultContent() string {
	return string(defaultConfig)
}

// Load merges, in increasing precedence: embedded defaults, the user file,
// the project or explicit file, then environment variables.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "Failed to load default configuration")
	}

	// 2. User config
	if !opts.SkipUser {
		userPath := UserConfigPath()
		loaded, err := loadOptionalFile(k, userPath)
		if err != nil {
			return nil, err
		}
		if loaded {
			sources = append(sources, userPath)
		}
	}

	// 3. Explicit or project config
	if opts.Path != "" {
		if _, err := os.Stat(opts.Path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "Configuration file not found: %s", opts.Path).
				WithDetail("path", opts.Path)
		}
		if err := loadFile(k, opts.Path); err != nil {
			return nil, err
		}
		sources = append(sources, opts.Path)
	} else {
		workDir := opts.WorkDir
		if workDir == "" {
			workDir = "."
		}
		projectPath := filepath.Join(workDir, FileName)
		loaded, err := loadOptionalFile(k, projectPath)
		if err != nil {
			return nil, err
		}
		if loaded {
			sources = append(sources, projectPath)
		}
	}

	// 4. Environment
	if !opts.SkipEnv {
		envKeys := envKeyIndex(k.Keys())
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			return envKeys[s]
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "Failed to load environment variables")
		}
	}

	// 5. Unmarshal
	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().Strs("sources", sources).Msg("Configuration loaded")
	return cfg, nil
}

// UserConfigPath returns the per-user configuration file path. It respects
// XDG_CONFIG_HOME if set.
func UserConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, "pricat", "config.toml")
}

func loadOptionalFile(k *koanf.Koanf, path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false, nil
	}
	if err := loadFile(k, path); err != nil {
		return false, err
	}
	return true, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "Failed to load configuration from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKeyIndex maps PRICAT_SECTION_KEY names to the dotted keys they
// override. Only known keys can be set from the environment, which keeps
// underscores inside key names unambiguous.
func envKeyIndex(keys []string) map[string]string {
	index := make(map[string]string, len(keys))
	for _, key := range keys {
		name := EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		index[name] = key
	}
	return index
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "Failed to unmarshal configuration")
	}
	return &cfg, nil
}

// Merge loads a flat map of dotted keys over cfg. It is used to apply
// command-line flags as the last layer.
func Merge(cfg *Config, overrides map[string]interface{}) (*Config, error) {
	if len(overrides) == 0 {
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(toMap(cfg), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "Failed to load configuration")
	}
	if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "Failed to apply overrides")
	}

	merged, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	merged.Sources = cfg.Sources
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func toMap(cfg *Config) map[string]interface{} {
	return map[string]interface{}{
		"csv.delimiter":                    cfg.CSV.Delimiter,
		"csv.encoding":                     cfg.CSV.Encoding,
		"mapping.strict_duplicates":        cfg.Mapping.StrictDuplicates,
		"mapping.columns.source":           cfg.Mapping.Columns.Source,
		"mapping.columns.source_type":      cfg.Mapping.Columns.SourceType,
		"mapping.columns.destination":      cfg.Mapping.Columns.Destination,
		"mapping.columns.destination_type": cfg.Mapping.Columns.DestinationType,
		"output.format":                    cfg.Output.Format,
		"output.path":                      cfg.Output.Path,
		"output.indent":                    cfg.Output.Indent,
		"log.file":                         cfg.Log.File,
	}
}
