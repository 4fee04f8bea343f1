package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ian-shakespeare/gmplus/pkg/array"
)

const (
	FORMAT_TEXT = "text"
	FORMAT_YAML = "yaml"
)

var (
	formats   = []string{FORMAT_TEXT, FORMAT_YAML}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// Config holds the settings of the command line driver. None of them change
// how source is tokenized or parsed.
type Config struct {
	Strict   bool   `toml:"strict" yaml:"strict"`
	Format   string `toml:"format" yaml:"format"`
	Indent   int    `toml:"indent" yaml:"indent"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
	LogFile  string `toml:"log_file" yaml:"log_file"`
}

func Default() Config {
	return Config{
		Strict:   false,
		Format:   FORMAT_TEXT,
		Indent:   2,
		LogLevel: "warn",
	}
}

// Load reads a TOML or YAML file, chosen by extension, over the defaults.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(content), &cfg)
		if err != nil {
			return Config{}, errors.Wrapf(err, "decoding %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, errors.Errorf("%s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, errors.Wrapf(err, "decoding %s", path)
		}
	default:
		return Config{}, errors.Errorf("%s: unsupported config format %q", path, ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, path)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if !array.Contains(formats, c.Format) {
		return errors.Errorf("format must be one of %s, got %q", strings.Join(formats, ", "), c.Format)
	}
	if !array.Contains(logLevels, c.LogLevel) {
		return errors.Errorf("log_level must be one of %s, got %q", strings.Join(logLevels, ", "), c.LogLevel)
	}
	if c.Indent < 0 {
		return errors.Errorf("indent must not be negative, got %d", c.Indent)
	}
	return nil
}
