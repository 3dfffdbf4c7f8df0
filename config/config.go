// Package config loads mongotype settings from an optional YAML file and
// merges them with built-in defaults. Command-line flags always win over
// file values; the file only shifts the defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/mongotype/mterrors"
)

// DefaultFileName is the config file looked up in the user's home
// directory when no explicit path is given.
const DefaultFileName = ".mongotype.yaml"

// Config holds the file-configurable settings. Zero values mean "not set"
// and are filled from Default before use.
type Config struct {
	// Host is the MongoDB host to connect to.
	Host string `yaml:"host"`
	// Port is the MongoDB port.
	Port int `yaml:"port"`
	// Style names the output style: dotted, tree, json or jsonpacked.
	Style string `yaml:"style"`
	// Types selects type annotation parts: all, none, or a comma list of
	// name, desc and code.
	Types string `yaml:"types"`
	// Indent is the indentation unit for tree and json styles.
	Indent string `yaml:"indent"`
	// Limit caps the number of documents dumped per collection; zero
	// means no limit.
	Limit int64 `yaml:"limit"`
}

// Default returns the built-in settings used when no config file exists.
func Default() Config {
	return Config{
		Host:   "localhost",
		Port:   27017,
		Style:  "tree",
		Types:  "all",
		Indent: "  ",
	}
}

// DefaultPath returns the default config file path under the user's home
// directory, or an empty string when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFileName)
}

// Load reads the YAML config at path and overlays it on Default. A missing
// file is not an error: the defaults come back unchanged. A file that
// exists but does not parse is a ConfigError.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &mterrors.ConfigError{Option: "config", Value: path, Message: "reading config file", Cause: err}
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, &mterrors.ConfigError{Option: "config", Value: path, Message: "parsing config file", Cause: err}
	}

	cfg.merge(file)
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// URI returns the mongodb:// connection string for the configured host and
// port.
func (c Config) URI() string {
	return fmt.Sprintf("mongodb://%s:%d", c.Host, c.Port)
}

func (c *Config) merge(file Config) {
	if file.Host != "" {
		c.Host = file.Host
	}
	if file.Port != 0 {
		c.Port = file.Port
	}
	if file.Style != "" {
		c.Style = file.Style
	}
	if file.Types != "" {
		c.Types = file.Types
	}
	if file.Indent != "" {
		c.Indent = file.Indent
	}
	if file.Limit != 0 {
		c.Limit = file.Limit
	}
}

func (c Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return &mterrors.ConfigError{Option: "port", Value: c.Port, Message: "port out of range"}
	}
	if c.Limit < 0 {
		return &mterrors.ConfigError{Option: "limit", Value: c.Limit, Message: "limit must not be negative"}
	}
	return nil
}
