// Package config loads the check document: a declarative list of SQL
// compatibility checks plus the global owner exclusion list.
package config

import (
	"errors"
	"fmt"

	version "github.com/hashicorp/go-version"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the run and init commands look for the check
// document unless --config is given.
const DefaultPath = "config_oracle.yaml"

type Config struct {
	Validations      []*Check `yaml:"validations"`
	OwnerExcludeList []string `yaml:"owner_exclude_list"`
	// MinServerVersion is an optional floor for the server version gate.
	// The gate warns when the instance is older; it never fails the run.
	MinServerVersion string `yaml:"min_server_version"`

	minServerVersion *version.Version
}

type Check struct {
	Name           string `yaml:"name"`
	Query          string `yaml:"query"`
	Description    string `yaml:"description"`
	WarningMessage string `yaml:"warning_message"`
}

func (c *Check) Init() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Query == "" {
		return errors.New("query is required")
	}
	return nil
}

func (c *Config) Init() error {
	if len(c.Validations) == 0 {
		return errors.New("validations must not be empty")
	}
	names := make(map[string]struct{}, len(c.Validations))
	for _, check := range c.Validations {
		if err := check.Init(); err != nil {
			return fmt.Errorf("initialize the validation %q: %w", check.Name, err)
		}
		if _, ok := names[check.Name]; ok {
			return fmt.Errorf("the validation name %q is duplicated", check.Name)
		}
		names[check.Name] = struct{}{}
	}
	if c.MinServerVersion != "" {
		v, err := version.NewVersion(c.MinServerVersion)
		if err != nil {
			return fmt.Errorf("parse min_server_version: %w", err)
		}
		c.minServerVersion = v
	}
	return nil
}

// MinVersion returns the parsed min_server_version, or nil if the gate
// isn't configured. Init must have been called.
func (c *Config) MinVersion() *version.Version {
	return c.minServerVersion
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a check document: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode a check document as YAML: %w", err)
	}
	if err := cfg.Init(); err != nil {
		return fmt.Errorf("validate the check document: %w", err)
	}
	return nil
}
