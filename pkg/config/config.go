package config

import (
	"fmt"
	"io/fs"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/jsonstore/pkg/errors"
	"github.com/arthur-debert/jsonstore/pkg/filesystem"
)

// Config is the effective jsonstore configuration.
type Config struct {
	Storage Storage `koanf:"storage" toml:"storage" yaml:"storage" json:"storage"`
	Logging Logging `koanf:"logging" toml:"logging" yaml:"logging" json:"logging"`
}

// Storage configures where and how records are kept.
type Storage struct {
	Root         string `koanf:"root" toml:"root" yaml:"root" json:"root"`
	AppendRoot   string `koanf:"append_root" toml:"append_root" yaml:"append_root" json:"append_root"`
	AppName      string `koanf:"app_name" toml:"app_name" yaml:"app_name" json:"app_name"`
	Backend      string `koanf:"backend" toml:"backend" yaml:"backend" json:"backend"`
	CreateRoot   bool   `koanf:"create_root" toml:"create_root" yaml:"create_root" json:"create_root"`
	AtomicWrites bool   `koanf:"atomic_writes" toml:"atomic_writes" yaml:"atomic_writes" json:"atomic_writes"`
	FileMode     Mode   `koanf:"file_mode" toml:"file_mode" yaml:"file_mode" json:"file_mode"`
	DirMode      Mode   `koanf:"dir_mode" toml:"dir_mode" yaml:"dir_mode" json:"dir_mode"`
	Indent       string `koanf:"indent" toml:"indent" yaml:"indent" json:"indent"`
	Concurrency  int    `koanf:"concurrency" toml:"concurrency" yaml:"concurrency" json:"concurrency"`
}

// Logging configures the logger.
type Logging struct {
	Verbosity int    `koanf:"verbosity" toml:"verbosity" yaml:"verbosity" json:"verbosity"`
	File      string `koanf:"file" toml:"file" yaml:"file" json:"file"`
}

// Mode is an octal permission string such as "0644".
type Mode string

// Parse returns the permission bits of m.
func (m Mode) Parse() (fs.FileMode, error) {
	s := strings.TrimPrefix(strings.TrimPrefix(string(m), "0o"), "0O")
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid octal mode %q: %w", string(m), err)
	}
	if v > 0o777 {
		return 0, fmt.Errorf("mode %q exceeds 0777", string(m))
	}
	return fs.FileMode(v), nil
}

// Validate checks values that cannot be enforced by the types alone.
func (c *Config) Validate() error {
	if c.Storage.Backend != "" && !slices.Contains(filesystem.Backends(), strings.ToLower(c.Storage.Backend)) {
		return errors.Newf(errors.ErrConfigValid, "unknown backend %q", c.Storage.Backend).
			WithDetail("field", "storage.backend").
			WithDetail("available", filesystem.Backends())
	}
	if c.Storage.Concurrency < 1 {
		return errors.Newf(errors.ErrConfigValid, "concurrency must be at least 1, got %d", c.Storage.Concurrency).
			WithDetail("field", "storage.concurrency")
	}
	if strings.Trim(c.Storage.Indent, " \t") != "" {
		return errors.Newf(errors.ErrConfigValid, "indent %q may only contain spaces and tabs", c.Storage.Indent).
			WithDetail("field", "storage.indent")
	}
	if strings.TrimSpace(c.Storage.AppName) == "" {
		return errors.New(errors.ErrConfigValid, "app_name must not be empty").
			WithDetail("field", "storage.app_name")
	}
	for field, mode := range map[string]Mode{
		"storage.file_mode": c.Storage.FileMode,
		"storage.dir_mode":  c.Storage.DirMode,
	} {
		if _, err := mode.Parse(); err != nil {
			return errors.Wrap(err, errors.ErrConfigValid, "invalid permission").WithDetail("field", field)
		}
	}
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "verbosity must not be negative, got %d", c.Logging.Verbosity).
			WithDetail("field", "logging.verbosity")
	}
	return nil
}

// ToTOML renders the configuration as TOML.
func (c *Config) ToTOML() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
