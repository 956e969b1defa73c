package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TransferConfig tunes the delegated bulk-copy tool. The values are handed
// through verbatim; the tool owns any retry or parallelism behavior.
type TransferConfig struct {
	Retries     int `yaml:"retries"`
	WaitSeconds int `yaml:"wait_seconds"`
	Threads     int `yaml:"threads"`
}

type ReportConfig struct {
	Dir string `yaml:"dir"`
}

type Config struct {
	Transfer TransferConfig `yaml:"transfer"`
	Report   ReportConfig   `yaml:"report"`
}

func Default() *Config {
	return &Config{
		Transfer: TransferConfig{
			Retries:     2,
			WaitSeconds: 5,
			Threads:     8,
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}

	if cfg.Transfer.Retries < 0 {
		return nil, fmt.Errorf("transfer.retries must not be negative, got %d", cfg.Transfer.Retries)
	}
	if cfg.Transfer.WaitSeconds < 0 {
		return nil, fmt.Errorf("transfer.wait_seconds must not be negative, got %d", cfg.Transfer.WaitSeconds)
	}
	if cfg.Transfer.Threads < 1 || cfg.Transfer.Threads > 128 {
		return nil, fmt.Errorf("transfer.threads must be between 1 and 128, got %d", cfg.Transfer.Threads)
	}
	if cfg.Report.Dir != "" {
		if fi, err := os.Stat(cfg.Report.Dir); err != nil || !fi.IsDir() {
			return nil, fmt.Errorf("report.dir %q is not an existing directory", cfg.Report.Dir)
		}
	}

	return cfg, nil
}

// LoadConfigPrefer tries to load a config file using the following order:
//  1. the provided path if non-empty (an explicit path must exist),
//  2. ./migration.yaml (current working directory),
//  3. XDG user config dir: $XDG_CONFIG_HOME/robocopy-migration/migration.yaml
//     or the platform equivalent (via os.UserConfigDir()).
//
// The first existing file is loaded; when none is found the defaults apply.
func LoadConfigPrefer(preferred string) (*Config, error) {
	exists := func(p string) bool {
		if p == "" {
			return false
		}
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return true
		}
		return false
	}

	if preferred != "" {
		if !exists(preferred) {
			return nil, fmt.Errorf("config file %q not found", preferred)
		}
		return LoadConfig(preferred)
	}

	cur := "migration.yaml"
	if exists(cur) {
		return LoadConfig(cur)
	}

	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "robocopy-migration", "migration.yaml")
		if exists(p) {
			return LoadConfig(p)
		}
	}

	return Default(), nil
}
