// Package config loads the optional user configuration file.
//
// The file lives at <user config dir>/slurm-jupyter/config.json and
// supplies site defaults: the Slurm partition, the jupyter command,
// the environment module to load when jupyter is missing from PATH,
// the port scan width, and extra arguments for srun and jupyter.
// Comments and trailing commas are tolerated (the file is stripped
// with github.com/tidwall/jsonc before parsing with encoding/json),
// so sites can annotate their defaults.
//
// A missing file is not an error: built-in defaults apply. Flags
// always override config values.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/mmr-tortoise/slurm-jupyter/internal/port"
)

// Config holds the resolved configuration. Fields omitted from the
// file keep their built-in defaults.
type Config struct {
	// Partition is the Slurm partition jobs are submitted to when
	// -p/--partition is not given.
	Partition string `json:"partition,omitempty"`

	// JupyterCommand is the notebook server executable name resolved
	// on PATH.
	JupyterCommand string `json:"jupyterCommand,omitempty"`

	// Module is the environment module loaded when JupyterCommand is
	// not on PATH.
	Module string `json:"module,omitempty"`

	// ScanWidth is the number of consecutive ports probed from the
	// uid-derived base.
	ScanWidth int `json:"scanWidth,omitempty"`

	// SrunArgs are extra launcher arguments prepended to any forwarded
	// on the command line.
	SrunArgs []string `json:"srunArgs,omitempty"`

	// JupyterArgs are extra server arguments prepended to any given
	// via --jupyter-arg or after the "--" separator.
	JupyterArgs []string `json:"jupyterArgs,omitempty"`
}

// Default returns the built-in configuration: interactive partition,
// "jupyter" on PATH, anaconda3 module fallback, 100-port scan window.
func Default() *Config {
	return &Config{
		Partition:      "interactive",
		JupyterCommand: "jupyter",
		Module:         "anaconda3",
		ScanWidth:      port.DefaultScanWidth,
	}
}

// Path returns the location of the user configuration file, or an
// error when the user config directory cannot be determined.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, "slurm-jupyter", "config.json"), nil
}

// Load reads the user configuration file if it exists and merges it
// over the defaults. When the file (or the config directory itself)
// does not exist, the defaults are returned without error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		// No resolvable config dir (e.g. HOME unset inside the job).
		// Defaults are the right answer, not a fatal error.
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a configuration file from an explicit path, strips
// JSONC comments and trailing commas, and parses it over the defaults.
// A nonexistent file yields the defaults; a malformed file is an error.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// validate rejects values that would make later stages misbehave in
// confusing ways (a zero scan width would report port exhaustion
// without probing anything).
func (c *Config) validate() error {
	if c.ScanWidth < 1 {
		return fmt.Errorf("scanWidth must be at least 1, got %d", c.ScanWidth)
	}
	if c.JupyterCommand == "" {
		return fmt.Errorf("jupyterCommand must not be empty")
	}
	if c.Partition == "" {
		return fmt.Errorf("partition must not be empty")
	}
	return nil
}
