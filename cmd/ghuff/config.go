// Copyright 2025 The huff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/huffio/huff/internal/xlog"
)

// Config holds the defaults a user can set in a config file. Command
// line flags override them.
type Config struct {
	Quiet bool `yaml:"quiet"`
	Force bool `yaml:"force"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads the configuration file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, userError(err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// configPath returns the path of the config file to use. A path given
// with the config flag or GHUFF_CONFIG is explicit and must exist; the
// per-user file below the OS config directory is optional.
func configPath(flagPath string) (path string, explicit bool) {
	if flagPath != "" {
		return flagPath, true
	}
	if env := os.Getenv("GHUFF_CONFIG"); env != "" {
		return env, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "ghuff", "config.yaml"), false
}

// options are the settings of a single run after flags and
// configuration are merged.
type options struct {
	quiet bool
	force bool
	log   xlog.Logger
}

// resolveOptions merges the configuration file into the flag values.
// Flags set on the command line win over the file, the file wins over
// the built-in defaults.
func resolveOptions(cmd *cobra.Command) (*options, error) {
	flagPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if path, explicit := configPath(flagPath); path != "" {
		c, err := LoadConfig(path)
		switch {
		case err == nil:
			cfg = c
		case explicit || !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}
	opts := &options{quiet: cfg.Quiet, force: cfg.Force}
	if cmd.Flags().Changed("quiet") {
		opts.quiet, _ = cmd.Flags().GetBool("quiet")
	}
	if cmd.Flags().Changed("force") {
		opts.force, _ = cmd.Flags().GetBool("force")
	}
	if !opts.quiet {
		opts.log = log.New(cmd.OutOrStdout(), "ghuff: ", 0)
	}
	return opts, nil
}
