// Copyright 2025 The huff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("quiet: true\nforce: true\n"), 0600)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Quiet)
	assert.True(t, cfg.Force)
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("force: true\n"), 0600)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.Quiet)
	assert.True(t, cfg.Force)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "no-such.yaml"))
	require.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(":\n\t:::"), 0600)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config")
}

func TestConfigPath(t *testing.T) {
	path, explicit := configPath("/tmp/explicit.yaml")
	assert.Equal(t, "/tmp/explicit.yaml", path)
	assert.True(t, explicit)

	t.Setenv("GHUFF_CONFIG", "/tmp/env.yaml")
	path, explicit = configPath("")
	assert.Equal(t, "/tmp/env.yaml", path)
	assert.True(t, explicit)

	t.Setenv("GHUFF_CONFIG", "")
	path, explicit = configPath("")
	assert.False(t, explicit)
	if path != "" {
		assert.Equal(t, filepath.Join("ghuff", "config.yaml"),
			filepath.Join(filepath.Base(filepath.Dir(path)),
				filepath.Base(path)))
	}
}
