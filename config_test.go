// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), *config)
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tree:
  comparator: natural
  node_limit: 128
cache:
  render_ttl: 5m
`), 0644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "natural", config.Tree.Comparator)
	require.Equal(t, 128, config.Tree.NodeLimit)
	require.Equal(t, 5*time.Minute, config.Cache.RenderTTL)

	// Untouched sections keep their defaults.
	require.Equal(t, "en", config.Tree.Language)
	require.True(t, config.History.EnableFuzzing)
	require.Equal(t, FormatText, config.Output.Format)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tree: [unterminated"), 0644))

	config, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), path)
	require.Equal(t, defaultConfig(), *config)
}

func TestDisplaySettingsCreatesFile(t *testing.T) {
	InitializeColors(false)
	t.Cleanup(func() { InitializeColors(true) })

	path := filepath.Join(t.TempDir(), ".tsearch.yaml")
	var out bytes.Buffer
	require.NoError(t, displaySettings(&out, path))
	require.Contains(t, out.String(), "(newly created)")
	require.Contains(t, out.String(), "comparator: lexical")
	require.Contains(t, out.String(), "node_limit: unbounded")
	require.FileExists(t, path)

	out.Reset()
	require.NoError(t, displaySettings(&out, path))
	require.NotContains(t, out.String(), "newly created")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), *config)
}
