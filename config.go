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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configFileName = ".tsearch.yaml"

type TreeConfig struct {
	Comparator string `yaml:"comparator"`
	Language   string `yaml:"language"`
	NodeLimit  int    `yaml:"node_limit"`
}

type HistoryConfig struct {
	EnableFuzzing bool `yaml:"enable_fuzzing"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Color  bool   `yaml:"color"`
}

type CacheConfig struct {
	RenderTTL time.Duration `yaml:"render_ttl"`
}

type Config struct {
	Tree    TreeConfig    `yaml:"tree"`
	History HistoryConfig `yaml:"history"`
	Output  OutputConfig  `yaml:"output"`
	Cache   CacheConfig   `yaml:"cache"`
}

func defaultConfig() Config {
	return Config{
		Tree: TreeConfig{
			Comparator: "lexical",
			Language:   "en",
		},
		History: HistoryConfig{
			EnableFuzzing: true,
		},
		Output: OutputConfig{
			Format: FormatText,
			Color:  true,
		},
		Cache: CacheConfig{
			RenderTTL: 30 * time.Minute,
		},
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the config file at path, or at ~/.tsearch.yaml when path
// is empty. A missing or unreadable file yields the defaults; so does a
// malformed one, with the parse error returned alongside.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()

	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return &config, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &config, nil
	}

	// Fields absent from the file keep their defaults.
	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig()
		return &fallback, errors.Wrapf(err, "parse %s", path)
	}
	return &config, nil
}

func createDefaultConfigFile(path string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return errors.Wrap(err, "marshal default config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "write config file")
	}
	return nil
}

// displaySettings prints the configuration at path, creating the file with
// defaults first if it does not exist.
func displaySettings(w io.Writer, path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return errors.Wrap(err, "get config path")
		}
		path = p
	}

	created := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFile(path); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 tsearch Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", path)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", path)
	}

	fmt.Fprintf(w, "🌳 %sTree:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • comparator: %s\n", config.Tree.Comparator)
	fmt.Fprintf(w, "  • language: %s\n", config.Tree.Language)
	if config.Tree.NodeLimit > 0 {
		fmt.Fprintf(w, "  • node_limit: %d\n\n", config.Tree.NodeLimit)
	} else {
		fmt.Fprintf(w, "  • node_limit: unbounded\n\n")
	}

	fmt.Fprintf(w, "🔍 %sHistory Search:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • enable_fuzzing: %t\n\n", config.History.EnableFuzzing)

	fmt.Fprintf(w, "🖨  %sOutput:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • format: %s\n", config.Output.Format)
	fmt.Fprintf(w, "  • color: %t\n\n", config.Output.Color)

	fmt.Fprintf(w, "🗄  %sCache:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • render_ttl: %s\n", config.Cache.RenderTTL)
	return nil
}
