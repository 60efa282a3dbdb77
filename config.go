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
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type CatalogConfig struct {
	Path         string `yaml:"path"`
	ShowProgress bool   `yaml:"show_progress"`
}

type IndexConfig struct {
	BloomFilterSize   uint `yaml:"bloom_filter_size"`
	BloomFilterHashes uint `yaml:"bloom_filter_hashes"`
}

type CacheConfig struct {
	Expiration time.Duration `yaml:"expiration"`
	Cleanup    time.Duration `yaml:"cleanup"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Index   IndexConfig   `yaml:"index"`
	Cache   CacheConfig   `yaml:"cache"`
	Log     LogConfig     `yaml:"log"`
}

var defaultConfig = Config{
	Catalog: CatalogConfig{
		ShowProgress: true,
	},
	Index: IndexConfig{
		BloomFilterSize:   1 << 16,
		BloomFilterHashes: 5,
	},
	Cache: CacheConfig{
		Expiration: titleCacheExpiration,
		Cleanup:    titleCacheCleanup,
	},
	Log: LogConfig{
		Level: "info",
	},
}

const configFileName = ".shelf.yaml"

// LoadConfig reads ~/.shelf.yaml. It always returns a usable config: a
// missing file means defaults, and a file that cannot be read or parsed
// yields the defaults together with the error.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return newDefaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return newDefaultConfig(), nil
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		return newDefaultConfig(), err
	}
	return config, nil
}

// LoadConfigFrom reads a config file. Keys missing from the file keep their
// default values.
func LoadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	config := newDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	config.Catalog.Path = expandHome(config.Catalog.Path)
	return config, nil
}

func newDefaultConfig() *Config {
	config := defaultConfig
	return &config
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func displaySettings(w io.Writer) {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Fprintf(w, "❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(w, "%s⚠️  %v. Showing default settings.%s\n\n", Warning, err, Reset)
	}

	fmt.Fprintf(w, "🔧 Shelf Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}
	fmt.Fprintf(w, "📊 Current settings:\n\n")

	catalogPath := config.Catalog.Path
	if catalogPath == "" {
		catalogPath = "(none, start with an empty shelf)"
	}
	fmt.Fprintf(w, "📚 %sCatalog:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %spath%s: %s\n", Green, Reset, catalogPath)
	fmt.Fprintf(w, "  • %sshow_progress%s: %t\n\n", Green, Reset, config.Catalog.ShowProgress)

	fmt.Fprintf(w, "🔍 %sIndex:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sbloom_filter_size%s: %d\n", Green, Reset, config.Index.BloomFilterSize)
	fmt.Fprintf(w, "  • %sbloom_filter_hashes%s: %d\n\n", Green, Reset, config.Index.BloomFilterHashes)

	fmt.Fprintf(w, "⏱  %sTitle search cache:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sexpiration%s: %s\n", Green, Reset, config.Cache.Expiration)
	fmt.Fprintf(w, "  • %scleanup%s: %s\n\n", Green, Reset, config.Cache.Cleanup)

	fmt.Fprintf(w, "📝 %sLog level:%s %s\n", Green, Reset, config.Log.Level)
}
