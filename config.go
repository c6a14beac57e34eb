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

	"gopkg.in/yaml.v3"
)

const configFileName = ".arbor.yaml"

type RenderConfig struct {
	CellWidth   int  `yaml:"cell_width"`
	MaxLevels   int  `yaml:"max_levels"`
	ShowBalance bool `yaml:"show_balance"`
}

type SearchConfig struct {
	Trace bool `yaml:"trace"`
}

type BenchConfig struct {
	Keys int   `yaml:"keys"`
	Seed int64 `yaml:"seed"`
}

type Config struct {
	Engine string       `yaml:"engine"`
	Render RenderConfig `yaml:"render"`
	Search SearchConfig `yaml:"search"`
	Bench  BenchConfig  `yaml:"bench"`
}

var defaultConfig = Config{
	Engine: "rb",
	Render: RenderConfig{
		CellWidth:   4,
		MaxLevels:   6,
		ShowBalance: false,
	},
	Search: SearchConfig{
		Trace: true,
	},
	Bench: BenchConfig{
		Keys: 100000,
		Seed: 1,
	},
}

// LoadConfig reads ~/.arbor.yaml
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig
		return &config, nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the config at configPath. A missing file yields the
// defaults; an unreadable or malformed one yields the defaults plus an error
// the caller may log.
func LoadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &config, nil
		}
		return &config, fmt.Errorf("failed to read config %s: %v", configPath, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig
		return &fallback, fmt.Errorf("failed to parse config %s: %v", configPath, err)
	}

	config.normalize()
	return &config, nil
}

// normalize replaces values the renderer and bench cannot work with
func (c *Config) normalize() {
	if c.Engine == "" {
		c.Engine = defaultConfig.Engine
	}
	if c.Render.CellWidth < 2 {
		c.Render.CellWidth = defaultConfig.Render.CellWidth
	}
	if c.Render.MaxLevels < 1 {
		c.Render.MaxLevels = defaultConfig.Render.MaxLevels
	}
	if c.Bench.Keys <= 0 {
		c.Bench.Keys = defaultConfig.Bench.Keys
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings(w io.Writer, configPath string) {
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

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Fprintf(w, "🔧 Arbor Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	fmt.Fprintf(w, "🌳 %sEngine:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sengine%s: %s\n", Green, Reset, config.Engine)
	fmt.Fprintf(w, "    avl keeps heights within 1 per node, rb keeps equal black heights\n\n")

	fmt.Fprintf(w, "🖼  %sRendering:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %scell_width%s: %d\n", Green, Reset, config.Render.CellWidth)
	fmt.Fprintf(w, "  • %smax_levels%s: %d\n", Green, Reset, config.Render.MaxLevels)
	fmt.Fprintf(w, "    Deeper trees are printed sideways\n")
	fmt.Fprintf(w, "  • %sshow_balance%s: %t\n\n", Green, Reset, config.Render.ShowBalance)

	fmt.Fprintf(w, "🔍 %sSearch:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %strace%s: %t\n\n", Green, Reset, config.Search.Trace)

	fmt.Fprintf(w, "⏱  %sBench:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %skeys%s: %d\n", Green, Reset, config.Bench.Keys)
	fmt.Fprintf(w, "  • %sseed%s: %d\n\n", Green, Reset, config.Bench.Seed)

	fmt.Fprintf(w, "💡 To switch the default engine, edit %s:\n", configPath)
	fmt.Fprintf(w, "   engine: avl\n")
}
