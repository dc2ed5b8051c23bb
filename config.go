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
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configFileName = ".avltrace.yaml"

	// Animation step bounds in milliseconds
	defaultSpeedMs = 400
	minSpeedMs     = 50
	maxSpeedMs     = 2000
	speedStepMs    = 50

	defaultCellWidth = 4
	minCellWidth     = 2
	maxCellWidth     = 12
)

type AnimationConfig struct {
	SpeedMs int `yaml:"speed_ms"`
}

type DisplayConfig struct {
	Colors      bool `yaml:"colors"`
	SignedTrace bool `yaml:"signed_trace"`
	CellWidth   int  `yaml:"cell_width"`
}

type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Display   DisplayConfig   `yaml:"display"`
}

func defaultConfig() Config {
	return Config{
		Animation: AnimationConfig{SpeedMs: defaultSpeedMs},
		Display: DisplayConfig{
			Colors:    true,
			CellWidth: defaultCellWidth,
		},
	}
}

// normalize clamps out-of-range values back into usable ones
func (c *Config) normalize() {
	if c.Animation.SpeedMs == 0 {
		c.Animation.SpeedMs = defaultSpeedMs
	}
	c.Animation.SpeedMs = clamp(c.Animation.SpeedMs, minSpeedMs, maxSpeedMs)

	if c.Display.CellWidth == 0 {
		c.Display.CellWidth = defaultCellWidth
	}
	c.Display.CellWidth = clamp(c.Display.CellWidth, minCellWidth, maxCellWidth)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.avltrace.yaml. Any problem yields the defaults.
func LoadConfig() *Config {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig()
		return &cfg
	}
	cfg, err := LoadConfigFrom(configPath)
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return cfg
}

// LoadConfigFrom reads the config at path. A missing file is not an error.
// On error the returned config holds the defaults.
func LoadConfigFrom(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return &cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	loaded := defaultConfig()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return &cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	loaded.normalize()
	return &loaded, nil
}

func writeDefaultConfig(path string) error {
	cfg := defaultConfig()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func displaySettings() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		created = true
	}

	cfg, err := LoadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Printf("🔧 avltrace configuration\n")
	fmt.Printf("═════════════════════════\n\n")
	if created {
		fmt.Printf("📍 Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s\n\n", configPath)
	}

	fmt.Printf("🎞  %sAnimation:%s\n", Green, Reset)
	fmt.Printf("  • speed_ms: %d (allowed %d-%d)\n\n", cfg.Animation.SpeedMs, minSpeedMs, maxSpeedMs)

	fmt.Printf("🌳 %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • colors: %t\n", cfg.Display.Colors)
	fmt.Printf("  • signed_trace: %t\n", cfg.Display.SignedTrace)
	fmt.Printf("    print promotions as negated keys instead of marking them\n")
	fmt.Printf("  • cell_width: %d\n", cfg.Display.CellWidth)
	return nil
}
