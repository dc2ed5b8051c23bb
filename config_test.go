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
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFromMissingFile(t *testing.T) {
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if *cfg != defaultConfig() {
		t.Errorf("got %+v; want defaults", *cfg)
	}
}

func TestLoadConfigFrom(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want Config
	}{
		{
			name: "values kept",
			body: "animation:\n  speed_ms: 250\ndisplay:\n  colors: false\n  signed_trace: true\n  cell_width: 6\n",
			want: Config{
				Animation: AnimationConfig{SpeedMs: 250},
				Display:   DisplayConfig{Colors: false, SignedTrace: true, CellWidth: 6},
			},
		},
		{
			name: "out of range values clamped",
			body: "animation:\n  speed_ms: 10\ndisplay:\n  cell_width: 99\n",
			want: Config{
				Animation: AnimationConfig{SpeedMs: minSpeedMs},
				Display:   DisplayConfig{Colors: true, CellWidth: maxCellWidth},
			},
		},
		{
			name: "partial file keeps defaults",
			body: "display:\n  signed_trace: true\n",
			want: Config{
				Animation: AnimationConfig{SpeedMs: defaultSpeedMs},
				Display:   DisplayConfig{Colors: true, SignedTrace: true, CellWidth: defaultCellWidth},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadConfigFrom(writeConfig(t, tc.body))
			if err != nil {
				t.Fatalf("LoadConfigFrom: %v", err)
			}
			if *cfg != tc.want {
				t.Errorf("got %+v; want %+v", *cfg, tc.want)
			}
		})
	}
}

func TestLoadConfigFromInvalidYAML(t *testing.T) {
	cfg, err := LoadConfigFrom(writeConfig(t, "animation: [\n"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if *cfg != defaultConfig() {
		t.Errorf("got %+v; want defaults on error", *cfg)
	}
}

func TestWriteDefaultConfigRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}
	cfg, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom: %v", err)
	}
	if *cfg != defaultConfig() {
		t.Errorf("got %+v; want defaults", *cfg)
	}
}
