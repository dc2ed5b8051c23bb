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
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI codes for plain CLI output, set by InitializeColors.
var (
	Green   = "\033[92m"
	Info    = "\033[96m"
	Warning = "\033[93m"
	Error   = "\033[91m"
	Reset   = "\033[0m"
)

var detectedMode TerminalMode

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background", low background numbers are dark
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(env)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	return TerminalModeDark
}

// InitializeColors detects the terminal mode and picks ANSI codes for it.
// With colors disabled every code is empty.
func InitializeColors(enabled bool) {
	detectedMode = detectTerminalMode()
	Green, Info, Warning, Error, Reset = GetANSIColors(detectedMode, enabled)
}

func GetANSIColors(mode TerminalMode, enabled bool) (success, info, warning, error, reset string) {
	if !enabled {
		return
	}
	// darker codes on light backgrounds for contrast
	if mode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}
	reset = "\033[0m"
	return
}

// nodeState is how a node is drawn while a trace is being replayed.
type nodeState int

const (
	stateNormal nodeState = iota
	stateVisited
	stateReplacement
	stateTarget
)

// Styles holds all the styling for the application
type Styles struct {
	Plain bool

	Normal      lipgloss.Style
	Visited     lipgloss.Style
	Replacement lipgloss.Style
	Target      lipgloss.Style
	Edge        lipgloss.Style

	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	Trace         lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	ErrorMessage  lipgloss.Style
}

// NewStyles creates the node palette: blue nodes,
// yellow path, purple replacement, green target.
func NewStyles(colors bool) *Styles {
	if !colors {
		plain := lipgloss.NewStyle()
		return &Styles{
			Plain:         true,
			Normal:        plain,
			Visited:       plain,
			Replacement:   plain,
			Target:        plain,
			Edge:          plain,
			BorderFocused: plain.BorderStyle(lipgloss.NormalBorder()),
			BorderBlurred: plain.BorderStyle(lipgloss.NormalBorder()),
			Title:         plain,
			Trace:         plain,
			HelpKey:       plain,
			HelpDesc:      plain,
			ErrorMessage:  plain,
		}
	}

	return &Styles{
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90caf9")),
		Visited: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#ffd54f")).
			Bold(true),
		Replacement: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#9c27b0")).
			Bold(true),
		Target: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#4caf50")).
			Bold(true),
		Edge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1976d2")),
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		Trace: lipgloss.NewStyle().
			Foreground(lipgloss.Color("221")),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

func (s *Styles) node(state nodeState) lipgloss.Style {
	switch state {
	case stateTarget:
		return s.Target
	case stateReplacement:
		return s.Replacement
	case stateVisited:
		return s.Visited
	default:
		return s.Normal
	}
}
