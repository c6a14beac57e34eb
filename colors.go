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

type ColorScheme struct {
	Primary     lipgloss.Color
	Accent      lipgloss.Color
	Success     lipgloss.Color
	Warning     lipgloss.Color
	Error       lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	RedNode     lipgloss.Color
	BlackNode   lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"
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
		if theme := os.Getenv(env); theme != "" {
			theme = strings.ToLower(theme)
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     lipgloss.Color("4"),
		Accent:      lipgloss.Color("5"),
		Success:     lipgloss.Color("2"),
		Warning:     lipgloss.Color("3"),
		Error:       lipgloss.Color("1"),
		Border:      lipgloss.Color("8"),
		BorderFocus: lipgloss.Color("4"),
		Text:        lipgloss.Color("0"),
		TextMuted:   lipgloss.Color("240"),
		RedNode:     lipgloss.Color("160"),
		BlackNode:   lipgloss.Color("0"),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     lipgloss.Color("39"),
		Accent:      lipgloss.Color("205"),
		Success:     lipgloss.Color("46"),
		Warning:     lipgloss.Color("11"),
		Error:       lipgloss.Color("196"),
		Border:      lipgloss.Color("240"),
		BorderFocus: lipgloss.Color("62"),
		Text:        lipgloss.Color("15"),
		TextMuted:   lipgloss.Color("245"),
		RedNode:     lipgloss.Color("9"),
		BlackNode:   lipgloss.Color("15"),
	}
}

// InitializeColors detects terminal mode and sets up the appropriate color scheme
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentColorScheme = createLightColorScheme()
	default:
		currentColorScheme = createDarkColorScheme()
	}
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
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

// StyleRedNode is the style applied to RED keys in diagrams
func StyleRedNode() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(GetColorScheme().RedNode).Bold(true)
}

func StyleBorder(focused bool) lipgloss.Style {
	scheme := GetColorScheme()
	style := lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder())
	if focused {
		return style.BorderForeground(scheme.BorderFocus).Bold(true)
	}
	return style.BorderForeground(scheme.Border)
}
