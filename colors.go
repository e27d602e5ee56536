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

	"github.com/cybrota/tsearch/tsearch"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ColorScheme holds the lipgloss colors of the shell UI.
type ColorScheme struct {
	Primary     lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Muted       lipgloss.Color
	Success     lipgloss.Color
	Error       lipgloss.Color
}

// ANSI escape codes for plain terminal output, set by InitializeColors.
var (
	Green   = "\033[92m"
	Info    = "\033[96m"
	Warning = "\033[93m"
	Error   = "\033[91m"
	Reset   = "\033[0m"

	detectedMode       TerminalMode
	currentColorScheme *ColorScheme
)

// detectTerminalMode guesses whether the terminal has a light or dark
// background from the environment, defaulting to dark.
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "7", "15", "255":
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	return TerminalModeDark
}

// InitializeColors detects the terminal mode and sets the ANSI codes and
// color scheme to match. With color disabled every ANSI code is empty.
func InitializeColors(color bool) {
	detectedMode = detectTerminalMode()

	if detectedMode == TerminalModeLight {
		currentColorScheme = &ColorScheme{
			Primary:     lipgloss.Color("25"),
			Border:      lipgloss.Color("250"),
			BorderFocus: lipgloss.Color("25"),
			Muted:       lipgloss.Color("244"),
			Success:     lipgloss.Color("28"),
			Error:       lipgloss.Color("160"),
		}
	} else {
		currentColorScheme = &ColorScheme{
			Primary:     lipgloss.Color("39"),
			Border:      lipgloss.Color("240"),
			BorderFocus: lipgloss.Color("62"),
			Muted:       lipgloss.Color("243"),
			Success:     lipgloss.Color("46"),
			Error:       lipgloss.Color("196"),
		}
	}

	if !color {
		Green, Info, Warning, Error, Reset = "", "", "", "", ""
		return
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors(true)
	}
	return currentColorScheme
}

// GetANSIColors returns escape codes suited to the detected terminal mode:
// darker colors on light backgrounds, brighter ones on dark backgrounds.
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}

// visitColor picks the ANSI code used to print a walk visit.
func visitColor(v tsearch.Visit) string {
	switch v {
	case tsearch.Leaf:
		return Green
	case tsearch.Preorder:
		return Info
	case tsearch.Postorder:
		return Warning
	}
	return ""
}
