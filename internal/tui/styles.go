// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f6be00")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00c8f0"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(16)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	statusErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
)

// statusBar holds the one-line message shown at the bottom of each screen.
type statusBar struct {
	message string
	isError bool
}

func (s *statusBar) set(message string) {
	s.message = message
	s.isError = false
}

func (s *statusBar) setError(message string) {
	s.message = message
	s.isError = true
}

func (s *statusBar) render() string {
	if s.message == "" {
		return ""
	}
	if s.isError {
		return statusErrStyle.Render(s.message)
	}
	return statusStyle.Render(s.message)
}

// maskSub shortens a subject identifier to its first 8 and last 4 characters.
func maskSub(sub string) string {
	if len(sub) <= 12 {
		return sub
	}
	return sub[:8] + "..." + sub[len(sub)-4:]
}

// maskKey hides all but the last 4 characters of a credential.
func maskKey(key string) string {
	if key == "" {
		return "Not set"
	}
	tail := key
	if len(key) > 4 {
		tail = key[len(key)-4:]
	}
	return strings.Repeat("*", 16) + tail
}
