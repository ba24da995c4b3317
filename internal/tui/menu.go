// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// menuScreen is the entry screen: a small vertical menu.
type menuScreen struct {
	app    *App
	cursor int
	items  []string
}

func newMenuScreen(app *App) *menuScreen {
	return &menuScreen{
		app: app,
		items: []string{
			"Create Users",
			"Manage Users",
			"Settings",
			"Quit",
		},
	}
}

func (s *menuScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
	case "enter":
		switch s.cursor {
		case 0:
			return s, push(newCreateScreen(s.app))
		case 1:
			us := newUsersScreen(s.app)
			us.reload()
			return s, push(us)
		case 2:
			return s, push(newSettingsScreen(s.app))
		case 3:
			return s, tea.Quit
		}
	case "q", "esc":
		return s, tea.Quit
	}

	return s, nil
}

func (s *menuScreen) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Cognito User Manager"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("pool: " + s.app.client.PoolID()))
	b.WriteString("\n\n")

	for i, item := range s.items {
		if i == s.cursor {
			b.WriteString(selectedStyle.Render(" > " + item + " "))
		} else {
			b.WriteString("   " + item)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move · enter select · q quit"))

	return b.String()
}
