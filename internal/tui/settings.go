// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// settingsScreen shows the effective configuration. Values come from the
// environment at startup and are read-only here.
type settingsScreen struct {
	app *App
}

func newSettingsScreen(app *App) *settingsScreen {
	return &settingsScreen{app: app}
}

func (s *settingsScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			return s, pop()
		}
	}
	return s, nil
}

func (s *settingsScreen) view() string {
	var b strings.Builder
	cfg := s.app.settings

	b.WriteString(titleStyle.Render("Settings"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("AWS Region:"), cfg.Region)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Access Key:"), maskKey(cfg.AccessKey))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("User Pool ID:"), cfg.PoolID)

	excluded := "None"
	if len(cfg.Excluded) > 0 {
		excluded = strings.Join(cfg.Excluded, ", ")
	}
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Excluded:"), excluded)

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Edit the environment or cogctl.yaml and restart to change these values."))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("esc back"))

	return b.String()
}
