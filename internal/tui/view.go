// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cogctl/cogctl/internal/cognito"
)

// viewScreen shows one user read-only: details, group membership, and the
// full attribute list with the sub identifier masked.
type viewScreen struct {
	app      *App
	username string
	user     *cognito.User
	groups   []string
	status   statusBar
}

func newViewScreen(app *App, username string) *viewScreen {
	s := &viewScreen{app: app, username: username}
	s.load()
	return s
}

func (s *viewScreen) load() {
	user, err := s.app.client.GetUser(s.app.ctx, s.username)
	if err != nil {
		s.status.setError("Error loading user: " + cognito.Message(err))
		return
	}
	s.user = user

	groups, err := s.app.client.UserGroups(s.app.ctx, s.username)
	if err != nil {
		s.status.setError("Error loading groups: " + cognito.Message(err))
		return
	}
	s.groups = groups

	s.status.set("Loaded user: " + s.username)
}

func (s *viewScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "esc", "q":
		return s, pop()
	case "e":
		return s, push(newEditScreen(s.app, s.username))
	case "r":
		s.load()
	}

	return s, nil
}

func (s *viewScreen) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("User Details"))
	b.WriteString("\n")

	if s.user != nil {
		enabled := "No"
		if s.user.Enabled {
			enabled = "Yes"
		}

		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Username:"), s.user.Username)
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Status:"), s.user.Status)
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Enabled:"), enabled)
		if !s.user.Created.IsZero() {
			fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Created:"), s.user.Created.Format("2006-01-02 15:04:05"))
		}
		if !s.user.Modified.IsZero() {
			fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Last Modified:"), s.user.Modified.Format("2006-01-02 15:04:05"))
		}

		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("Group Membership"))
		b.WriteString("\n")
		if len(s.groups) > 0 {
			b.WriteString("  " + strings.Join(s.groups, ", "))
		} else {
			b.WriteString("  (none)")
		}
		b.WriteString("\n\n")

		b.WriteString(subtitleStyle.Render("User Attributes"))
		b.WriteString("\n")
		if len(s.user.Attributes) == 0 {
			b.WriteString("  No attributes")
		}
		for _, attr := range s.user.Attributes {
			value := attr.Value
			if attr.Name == "sub" {
				value = maskSub(value)
			}
			fmt.Fprintf(&b, "  %s: %s\n", attr.Name, value)
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("e edit · r reload · esc back"))
	b.WriteString("\n")
	b.WriteString(s.status.render())

	return b.String()
}
