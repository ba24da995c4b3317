// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cogctl/cogctl/internal/bulk"
	"github.com/cogctl/cogctl/internal/cognito"
)

const (
	createFieldEmail = iota
	createFieldPassword
	createFieldPhone
	createFieldGroup
	createFieldCount
	createFieldBulkGroup
	createFieldMax
)

// createScreen creates a single user from the form fields or a batch of
// deterministic test users.
type createScreen struct {
	app    *App
	inputs []textinput.Model
	focus  int
	groups []string
	status statusBar
}

func newCreateScreen(app *App) *createScreen {
	inputs := make([]textinput.Model, createFieldMax)

	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 40
		inputs[i] = ti
	}

	inputs[createFieldEmail].Placeholder = "user@example.com"
	inputs[createFieldPassword].Placeholder = cognito.DefaultPassword
	inputs[createFieldPassword].EchoMode = textinput.EchoPassword
	inputs[createFieldPhone].Placeholder = cognito.DefaultPhone
	inputs[createFieldGroup].Placeholder = "group (optional)"
	inputs[createFieldCount].Placeholder = "10"
	inputs[createFieldBulkGroup].Placeholder = "group (optional)"

	inputs[createFieldEmail].Focus()

	s := &createScreen{app: app, inputs: inputs}
	s.loadGroups()
	return s
}

// loadGroups lists the pool groups once so the form can show what the group
// fields may reference.
func (s *createScreen) loadGroups() {
	groups, err := s.app.client.ListGroups(s.app.ctx)
	if err != nil {
		s.status.setError("Error loading groups: " + cognito.Message(err))
		return
	}
	for _, g := range groups {
		s.groups = append(s.groups, g.Name)
	}
}

func (s *createScreen) setFocus(i int) {
	s.inputs[s.focus].Blur()
	s.focus = (i + createFieldMax) % createFieldMax
	s.inputs[s.focus].Focus()
}

func (s *createScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return s, pop()
		case "tab", "down":
			s.setFocus(s.focus + 1)
			return s, nil
		case "shift+tab", "up":
			s.setFocus(s.focus - 1)
			return s, nil
		case "ctrl+s":
			s.createSingle()
			return s, nil
		case "ctrl+b":
			s.createBulk()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *createScreen) createSingle() {
	email := strings.TrimSpace(s.inputs[createFieldEmail].Value())
	password := strings.TrimSpace(s.inputs[createFieldPassword].Value())
	phone := strings.TrimSpace(s.inputs[createFieldPhone].Value())
	group := strings.TrimSpace(s.inputs[createFieldGroup].Value())

	if email == "" {
		s.status.setError("Error: Email is required")
		return
	}

	if err := s.app.client.CreateUser(s.app.ctx, email, phone, password); err != nil {
		if cognito.IsUserExists(err) {
			s.status.setError("Error: User already exists: " + email)
		} else {
			s.status.setError("Error: " + cognito.Message(err))
		}
		return
	}

	groupMsg := ""
	if group != "" {
		if err := s.app.client.AddToGroup(s.app.ctx, email, group); err != nil {
			groupMsg = " (group error: " + cognito.Message(err) + ")"
		} else {
			groupMsg = " and added to group '" + group + "'"
		}
	}

	s.status.set("Successfully created user: " + email + groupMsg)
	for _, f := range []int{createFieldEmail, createFieldPassword, createFieldPhone, createFieldGroup} {
		s.inputs[f].SetValue("")
	}
}

func (s *createScreen) createBulk() {
	countStr := strings.TrimSpace(s.inputs[createFieldCount].Value())
	group := strings.TrimSpace(s.inputs[createFieldBulkGroup].Value())

	if countStr == "" {
		s.status.setError("Error: Number of users is required")
		return
	}

	count, err := strconv.Atoi(countStr)
	if err != nil || count < 1 {
		s.status.setError("Error: Please enter a valid positive number")
		return
	}

	result := bulk.Create(s.app.ctx, s.app.client, count, cognito.DefaultPassword, group)

	msg := fmt.Sprintf("Created: %d, Failed/Skipped: %d", result.Created, result.Failed)
	if group != "" {
		msg += fmt.Sprintf(", Added to group: %d", result.Grouped)
	}
	s.status.set(msg)
	s.inputs[createFieldCount].SetValue("")
	s.inputs[createFieldBulkGroup].SetValue("")
}

func (s *createScreen) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Create User"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Email:"), s.inputs[createFieldEmail].View())
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Password:"), s.inputs[createFieldPassword].View())
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Phone:"), s.inputs[createFieldPhone].View())
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Group:"), s.inputs[createFieldGroup].View())

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Bulk Create Test Users"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Count:"), s.inputs[createFieldCount].View())
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Group:"), s.inputs[createFieldBulkGroup].View())

	if len(s.groups) > 0 {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("groups: " + strings.Join(s.groups, ", ")))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab next field · ctrl+s create · ctrl+b bulk create · esc back"))
	b.WriteString("\n")
	b.WriteString(s.status.render())

	return b.String()
}
