// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cogctl/cogctl/internal/cognito"
)

const (
	editFieldPassword = iota
	editFieldEmail
	editFieldPhone
	editFieldEmailVerified
	editFieldPhoneVerified
	editFieldGroup
	editFieldMax
)

// editScreen mutates a single user: password, standard attributes, group
// membership, account status and MFA.
type editScreen struct {
	app      *App
	username string

	inputs        []textinput.Model
	focus         int
	emailVerified bool
	phoneVerified bool
	enabled       bool
	memberOf      []string
	available     []string
	status        statusBar
}

func newEditScreen(app *App, username string) *editScreen {
	inputs := make([]textinput.Model, editFieldMax)

	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 40
		inputs[i] = ti
	}

	inputs[editFieldPassword].Placeholder = "new password"
	inputs[editFieldPassword].EchoMode = textinput.EchoPassword
	inputs[editFieldGroup].Placeholder = "group name"

	inputs[editFieldPassword].Focus()

	s := &editScreen{app: app, username: username, inputs: inputs}
	s.load()
	return s
}

func (s *editScreen) load() {
	u, err := s.app.client.GetUser(s.app.ctx, s.username)
	if err != nil {
		s.status.setError("Error loading user: " + cognito.Message(err))
		return
	}

	s.inputs[editFieldEmail].SetValue(u.Attr("email"))
	s.inputs[editFieldPhone].SetValue(u.Attr("phone_number"))
	s.emailVerified = u.Attr("email_verified") == "true"
	s.phoneVerified = u.Attr("phone_number_verified") == "true"
	s.enabled = u.Enabled

	if groups, err := s.app.client.UserGroups(s.app.ctx, s.username); err == nil {
		s.memberOf = groups
	}
	if groups, err := s.app.client.ListGroups(s.app.ctx); err == nil {
		s.available = s.available[:0]
		for _, g := range groups {
			s.available = append(s.available, g.Name)
		}
	}
}

func (s *editScreen) setFocus(i int) {
	s.inputs[s.focus].Blur()
	s.focus = (i + editFieldMax) % editFieldMax
	s.inputs[s.focus].Focus()
}

func (s *editScreen) isToggle(i int) bool {
	return i == editFieldEmailVerified || i == editFieldPhoneVerified
}

func (s *editScreen) update(msg tea.Msg) (screen, tea.Cmd) {
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
		case "ctrl+p":
			s.updatePassword()
			return s, nil
		case "ctrl+a":
			s.updateAttributes()
			return s, nil
		case "ctrl+g":
			s.addToGroup()
			return s, nil
		case "ctrl+x":
			s.removeFromGroup()
			return s, nil
		case "ctrl+e":
			s.toggleEnabled()
			return s, nil
		case "ctrl+r":
			s.resetMFA()
			return s, nil
		case " ", "enter":
			if s.isToggle(s.focus) {
				s.toggle(s.focus)
				return s, nil
			}
		}
	}

	if s.isToggle(s.focus) {
		return s, nil
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *editScreen) toggle(i int) {
	if i == editFieldEmailVerified {
		s.emailVerified = !s.emailVerified
	} else {
		s.phoneVerified = !s.phoneVerified
	}
}

func (s *editScreen) updatePassword() {
	password := s.inputs[editFieldPassword].Value()
	if password == "" {
		s.status.setError("Error: Password is required")
		return
	}
	if err := s.app.client.SetPassword(s.app.ctx, s.username, password); err != nil {
		s.status.setError("Error updating password: " + cognito.Message(err))
		return
	}
	s.status.set("Password updated for " + s.username)
	s.inputs[editFieldPassword].SetValue("")
}

func (s *editScreen) updateAttributes() {
	var attrs []cognito.Attribute

	if email := strings.TrimSpace(s.inputs[editFieldEmail].Value()); email != "" {
		attrs = append(attrs,
			cognito.Attribute{Name: "email", Value: email},
			cognito.Attribute{Name: "email_verified", Value: fmt.Sprint(s.emailVerified)},
		)
	}
	if phone := strings.TrimSpace(s.inputs[editFieldPhone].Value()); phone != "" {
		attrs = append(attrs,
			cognito.Attribute{Name: "phone_number", Value: phone},
			cognito.Attribute{Name: "phone_number_verified", Value: fmt.Sprint(s.phoneVerified)},
		)
	}
	if len(attrs) == 0 {
		s.status.setError("Error: Nothing to update")
		return
	}

	if err := s.app.client.UpdateAttributes(s.app.ctx, s.username, attrs); err != nil {
		s.status.setError("Error updating attributes: " + cognito.Message(err))
		return
	}
	s.status.set("Attributes updated for " + s.username)
}

func (s *editScreen) addToGroup() {
	group := strings.TrimSpace(s.inputs[editFieldGroup].Value())
	if group == "" {
		s.status.setError("Error: Group name is required")
		return
	}
	if err := s.app.client.AddToGroup(s.app.ctx, s.username, group); err != nil {
		s.status.setError("Error adding to group: " + cognito.Message(err))
		return
	}
	s.status.set("Added " + s.username + " to group '" + group + "'")
	s.load()
}

func (s *editScreen) removeFromGroup() {
	group := strings.TrimSpace(s.inputs[editFieldGroup].Value())
	if group == "" {
		s.status.setError("Error: Group name is required")
		return
	}
	if err := s.app.client.RemoveFromGroup(s.app.ctx, s.username, group); err != nil {
		s.status.setError("Error removing from group: " + cognito.Message(err))
		return
	}
	s.status.set("Removed " + s.username + " from group '" + group + "'")
	s.load()
}

func (s *editScreen) toggleEnabled() {
	if err := s.app.client.SetEnabled(s.app.ctx, s.username, !s.enabled); err != nil {
		s.status.setError("Error updating status: " + cognito.Message(err))
		return
	}
	s.enabled = !s.enabled
	if s.enabled {
		s.status.set("Account enabled: " + s.username)
	} else {
		s.status.set("Account disabled: " + s.username)
	}
}

func (s *editScreen) resetMFA() {
	if err := s.app.client.ResetMFA(s.app.ctx, s.username); err != nil {
		s.status.setError("Error resetting MFA: " + cognito.Message(err))
		return
	}
	s.status.set("MFA reset for " + s.username)
}

func checkbox(label string, checked, focused bool) string {
	mark := "[ ]"
	if checked {
		mark = "[x]"
	}
	line := mark + " " + label
	if focused {
		return selectedStyle.Render(line)
	}
	return line
}

func (s *editScreen) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Edit User: " + s.username))
	b.WriteString("\n")

	state := "Enabled"
	if !s.enabled {
		state = "Disabled"
	}
	fmt.Fprintf(&b, "%s %s\n\n", labelStyle.Render("Account:"), state)

	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Password:"), s.inputs[editFieldPassword].View())
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Email:"), s.inputs[editFieldEmail].View())
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Phone:"), s.inputs[editFieldPhone].View())
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(""), checkbox("email verified", s.emailVerified, s.focus == editFieldEmailVerified))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(""), checkbox("phone verified", s.phoneVerified, s.focus == editFieldPhoneVerified))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Group:"), s.inputs[editFieldGroup].View())

	b.WriteString("\n")
	member := "(none)"
	if len(s.memberOf) > 0 {
		member = strings.Join(s.memberOf, ", ")
	}
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Member of:"), member)
	if len(s.available) > 0 {
		b.WriteString(helpStyle.Render("groups: " + strings.Join(s.available, ", ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab next field · space toggle · ctrl+p password · ctrl+a attrs · ctrl+g/x group · ctrl+e enable · ctrl+r mfa · esc back"))
	b.WriteString("\n")
	b.WriteString(s.status.render())

	return b.String()
}
