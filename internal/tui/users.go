// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cogctl/cogctl/internal/cognito"
)

// usersScreen lists pool users in a table with per-row selection. Excluded
// users are marked [E] and can never be selected or deleted.
type usersScreen struct {
	app      *App
	table    table.Model
	users    []cognito.User
	selected map[string]struct{}
	status   statusBar
}

func newUsersScreen(app *App) *usersScreen {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Sel", Width: 4},
			{Title: "Username", Width: 28},
			{Title: "Email", Width: 28},
			{Title: "Status", Width: 22},
			{Title: "Enabled", Width: 8},
			{Title: "Created", Width: 17},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	return &usersScreen{
		app:      app,
		table:    t,
		selected: make(map[string]struct{}),
	}
}

// reload fetches the user list and rebuilds the table. Any selection is
// discarded; the set must only ever refer to rows that are on screen.
func (s *usersScreen) reload() {
	users, err := s.app.client.ListUsers(s.app.ctx, "", 0)
	if err != nil {
		s.status.setError("Error loading users: " + cognito.Message(err))
		return
	}

	s.users = users
	s.selected = make(map[string]struct{})
	s.table.SetRows(s.buildRows())
	s.status.set(fmt.Sprintf("Loaded %d users", len(users)))
}

func (s *usersScreen) buildRows() []table.Row {
	rows := make([]table.Row, 0, len(s.users))
	for _, u := range s.users {
		marker := "[ ]"
		if s.app.excluded.Has(u.Username, u.Email) {
			marker = "[E]"
		} else if _, ok := s.selected[u.Username]; ok {
			marker = "[X]"
		}

		enabled := "No"
		if u.Enabled {
			enabled = "Yes"
		}

		created := ""
		if !u.Created.IsZero() {
			created = u.Created.Format("2006-01-02 15:04")
		}

		rows = append(rows, table.Row{marker, u.Username, u.Email, u.Status, enabled, created})
	}
	return rows
}

// current returns the user under the cursor, or nil when the table is empty.
func (s *usersScreen) current() *cognito.User {
	i := s.table.Cursor()
	if i < 0 || i >= len(s.users) {
		return nil
	}
	return &s.users[i]
}

func (s *usersScreen) update(msg tea.Msg) (screen, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return s, pop()

		case "r":
			s.reload()
			return s, nil

		case "enter", " ":
			s.toggleSelection()
			return s, nil

		case "v":
			if u := s.current(); u != nil {
				return s, push(newViewScreen(s.app, u.Username))
			}
			s.status.setError("No user selected")
			return s, nil

		case "e":
			if u := s.current(); u != nil {
				return s, push(newEditScreen(s.app, u.Username))
			}
			s.status.setError("No user selected")
			return s, nil

		case "d":
			s.deleteSelected()
			return s, nil

		case "D":
			s.deleteAll()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

func (s *usersScreen) toggleSelection() {
	u := s.current()
	if u == nil {
		return
	}
	if s.app.excluded.Has(u.Username, u.Email) {
		return
	}

	if _, ok := s.selected[u.Username]; ok {
		delete(s.selected, u.Username)
	} else {
		s.selected[u.Username] = struct{}{}
	}
	s.table.SetRows(s.buildRows())
}

// deleteSelected removes every selected user. The first error aborts the
// loop; users already deleted stay deleted.
func (s *usersScreen) deleteSelected() {
	if len(s.selected) == 0 {
		s.status.setError("No users selected (use Enter to select)")
		return
	}

	deleted := 0
	for username := range s.selected {
		if err := s.app.client.DeleteUser(s.app.ctx, username); err != nil {
			s.status.setError("Error deleting users: " + cognito.Message(err))
			s.reload()
			return
		}
		deleted++
	}

	s.status.set(fmt.Sprintf("Deleted %d users", deleted))
	s.reload()
}

// deleteAll removes every user except the excluded ones.
func (s *usersScreen) deleteAll() {
	deleted, skipped := 0, 0
	for _, u := range s.users {
		if s.app.excluded.Has(u.Username, u.Email) {
			skipped++
			continue
		}
		if err := s.app.client.DeleteUser(s.app.ctx, u.Username); err != nil {
			s.status.setError("Error deleting users: " + cognito.Message(err))
			s.reload()
			return
		}
		deleted++
	}

	s.status.set(fmt.Sprintf("Deleted: %d, Skipped: %d (excluded)", deleted, skipped))
	s.reload()
}

func (s *usersScreen) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("User Management"))
	b.WriteString("\n")
	b.WriteString(s.table.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter select · v view · e edit · d delete selected · D delete all · r refresh · esc back"))
	b.WriteString("\n")
	b.WriteString(s.status.render())

	return b.String()
}
