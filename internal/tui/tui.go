// Copyright (c) 2026 The cogctl authors.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cogctl/cogctl/internal/cognito"
	"github.com/cogctl/cogctl/internal/exclude"
)

// Settings is the read-only configuration shown on the settings screen.
// Secrets are masked before they ever reach a View call.
type Settings struct {
	Region    string
	AccessKey string
	PoolID    string
	Excluded  []string
}

// App carries the dependencies shared by every screen. All SDK calls happen
// inline in Update; there is never more than one request outstanding.
type App struct {
	ctx      context.Context
	client   *cognito.Client
	excluded exclude.Set
	settings Settings
}

// screen is one entry in the navigation stack. update returns the replacement
// screen state plus an optional command; pushScreenMsg and popScreenMsg drive
// the stack.
type screen interface {
	update(msg tea.Msg) (screen, tea.Cmd)
	view() string
}

type pushScreenMsg struct{ s screen }

type popScreenMsg struct{}

func push(s screen) tea.Cmd {
	return func() tea.Msg { return pushScreenMsg{s: s} }
}

func pop() tea.Cmd {
	return func() tea.Msg { return popScreenMsg{} }
}

// Model is the root Bubble Tea model. It owns the screen stack and delegates
// everything else to the top screen.
type Model struct {
	app   *App
	stack []screen
}

// NewModel builds the root model with the menu screen on the stack.
func NewModel(ctx context.Context, client *cognito.Client, excluded exclude.Set, settings Settings) Model {
	app := &App{
		ctx:      ctx,
		client:   client,
		excluded: excluded,
		settings: settings,
	}
	return Model{
		app:   app,
		stack: []screen{newMenuScreen(app)},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case pushScreenMsg:
		m.stack = append(m.stack, msg.s)
		return m, nil
	case popScreenMsg:
		if len(m.stack) > 1 {
			m.stack = m.stack[:len(m.stack)-1]
		}
		// Returning to the users screen reloads the table so edits and
		// deletions show up without a manual refresh.
		if us, ok := m.stack[len(m.stack)-1].(*usersScreen); ok {
			us.reload()
		}
		return m, nil
	}

	top := len(m.stack) - 1
	next, cmd := m.stack[top].update(msg)
	m.stack[top] = next
	return m, cmd
}

func (m Model) View() string {
	return m.stack[len(m.stack)-1].view()
}

// Run launches the interactive console and blocks until it exits.
func Run(ctx context.Context, client *cognito.Client, excluded exclude.Set, settings Settings) error {
	p := tea.NewProgram(NewModel(ctx, client, excluded, settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
