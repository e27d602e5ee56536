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
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	input    textinput.Model
	output   viewport.Model
	treeView viewport.Model

	// Data
	session  *Session
	renderer *Renderer

	// State
	status    string
	statusErr bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates styles from the current color scheme
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.Muted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.Muted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// clipboardMsg reports the result of a ctrl+y copy
type clipboardMsg struct {
	lines int
	err   error
}

// InitialModel creates the shell over session
func InitialModel(session *Session, renderer *Renderer) Model {
	ti := textinput.New()
	ti.Placeholder = `insert "some key" other-key`
	ti.Prompt = "tsearch> "
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	output := viewport.New(0, 0)
	output.SetContent("Type help to list commands.")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		input:           ti,
		output:          output,
		treeView:        viewport.New(0, 0),
		session:         session,
		renderer:        renderer,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.refreshTree()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.execute()
		case "ctrl+y":
			text := m.plainTree()
			return m, func() tea.Msg {
				return clipboardMsg{lines: strings.Count(text, "\n"), err: clipboard.WriteAll(text)}
			}
		case "pgup":
			m.treeView.LineUp(m.treeView.Height)
			return m, nil
		case "pgdown":
			m.treeView.LineDown(m.treeView.Height)
			return m, nil
		case "ctrl+u":
			m.output.LineUp(m.output.Height)
			return m, nil
		case "ctrl+d":
			m.output.LineDown(m.output.Height)
			return m, nil
		}

	case clipboardMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("📋 copied %d lines to clipboard", msg.lines), false)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute runs the command line in the input box.
func (m Model) execute() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}

	out, err := m.session.Exec(line)
	if errors.Is(err, errQuit) {
		return m, tea.Quit
	}
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}

	if out == shellHelp {
		if rendered, err := m.glamourRenderer.Render(out); err == nil {
			out = rendered
		}
	}
	m.output.SetContent(out)
	m.output.GotoTop()
	m.setStatus(fmt.Sprintf("✔ %s", line), false)
	m.refreshTree()
	return m, nil
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// refreshTree renders the session's tree into the tree pane.
func (m *Model) refreshTree() {
	tree := m.session.Tree()
	if tree.Len() == 0 {
		m.treeView.SetContent("(empty tree)")
		return
	}
	rendered, err := m.renderer.Render(tree, FormatTree)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.treeView.SetContent(rendered)
}

// plainTree is the rendered tree without terminal colors.
func (m Model) plainTree() string {
	return renderOutline(m.session.Tree(), false)
}

// View renders the shell
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3
	bodyHeight := m.height - 6

	inputBox := m.styles.BorderFocused.
		Width(leftWidth).
		Padding(0, 1).
		Render(m.input.View())

	outputBox := m.styles.BorderBlurred.
		Width(leftWidth).
		Height(bodyHeight - 3).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(" 📜 Output "),
			m.output.View(),
		))

	treeTitle := fmt.Sprintf(" 🌳 Tree (%d keys, height %d) ", m.session.Tree().Len(), m.session.Tree().Height())
	treeBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Height(bodyHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(treeTitle),
			m.treeView.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, outputBox),
		treeBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderKeyHelp(),
	)
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	style := m.styles.SuccessMessage
	if m.statusErr {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(style.Render(m.status))
}

// renderKeyHelp renders the key binding footer
func (m Model) renderKeyHelp() string {
	keys := []string{"enter", "ctrl+y", "pgup/pgdown", "ctrl+u/ctrl+d", "esc"}
	descs := []string{"run command", "copy tree", "scroll tree", "scroll output", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3
	bodyHeight := m.height - 6

	m.input.Width = leftWidth - 4 - len(m.input.Prompt)
	m.output.Width = leftWidth - 2
	m.output.Height = max(bodyHeight-5, 1)
	m.treeView.Width = rightWidth - 2
	m.treeView.Height = max(bodyHeight, 1)
}

// runBubbleTeaApp starts the interactive shell
func runBubbleTeaApp(session *Session, renderer *Renderer) error {
	program := tea.NewProgram(
		InitialModel(session, renderer),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
