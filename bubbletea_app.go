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
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/avltrace/avl"
)

// stepMsg advances the traversal animation. gen guards against ticks that
// were scheduled before a reset.
type stepMsg struct {
	gen int
}

// debugLogEnv names the file that receives log output while the UI owns the terminal.
const debugLogEnv = "AVLTRACE_DEBUG"

type copiedMsg struct {
	text string
	err  error
}

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput textinput.Model
	treeView  viewport.Model
	helpView  viewport.Model
	showHelp  bool

	// Data
	session  *Session
	renderer *TreeRenderer
	config   *Config

	// Animation state: pending commands are applied one at a time so every
	// traversal is drawn over the tree it produced.
	pending    []Command
	playing    *avl.TraceResult[int]
	step       int
	speed      time.Duration
	generation int

	traceLine string
	status    string
	errMsg    string

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// InitialModel creates the initial model
func InitialModel(session *Session, config *Config, styles *Styles) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 50 30 70 · delete 30"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	treeView := viewport.New(0, 0)
	helpView := viewport.New(0, 0)

	m := Model{
		textInput: ti,
		treeView:  treeView,
		helpView:  helpView,
		session:   session,
		renderer:  NewTreeRenderer(styles, config.Display.CellWidth, NewFrameCache()),
		config:    config,
		speed:     time.Duration(config.Animation.SpeedMs) * time.Millisecond,
		traceLine: "Type a command and press enter",
		styles:    styles,
	}
	m.refreshTree()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) tick() tea.Cmd {
	gen := m.generation
	return tea.Tick(m.speed, func(time.Time) tea.Msg {
		return stepMsg{gen: gen}
	})
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case stepMsg:
		if msg.gen != m.generation || m.playing == nil {
			return m, nil
		}
		return m.advance()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.status = "📋 Copied " + msg.text
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		m.refreshTree()
		return m, nil
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "f1":
		m.toggleHelp()
		return m, nil
	case "up":
		m.setSpeed(m.speed - speedStepMs*time.Millisecond)
		return m, nil
	case "down":
		m.setSpeed(m.speed + speedStepMs*time.Millisecond)
		return m, nil
	case "ctrl+r":
		m.session.Reset()
		m.pending = nil
		m.playing = nil
		m.generation++
		m.traceLine = "Tree cleared"
		m.errMsg = ""
		m.refreshTree()
		return m, nil
	case "ctrl+y":
		last, ok := m.session.Last()
		if !ok {
			m.errMsg = "nothing to copy yet"
			return m, nil
		}
		text := FormatTrace(last, m.config.Display.SignedTrace)
		return m, func() tea.Msg {
			return copiedMsg{text: text, err: clipboard.WriteAll(text)}
		}
	case "enter":
		return m.submit()
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	cmds, err := ParseLine(m.textInput.Value())
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.errMsg = ""
	m.textInput.Reset()
	if len(cmds) == 0 {
		return m, nil
	}

	m.pending = append(m.pending, cmds...)
	if m.playing != nil {
		return m, nil
	}
	return m.startNext()
}

// startNext applies the next pending command and begins replaying its trace.
func (m Model) startNext() (tea.Model, tea.Cmd) {
	if len(m.pending) == 0 {
		m.playing = nil
		m.refreshTree()
		return m, nil
	}

	next := m.pending[0]
	m.pending = m.pending[1:]
	trace := m.session.Apply(next)
	m.playing = &trace
	m.step = 0
	m.traceLine = "Starting Traversal..."
	m.refreshTree()
	return m, m.tick()
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	m.step++
	path := m.playing.Path()
	if m.step > len(path) {
		m.traceLine = "Traversal Complete: " + FormatTrace(*m.playing, m.config.Display.SignedTrace)
		m.playing = nil
		return m.startNext()
	}

	steps := make([]string, 0, m.step)
	for _, k := range path[:m.step] {
		steps = append(steps, strconv.Itoa(k))
	}
	m.traceLine = fmt.Sprintf("Traversal Step %d: %s", m.step, strings.Join(steps, " → "))
	m.refreshTree()
	return m, m.tick()
}

func (m *Model) setSpeed(d time.Duration) {
	ms := clamp(int(d/time.Millisecond), minSpeedMs, maxSpeedMs)
	m.speed = time.Duration(ms) * time.Millisecond
}

func (m *Model) toggleHelp() {
	m.showHelp = !m.showHelp
	if !m.showHelp {
		return
	}
	if m.glamourRenderer == nil {
		m.glamourRenderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(72),
		)
	}
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(keysMarkdown); err == nil {
			m.helpView.SetContent(rendered)
			return
		}
	}
	m.helpView.SetContent(keysMarkdown)
}

// refreshTree redraws the tree, highlighting the replayed trace if any
func (m *Model) refreshTree() {
	hl := Highlight{}
	if m.playing != nil {
		hl = highlightAt(*m.playing, m.step)
	}
	m.treeView.SetContent(m.renderer.Render(m.session.Tree().Root(), hl))
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	footerHeight := 4
	bodyHeight := max(m.height-inputHeight-footerHeight-4, 3)

	m.textInput.Width = max(m.width-8, 10)
	m.treeView.Width = max(m.width-4, 10)
	m.treeView.Height = bodyHeight
	m.helpView.Width = max(m.width-4, 10)
	m.helpView.Height = bodyHeight
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputBox := m.styles.BorderFocused.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("🌳 AVL command"),
			m.textInput.View(),
		))

	body := m.treeView.View()
	title := " Tree "
	if m.showHelp {
		body = m.helpView.View()
		title = " Help "
	}
	bodyBox := m.styles.BorderBlurred.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(title),
			body,
		))

	lines := []string{inputBox, bodyBox, m.styles.Trace.Render(m.traceLine)}
	if m.errMsg != "" {
		lines = append(lines, m.styles.ErrorMessage.Render("✗ "+m.errMsg))
	}
	lines = append(lines, m.renderStatus(), m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderStatus() string {
	tree := m.session.Tree()
	status := fmt.Sprintf("keys %d • height %d • speed %dms", tree.Len(), tree.Height(), m.speed/time.Millisecond)
	if len(m.pending) > 0 {
		status += fmt.Sprintf(" • queued %d", len(m.pending))
	}
	if m.status != "" {
		status += " • " + m.status
	}
	return m.styles.HelpDesc.Render(status)
}

// renderHelp renders the key footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "↑/↓", "ctrl+y", "ctrl+r", "f1", "esc"}
	descs := []string{"apply", "speed", "copy trace", "reset", "help", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(session *Session, config *Config) error {
	if path := os.Getenv(debugLogEnv); path != "" {
		f, err := tea.LogToFile(path, "avltrace")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	}

	InitializeColors(config.Display.Colors)
	styles := NewStyles(config.Display.Colors)

	program := tea.NewProgram(
		InitialModel(session, config, styles),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
