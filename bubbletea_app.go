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
	"bytes"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/arbor/tree"
	"github.com/patrickmn/go-cache"
)

// focusArea is the pane receiving navigation keys
type focusArea int

const (
	focusInput focusArea = iota
	focusDiagram
	focusLog
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput textinput.Model
	diagram   viewport.Model
	opLog     list.Model

	// Data
	engines  map[tree.Kind]tree.Engine
	active   tree.Kind
	diagrams *cache.Cache
	renderer *Renderer
	config   *Config

	// State
	focus     focusArea
	showHelp  bool
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

// NewStyles creates the styles for the detected color scheme
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: StyleBorder(true),
		BorderBlurred: StyleBorder(false),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

// logItem is one applied operation in the log pane
type logItem struct {
	kind   tree.Kind
	op     string
	result string
}

func (i logItem) FilterValue() string { return i.op }
func (i logItem) Title() string       { return fmt.Sprintf("[%s] %s", i.kind, i.op) }
func (i logItem) Description() string { return i.result }

// clipboardMsg reports the outcome of a copy
type clipboardMsg struct {
	count int
	err   error
}

// InitialModel creates the initial model
func InitialModel(engines map[tree.Kind]tree.Engine, active tree.Kind, diagrams *cache.Cache, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "+5 +3 -5 ?3 ..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	opLog := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	opLog.SetShowTitle(false)
	opLog.SetShowHelp(false)
	opLog.SetFilteringEnabled(false)

	diagram := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	model := Model{
		textInput:       ti,
		diagram:         diagram,
		opLog:           opLog,
		engines:         engines,
		active:          active,
		diagrams:        diagrams,
		renderer:        NewRenderer(config.Render, true),
		config:          config,
		focus:           focusInput,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	model.refreshDiagram()

	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true

	case clipboardMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Copy failed: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("📋 Copied %d keys to clipboard", msg.count), false)
		}
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.active = otherKind(m.active)
		m.refreshDiagram()
		m.setStatus(fmt.Sprintf("Switched to %s", engineTitle(m.active)), false)
		return m, nil
	case "shift+tab":
		m.focus = (m.focus + 1) % 3
		if m.focus == focusInput {
			m.textInput.Focus()
		} else {
			m.textInput.Blur()
		}
		return m, nil
	case "f1":
		m.showHelp = !m.showHelp
		m.refreshDiagram()
		return m, nil
	case "ctrl+y":
		keys := tree.Collect(m.engines[m.active].InOrder())
		return m, func() tea.Msg {
			return clipboardMsg{count: len(keys), err: copyToClipboard(joinKeys(keys))}
		}
	case "ctrl+l":
		cmd = m.opLog.SetItems([]list.Item{})
		return m, cmd
	case "enter":
		if m.focus == focusInput {
			return m, m.applyInput()
		}
	case "pgup":
		m.diagram.LineUp(m.diagram.Height)
		return m, nil
	case "pgdown":
		m.diagram.LineDown(m.diagram.Height)
		return m, nil
	case "home":
		if m.focus == focusDiagram {
			m.diagram.GotoTop()
			return m, nil
		}
	case "end":
		if m.focus == focusDiagram {
			m.diagram.GotoBottom()
			return m, nil
		}
	}

	switch m.focus {
	case focusInput:
		m.textInput, cmd = m.textInput.Update(msg)
	case focusDiagram:
		m.diagram, cmd = m.diagram.Update(msg)
	case focusLog:
		m.opLog, cmd = m.opLog.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// applyInput runs the typed operations against the active engine and
// logs one entry per operation, newest first.
func (m *Model) applyInput() tea.Cmd {
	line := strings.TrimSpace(m.textInput.Value())
	if line == "" {
		return nil
	}

	ops, err := ParseLine(line)
	if err != nil {
		m.setStatus(err.Error(), true)
		return nil
	}

	engine := m.engines[m.active]
	var cmds []tea.Cmd
	m.setStatus(fmt.Sprintf("Applied %d operations", len(ops)), false)
	for _, op := range ops {
		var out bytes.Buffer
		session := NewSession(engine, m.renderer, m.config.Search.Trace, &out)

		result := ""
		if err := session.Apply(op); err != nil {
			result = err.Error()
			m.setStatus(fmt.Sprintf("%s: %v", op, err), true)
		} else if op.Kind == OpPrint {
			result = "diagram refreshed"
		} else {
			result = strings.ReplaceAll(strings.TrimSpace(out.String()), "\n", " · ")
		}

		cmds = append(cmds, m.opLog.InsertItem(0, logItem{kind: m.active, op: op.String(), result: result}))
	}

	m.textInput.SetValue("")
	m.showHelp = false
	m.refreshDiagram()
	return tea.Batch(cmds...)
}

func (m *Model) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

// refreshDiagram loads the diagram pane from the cache, or the key help
// when it is toggled on
func (m *Model) refreshDiagram() {
	if m.showHelp {
		if rendered, err := m.glamourRenderer.Render(keyHelpMarkdown); err == nil {
			m.diagram.SetContent(rendered)
		} else {
			m.diagram.SetContent(keyHelpMarkdown)
		}
		return
	}
	m.diagram.SetContent(GetOrRenderDiagram(m.diagrams, m.renderer, m.engines[m.active]))
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	bodyHeight := m.height - inputHeight - 7
	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	engine := m.engines[m.active]
	summary := fmt.Sprintf(" 🌳 %s · %d keys · height %d", engineTitle(m.active), engine.Len(), engine.Height())

	inputStyle, inputTitle := m.styles.BorderBlurred, " ✏️  Operations"
	if m.focus == focusInput {
		inputStyle, inputTitle = m.styles.BorderFocused, " ✏️  Operations (Active)"
	}
	m.textInput.Width = leftWidth - 4

	inputBox := inputStyle.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(inputTitle),
			m.textInput.View(),
		))

	diagramStyle, diagramTitle := m.styles.BorderBlurred, summary
	if m.focus == focusDiagram {
		diagramStyle, diagramTitle = m.styles.BorderFocused, summary+" (Active)"
	}
	if m.showHelp {
		diagramTitle = " 📖 Keys"
	}

	diagramBox := diagramStyle.
		Width(leftWidth).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(diagramTitle),
			m.diagram.View(),
		))

	logStyle, logTitle := m.styles.BorderBlurred, " 📋 Operation Log "
	if m.focus == focusLog {
		logStyle, logTitle = m.styles.BorderFocused, " 📋 Operation Log (Active) "
	}

	logBox := logStyle.
		Width(rightWidth).
		Height(bodyHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(logTitle),
			m.opLog.View(),
		))

	leftColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		diagramBox,
	)

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftColumn,
		logBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderHelp(),
	)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	bodyHeight := m.height - inputHeight - 7
	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.textInput.Width = leftWidth - 4
	m.diagram.Width = leftWidth - 2
	m.diagram.Height = bodyHeight - 1
	m.opLog.SetSize(rightWidth-2, bodyHeight+inputHeight)
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

// renderHelp renders the key footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "shift+tab", "f1", "ctrl+y", "esc"}
	descs := []string{"apply", "switch engine", "switch focus", "keys", "copy in-order", "quit"}

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

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(engines map[tree.Kind]tree.Engine, active tree.Kind, diagrams *cache.Cache, config *Config) error {
	model := InitialModel(engines, active, diagrams, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
