package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/ufunc-dispatch/scenario"
)

type modelState int

const (
	stateSelectCall modelState = iota
	stateShowTrace
)

type interactiveModel struct {
	err      error
	scn      *scenario.Scenario
	filename string
	calls    []string
	selected int
	state    modelState
	trace    viewport.Model
	width    int
	height   int
}

func newInteractiveModel(filename string) *interactiveModel {
	return &interactiveModel{
		filename: filename,
		state:    stateSelectCall,
		trace:    viewport.New(80, 20),
	}
}

type loadedMsg struct {
	err   error
	scn   *scenario.Scenario
	calls []string
}

type traceMsg struct {
	err   error
	trace *scenario.Trace
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadScenario
}

func (m *interactiveModel) loadScenario() tea.Msg {
	s, err := scenario.Load(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{scn: s, calls: s.Calls()}
}

func (m *interactiveModel) runCall() tea.Msg {
	trace, err := m.scn.Run(m.calls[m.selected])
	if err != nil {
		return traceMsg{err: err}
	}
	return traceMsg{trace: trace}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.trace.Width = msg.Width
		m.trace.Height = msg.Height - 4

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectCall && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectCall && m.selected < len(m.calls)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateSelectCall && len(m.calls) > 0 {
				return m, m.runCall
			}

		case "esc":
			if m.state == stateShowTrace {
				m.state = stateSelectCall
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.scn = msg.scn
		m.calls = msg.calls

	case traceMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		width := m.width
		if width == 0 {
			width = 80
		}
		m.trace.SetContent(renderTrace(msg.trace, width))
		m.trace.GotoTop()
		m.state = stateShowTrace
	}

	if m.state == stateShowTrace {
		var cmd tea.Cmd
		m.trace, cmd = m.trace.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.scn == nil {
		return "Loading scenario..."
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("Dispatch Replay"))
	b.WriteString(" ")
	b.WriteString(m.scn.Name)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectCall:
		b.WriteString("Select a call to replay:\n\n")
		for i, name := range m.calls {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(callStyle.Render(cursor + name))
			} else {
				b.WriteString(cursor + name)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("↑/↓ select • enter replay • q quit"))

	case stateShowTrace:
		b.WriteString(m.trace.View())
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInteractiveModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
