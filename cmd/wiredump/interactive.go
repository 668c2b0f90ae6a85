package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tetherline/devwire/protocol"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// rawWalk is the extra entry in the type list that dumps records without a
// schema.
const rawWalk = "(raw walk)"

type interactiveModel struct {
	err      error
	frame    []byte
	result   string
	types    []string
	input    textinput.Model
	selected int
	state    modelState
}

type modelState int

const (
	stateInputHex modelState = iota
	stateSelectType
	stateShowResult
)

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "08 ac 02 12 02 68 69"
	ti.Prompt = "hex: "
	ti.Width = 60
	ti.Focus()

	return &interactiveModel{
		input: ti,
		types: append([]string{rawWalk}, protocol.Names()...),
		state: stateInputHex,
	}
}

type decodedMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputHex {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectType && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectType && m.selected < len(m.types)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateInputHex:
				frame, err := decodeHex(m.input.Value())
				if err == nil && len(frame) == 0 {
					err = fmt.Errorf("empty frame")
				}
				if err != nil {
					m.err = err
					return m, nil
				}
				m.err = nil
				m.frame = frame
				m.state = stateSelectType

			case stateSelectType:
				return m, m.decodeFrame

			case stateShowResult:
				m.state = stateSelectType
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateSelectType:
				m.state = stateInputHex
				m.input.Focus()
			case stateShowResult:
				m.state = stateSelectType
				m.result = ""
				m.err = nil
			}
		}

	case decodedMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputHex {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) decodeFrame() tea.Msg {
	name := m.types[m.selected]

	if name == rawWalk {
		var b strings.Builder
		if err := dumpRaw(&b, m.frame, nil, false); err != nil {
			return decodedMsg{err: err}
		}
		return decodedMsg{result: b.String()}
	}

	msg, err := protocol.New(name)
	if err != nil {
		return decodedMsg{err: err}
	}
	if err := msg.Decode(m.frame); err != nil {
		return decodedMsg{err: err}
	}
	return decodedMsg{result: fmt.Sprintf("%+v", msg)}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wiredump"))
	b.WriteString("\n\n")

	switch m.state {
	case stateInputHex:
		b.WriteString("Paste a frame as hex:\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("enter continue • ctrl+c quit"))

	case stateSelectType:
		b.WriteString(fmt.Sprintf("Frame: %d bytes. Decode as:\n\n", len(m.frame)))
		for i, name := range m.types {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + name))
			} else {
				b.WriteString(cursor + name)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter decode • esc back • q quit"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("Decoded as %s:\n\n", m.types[m.selected]))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(strings.TrimRight(m.result, "\n")))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter another type • esc back • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
