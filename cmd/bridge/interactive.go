package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/wippyai/render-bridge/expr"
	"github.com/wippyai/render-bridge/serializer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

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

type interactiveModel struct {
	err      error
	msg      any
	report   *report
	s        *serializer.Serializer
	filename string
	format   string
	kinds    []serializer.Kind
	input    textinput.Model
	selected int
	state    modelState
}

type modelState int

const (
	stateSelectKind modelState = iota
	stateInputMode
	stateShowResult
)

func newInteractiveModel(filename, format string) *interactiveModel {
	return &interactiveModel{
		filename: filename,
		format:   format,
		kinds:    serializer.Kinds(),
		s:        serializer.New(expr.NewSourceParser()),
		state:    stateSelectKind,
	}
}

type loadedMsg struct {
	err error
	msg any
}

type checkResultMsg struct {
	err    error
	report *report
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadMessage
}

func (m *interactiveModel) loadMessage() tea.Msg {
	msg, err := loadMessage(m.filename, m.format)
	return loadedMsg{msg: msg, err: err}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputMode {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectKind && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectKind && m.selected < len(m.kinds)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectKind:
				if m.msg == nil {
					return m, nil
				}
				if m.kinds[m.selected] != serializer.KindASTWithSource {
					return m, m.runCheck
				}
				m.prepareInput()
				m.state = stateInputMode
				return m, nil

			case stateInputMode:
				return m, m.runCheck

			case stateShowResult:
				m.reset()
			}

		case "esc":
			switch m.state {
			case stateInputMode, stateShowResult:
				m.reset()
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.msg = msg.msg

	case checkResultMsg:
		m.report = msg.report
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) reset() {
	m.state = stateSelectKind
	m.report = nil
	m.err = nil
}

func (m *interactiveModel) prepareInput() {
	names := lo.Map(parseModes, func(mode serializer.Mode, _ int) string { return string(mode) })
	ti := textinput.New()
	ti.Placeholder = strings.Join(names, " | ")
	ti.Prompt = "mode: "
	ti.Width = 40
	ti.Focus()
	m.input = ti
}

func (m *interactiveModel) runCheck() tea.Msg {
	kind := m.kinds[m.selected]
	mode := serializer.ModeNone
	if kind == serializer.KindASTWithSource {
		mode = serializer.Mode(strings.TrimSpace(m.input.Value()))
	}
	r, err := check(m.s, m.msg, kind, mode)
	return checkResultMsg{report: r, err: err}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.msg == nil {
		return "Loading message..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Render Bridge"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectKind:
		b.WriteString("Decode the message as:\n\n")
		for i, k := range m.kinds {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + k.String()))
			} else {
				b.WriteString("  " + kindStyle.Render(k.String()))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter decode • q quit"))

	case stateInputMode:
		b.WriteString(fmt.Sprintf("Decoding %s\n\n", kindStyle.Render(m.kinds[m.selected].String())))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter decode • esc back"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("Result for %s", kindStyle.Render(m.kinds[m.selected].String())))
		if m.report != nil && m.report.Mode != serializer.ModeNone {
			b.WriteString(" in mode " + modeStyle.Render(string(m.report.Mode)))
		}
		b.WriteString(":\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(m.formatReport(m.report))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatReport(r *report) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Decoded: %s\n", typeStyle(r.Record)))
	if r.Identical() {
		b.WriteString(resultStyle.Render("Round trip: identical"))
	} else {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Round trip: %d difference(s)", len(r.Diff))))
		for _, d := range r.Diff {
			b.WriteString("\n  " + d)
		}
	}
	b.WriteString("\n\n")
	text, err := encodeJSON(r.Plain)
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
	} else {
		b.WriteString(text)
	}
	return b.String()
}

func typeStyle(v any) string {
	return modeStyle.Render(fmt.Sprintf("%T", v))
}

func runInteractive(filename, format string) error {
	p := tea.NewProgram(newInteractiveModel(filename, format), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
