package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pytwig/internal/interp"
	"pytwig/internal/object"
)

// A textinput.Model-driven bubbletea prompt with lipgloss-styled history;
// each submitted line evaluates against a persistent global closure
// (interp.Eval) rather than re-compiling a whole script per turn.

var (
	accentColor  = lipgloss.Color("#3B82F6")
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")

	promptStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	headerStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
)

type historyEntry struct {
	input string
}

type keyMap struct {
	Up, Down, Enter, CtrlC, CtrlD, CtrlL key.Binding
}

var keys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous command")),
	Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next command")),
	Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "execute")),
	CtrlC: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	CtrlD: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "quit")),
	CtrlL: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
}

type replModel struct {
	textInput  textinput.Model
	global     *object.Closure
	history    []historyEntry
	cmdHistory []string
	historyIdx int
	width      int
	quitting   bool
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "print 1 + 1"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "pytwig> "

	return replModel{
		textInput:  ti,
		global:     object.NewClosure(),
		historyIdx: -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.textInput.Width = msg.Width - 12
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = nil
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Enter):
			line := strings.TrimSpace(m.textInput.Value())
			if line == "" {
				return m, nil
			}
			out, _ := m.evaluate(line)
			m.history = append(m.history, historyEntry{input: out})
			m.cmdHistory = append(m.cmdHistory, line)
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// evaluate runs one REPL line against the persistent global closure. Each
// line is wrapped with a trailing newline so the lexer sees a
// well-terminated logical line even without an indented block.
func (m *replModel) evaluate(line string) (string, bool) {
	ctx := interp.NewBufferContext()
	result := interp.Eval(line+"\n", m.global, ctx, interp.Options{})
	if !result.Ok() {
		var b strings.Builder
		interp.FormatError(&b, result)
		return line + "\n  " + errorStyle.Render(strings.TrimRight(b.String(), "\n")), true
	}
	output := strings.TrimRight(ctx.String(), "\n")
	if output == "" {
		return line, false
	}
	return line + "\n  " + resultStyle.Render(output), false
}

func (m replModel) View() string {
	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("pytwig REPL") + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", clampWidth(m.width))) + "\n\n")

	for _, entry := range m.history {
		b.WriteString(mutedStyle.Render("  › ") + entry.input + "\n\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")
	b.WriteString(mutedStyle.Render("ctrl+l") + " clear  " + mutedStyle.Render("ctrl+c") + " quit")
	return b.String()
}

func clampWidth(w int) int {
	if w <= 0 || w > 60 {
		return 60
	}
	return w
}

func runREPL() error {
	_, err := tea.NewProgram(newREPLModel()).Run()
	return err
}
