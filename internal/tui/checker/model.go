// ============================================================================
// poutil - Path and Number Utilities
// ============================================================================
//
// Package:     checker
// Description: Bubbletea model that validates and formats input as it is typed
// Author:      Mike Stoffels
// Created:     2026-10-08
// License:     MIT
// ============================================================================

package checker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	poerr "github.com/msto63/poutil/foundation/core/error"
	"github.com/msto63/poutil/foundation/utils/fixedx"
	"github.com/msto63/poutil/foundation/utils/pathx"
)

// Mode selects what the input is checked as
type Mode int

const (
	ModeDirectory Mode = iota
	ModeFilePath
	ModeFileName
	ModeNumber
	modeCount
)

// String returns the tab label of the mode
func (m Mode) String() string {
	switch m {
	case ModeDirectory:
		return "Directory"
	case ModeFilePath:
		return "File path"
	case ModeFileName:
		return "File name"
	case ModeNumber:
		return "Number"
	default:
		return "Unknown"
	}
}

// maxHistory bounds the list of confirmed inputs
const maxHistory = 10

// Config holds checker configuration
type Config struct {
	Validator      *pathx.Validator
	PrePointWidth  int
	PostPointWidth int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Validator:      pathx.Default(),
		PrePointWidth:  8,
		PostPointWidth: 2,
	}
}

// Outcome is the evaluation of one input in one mode
type Outcome struct {
	Input string
	Mode  Mode
	Valid bool

	// Code is set for rejected paths
	Code poerr.Code

	// Detail is the error message or the formatted number
	Detail string
}

// checkedMsg carries an Outcome back into Update
type checkedMsg Outcome

// Model is the main Bubbletea model for the checker
type Model struct {
	width  int
	height int

	input   textinput.Model
	mode    Mode
	current *Outcome
	history []Outcome

	validator *pathx.Validator
	pre       int
	post      int
}

// New creates a new checker model
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = `C:\Users\report.txt`
	ti.CharLimit = 260
	ti.Width = 60
	ti.Focus()

	if cfg.Validator == nil {
		cfg.Validator = pathx.Default()
	}

	return Model{
		input:     ti,
		validator: cfg.Validator,
		pre:       cfg.PrePointWidth,
		post:      cfg.PostPointWidth,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.mode = (m.mode + 1) % modeCount
			m.current = nil
			return m, m.check()

		case "shift+tab":
			m.mode = (m.mode + modeCount - 1) % modeCount
			m.current = nil
			return m, m.check()

		case "enter":
			if m.current != nil && m.current.Input == m.input.Value() {
				m.history = append([]Outcome{*m.current}, m.history...)
				if len(m.history) > maxHistory {
					m.history = m.history[:maxHistory]
				}
				m.input.SetValue("")
				m.current = nil
			}
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			return m, tea.Batch(cmd, m.check())
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Width > 10 {
			m.input.Width = msg.Width - 10
		}
		return m, nil

	case checkedMsg:
		// drop results for input that has changed since
		if msg.Input == m.input.Value() && msg.Mode == m.mode {
			outcome := Outcome(msg)
			m.current = &outcome
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// check evaluates the current input off the update loop, since the root
// existence check may block on slow drives.
func (m Model) check() tea.Cmd {
	input := m.input.Value()
	if input == "" {
		return nil
	}

	mode := m.mode
	validator := m.validator
	pre, post := m.pre, m.post

	return func() tea.Msg {
		return checkedMsg(Evaluate(validator, mode, input, pre, post))
	}
}

// Evaluate checks input in the given mode
func Evaluate(validator *pathx.Validator, mode Mode, input string, pre, post int) Outcome {
	out := Outcome{Input: input, Mode: mode}

	var err error
	switch mode {
	case ModeDirectory:
		err = validator.CheckDirectoryPath(input)
	case ModeFilePath:
		err = validator.CheckFilePath(input)
	case ModeFileName:
		err = validator.CheckFileName(input)
	case ModeNumber:
		v, parseErr := strconv.ParseFloat(strings.TrimSpace(input), 64)
		if parseErr != nil {
			out.Code = poerr.CodeInvalidFormat
			out.Detail = "not a number"
			return out
		}
		out.Valid = true
		out.Detail = fmt.Sprintf("[%s]", fixedx.ToFixedWidth(v, pre, post))
		return out
	}

	if err != nil {
		out.Code = pathx.Reason(err)
		out.Detail = err.Error()
		var poErr *poerr.Error
		if errors.As(err, &poErr) {
			out.Detail = poErr.Message()
		}
		return out
	}

	out.Valid = true
	out.Detail = "valid"
	return out
}

// Mode returns the active mode
func (m Model) Mode() Mode {
	return m.mode
}

// Current returns the outcome for the current input, if any
func (m Model) Current() (Outcome, bool) {
	if m.current == nil {
		return Outcome{}, false
	}
	return *m.current, true
}

// History returns the confirmed outcomes, newest first
func (m Model) History() []Outcome {
	return m.history
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("poutil checker"))
	b.WriteString("\n")

	tabs := make([]string, 0, modeCount)
	for mode := Mode(0); mode < modeCount; mode++ {
		if mode == m.mode {
			tabs = append(tabs, ActiveTabStyle.Render(mode.String()))
		} else {
			tabs = append(tabs, TabStyle.Render(mode.String()))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n")

	b.WriteString(InputBoxStyle.Render(m.input.View()))
	b.WriteString("\n")

	if m.current != nil {
		b.WriteString(renderOutcome(*m.current))
		b.WriteString("\n")
	}

	if len(m.history) > 0 {
		b.WriteString("\n")
		for _, h := range m.history {
			b.WriteString(HistoryStyle.Render(fmt.Sprintf("%-9s %s  %s", h.Mode, h.Input, renderOutcome(h))))
			b.WriteString("\n")
		}
	}

	b.WriteString(HelpStyle.Render("tab: mode • enter: keep • esc: quit"))

	return b.String()
}

func renderOutcome(o Outcome) string {
	if o.Valid {
		return ValidStyle.Render("ok") + " " + DetailStyle.Render(o.Detail)
	}
	return InvalidStyle.Render("invalid") + " " + DetailStyle.Render(fmt.Sprintf("%s: %s", o.Code, o.Detail))
}

// Run starts the checker
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
