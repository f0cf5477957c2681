// Package demo hosts a PhoneInput in a small Bubble Tea program and shows
// the callback traffic it produces.
package demo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/phoneinput/pkg/phoneinput"
)

const maxEvents = 6

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(11)
	validStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
)

// events collects what the component reports through its callbacks. It is
// shared by pointer because the callbacks outlive any one Model copy.
type events struct {
	raw       string
	formatted string
	lastErr   error
	lines     []string
}

func (e *events) add(format string, args ...any) {
	e.lines = append(e.lines, fmt.Sprintf(format, args...))
	if len(e.lines) > maxEvents {
		e.lines = e.lines[len(e.lines)-maxEvents:]
	}
}

// Model is the demo host program.
type Model struct {
	input  phoneinput.Model
	props  phoneinput.Props
	events *events
	logger *slog.Logger
	status string
}

// New wires props callbacks into the event log and builds the component.
func New(props phoneinput.Props, logger *slog.Logger, opts ...phoneinput.Option) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ev := &events{}
	if props.Value != nil {
		ev.raw = *props.Value
	} else {
		ev.raw = props.DefaultValue
	}

	props.AutoFocus = true
	props.OnChangeText = func(s string) {
		ev.raw = s
		ev.add("text %q", s)
	}
	props.OnChangeFormattedText = func(s string) {
		ev.formatted = s
		ev.lastErr = nil
		ev.add("formatted %q", s)
	}
	props.OnChangeCountry = func(c phoneinput.Country) {
		ev.add("country %s %s +%s", c.Code, c.Name, c.CallingCode())
		logger.Info("country changed", "country", c.Code)
	}
	props.OnError = func(err error) {
		ev.lastErr = err
	}

	opts = append([]phoneinput.Option{phoneinput.WithLogger(logger)}, opts...)
	return Model{
		input:  phoneinput.New(props, opts...),
		props:  props,
		events: ev,
		logger: logger,
	}
}

// Input returns the hosted component.
func (m Model) Input() phoneinput.Model {
	return m.input
}

func (m Model) Init() tea.Cmd {
	return m.input.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		picking := m.input.State().ModalVisible
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !picking {
				return m, tea.Quit
			}
		case "ctrl+d":
			return m.toggleDisabled()
		case "ctrl+y":
			return m, copyNumberCmd(m.events.formatted)
		}

	case clipboardMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
			m.logger.Warn("clipboard copy failed", "err", msg.err)
		} else {
			m.status = "copied " + msg.text
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// toggleDisabled flips the disabled prop. The current raw text is passed as
// the controlled value so the sync rule has something to adopt.
func (m Model) toggleDisabled() (Model, tea.Cmd) {
	m.props.Disabled = !m.props.Disabled
	m.props.Value = phoneinput.ControlledValue(m.events.raw)
	var cmd tea.Cmd
	m.input, cmd = m.input.SetProps(m.props)
	if m.props.Disabled {
		m.status = "disabled"
	} else {
		m.status = "enabled"
	}
	m.logger.Debug("disabled toggled", "disabled", m.props.Disabled)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Phone number"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	row := func(label, value string) {
		sb.WriteString(labelStyle.Render(label))
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	code := m.input.CallingCode()
	if code == "" {
		code = "?"
	}
	row("country", fmt.Sprintf("%s %s +%s", phoneinput.Flag(m.input.CountryCode()), m.input.CountryCode(), code))
	row("raw", m.input.Number())
	row("formatted", m.events.formatted)

	switch {
	case m.input.Number() == "":
		row("valid", mutedStyle.Render("-"))
	case m.input.IsValidNumber(m.input.Number()):
		row("valid", validStyle.Render("yes"))
	default:
		row("valid", errorStyle.Render("no"))
	}
	if m.events.lastErr != nil {
		row("error", errorStyle.Render(m.events.lastErr.Error()))
	}

	if len(m.events.lines) > 0 {
		sb.WriteString("\n")
		for _, line := range m.events.lines {
			sb.WriteString(mutedStyle.Render("· " + line))
			sb.WriteString("\n")
		}
	}
	if m.status != "" {
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render(m.status))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render("tab focus · enter pick country · ctrl+d disable · ctrl+y copy · q quit"))
	return sb.String()
}

// Run starts the demo and returns the country selected when it exits.
func Run(ctx context.Context, props phoneinput.Props, logger *slog.Logger, opts ...tea.ProgramOption) (string, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(props, logger), opts...)

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run demo: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.input.CountryCode(), nil
	}
	return "", nil
}
