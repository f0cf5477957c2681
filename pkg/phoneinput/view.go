package phoneinput

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the component, with the picker below it while open.
func (m Model) View() string {
	st := resolveStyles(m.props)

	row := lipgloss.JoinHorizontal(lipgloss.Center,
		m.renderFlagButton(st),
		m.renderTextArea(st),
	)
	out := st.container.Render(row)
	if m.props.WithShadow {
		out = st.shadow.Render(out)
	}

	if m.state.ModalVisible {
		out = lipgloss.JoinVertical(lipgloss.Left, out, m.picker.View(st))
	}
	return out
}

// codeLabel is the "+code" text, empty while the code is unresolved.
func (m Model) codeLabel() string {
	if m.state.CallingCode == "" {
		return ""
	}
	return "+" + m.state.CallingCode
}

func (m Model) renderFlag() string {
	size := m.props.FlagSize
	if size <= 0 {
		size = defaultFlagSize
	}
	pad := strings.Repeat(" ", size-1)
	return pad + Flag(m.state.CountryCode) + pad
}

func (m Model) renderDropdown(st styleSet) string {
	if m.props.RenderDropdown != nil {
		return m.props.RenderDropdown()
	}
	return st.dropdown.Render(defaultDropdown)
}

// renderFlagButton draws the flag (layout first) or the dial code (layout
// second), followed by the dropdown indicator.
func (m Model) renderFlagButton(st styleSet) string {
	layout := m.props.layout()

	var parts []string
	if layout == LayoutFirst {
		parts = append(parts, m.renderFlag())
	}
	if code := m.codeLabel(); code != "" && layout == LayoutSecond {
		parts = append(parts, st.codeText.Render(code))
	}
	if !m.props.DisableArrowIcon {
		parts = append(parts, m.renderDropdown(st))
	}

	style := st.flagButton
	switch {
	case m.state.Disabled:
		style = style.Faint(true)
	case m.focused && m.focus == focusFlag:
		style = style.Foreground(st.accent).Bold(true)
	}
	return style.Render(strings.Join(parts, " "))
}

// renderTextArea draws the dial code prefix (layout first) and the field.
func (m Model) renderTextArea(st styleSet) string {
	in := m.input
	in.TextStyle = st.numberText
	in.PlaceholderStyle = st.placeholder
	if m.state.Disabled {
		in.TextStyle = in.TextStyle.Faint(true)
	}

	field := in.View()
	if code := m.codeLabel(); code != "" && m.props.layout() == LayoutFirst {
		field = st.codeText.Render(code) + " " + field
	}
	return st.textContainer.Render(field)
}
