package phoneinput

import "github.com/charmbracelet/lipgloss"

// theme is the palette for one visual variant.
type theme struct {
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Accent      lipgloss.Color
	Border      lipgloss.Color
	Surface     lipgloss.Color
	Shadow      lipgloss.Color
	Selected    lipgloss.Color
	SelectedBg  lipgloss.Color
	Placeholder lipgloss.Color
}

var (
	defaultTheme = theme{
		Text:        lipgloss.Color("235"),
		Muted:       lipgloss.Color("244"),
		Accent:      lipgloss.Color("212"),
		Border:      lipgloss.Color("250"),
		Surface:     lipgloss.Color("255"),
		Shadow:      lipgloss.Color("245"),
		Selected:    lipgloss.Color("235"),
		SelectedBg:  lipgloss.Color("253"),
		Placeholder: lipgloss.Color("246"),
	}

	darkTheme = theme{
		Text:        lipgloss.Color("252"),
		Muted:       lipgloss.Color("241"),
		Accent:      lipgloss.Color("212"),
		Border:      lipgloss.Color("240"),
		Surface:     lipgloss.Color("235"),
		Shadow:      lipgloss.Color("232"),
		Selected:    lipgloss.Color("255"),
		SelectedBg:  lipgloss.Color("237"),
		Placeholder: lipgloss.Color("241"),
	}
)

func themeFor(dark bool) theme {
	if dark {
		return darkTheme
	}
	return defaultTheme
}

const (
	flagButtonExtraWidth = 12
	defaultFlagSize      = 1
	defaultDropdown      = "▾"
)

// shadowBorder draws a drop shadow on the right and bottom edges.
var shadowBorder = lipgloss.Border{
	Right:       "▐",
	Bottom:      "▀",
	BottomRight: "▘",
	TopRight:    " ",
	BottomLeft:  " ",
}

// styleSet is the resolved style of every region for one render.
type styleSet struct {
	container     lipgloss.Style
	shadow        lipgloss.Style
	flagButton    lipgloss.Style
	accent        lipgloss.Color
	textContainer lipgloss.Style
	codeText      lipgloss.Style
	numberText    lipgloss.Style
	placeholder   lipgloss.Style
	dropdown      lipgloss.Style

	pickerBox      lipgloss.Style
	pickerItem     lipgloss.Style
	pickerSelected lipgloss.Style
	pickerCursor   lipgloss.Style
	pickerMuted    lipgloss.Style
}

func defaultStyleSet(t theme) styleSet {
	return styleSet{
		container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
		shadow: lipgloss.NewStyle().
			Border(shadowBorder, false, true, true, false).
			BorderForeground(t.Shadow),
		flagButton: lipgloss.NewStyle().
			Foreground(t.Text).
			Padding(0, 1),
		accent: t.Accent,
		textContainer: lipgloss.NewStyle().
			Padding(0, 1),
		codeText: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true),
		numberText: lipgloss.NewStyle().
			Foreground(t.Text),
		placeholder: lipgloss.NewStyle().
			Foreground(t.Placeholder),
		dropdown: lipgloss.NewStyle().
			Foreground(t.Muted),

		pickerBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			Padding(0, 1),
		pickerItem: lipgloss.NewStyle().
			Foreground(t.Text),
		pickerSelected: lipgloss.NewStyle().
			Foreground(t.Selected).
			Background(t.SelectedBg).
			Bold(true),
		pickerCursor: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),
		pickerMuted: lipgloss.NewStyle().
			Foreground(t.Muted),
	}
}

func layer(base lipgloss.Style, override StyleFunc) lipgloss.Style {
	if override == nil {
		return base
	}
	return override(base)
}

// resolveStyles builds the defaults for props and layers overrides on top.
func resolveStyles(p Props) styleSet {
	s := defaultStyleSet(themeFor(p.WithDarkTheme))
	if p.layout() == LayoutSecond {
		s.flagButton = s.flagButton.Width(flagButtonExtraWidth)
	}

	s.container = layer(s.container, p.Styles.Container)
	s.flagButton = layer(s.flagButton, p.Styles.FlagButton)
	s.flagButton = layer(s.flagButton, p.Styles.CountryPickerButton)
	s.textContainer = layer(s.textContainer, p.Styles.TextContainer)
	s.codeText = layer(s.codeText, p.Styles.CodeText)
	s.numberText = layer(s.numberText, p.Styles.TextInput)
	return s
}
