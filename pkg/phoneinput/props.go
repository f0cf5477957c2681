package phoneinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Layout selects where the dial code is drawn.
type Layout string

const (
	// LayoutFirst draws the dial code as a prefix inside the text area.
	LayoutFirst Layout = "first"
	// LayoutSecond draws the dial code inside a wider flag button.
	LayoutSecond Layout = "second"
)

// ParseLayout accepts "first" or "second"; anything else is LayoutFirst.
func ParseLayout(s string) Layout {
	if Layout(s) == LayoutSecond {
		return LayoutSecond
	}
	return LayoutFirst
}

// StyleFunc layers caller style rules on top of a built-in style.
type StyleFunc func(lipgloss.Style) lipgloss.Style

// Styles holds per-region overrides. Nil entries keep the defaults.
type Styles struct {
	Container           StyleFunc
	FlagButton          StyleFunc
	CountryPickerButton StyleFunc // applied after FlagButton
	TextContainer       StyleFunc
	CodeText            StyleFunc
	TextInput           StyleFunc
}

// PickerProps are passed through to the country picker overlay.
type PickerProps struct {
	DisableFilter     bool
	HideFlags         bool
	HideCallingCode   bool
	MaxVisible        int      // rows shown at once, default 8
	FilterPlaceholder string   // default "Search country"
	Countries         []string // restrict the list to these codes
}

// Props configures a PhoneInput. Only Disabled and Value feed back into
// component state after construction; see Model.SetProps.
type Props struct {
	DefaultCode  string  // initial country, fallback GB
	Value        *string // controlled number text
	DefaultValue string  // initial number text when Value is unset or empty
	Disabled     bool

	Layout           Layout
	AutoFocus        bool
	Placeholder      string
	DisableArrowIcon bool
	WithShadow       bool
	WithDarkTheme    bool
	FlagSize         int // horizontal padding around the flag glyph

	Styles         Styles
	PickerProps    PickerProps
	TextInputProps func(*textinput.Model)
	RenderDropdown func() string

	OnChangeText          func(text string)
	OnChangeFormattedText func(formatted string)
	OnChangeCountry       func(Country)
	OnError               func(error) // default no-op
}

// ControlledValue returns a pointer suitable for Props.Value.
func ControlledValue(s string) *string {
	return &s
}

func (p Props) layout() Layout {
	if p.Layout == LayoutSecond {
		return LayoutSecond
	}
	return LayoutFirst
}

func (p Props) onError(err error) {
	if p.OnError != nil {
		p.OnError(err)
	}
}
