package phoneinput

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var lastID atomic.Int64

func nextID() int64 {
	return lastID.Add(1)
}

// CallingCodeMsg carries the result of the post-mount calling-code lookup.
type CallingCodeMsg struct {
	id      int64
	Country string
	Code    string
	Err     error
}

// FormatFailedMsg is emitted under ReportFailures when typed text cannot be
// formatted. ID matches Model.ID of the sender.
type FormatFailedMsg struct {
	ID   int64
	Text string
	Err  error
}

// focusZone is the part of the component receiving keys.
type focusZone int

const (
	focusText focusZone = iota
	focusFlag
)

// Option configures the injected capabilities of a Model.
type Option func(*Model)

// WithDirectory replaces the country directory.
func WithDirectory(d CountryDirectory) Option {
	return func(m *Model) {
		if d != nil {
			m.directory = d
		}
	}
}

// WithGrammar replaces the phone number grammar.
func WithGrammar(g PhoneNumberGrammar) Option {
	return func(m *Model) {
		if g != nil {
			m.grammar = g
		}
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithFailurePolicy sets how parse failures are surfaced.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(m *Model) {
		m.policy = p
	}
}

// Model is the PhoneInput component.
type Model struct {
	id        int64
	props     Props
	state     State
	directory CountryDirectory
	grammar   PhoneNumberGrammar
	logger    *slog.Logger
	policy    FailurePolicy

	input   textinput.Model
	picker  picker
	focus   focusZone
	focused bool
}

// New creates a PhoneInput from props.
func New(props Props, opts ...Option) Model {
	m := Model{
		id:      nextID(),
		props:   props,
		state:   InitialState(props),
		grammar: DefaultGrammar(),
		logger:  slog.New(slog.DiscardHandler),
		policy:  AbsorbFailures,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	if m.directory == nil {
		m.directory = DefaultDirectory()
	}

	m.input = newTextInput(props)
	m.input.SetValue(m.state.Number)
	m.picker = newPicker(m.directory, props.PickerProps)

	if props.AutoFocus {
		m.Focus()
	}
	return m
}

func newTextInput(p Props) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = p.Placeholder
	if p.TextInputProps != nil {
		p.TextInputProps(&ti)
	}
	return ti
}

// Init starts the calling-code lookup when a default country was given.
// The lookup has no cancellation; a result arriving after the host drops
// the component is simply never routed.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if normalizeCode(m.props.DefaultCode) != "" {
		cmds = append(cmds, resolveCallingCode(m.id, m.directory, m.state.CountryCode))
	}
	if m.input.Focused() {
		cmds = append(cmds, textinput.Blink)
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func resolveCallingCode(id int64, dir CountryDirectory, country string) tea.Cmd {
	return func() tea.Msg {
		code, err := dir.CallingCode(context.Background(), country)
		return CallingCodeMsg{id: id, Country: country, Code: code, Err: err}
	}
}

// ID identifies this instance in routed messages.
func (m Model) ID() int64 {
	return m.id
}

// CountryCode returns the selected country.
func (m Model) CountryCode() string {
	return m.state.CountryCode
}

// CallingCode returns the resolved dial code, "" while unresolved.
func (m Model) CallingCode() string {
	return m.state.CallingCode
}

// Number returns the raw text in the field.
func (m Model) Number() string {
	return m.state.Number
}

// State returns a copy of the component state.
func (m Model) State() State {
	return m.state
}

// Props returns the current props.
func (m Model) Props() Props {
	return m.props
}

// IsValidNumber checks number against the selected country. Parse failures
// report false.
func (m Model) IsValidNumber(number string) bool {
	valid, _ := CheckNumber(m.grammar, number, m.state.CountryCode, AbsorbFailures)
	return valid
}

// CheckNumber checks number against the selected country under the
// configured failure policy.
func (m Model) CheckNumber(number string) (bool, error) {
	return CheckNumber(m.grammar, number, m.state.CountryCode, m.policy)
}

// Focus gives the component keyboard focus, starting in the text field.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	m.focus = focusText
	if m.state.Disabled {
		return nil
	}
	return m.input.Focus()
}

// Blur removes keyboard focus and closes the picker.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
	if m.state.ModalVisible {
		m.closePicker()
	}
}

// Focused reports whether the component has keyboard focus.
func (m Model) Focused() bool {
	return m.focused
}

// SetProps applies updated props. Render props take effect immediately;
// state follows the disabled-flag reconciliation of State.SyncProps.
// The returned command restarts the cursor blink when the field regains
// focus.
func (m Model) SetProps(p Props) (Model, tea.Cmd) {
	prev := m.state
	m.props = p
	m.input.Placeholder = p.Placeholder
	if p.TextInputProps != nil {
		p.TextInputProps(&m.input)
	}

	next, changed := m.state.SyncProps(p)
	if !changed {
		return m, nil
	}
	m.state = next
	if next.Number != prev.Number {
		m.input.SetValue(next.Number)
	}
	var cmd tea.Cmd
	if next.Disabled {
		m.input.Blur()
		if m.state.ModalVisible {
			m.closePicker()
		}
	} else if m.focused && m.focus == focusText {
		cmd = m.input.Focus()
	}
	m.logger.Debug("props synced", "disabled", next.Disabled, "number_changed", next.Number != prev.Number)
	return m, cmd
}

// Update handles messages for this instance.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CallingCodeMsg:
		if msg.id != m.id {
			return m, nil
		}
		if msg.Err != nil {
			m.logger.Debug("calling code lookup failed", "country", msg.Country, "err", msg.Err)
			return m, nil
		}
		m.state = m.state.ResolveCallingCode(msg.Country, msg.Code)
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if m.state.ModalVisible {
			return m.updatePicker(msg)
		}
		switch msg.String() {
		case "tab", "shift+tab":
			return m.toggleFocus(), nil
		}
		if m.focus == focusFlag {
			switch msg.String() {
			case "enter", " ":
				return m.openPicker()
			}
			return m, nil
		}
		return m.updateText(msg)
	}

	// Paste results and other forwarded messages can edit either field.
	var cmd tea.Cmd
	if m.state.ModalVisible {
		before := m.picker.filter.Value()
		m.picker.filter, cmd = m.picker.filter.Update(msg)
		if m.picker.filter.Value() != before {
			m.picker.applyFilter()
			m.picker.ensureVisible()
		}
		return m, cmd
	}
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	var changeCmd tea.Cmd
	m, changeCmd = m.syncField(before)
	return m, tea.Batch(cmd, changeCmd)
}

func (m Model) toggleFocus() Model {
	if m.focus == focusText {
		m.focus = focusFlag
		m.input.Blur()
		return m
	}
	m.focus = focusText
	if !m.state.Disabled {
		m.input.Focus()
	}
	return m
}

func (m Model) openPicker() (Model, tea.Cmd) {
	if m.state.Disabled {
		return m, nil
	}
	m.state = m.state.SetModalVisible(true)
	return m, m.picker.open(m.state.CountryCode)
}

func (m *Model) closePicker() {
	m.state = m.state.SetModalVisible(false)
	m.picker.close()
}

func (m Model) updatePicker(msg tea.KeyMsg) (Model, tea.Cmd) {
	action, cmd := m.picker.Update(msg)
	switch action {
	case pickerClose:
		m.closePicker()
		return m, nil
	case pickerSelect:
		c, _ := m.picker.current()
		m.closePicker()
		return m.SelectCountry(c)
	}
	return m, cmd
}

// SelectCountry applies a picker selection: the number is cleared, both
// text callbacks receive "", then OnChangeCountry receives the record.
func (m Model) SelectCountry(c Country) (Model, tea.Cmd) {
	m.state = m.state.SelectCountry(c)
	m.input.SetValue("")
	m.logger.Debug("country selected", "country", m.state.CountryCode, "calling_code", m.state.CallingCode)

	if m.props.OnChangeText != nil {
		m.props.OnChangeText("")
	}
	if m.props.OnChangeFormattedText != nil {
		m.props.OnChangeFormattedText("")
	}
	if m.props.OnChangeCountry != nil {
		m.props.OnChangeCountry(c)
	}
	return m, nil
}

// numberPadRune reports whether r can be typed into the field.
func numberPadRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '+', r == '-', r == '(', r == ')', r == '.', r == ' ':
		return true
	}
	return false
}

func (m Model) updateText(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.state.Disabled {
		return m, nil
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		for _, r := range msg.Runes {
			if !numberPadRune(r) {
				return m, nil
			}
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	var changeCmd tea.Cmd
	m, changeCmd = m.syncField(before)
	return m, tea.Batch(cmd, changeCmd)
}

// syncField reconciles state with the field after the text input edited
// it. Runes outside the number pad are dropped and a disabled field is
// restored to its previous value.
func (m Model) syncField(before string) (Model, tea.Cmd) {
	after := m.input.Value()
	if after == before {
		return m, nil
	}
	if m.state.Disabled {
		m.input.SetValue(before)
		return m, nil
	}
	text := strings.Map(func(r rune) rune {
		if numberPadRune(r) {
			return r
		}
		return -1
	}, after)
	if text == before {
		m.input.SetValue(before)
		return m, nil
	}
	return m.ChangeText(text)
}

// ChangeText applies typed text. The number updates first, then
// OnChangeText fires, then the text is formatted against the selected
// country for OnChangeFormattedText. A failed format goes to OnError.
func (m Model) ChangeText(text string) (Model, tea.Cmd) {
	m.state = m.state.ChangeText(text)
	if m.input.Value() != text {
		m.input.SetValue(text)
	}

	if m.props.OnChangeText != nil {
		m.props.OnChangeText(text)
	}
	if m.props.OnChangeFormattedText == nil {
		return m, nil
	}

	formatted, err := m.format(text)
	if err == nil {
		m.props.OnChangeFormattedText(formatted)
		return m, nil
	}

	m.props.onError(err)
	if m.policy != ReportFailures {
		if m.props.OnError == nil {
			m.logger.Debug("format failed", "country", m.state.CountryCode, "err", err)
		}
		return m, nil
	}
	id := m.id
	return m, func() tea.Msg {
		return FormatFailedMsg{ID: id, Text: text, Err: err}
	}
}

func (m Model) format(text string) (formatted string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ParseError{Number: text, Country: m.state.CountryCode, Err: panicError{r}}
		}
	}()
	parsed, err := m.grammar.Parse(text, m.state.CountryCode)
	if err != nil {
		return "", err
	}
	return parsed.E164(), nil
}
