package phoneinput

// Fallbacks used when no default country is supplied.
const (
	FallbackCountry     = "GB"
	FallbackCallingCode = "44"
)

// State is everything a PhoneInput owns. Transitions return the next state
// and never touch the receiver.
type State struct {
	CountryCode  string
	CallingCode  string // "" until resolved
	Number       string
	ModalVisible bool
	Disabled     bool
}

// InitialState derives the construction-time state from props. With a
// default country the calling code stays empty until resolved after mount.
func InitialState(p Props) State {
	s := State{
		CountryCode: FallbackCountry,
		CallingCode: FallbackCallingCode,
		Disabled:    p.Disabled,
	}
	if code := normalizeCode(p.DefaultCode); code != "" {
		s.CountryCode = code
		s.CallingCode = ""
	}
	switch {
	case p.Value != nil && *p.Value != "":
		s.Number = *p.Value
	case p.DefaultValue != "":
		s.Number = p.DefaultValue
	}
	return s
}

// SelectCountry clears the number and adopts the country with its first
// calling code.
func (s State) SelectCountry(c Country) State {
	s.Number = ""
	s.CountryCode = normalizeCode(c.Code)
	s.CallingCode = c.CallingCode()
	return s
}

// ChangeText adopts the typed text unconditionally.
func (s State) ChangeText(text string) State {
	s.Number = text
	return s
}

// SetModalVisible opens or closes the picker overlay.
func (s State) SetModalVisible(visible bool) State {
	s.ModalVisible = visible
	return s
}

// ResolveCallingCode stores a resolved calling code. A result for a country
// that is no longer selected is dropped.
func (s State) ResolveCallingCode(country, code string) State {
	if normalizeCode(country) != s.CountryCode {
		return s
	}
	s.CallingCode = code
	return s
}

// SyncProps reconciles state with updated props. Only a change of the
// disabled flag triggers anything; a controlled value that differs from
// the number is adopted in the same step. A value change alone is ignored.
func (s State) SyncProps(p Props) (State, bool) {
	if p.Disabled == s.Disabled {
		return s, false
	}
	if p.Value != nil && *p.Value != s.Number {
		s.Number = *p.Value
	}
	s.Disabled = p.Disabled
	return s, true
}
