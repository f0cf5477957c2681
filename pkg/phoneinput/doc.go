// Package phoneinput provides a Bubble Tea phone-number field: a country
// picker button combined with a text input that formats and validates what
// the user types against the selected country's numbering plan.
//
// Country metadata and number grammar are injected capabilities
// (CountryDirectory and PhoneNumberGrammar). The defaults are backed by
// libphonenumber metadata, so most hosts only need Props.
//
// # Quick Start
//
//	in := phoneinput.New(phoneinput.Props{
//	    DefaultCode: "US",
//	    AutoFocus:   true,
//	    OnChangeFormattedText: func(s string) {
//	        formatted = s
//	    },
//	})
//
//	// In Init():
//	return in.Init()
//
//	// In Update():
//	in, cmd = in.Update(msg)
//
//	// In View():
//	return in.View()
//
// # Layouts
//
//   - LayoutFirst - dial code is a prefix inside the text area (default)
//   - LayoutSecond - dial code sits in the flag button, which is wider
//
// # Keys
//
//   - tab / shift+tab - move focus between flag button and text field
//   - enter / space - open the country picker from the flag button
//   - up / down / home / end - move in the picker
//   - enter - select, esc - close the picker
//
// IsValidNumber validates a number without constructing a component.
package phoneinput
