package phoneinput

import (
	"context"
	"strings"
)

// Country is one selectable entry of the picker.
type Country struct {
	Code         string   // ISO 3166-1 alpha-2, upper case
	Name         string   // display name
	CallingCodes []string // ordered, the first entry is the one used
}

// CallingCode returns the primary calling code, or "" when the record has none.
func (c Country) CallingCode() string {
	if len(c.CallingCodes) == 0 {
		return ""
	}
	return c.CallingCodes[0]
}

// Flag returns the flag glyph for the country.
func (c Country) Flag() string {
	return Flag(c.Code)
}

// CountryDirectory supplies country metadata to the picker and resolves
// calling codes.
type CountryDirectory interface {
	// Countries returns every selectable country, in display order.
	Countries() []Country
	// Lookup finds a country by its two-letter code.
	Lookup(code string) (Country, bool)
	// CallingCode resolves the numeric dial code for a country.
	CallingCode(ctx context.Context, code string) (string, error)
}

// Flag maps a two-letter country code to its regional indicator pair.
// Anything else yields a white flag.
func Flag(code string) string {
	code = strings.ToUpper(code)
	if len(code) != 2 || !isUpperASCII(code[0]) || !isUpperASCII(code[1]) {
		return "🏳"
	}
	const base = 0x1F1E6
	return string([]rune{base + rune(code[0]-'A'), base + rune(code[1]-'A')})
}

func isUpperASCII(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
