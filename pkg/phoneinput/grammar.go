package phoneinput

import (
	"github.com/nyaruka/phonenumbers"
)

// ParsedNumber is a number successfully parsed against a numbering plan.
type ParsedNumber interface {
	// IsValid reports whether the number is valid for its plan.
	IsValid() bool
	// E164 formats the number as an international dial string.
	E164() string
}

// PhoneNumberGrammar parses raw text against a country's numbering plan.
type PhoneNumberGrammar interface {
	Parse(number, country string) (ParsedNumber, error)
}

// DefaultGrammar returns the libphonenumber-backed grammar.
func DefaultGrammar() PhoneNumberGrammar {
	return libphonenumberGrammar{}
}

type libphonenumberGrammar struct{}

func (libphonenumberGrammar) Parse(number, country string) (ParsedNumber, error) {
	country = normalizeCode(country)
	num, err := phonenumbers.Parse(number, country)
	if err != nil {
		return nil, &ParseError{Number: number, Country: country, Err: err}
	}
	return parsedNumber{num: num}, nil
}

type parsedNumber struct {
	num *phonenumbers.PhoneNumber
}

func (p parsedNumber) IsValid() bool {
	return phonenumbers.IsValidNumber(p.num)
}

func (p parsedNumber) E164() string {
	return phonenumbers.Format(p.num, phonenumbers.E164)
}
