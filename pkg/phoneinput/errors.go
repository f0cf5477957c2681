package phoneinput

import (
	"errors"
	"fmt"
)

// ErrUnknownCountry is returned when a country code has no numbering plan.
var ErrUnknownCountry = errors.New("unknown country")

// ParseError reports a number that could not be parsed against a country's
// numbering plan.
type ParseError struct {
	Number  string
	Country string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Number == "" {
		return fmt.Sprintf("cannot parse empty number for %s: %v", e.Country, e.Err)
	}
	return fmt.Sprintf("cannot parse %q for %s: %v", e.Number, e.Country, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
