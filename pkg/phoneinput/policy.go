package phoneinput

import "fmt"

// FailurePolicy controls what happens to parse failures.
type FailurePolicy int

const (
	// AbsorbFailures turns a failed validity check into "not valid" and
	// routes a failed format to OnError, dropping it when none is set.
	AbsorbFailures FailurePolicy = iota
	// ReportFailures returns validity errors to the caller and, on a failed
	// format, also emits a FormatFailedMsg to the host program.
	ReportFailures
)

func (p FailurePolicy) String() string {
	switch p {
	case AbsorbFailures:
		return "absorb"
	case ReportFailures:
		return "report"
	default:
		return "unknown"
	}
}

// CheckNumber parses number against country's plan and reports its
// validity. Under AbsorbFailures the error is always nil.
func CheckNumber(g PhoneNumberGrammar, number, country string, policy FailurePolicy) (valid bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			valid = false
			if policy == ReportFailures {
				err = &ParseError{Number: number, Country: country, Err: panicError{r}}
			}
		}
	}()

	parsed, err := g.Parse(number, country)
	if err != nil {
		if policy == ReportFailures {
			return false, err
		}
		return false, nil
	}
	return parsed.IsValid(), nil
}

// IsValidNumber reports whether number is a valid number for country's
// numbering plan. Parse failures report false.
func IsValidNumber(number, country string) bool {
	valid, _ := CheckNumber(DefaultGrammar(), number, country, AbsorbFailures)
	return valid
}

// FormatE164 parses number against country's plan and formats it as an
// international dial string. The number is not checked for validity.
func FormatE164(number, country string) (string, error) {
	parsed, err := DefaultGrammar().Parse(number, country)
	if err != nil {
		return "", err
	}
	return parsed.E164(), nil
}

type panicError struct {
	v any
}

func (e panicError) Error() string {
	return fmt.Sprintf("grammar panic: %v", e.v)
}
