package phoneinput

import (
	"errors"
	"testing"
)

func TestCheckNumberPolicies(t *testing.T) {
	g := fakeGrammar{dir: newFakeDirectory()}

	valid, err := CheckNumber(g, "2015550123", "US", AbsorbFailures)
	if !valid || err != nil {
		t.Errorf("CheckNumber(valid) = %v, %v; want true, nil", valid, err)
	}

	valid, err = CheckNumber(g, "201555", "US", ReportFailures)
	if valid || err != nil {
		t.Errorf("CheckNumber(short but parseable) = %v, %v; want false, nil", valid, err)
	}

	valid, err = CheckNumber(g, "0", "GB", AbsorbFailures)
	if valid || err != nil {
		t.Errorf("absorb: CheckNumber = %v, %v; want false, nil", valid, err)
	}

	valid, err = CheckNumber(g, "0", "GB", ReportFailures)
	if valid {
		t.Error("report: expected invalid")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("report: err = %v, want *ParseError", err)
	}
	if !errors.Is(err, errTooShort) {
		t.Errorf("report: err = %v, want wrapped errTooShort", err)
	}
}

func TestCheckNumberRecoversGrammarPanic(t *testing.T) {
	g := fakeGrammar{panics: true}

	valid, err := CheckNumber(g, "123", "US", AbsorbFailures)
	if valid || err != nil {
		t.Errorf("absorb = %v, %v; want false, nil", valid, err)
	}
	valid, err = CheckNumber(g, "123", "US", ReportFailures)
	if valid || err == nil {
		t.Errorf("report = %v, %v; want false, error", valid, err)
	}
}

func TestIsValidNumber(t *testing.T) {
	tests := []struct {
		number  string
		country string
		want    bool
	}{
		{"2015550123", "US", true},
		{"+1 201-555-0123", "US", true},
		{"07400123456", "GB", true},
		{"07400123456", "gb", true},
		{"0", "GB", false},
		{"", "US", false},
		{"not a number", "US", false},
		{"123", "US", false},
		{"2015550123", "ZZ", false},
	}

	for _, tt := range tests {
		if got := IsValidNumber(tt.number, tt.country); got != tt.want {
			t.Errorf("IsValidNumber(%q, %q) = %v, want %v", tt.number, tt.country, got, tt.want)
		}
	}
}

func TestFormatE164(t *testing.T) {
	got, err := FormatE164("2015550123", "US")
	if err != nil {
		t.Fatalf("FormatE164 failed: %v", err)
	}
	if got != "+12015550123" {
		t.Errorf("FormatE164 = %q, want +12015550123", got)
	}

	got, err = FormatE164("07400 123456", "GB")
	if err != nil {
		t.Fatalf("FormatE164 failed: %v", err)
	}
	if got != "+447400123456" {
		t.Errorf("FormatE164 = %q, want +447400123456", got)
	}

	if _, err := FormatE164("0", "GB"); err == nil {
		t.Error("expected parse error for incomplete number")
	}
}

func TestFailurePolicyString(t *testing.T) {
	if AbsorbFailures.String() != "absorb" || ReportFailures.String() != "report" {
		t.Errorf("unexpected names %q %q", AbsorbFailures, ReportFailures)
	}
}
