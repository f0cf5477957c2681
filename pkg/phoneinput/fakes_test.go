package phoneinput

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var errTooShort = errors.New("too short")

type fakeDirectory struct {
	countries []Country
	lookups   int
	fail      bool
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{countries: []Country{
		{Code: "FR", Name: "France", CallingCodes: []string{"33"}},
		{Code: "DE", Name: "Germany", CallingCodes: []string{"49"}},
		{Code: "GB", Name: "United Kingdom", CallingCodes: []string{"44"}},
		{Code: "US", Name: "United States", CallingCodes: []string{"1"}},
	}}
}

func (d *fakeDirectory) Countries() []Country {
	return d.countries
}

func (d *fakeDirectory) Lookup(code string) (Country, bool) {
	for _, c := range d.countries {
		if c.Code == strings.ToUpper(code) {
			return c, true
		}
	}
	return Country{}, false
}

func (d *fakeDirectory) CallingCode(_ context.Context, code string) (string, error) {
	d.lookups++
	if d.fail {
		return "", errors.New("lookup unavailable")
	}
	c, ok := d.Lookup(code)
	if !ok {
		return "", ErrUnknownCountry
	}
	return c.CallingCode(), nil
}

// fakeGrammar accepts digit strings of two or more digits. Ten digits is
// valid; a leading trunk zero is dropped when formatting.
type fakeGrammar struct {
	dir    *fakeDirectory
	panics bool
}

type fakeNumber struct {
	code   string
	digits string
}

func (n fakeNumber) IsValid() bool { return len(n.digits) == 10 }
func (n fakeNumber) E164() string  { return "+" + n.code + strings.TrimPrefix(n.digits, "0") }

func (g fakeGrammar) Parse(number, country string) (ParsedNumber, error) {
	if g.panics {
		panic("boom")
	}
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() < 2 {
		return nil, &ParseError{Number: number, Country: country, Err: errTooShort}
	}
	c, ok := g.dir.Lookup(country)
	if !ok {
		return nil, &ParseError{Number: number, Country: country, Err: ErrUnknownCountry}
	}
	return fakeNumber{code: c.CallingCode(), digits: digits.String()}, nil
}

func newFakeModel(props Props, opts ...Option) (Model, *fakeDirectory) {
	dir := newFakeDirectory()
	opts = append([]Option{WithDirectory(dir), WithGrammar(fakeGrammar{dir: dir})}, opts...)
	return New(props, opts...), dir
}

// runCmd executes cmd and flattens batches into the produced messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// typeText sends s one rune at a time.
func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

// pasteMsg installs clipboard tools that print text ahead of PATH and
// returns the message a ctrl+v paste delivers back to Update. The test is
// skipped when no clipboard backend was detected for this platform.
func pasteMsg(t *testing.T, text string) tea.Msg {
	t.Helper()
	bin := t.TempDir()
	script := "#!/bin/sh\nprintf '%s' '" + text + "'\n"
	for _, tool := range []string{"xsel", "xclip", "wl-paste", "termux-clipboard-get", "pbpaste"} {
		if err := os.WriteFile(filepath.Join(bin, tool), []byte(script), 0o755); err != nil {
			t.Fatalf("write %s: %v", tool, err)
		}
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	msg := textinput.Paste()
	if reflect.ValueOf(msg).Kind() != reflect.String {
		t.Skipf("clipboard unavailable: %#v", msg)
	}
	return msg
}
