package phoneinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"
)

const (
	defaultPickerRows        = 8
	defaultPickerWidth       = 36
	defaultFilterPlaceholder = "Search country"
)

// pickerAction is what a key press did to the picker.
type pickerAction int

const (
	pickerNone pickerAction = iota
	pickerSelect
	pickerClose
)

// countrySource adapts a country slice to fuzzy.Source.
type countrySource []Country

func (s countrySource) String(i int) string {
	c := s[i]
	return c.Name + " " + c.Code + " +" + c.CallingCode()
}

func (s countrySource) Len() int { return len(s) }

// FilterCountries fuzzy-matches query against name, code and calling code,
// best matches first. An empty query returns countries unchanged.
func FilterCountries(countries []Country, query string) []Country {
	query = strings.TrimSpace(query)
	if query == "" {
		return countries
	}
	matches := fuzzy.FindFrom(query, countrySource(countries))
	out := make([]Country, 0, len(matches))
	for _, m := range matches {
		out = append(out, countries[m.Index])
	}
	return out
}

// picker is the country selection overlay: a filter field above a
// scrollable list.
type picker struct {
	props        PickerProps
	all          []Country
	items        []Country
	selected     int
	scrollOffset int
	maxVisible   int
	filter       textinput.Model
}

func newPicker(dir CountryDirectory, props PickerProps) picker {
	p := picker{
		props:      props,
		maxVisible: defaultPickerRows,
	}
	if props.MaxVisible > 0 {
		p.maxVisible = props.MaxVisible
	}
	p.all = restrictCountries(dir, props.Countries)
	p.items = p.all

	p.filter = textinput.New()
	p.filter.Prompt = "/ "
	p.filter.Placeholder = props.FilterPlaceholder
	if p.filter.Placeholder == "" {
		p.filter.Placeholder = defaultFilterPlaceholder
	}
	return p
}

// restrictCountries keeps the order of codes when a restriction is given.
func restrictCountries(dir CountryDirectory, codes []string) []Country {
	if len(codes) == 0 {
		return dir.Countries()
	}
	out := make([]Country, 0, len(codes))
	for _, code := range codes {
		if c, ok := dir.Lookup(code); ok {
			out = append(out, c)
		}
	}
	return out
}

// open resets the filter and places the cursor on the current country.
func (p *picker) open(current string) tea.Cmd {
	p.filter.SetValue("")
	p.items = p.all
	p.selected = 0
	p.scrollOffset = 0
	for i, c := range p.items {
		if c.Code == current {
			p.selected = i
			break
		}
	}
	p.ensureVisible()
	if p.props.DisableFilter {
		return nil
	}
	return p.filter.Focus()
}

func (p *picker) close() {
	p.filter.Blur()
}

func (p *picker) applyFilter() {
	p.items = FilterCountries(p.all, p.filter.Value())
	p.selected = 0
	p.scrollOffset = 0
}

// ensureVisible scrolls so the selection sits inside the window.
func (p *picker) ensureVisible() {
	visibleCount := min(p.maxVisible, len(p.items))
	if p.selected < p.scrollOffset {
		p.scrollOffset = p.selected
	} else if p.selected >= p.scrollOffset+visibleCount {
		p.scrollOffset = p.selected - visibleCount + 1
	}
	maxScroll := max(0, len(p.items)-visibleCount)
	p.scrollOffset = max(0, min(p.scrollOffset, maxScroll))
}

func (p *picker) current() (Country, bool) {
	if p.selected < 0 || p.selected >= len(p.items) {
		return Country{}, false
	}
	return p.items[p.selected], true
}

func (p *picker) Update(msg tea.KeyMsg) (pickerAction, tea.Cmd) {
	defer p.ensureVisible()

	switch msg.String() {
	case "esc":
		return pickerClose, nil
	case "enter":
		if _, ok := p.current(); ok {
			return pickerSelect, nil
		}
		return pickerNone, nil
	case "up", "ctrl+p":
		if p.selected > 0 {
			p.selected--
		}
		return pickerNone, nil
	case "down", "ctrl+n":
		if p.selected < len(p.items)-1 {
			p.selected++
		}
		return pickerNone, nil
	case "pgup":
		p.selected = max(0, p.selected-p.maxVisible)
		return pickerNone, nil
	case "pgdown":
		p.selected = max(0, min(len(p.items)-1, p.selected+p.maxVisible))
		return pickerNone, nil
	case "home":
		p.selected = 0
		return pickerNone, nil
	case "end":
		p.selected = max(0, len(p.items)-1)
		return pickerNone, nil
	}

	if p.props.DisableFilter {
		return pickerNone, nil
	}
	before := p.filter.Value()
	var cmd tea.Cmd
	p.filter, cmd = p.filter.Update(msg)
	if p.filter.Value() != before {
		p.applyFilter()
	}
	return pickerNone, cmd
}

func (p *picker) label(c Country) string {
	var parts []string
	if !p.props.HideFlags {
		parts = append(parts, Flag(c.Code))
	}
	parts = append(parts, c.Name)
	if !p.props.HideCallingCode && c.CallingCode() != "" {
		parts = append(parts, "+"+c.CallingCode())
	}
	return strings.Join(parts, " ")
}

func (p *picker) View(st styleSet) string {
	var sb strings.Builder
	if !p.props.DisableFilter {
		sb.WriteString(p.filter.View())
		sb.WriteString("\n")
	}

	if len(p.items) == 0 {
		sb.WriteString(st.pickerMuted.Render("(no countries)"))
		return st.pickerBox.Render(sb.String())
	}

	p.ensureVisible()
	visibleCount := min(p.maxVisible, len(p.items))

	if p.scrollOffset > 0 {
		sb.WriteString(st.pickerMuted.Render("↑ more above"))
		sb.WriteString("\n")
	}
	for i := 0; i < visibleCount; i++ {
		idx := p.scrollOffset + i
		if idx >= len(p.items) {
			break
		}
		label := ansi.Truncate(p.label(p.items[idx]), defaultPickerWidth, "…")
		if i > 0 {
			sb.WriteString("\n")
		}
		if idx == p.selected {
			sb.WriteString(st.pickerCursor.Render("> "))
			sb.WriteString(st.pickerSelected.Render(label))
		} else {
			sb.WriteString("  ")
			sb.WriteString(st.pickerItem.Render(label))
		}
	}
	if p.scrollOffset+visibleCount < len(p.items) {
		sb.WriteString("\n")
		sb.WriteString(st.pickerMuted.Render("↓ more below"))
	}
	return st.pickerBox.Render(sb.String())
}
