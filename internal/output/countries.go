package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"

	"github.com/marcus/phoneinput/pkg/phoneinput"
)

// CountryTableOptions configures country list rendering
type CountryTableOptions struct {
	ShowFlags bool
	Width     int // wrap width for markdown rendering, 0 = glamour default
}

// CountryTable renders countries as aligned plain-text columns
func CountryTable(countries []phoneinput.Country, opts CountryTableOptions) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	for _, c := range countries {
		name := c.Name
		if opts.ShowFlags {
			name = c.Flag() + " " + name
		}
		fmt.Fprintf(w, "%s\t+%s\t%s\n", c.Code, c.CallingCode(), name)
	}
	w.Flush()
	return strings.TrimRight(buf.String(), "\n")
}

// CountryMarkdown builds a markdown table of countries
func CountryMarkdown(countries []phoneinput.Country, opts CountryTableOptions) string {
	var sb strings.Builder
	sb.WriteString("| Code | Dial | Country |\n")
	sb.WriteString("|------|------|---------|\n")
	for _, c := range countries {
		name := escapeCell(c.Name)
		if opts.ShowFlags {
			name = c.Flag() + " " + name
		}
		fmt.Fprintf(&sb, "| %s | +%s | %s |\n", c.Code, c.CallingCode(), name)
	}
	return sb.String()
}

// RenderCountryMarkdown renders the markdown table for a terminal
func RenderCountryMarkdown(countries []phoneinput.Country, opts CountryTableOptions) (string, error) {
	ropts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if opts.Width > 0 {
		ropts = append(ropts, glamour.WithWordWrap(opts.Width))
	}
	r, err := glamour.NewTermRenderer(ropts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(CountryMarkdown(countries, opts))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
