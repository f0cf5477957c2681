package models

// Config holds persisted preferences for the phoneinput demo and CLI.
type Config struct {
	DefaultCountry   string `json:"default_country,omitempty"`
	Layout           string `json:"layout,omitempty"`
	DarkTheme        bool   `json:"dark_theme,omitempty"`
	WithShadow       bool   `json:"with_shadow,omitempty"`
	DisableArrowIcon bool   `json:"disable_arrow_icon,omitempty"`
	Placeholder      string `json:"placeholder,omitempty"`
	LastCountry      string `json:"last_country,omitempty"`
}

// StartCountry returns the country the demo should open with: the last
// selected one, then the configured default.
func (c *Config) StartCountry() string {
	if c.LastCountry != "" {
		return c.LastCountry
	}
	return c.DefaultCountry
}
