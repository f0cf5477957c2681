package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/marcus/phoneinput/internal/models"
	"github.com/marcus/phoneinput/pkg/phoneinput"
)

const configFile = ".phoneinput/config.json"

// Load reads the config from disk
func Load(baseDir string) (*models.Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Config{}, nil
		}
		return nil, err
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *models.Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// SetLastCountry records the country selected in the last demo session
func SetLastCountry(baseDir string, code string) error {
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	cfg.LastCountry = strings.ToUpper(code)
	return Save(baseDir, cfg)
}

type field struct {
	get func(*models.Config) string
	set func(*models.Config, string) error
}

func boolField(p func(*models.Config) *bool) field {
	return field{
		get: func(c *models.Config) string { return strconv.FormatBool(*p(c)) },
		set: func(c *models.Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", v)
			}
			*p(c) = b
			return nil
		},
	}
}

func countryField(p func(*models.Config) *string) field {
	return field{
		get: func(c *models.Config) string { return *p(c) },
		set: func(c *models.Config, v string) error {
			v = strings.TrimSpace(v)
			if v == "" {
				*p(c) = ""
				return nil
			}
			country, ok := phoneinput.DefaultDirectory().Lookup(v)
			if !ok {
				return fmt.Errorf("unknown country code %q", v)
			}
			*p(c) = country.Code
			return nil
		},
	}
}

var fields = map[string]field{
	"default_country": countryField(func(c *models.Config) *string { return &c.DefaultCountry }),
	"last_country":    countryField(func(c *models.Config) *string { return &c.LastCountry }),
	"layout": {
		get: func(c *models.Config) string { return c.Layout },
		set: func(c *models.Config, v string) error {
			switch phoneinput.Layout(v) {
			case phoneinput.LayoutFirst, phoneinput.LayoutSecond, "":
				c.Layout = v
				return nil
			}
			return fmt.Errorf("expected first or second, got %q", v)
		},
	},
	"placeholder": {
		get: func(c *models.Config) string { return c.Placeholder },
		set: func(c *models.Config, v string) error { c.Placeholder = v; return nil },
	},
	"dark_theme":         boolField(func(c *models.Config) *bool { return &c.DarkTheme }),
	"with_shadow":        boolField(func(c *models.Config) *bool { return &c.WithShadow }),
	"disable_arrow_icon": boolField(func(c *models.Config) *bool { return &c.DisableArrowIcon }),
}

// Keys returns the settable config keys, sorted
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the string form of a config value
func Get(baseDir, key string) (string, error) {
	f, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("unknown config key %q", key)
	}
	cfg, err := Load(baseDir)
	if err != nil {
		return "", err
	}
	return f.get(cfg), nil
}

// Set validates and stores a config value
func Set(baseDir, key, value string) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}
	if err := f.set(cfg, value); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return Save(baseDir, cfg)
}
