package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/marcus/phoneinput/internal/models"
	"github.com/marcus/phoneinput/internal/output"
	"github.com/marcus/phoneinput/pkg/phoneinput"
)

// runCommand executes the root command in a temp working directory and
// returns what was written to stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var stdout bytes.Buffer
	origOut := output.Stdout
	output.Stdout = &stdout
	defer func() { output.Stdout = origOut }()

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestPropsFromConfig(t *testing.T) {
	cfg := &models.Config{
		DefaultCountry: "US",
		LastCountry:    "FR",
		Layout:         "second",
		WithShadow:     true,
	}

	t.Run("config only", func(t *testing.T) {
		var f inputFlags
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		addInputFlags(fs, &f)

		p := propsFromConfig(cfg, fs, f)
		if p.DefaultCode != "FR" {
			t.Errorf("DefaultCode = %q, want last country FR", p.DefaultCode)
		}
		if p.Layout != phoneinput.LayoutSecond {
			t.Errorf("Layout = %q, want second", p.Layout)
		}
		if !p.WithShadow {
			t.Error("WithShadow not carried from config")
		}
		if p.Placeholder != "Phone number" {
			t.Errorf("Placeholder = %q", p.Placeholder)
		}
	})

	t.Run("flags override config", func(t *testing.T) {
		var f inputFlags
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		addInputFlags(fs, &f)
		if err := fs.Parse([]string{"--country", "de", "--layout", "first", "--shadow=false", "--value", "0301", "--disabled"}); err != nil {
			t.Fatalf("parse flags: %v", err)
		}

		p := propsFromConfig(cfg, fs, f)
		if p.DefaultCode != "de" {
			t.Errorf("DefaultCode = %q, want de", p.DefaultCode)
		}
		if p.Layout != phoneinput.LayoutFirst {
			t.Errorf("Layout = %q, want first", p.Layout)
		}
		if p.WithShadow {
			t.Error("--shadow=false did not override config")
		}
		if p.DefaultValue != "0301" || !p.Disabled {
			t.Errorf("DefaultValue = %q, Disabled = %v", p.DefaultValue, p.Disabled)
		}
	})
}

func TestValidateCommand(t *testing.T) {
	out, err := runCommand(t, "validate", "--country", "US", "2015550123")
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(out, "valid US number") {
		t.Errorf("output = %q", out)
	}

	if _, err := runCommand(t, "validate", "--country", "GB", "0"); err == nil {
		t.Error("expected error for invalid number")
	}
}

func TestFormatCommand(t *testing.T) {
	out, err := runCommand(t, "format", "--country", "US", "--valid=false", "2015550123")
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if strings.TrimSpace(out) != "+12015550123" {
		t.Errorf("output = %q, want +12015550123", out)
	}

	if _, err := runCommand(t, "format", "--country", "GB", "--valid=false", "0"); err == nil {
		t.Error("expected parse error")
	}
	if _, err := runCommand(t, "format", "--country", "US", "--valid", "201555"); err == nil {
		t.Error("--valid should reject an invalid number")
	}
}

func TestCommandCountryFallsBackToGB(t *testing.T) {
	out, err := runCommand(t, "format", "--country", "", "--valid=false", "07400123456")
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if strings.TrimSpace(out) != "+447400123456" {
		t.Errorf("output = %q, want +447400123456", out)
	}
}

func TestCountriesCommand(t *testing.T) {
	out, err := runCommand(t, "countries", "--markdown=false", "--flags=false", "france")
	if err != nil {
		t.Fatalf("countries failed: %v", err)
	}
	first := strings.SplitN(out, "\n", 2)[0]
	if !strings.HasPrefix(first, "FR") || !strings.Contains(first, "+33") {
		t.Errorf("first line = %q, want France", first)
	}
}

func TestConfigCommands(t *testing.T) {
	t.Chdir(t.TempDir())

	var stdout bytes.Buffer
	origOut := output.Stdout
	output.Stdout = &stdout
	defer func() { output.Stdout = origOut }()

	rootCmd.SetArgs([]string{"config", "set", "layout", "second"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	stdout.Reset()

	rootCmd.SetArgs([]string{"config", "get", "layout"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config get failed: %v", err)
	}
	if strings.TrimSpace(stdout.String()) != "second" {
		t.Errorf("config get layout = %q", stdout.String())
	}

	rootCmd.SetArgs([]string{"config", "set", "layout", "third"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for bad layout")
	}
}
