package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/marcus/phoneinput/internal/config"
	"github.com/marcus/phoneinput/internal/demo"
	"github.com/marcus/phoneinput/internal/models"
	"github.com/marcus/phoneinput/pkg/phoneinput"
)

// inputFlags mirror the component props settable from the command line.
type inputFlags struct {
	country     string
	layout      string
	placeholder string
	value       string
	flagSize    int
	dark        bool
	shadow      bool
	noArrow     bool
	disabled    bool
}

var demoFlags inputFlags

func addInputFlags(fs *pflag.FlagSet, f *inputFlags) {
	fs.StringVarP(&f.country, "country", "c", "", "Default country (ISO 3166-1 alpha-2)")
	fs.StringVar(&f.layout, "layout", "", "Layout: first (code in text) or second (code in button)")
	fs.StringVar(&f.placeholder, "placeholder", "", "Placeholder text")
	fs.StringVar(&f.value, "value", "", "Initial number text")
	fs.IntVar(&f.flagSize, "flag-size", 0, "Padding around the flag glyph")
	fs.BoolVar(&f.dark, "dark", false, "Use the dark theme")
	fs.BoolVar(&f.shadow, "shadow", false, "Draw a drop shadow")
	fs.BoolVar(&f.noArrow, "no-arrow", false, "Hide the dropdown indicator")
	fs.BoolVar(&f.disabled, "disabled", false, "Start disabled (ctrl+d toggles)")
}

// propsFromConfig starts from saved preferences and applies flags the user
// set explicitly.
func propsFromConfig(cfg *models.Config, fs *pflag.FlagSet, f inputFlags) phoneinput.Props {
	p := phoneinput.Props{
		DefaultCode:      cfg.StartCountry(),
		Layout:           phoneinput.ParseLayout(cfg.Layout),
		Placeholder:      cfg.Placeholder,
		WithDarkTheme:    cfg.DarkTheme,
		WithShadow:       cfg.WithShadow,
		DisableArrowIcon: cfg.DisableArrowIcon,
	}
	if p.Placeholder == "" {
		p.Placeholder = "Phone number"
	}

	if fs.Changed("country") {
		p.DefaultCode = f.country
	}
	if fs.Changed("layout") {
		p.Layout = phoneinput.ParseLayout(f.layout)
	}
	if fs.Changed("placeholder") {
		p.Placeholder = f.placeholder
	}
	if fs.Changed("dark") {
		p.WithDarkTheme = f.dark
	}
	if fs.Changed("shadow") {
		p.WithShadow = f.shadow
	}
	if fs.Changed("no-arrow") {
		p.DisableArrowIcon = f.noArrow
	}
	p.DefaultValue = f.value
	p.FlagSize = f.flagSize
	p.Disabled = f.disabled
	return p
}

func runDemo(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("the interactive field needs a terminal; use 'phoneinput validate' or 'phoneinput format' in scripts")
	}

	baseDir := getBaseDir()
	cfg, err := config.Load(baseDir)
	if err != nil {
		return err
	}
	if demoFlags.layout != "" && demoFlags.layout != string(phoneinput.LayoutFirst) && demoFlags.layout != string(phoneinput.LayoutSecond) {
		return fmt.Errorf("unknown layout %q (want first or second)", demoFlags.layout)
	}

	props := propsFromConfig(cfg, cmd.Flags(), demoFlags)
	logger.Debug("starting demo", "country", props.DefaultCode, "layout", props.Layout)

	country, err := demo.Run(cmd.Context(), props, logger)
	if err != nil {
		return err
	}
	if country != "" {
		if err := config.SetLastCountry(baseDir, country); err != nil {
			logger.Warn("could not save last country", "err", err)
		}
	}
	return nil
}
