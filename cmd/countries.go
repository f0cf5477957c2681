package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/phoneinput/internal/output"
	"github.com/marcus/phoneinput/pkg/phoneinput"
)

var countriesCmd = &cobra.Command{
	Use:   "countries [query]",
	Short: "List countries and their calling codes",
	Long: `List every country the picker offers with its calling code. An optional
query fuzzy-matches name, code and calling code, best matches first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		countries := phoneinput.DefaultDirectory().Countries()
		if len(args) == 1 {
			countries = phoneinput.FilterCountries(countries, args[0])
		}
		if len(countries) == 0 {
			output.Warning("no countries match %q", args[0])
			return nil
		}

		flags, _ := cmd.Flags().GetBool("flags")
		opts := output.CountryTableOptions{ShowFlags: flags}

		if md, _ := cmd.Flags().GetBool("markdown"); md {
			fd := int(os.Stdout.Fd())
			if !term.IsTerminal(fd) {
				output.Println(output.CountryMarkdown(countries, opts))
				return nil
			}
			if w, _, err := term.GetSize(fd); err == nil {
				opts.Width = w
			}
			rendered, err := output.RenderCountryMarkdown(countries, opts)
			if err != nil {
				return err
			}
			output.Println(rendered)
			return nil
		}

		output.Println(output.CountryTable(countries, opts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countriesCmd)

	countriesCmd.Flags().Bool("flags", false, "Show flag glyphs")
	countriesCmd.Flags().Bool("markdown", false, "Render as a markdown table")
}
