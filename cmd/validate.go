package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/phoneinput/internal/config"
	"github.com/marcus/phoneinput/internal/output"
	"github.com/marcus/phoneinput/pkg/phoneinput"
)

var validateCmd = &cobra.Command{
	Use:   "validate NUMBER",
	Short: "Check a number against a country's numbering plan",
	Long: `Parse NUMBER against the numbering plan of --country (or the configured
default country, falling back to GB) and report whether it is valid.

Exits non-zero when the number is not valid. With --strict the parse error
is printed instead of a plain "not valid".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		country, err := commandCountry(cmd)
		if err != nil {
			return err
		}

		policy := phoneinput.AbsorbFailures
		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			policy = phoneinput.ReportFailures
		}

		valid, err := phoneinput.CheckNumber(phoneinput.DefaultGrammar(), args[0], country, policy)
		if err != nil {
			return err
		}
		if !valid {
			return fmt.Errorf("%q is not a valid %s number", args[0], country)
		}
		output.Success("%s is a valid %s number", args[0], country)
		return nil
	},
}

var formatCmd = &cobra.Command{
	Use:   "format NUMBER",
	Short: "Format a number as an E.164 dial string",
	Long: `Parse NUMBER against the numbering plan of --country and print it in
E.164 form (+, country code, national number). The number is formatted even
when it is not valid; use --valid to require validity.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		country, err := commandCountry(cmd)
		if err != nil {
			return err
		}

		formatted, err := phoneinput.FormatE164(args[0], country)
		if err != nil {
			return err
		}
		if mustBeValid, _ := cmd.Flags().GetBool("valid"); mustBeValid && !phoneinput.IsValidNumber(args[0], country) {
			return fmt.Errorf("%q is not a valid %s number", args[0], country)
		}
		output.Println(formatted)
		return nil
	},
}

// commandCountry resolves --country, then the configured default country,
// then the fallback.
func commandCountry(cmd *cobra.Command) (string, error) {
	if c, _ := cmd.Flags().GetString("country"); c != "" {
		return strings.ToUpper(c), nil
	}
	cfg, err := config.Load(getBaseDir())
	if err != nil {
		return "", err
	}
	if cfg.DefaultCountry != "" {
		return cfg.DefaultCountry, nil
	}
	return phoneinput.FallbackCountry, nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(formatCmd)

	validateCmd.Flags().StringP("country", "c", "", "Country code (default: config or GB)")
	validateCmd.Flags().Bool("strict", false, "Report parse errors instead of 'not valid'")

	formatCmd.Flags().StringP("country", "c", "", "Country code (default: config or GB)")
	formatCmd.Flags().Bool("valid", false, "Fail unless the number is valid")
}
