package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/phoneinput/internal/config"
	"github.com/marcus/phoneinput/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write saved preferences",
	Long:  `Preferences live in .phoneinput/config.json under the working directory.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a preference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := config.Get(getBaseDir(), args[0])
		if err != nil {
			return err
		}
		output.Println(v)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Store a preference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(getBaseDir(), args[0], args[1]); err != nil {
			return err
		}
		output.Success("%s = %s", args[0], args[1])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every preference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range config.Keys() {
			v, err := config.Get(getBaseDir(), key)
			if err != nil {
				return err
			}
			output.Println(fmt.Sprintf("%s=%s", key, v))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd, configSetCmd, configListCmd)
}
