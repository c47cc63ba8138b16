package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automoto/ninja/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective config as YAML",
	Long: `Prints the config after the file overlay, ready to save as ` + config.FileName + `.
Fields left out of a config file keep these values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.Defaults().Marshal()
		if err != nil {
			return err
		}
		if configPath != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "# from %s\n", configPath)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
