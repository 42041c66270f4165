package cli

import (
	"fmt"

	"github.com/jeweler-labs/jeweler/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write Jeweler configuration stored at ~/.jeweler/config.yaml.

Keys:
  hosting.host           host used in remote URLs (github.com)
  hosting.api_url        base URL of the hosting API (https://github.com)
  hosting.section        git config section with user/token (github)
  hosting.settle_delay   pause before the first push (2s)
  defaults.test_style    shoulda, testunit, minitest, or bacon
  defaults.summary       summary used when --summary is omitted
  identity.gitconfig     read identity from this file instead of ~/.gitconfig`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
