package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	addGenerateFlags(newCmd)
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <project-name>",
	Short: "Generate a new gem project",
	Long: `Generate a new gem project. Same as "jeweler <project-name>", but the name is
never taken for a command, so gems called config, version, or help work too.

Examples:
  jeweler new config
  jeweler new help --test-style bacon`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}
