package cli

import (
	"errors"

	"github.com/jeweler-labs/jeweler/internal/ui"
	"github.com/jeweler-labs/jeweler/internal/versionfile"
	"github.com/spf13/cobra"
)

func init() {
	versionFileCmd.AddCommand(versionFileCheckCmd)
	rootCmd.AddCommand(versionFileCmd)
}

var versionFileCmd = &cobra.Command{
	Use:   "version-file",
	Short: "Inspect a gem's " + versionfile.FileName,
}

var versionFileCheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Check a " + versionfile.FileName + " file, or the one in a gem directory",
	Long: `Check a VERSION.yml against the format jeweler writes: a mapping with exactly
the keys major, minor, and patch, each a non-negative integer. Every problem
is listed; the command fails if there is at least one.

With no argument the current directory is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := "."
		if len(args) == 1 {
			target = args[0]
		}
		path, err := versionfile.Locate(target)
		if err != nil {
			return err
		}

		out := ui.New(cmd.OutOrStdout())
		out.Info("Checking %s", path)

		v, err := versionfile.ReadFile(path)
		var invalid *versionfile.InvalidError
		if errors.As(err, &invalid) {
			for _, issue := range invalid.Issues {
				out.Warn("%s", issue)
			}
		}
		if err != nil {
			return err
		}

		out.Success("%s is valid (version %s)", path, v)
		return nil
	},
}
