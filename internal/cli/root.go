package cli

import (
	"os"

	"github.com/jeweler-labs/jeweler/internal/branding"
	"github.com/jeweler-labs/jeweler/internal/config"
	"github.com/jeweler-labs/jeweler/internal/generator"
	"github.com/jeweler-labs/jeweler/internal/identity"
	"github.com/jeweler-labs/jeweler/internal/project"
	"github.com/jeweler-labs/jeweler/internal/publish"
	"github.com/jeweler-labs/jeweler/internal/repo"
	"github.com/jeweler-labs/jeweler/internal/scaffold"
	"github.com/jeweler-labs/jeweler/internal/ui"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	genDirectory  string
	genTestStyle  string
	genSummary    string
	genCreateRepo bool
	genVersion    string
)

func init() {
	addGenerateFlags(rootCmd)
}

// addGenerateFlags binds the generation flags on cmd. The root command and
// new share the same variables.
func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&genDirectory, "directory", "", "Target directory (default: ./<project-name>)")
	f.StringVar(&genTestStyle, "test-style", "", "Test framework: shoulda, testunit, minitest, or bacon (default from config, else shoulda)")
	f.StringVar(&genSummary, "summary", "", "One-line summary of the gem (default from config, else TODO)")
	f.BoolVar(&genCreateRepo, "create-repo", false, "Create the repository on the hosting service, push, and enable gem building")
	f.StringVar(&genVersion, "gem-version", project.DefaultVersion, "Initial version written to VERSION.yml")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <project-name>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates a new gem: a lib/test/features skeleton rendered from templates,
a git repository with an initial commit and an origin remote, and optionally
the hosted repository itself with gem building switched on.

Identity comes from your global git config (user.name, user.email,
github.user, github.token).

A project named like one of the commands below (config, new, help, ...)
must be generated with "jeweler new <project-name>".

Examples:
  jeweler my-gem
  jeweler widget-maker --test-style minitest --summary "Makes widgets"
  jeweler my-gem --create-repo
  jeweler new config`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	config.Load()

	style := genTestStyle
	if style == "" {
		style = config.DefaultTestStyle()
	}
	summary := genSummary
	if summary == "" {
		summary = config.DefaultSummary()
	}

	spec, err := project.NewSpec(args[0], project.Options{
		Directory:    genDirectory,
		TestStyle:    style,
		Summary:      summary,
		CreateRemote: genCreateRepo,
		Version:      genVersion,
	})
	if err != nil {
		return err
	}

	source, err := identitySource()
	if err != nil {
		return err
	}

	out := ui.New(cmd.OutOrStdout())
	host := config.HostingHost()
	gen := generator.New(generator.Deps{
		Resolver:     identity.NewResolver(source, config.HostingSection()),
		Scaffolder:   scaffold.New(out, host),
		Bootstrapper: repo.NewBootstrapper(repo.GoGit{}, out),
		Publisher:    publish.New(config.HostingAPIURL(), publish.WithSettleDelay(config.SettleDelay())),
		Reporter:     out,
		Host:         host,
	})
	return gen.Run(cmd.Context(), spec)
}

func identitySource() (identity.Source, error) {
	if path := config.GitConfigPath(); path != "" {
		cfg, err := identity.LoadFile(path)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
	cfg, err := identity.Global()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		ui.New(os.Stderr).Fail("%v", err)
		return err
	}
	return nil
}
