package cli

import (
	"github.com/kedrogen-labs/kedrogen/internal/branding"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates a Kedro project from a cookiecutter template into the
current working directory. The project name, repository name, package name,
and Kedro version are derived from the environment instead of interactive
prompts; the template's remaining variables fall back to its own defaults.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
