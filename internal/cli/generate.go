package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kedrogen-labs/kedrogen/internal/branding"
	"github.com/kedrogen-labs/kedrogen/internal/compose"
	"github.com/kedrogen-labs/kedrogen/internal/config"
	"github.com/kedrogen-labs/kedrogen/internal/envprobe"
	"github.com/kedrogen-labs/kedrogen/internal/fetch"
	"github.com/kedrogen-labs/kedrogen/internal/logging"
	"github.com/kedrogen-labs/kedrogen/internal/manifest"
	"github.com/kedrogen-labs/kedrogen/internal/merge"
	"github.com/kedrogen-labs/kedrogen/internal/render"
	"github.com/kedrogen-labs/kedrogen/internal/source"
)

var (
	generateCheckout  string
	generateDirectory string
	generatePassword  string
	generateVerbose   bool
	generateQuiet     bool
	generateVersion   bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateCheckout, "checkout", "c", "", "The branch, tag or commit ID to checkout after clone")
	generateCmd.Flags().StringVarP(&generateDirectory, "directory", "d", "", "Directory within the repository where cookiecutter.json lives")
	generateCmd.Flags().StringVarP(&generatePassword, "password", "p", "", "Password for extracting a password-protected zipfile")
	generateCmd.Flags().BoolVar(&generateVerbose, "verbose", false, "Enable verbose output with detailed progress information")
	generateCmd.Flags().BoolVarP(&generateQuiet, "quiet", "q", false, "Suppress all non-error messages")
	generateCmd.Flags().BoolVarP(&generateVersion, "version", "v", false, "Show the version and exit")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <template>",
	Short: "Generate a Kedro project from a cookiecutter template in the current directory",
	Long: `Generate a Kedro project from a cookiecutter template in the current directory.

The template can be a path to a local directory, a URL to a remote VCS
repository (including gh:/gl:/bb: shorthands), or a path to a local or
remote zip file.

Examples:
  kedrogen generate gh:kedro-org/kedro-starters --directory spaceflights-pandas
  kedrogen generate ./my-template
  kedrogen generate https://example.com/template.zip -p secret`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Eager version flag: short-circuits all other processing.
	if generateVersion {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", branding.CLIName(), buildVersion)
		return nil
	}

	if generateVerbose && generateQuiet {
		return fmt.Errorf("cannot use both --verbose and --quiet together")
	}

	if len(args) != 1 {
		return fmt.Errorf("requires a template source argument")
	}

	log := logging.New(generateVerbose, generateQuiet, cmd.ErrOrStderr())
	ctx := cmd.Context()

	// Validation gates: directory name and framework presence, before any
	// side effect.
	dirName, err := envprobe.CurrentDirName()
	if err != nil {
		return err
	}
	if err := envprobe.ValidateDirName(dirName); err != nil {
		return err
	}

	probe := &envprobe.Probe{}
	kedroVersion, err := probe.FrameworkVersion(ctx)
	if err != nil {
		return err
	}

	log.Info("using current directory as project name: '%s'", dirName)
	log.Info("detected Kedro version: %s", kedroVersion)

	fixed := envprobe.FixedContext(dirName, kedroVersion)

	config.Load()
	src, err := source.Resolve(args[0], config.Abbreviations())
	if err != nil {
		return err
	}
	log.Debug("template source classified as %s", src.Kind)

	templatesDir, err := config.TemplatesDir()
	if err != nil {
		return err
	}

	fetched, err := fetch.Fetch(ctx, src, fetch.Options{
		Checkout:  generateCheckout,
		Directory: generateDirectory,
		Password:  generatePassword,
		CloneDir:  templatesDir,
		Log:       log,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cleanupErr := fetched.Cleanup(); cleanupErr != nil {
			log.Warn("could not remove temporary template: %v", cleanupErr)
		}
	}()

	schema, err := manifest.Load(fetched.TemplateDir)
	if err != nil {
		return err
	}

	renderContext := compose.Reconcile(schema.Keys(), fixed)
	log.Debug("using the cookiecutter context: %s", compose.Format(renderContext))

	outputDir, err := os.MkdirTemp("", "kedrogen-render-*")
	if err != nil {
		return fmt.Errorf("creating render output directory: %w", err)
	}
	defer func() {
		if cleanupErr := os.RemoveAll(outputDir); cleanupErr != nil {
			log.Warn("could not remove render output directory: %v", cleanupErr)
		}
	}()

	engine := render.NewCookiecutterEngine()
	projectDir, err := engine.Render(ctx, fetched.TemplateDir, renderContext, outputDir)
	if err != nil {
		return err
	}

	destDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	merger := &merge.Merger{
		Confirm: &merge.TerminalConfirmer{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr()},
		Log:     log,
	}
	result, err := merger.Merge(projectDir, destDir)
	if err != nil {
		return err
	}

	for _, entry := range result.Failed() {
		log.Error("failed to move '%s': %v", entry.Name, entry.Err)
	}
	if result.CleanupErr != nil {
		log.Warn("%v", result.CleanupErr)
	}
	if failed := result.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d entries could not be merged", len(failed), len(result.Entries))
	}

	log.Info("project `%s` generated successfully in the current directory", dirName)
	return nil
}
