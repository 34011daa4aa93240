package cmd

import (
	"fmt"

	"gcont/pkg/combine"
	"gcont/pkg/config"
	"gcont/pkg/git"
	"gcont/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runGather resolves settings, gathers the files and reports the outcome on
// the command's output.
func runGather(cmd *cobra.Command, flags config.Flags, changes git.ChangeLister, logger *zap.Logger) error {
	logging.SetVerbose(flags.Verbose)

	settings, err := config.Resolve(flags, logger)
	if err != nil {
		return fmt.Errorf("failed to resolve configuration: %w", err)
	}
	logging.SetVerbose(settings.Verbose)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Detected project type: %s\n", settings.Project)

	result, err := combine.Execute(settings, changes, logger)
	if err != nil {
		return err
	}

	if settings.Verbose {
		fmt.Fprintln(out, "\nGathered files:")
		for _, f := range result.Files {
			fmt.Fprintf(out, "- %s\n", f.Path)
		}
		fmt.Fprintln(out)
	}
	if len(result.Skipped) > 0 {
		fmt.Fprintf(out, "Skipped content of %d file(s) that could not be read as text.\n", len(result.Skipped))
	}

	fmt.Fprintf(out, "%s has been generated with %d files.\n", result.Output, len(result.Files))
	return nil
}
