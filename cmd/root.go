package cmd

import (
	"gcont/pkg/config"
	"gcont/pkg/git"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the gcont command tree. The root command gathers files.
func NewRootCmd(logger *zap.Logger, changes git.ChangeLister) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	if changes == nil {
		changes = git.NewClient()
	}

	flags := config.Defaults()
	rootCmd := &cobra.Command{
		Use:   "gcont",
		Short: "gcont gathers project source files into one document",
		Long: `gcont detects the project type, selects source files with include and
exclude patterns and writes them into a single Markdown document,
ready to be pasted as context into a chat with a language model.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGather(cmd, flags, changes, logger)
		},
	}
	config.BindFlags(rootCmd.Flags(), &flags)

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute(logger *zap.Logger) error {
	return NewRootCmd(logger, nil).Execute()
}
