package cli

import (
	"github.com/spf13/cobra"

	"github.com/topix-labs/topix/internal/branding"
	"github.com/topix-labs/topix/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool

	// startupWarnings are collected before flags are parsed and logged once
	// the log level is known.
	startupWarnings []string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` browses long-form topic documentation. Every topic is a command of
its own; "topic" picks one by partial name.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogger(cmd.ErrOrStderr(), config.Get(config.KeyLogLevel), verbose)
		for _, w := range startupWarnings {
			logger.Warn("skipped topic", "reason", w)
		}
		startupWarnings = nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.AddCommand(newTopicCmd(), newTopicsCmd())
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	config.Load()
	startupWarnings = loadTopics(rootCmd, topicSources(), buildVersion)
	return rootCmd.Execute()
}
