package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/topix-labs/topix/internal/chooser"
	"github.com/topix-labs/topix/internal/config"
	"github.com/topix-labs/topix/internal/host"
	"github.com/topix-labs/topix/internal/topic"
)

func newTopicCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topic [topic_name]",
		Aliases: []string{"core-topic"},
		Short:   "Read detailed documentation on a given topic",
		Long: `Read detailed documentation on a given topic.

topic_name is matched as a substring of topic names. If it matches a single
topic, that topic is shown. If it matches several, or is omitted, a list of
topic descriptions (with names in parentheses) is shown to pick from.

See also: docs-readme`,
		Example: `  topix topic              Pick from all available topics
  topix topic docs-readme  Show the README topic
  topix topic docs-r       Filter topics for those containing "docs-r"`,
		Args: cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			"topics": "docs-readme",
		},
		ValidArgsFunction: completeTopics,
		RunE:              runTopic,
	}
}

func runTopic(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	h := host.New(cmd.Root(), logger)
	r := topic.NewResolver(h, newChooser(cmd), h, resolverOptions()...)

	status, err := r.Run(cmd.Context(), query)
	if err != nil {
		var exitErr *ExitError
		if status > 1 && !errors.As(err, &exitErr) {
			return &ExitError{Code: status, Err: err}
		}
		return err
	}
	if status != 0 {
		return &ExitError{Code: status}
	}
	return nil
}

// newChooser returns the menu reading from the command's input. It returns
// nil when the input is a file that is not a terminal, so an ambiguous query
// fails instead of waiting on a prompt nobody can answer.
func newChooser(cmd *cobra.Command) topic.Chooser {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !chooser.IsTerminal(f) {
		logger.Debug("input is not a terminal, topic choice disabled")
		return nil
	}
	return chooser.New(in, cmd.ErrOrStderr())
}

// resolverOptions reads resolver settings from the config.
func resolverOptions() []topic.Option {
	return []topic.Option{
		topic.WithDefaultChoice(config.GetInt(config.KeyDefaultChoice)),
		topic.WithLanguage(collationLanguage()),
		topic.WithLogger(logger),
	}
}

// collationLanguage parses the configured locale, falling back to the
// language-neutral ordering.
func collationLanguage() language.Tag {
	locale := config.Get(config.KeyLocale)
	if locale == "" {
		return language.Und
	}
	tag, err := language.Parse(locale)
	if err != nil {
		logger.Warn("unknown locale, using neutral ordering", "locale", locale, "err", err)
		return language.Und
	}
	return tag
}

// completeTopics completes the topic_name argument with topic names.
func completeTopics(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	idx := topic.BuildIndex(host.New(cmd.Root(), nil))
	var out []string
	for _, t := range idx.Topics() {
		if strings.HasPrefix(t.ID, toComplete) {
			out = append(out, t.ID+"\t"+t.Description)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
