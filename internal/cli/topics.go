package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/topix-labs/topix/internal/host"
	"github.com/topix-labs/topix/internal/topic"
)

// descWidth is the widest description printed in the topics table, in runes.
const descWidth = 60

func newTopicsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "topics [filter]",
		Short: "List available topics",
		Long: `List every available topic, ordered by description.

The optional filter keeps topics whose name contains it, the same way the
topic command filters. Nothing is prompted for.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeTopics,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTopics(cmd, args, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

// topicEntry represents a topic for display.
type topicEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Aliases     []string `json:"aliases,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Source      string   `json:"source,omitempty"`
	Hidden      bool     `json:"hidden,omitempty"`
}

func runTopics(cmd *cobra.Command, args []string, asJSON bool) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	topics := topic.BuildIndex(host.New(cmd.Root(), logger)).Filter(query).Topics()
	topic.SortTopics(topics, collationLanguage())

	entries := make([]topicEntry, 0, len(topics))
	for _, t := range topics {
		entries = append(entries, newTopicEntry(t))
	}

	if asJSON {
		return printTopicsJSON(cmd, entries)
	}
	if len(entries) == 0 {
		msg := "No topics found"
		if query != "" {
			msg += fmt.Sprintf(" matching %q", query)
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	}
	return printTopicsTable(cmd, entries)
}

// newTopicEntry reads display details from the backing command, when the
// topic is backed by one.
func newTopicEntry(t topic.Topic) topicEntry {
	e := topicEntry{Name: t.ID, Description: t.Description}
	if c, ok := t.Ref.(*cobra.Command); ok {
		e.Aliases = c.Aliases
		e.Source = c.Annotations[topic.Tag]
		e.Hidden = c.Hidden
		for k := range c.Annotations {
			if k != topic.Tag {
				e.Tags = append(e.Tags, k)
			}
		}
		sort.Strings(e.Tags)
	}
	return e
}

func printTopicsTable(cmd *cobra.Command, entries []topicEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION\tALIASES")
	for _, e := range entries {
		aliases := strings.Join(e.Aliases, ", ")
		if aliases == "" {
			aliases = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, truncate(e.Description, descWidth), aliases)
	}
	return w.Flush()
}

func printTopicsJSON(cmd *cobra.Command, entries []topicEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
