package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/topix-labs/topix/internal/config"
	"github.com/topix-labs/topix/internal/docs"
	"github.com/topix-labs/topix/internal/registry"
	"github.com/topix-labs/topix/internal/topic"
)

const topicGroupID = "topics"

// topicSources returns the built-in topics followed by the configured
// directories, in priority order.
func topicSources() []registry.Source {
	sources := []registry.Source{{Name: "builtin", FS: docs.FS(), Root: docs.Root}}
	for _, dir := range config.GetStringSlice(config.KeyDirs) {
		sources = append(sources, registry.DirSource(dir))
	}
	return sources
}

// loadTopics discovers topic documents and registers one command per topic
// under root. It returns a warning for every document that was skipped.
func loadTopics(root *cobra.Command, sources []registry.Source, version string) []string {
	res := registry.Discover(sources, version)
	return append(res.Warnings, registerTopics(root, res.Topics)...)
}

// registerTopics adds a command for each topic. Names already used by a
// command are skipped; aliases already in use are dropped.
func registerTopics(root *cobra.Command, topics []registry.Topic) []string {
	if !root.ContainsGroup(topicGroupID) {
		root.AddGroup(&cobra.Group{ID: topicGroupID, Title: "Topics:"})
	}

	taken := make(map[string]bool)
	for _, c := range root.Commands() {
		taken[c.Name()] = true
		for _, a := range c.Aliases {
			taken[a] = true
		}
	}
	// Cobra adds these on first Execute.
	taken["help"] = true
	taken["completion"] = true

	var warnings []string
	for _, t := range topics {
		if taken[t.Name] {
			warnings = append(warnings, fmt.Sprintf("%s:%s: topic %q clashes with an existing command", t.Source, t.Path, t.Name))
			continue
		}
		taken[t.Name] = true

		var aliases []string
		for _, a := range t.Aliases {
			if taken[a] {
				warnings = append(warnings, fmt.Sprintf("%s:%s: alias %q of topic %q is already in use", t.Source, t.Path, a, t.Name))
				continue
			}
			taken[a] = true
			aliases = append(aliases, a)
		}

		root.AddCommand(newDocCmd(t, aliases))
	}
	return warnings
}

// newDocCmd builds the command that prints a topic document. The topic tag
// annotation records the source the document came from; front matter tags
// become annotations of their own.
func newDocCmd(t registry.Topic, aliases []string) *cobra.Command {
	body := t.Body
	annotations := make(map[string]string, len(t.Tags)+1)
	for _, tag := range t.Tags {
		annotations[tag] = ""
	}
	annotations[topic.Tag] = t.Source

	return &cobra.Command{
		Use:         t.Name,
		Short:       t.Description,
		Aliases:     aliases,
		Hidden:      t.Hidden,
		GroupID:     topicGroupID,
		Args:        cobra.NoArgs,
		Annotations: annotations,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), body)
			return err
		},
	}
}
