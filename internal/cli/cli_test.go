package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/topix-labs/topix/internal/config"
	"github.com/topix-labs/topix/internal/registry"
)

var testTopics = []registry.Topic{
	{Name: "docs-readme", Description: "Readme", Body: "readme body\n", Source: "builtin", Path: "topics/docs-readme.md", Aliases: []string{"readme"}},
	{Name: "docs-api", Description: "api docs", Body: "api body\n", Source: "builtin", Path: "topics/docs-api.md"},
	{Name: "docs-zoo", Description: "Zoo", Body: "zoo body\n", Source: "dir:/tmp/t", Path: "zoo.md", Hidden: true},
	{Name: "guide-start", Description: "Getting started", Body: "start body\n", Source: "builtin", Path: "topics/guide-start.md"},
}

// setupConfig loads default settings from an empty temp home.
func setupConfig(t *testing.T) {
	t.Helper()
	t.Setenv("TOPIX_HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.Load()
}

// testRoot builds a fresh command tree with the topic commands and topics.
func testRoot(t *testing.T, input string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	setupConfig(t)

	root := &cobra.Command{Use: "topix", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(newTopicCmd(), newTopicsCmd())
	if warnings := registerTopics(root, testTopics); len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(input))
	return root, &out, &errOut
}

func run(root *cobra.Command, args ...string) error {
	root.SetArgs(args)
	return root.Execute()
}
