package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/topix-labs/topix/internal/topic"
)

// HiddenTag is added to the tags of hidden commands.
const HiddenTag = "hidden"

// Commands exposes a Cobra command tree as a topic.Registry and topic.Executor.
type Commands struct {
	root   *cobra.Command
	logger *log.Logger
}

// New wraps the given root command. A nil logger disables logging.
func New(root *cobra.Command, logger *log.Logger) *Commands {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Commands{root: root, logger: logger}
}

// Commands enumerates every command below the root, depth first in Cobra's
// order. Each annotation key becomes a tag.
func (c *Commands) Commands() []topic.CommandMeta {
	var out []topic.CommandMeta
	c.walk(func(id string, cmd *cobra.Command) {
		out = append(out, topic.CommandMeta{
			ID:          id,
			Description: cmd.Short,
			Tags:        tags(cmd),
			Ref:         cmd,
		})
	})
	return out
}

// Execute runs the command registered under id with args, without going back
// through the root command. The exit status is 0 on success, the code carried
// by an error implementing ExitCode() int, or 1.
func (c *Commands) Execute(ctx context.Context, id string, args []string) (int, error) {
	cmd := c.Lookup(id)
	if cmd == nil {
		return 1, fmt.Errorf("command %q is not registered", id)
	}
	if !cmd.Runnable() {
		return 1, fmt.Errorf("command %q is not runnable", id)
	}

	cmd.SetContext(ctx)
	if err := cmd.ParseFlags(args); err != nil {
		return 1, fmt.Errorf("parsing flags for %q: %w", id, err)
	}
	positional := cmd.Flags().Args()
	if err := cmd.ValidateArgs(positional); err != nil {
		return 1, fmt.Errorf("arguments for %q: %w", id, err)
	}

	c.logger.Debug("running command", "id", id, "args", positional)
	var err error
	if cmd.RunE != nil {
		err = cmd.RunE(cmd, positional)
	} else {
		cmd.Run(cmd, positional)
	}
	if err != nil {
		var coded interface{ ExitCode() int }
		if errors.As(err, &coded) {
			return coded.ExitCode(), err
		}
		return 1, err
	}
	return 0, nil
}

// Lookup returns the command registered under id, or nil.
func (c *Commands) Lookup(id string) *cobra.Command {
	var found *cobra.Command
	c.walk(func(cid string, cmd *cobra.Command) {
		if found == nil && cid == id {
			found = cmd
		}
	})
	return found
}

// walk visits every descendant of the root with its identifier: the command
// path below the root, space separated ("docs-readme", "config get").
func (c *Commands) walk(fn func(id string, cmd *cobra.Command)) {
	if c.root == nil {
		return
	}
	var visit func(prefix string, cmd *cobra.Command)
	visit = func(prefix string, cmd *cobra.Command) {
		for _, sub := range cmd.Commands() {
			id := sub.Name()
			if prefix != "" {
				id = prefix + " " + id
			}
			fn(id, sub)
			visit(id, sub)
		}
	}
	visit("", c.root)
}

// tags returns the sorted annotation keys of cmd, plus HiddenTag for hidden
// commands.
func tags(cmd *cobra.Command) []string {
	out := make([]string, 0, len(cmd.Annotations)+1)
	for k := range cmd.Annotations {
		out = append(out, strings.TrimSpace(k))
	}
	if cmd.Hidden {
		out = append(out, HiddenTag)
	}
	sort.Strings(out)
	return out
}
