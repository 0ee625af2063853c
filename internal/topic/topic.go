package topic

import "context"

// Tag marks a host command as a documentation topic.
const Tag = "topic"

// CommandMeta describes one command enumerated from the host registry.
type CommandMeta struct {
	ID          string   // unique within a registry, e.g. "docs-readme"
	Description string   // short description declared by the command
	Tags        []string // capability markers, e.g. "topic"
	Ref         any      // host-owned command handle, never dereferenced here
}

// HasTag reports whether the command carries the given tag.
func (m CommandMeta) HasTag(name string) bool {
	for _, t := range m.Tags {
		if t == name {
			return true
		}
	}
	return false
}

// Topic is a documentation entry backed by a host command.
type Topic struct {
	ID          string
	Description string
	Ref         any
}

// Choice is one labelled entry offered to a Chooser.
type Choice struct {
	ID    string
	Label string
}

// Registry enumerates the commands currently registered with the host.
type Registry interface {
	Commands() []CommandMeta
}

// Executor runs a host command by identifier and reports its exit status.
type Executor interface {
	Execute(ctx context.Context, id string, args []string) (int, error)
}

// Chooser presents an ordered list of choices and returns the selected ID.
// defaultIndex is a 1-based highlight hint; 0 means no default. A user
// cancellation is reported as ErrCancelled.
type Chooser interface {
	Choose(ctx context.Context, choices []Choice, prompt string, defaultIndex int) (string, error)
}
