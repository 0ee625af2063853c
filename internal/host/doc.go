// Package host adapts a Cobra command tree to the topic package: it
// enumerates commands with their annotations as tags, and executes a command
// in place by identifier.
package host
