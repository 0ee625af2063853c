// Package cli defines the Cobra command tree for the topix CLI. Each file
// registers one top-level command with the root command. Topic documents are
// registered as commands of their own at startup; the topic command resolves
// a partial name to one of them and runs it.
package cli
