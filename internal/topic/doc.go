// Package topic indexes the documentation topics exposed by a host command
// registry and resolves a partial query to exactly one topic. Ambiguous
// queries are narrowed through an injected Chooser; the resolved topic is
// handed back to the host Executor to be run with no arguments.
package topic
