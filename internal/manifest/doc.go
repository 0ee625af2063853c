// Package manifest parses topic documents: markdown files that open with a
// YAML front matter block describing the topic (name, description, version
// constraints, aliases). Front matter is validated against the embedded JSON
// schema in schema/topic.schema.json.
package manifest
