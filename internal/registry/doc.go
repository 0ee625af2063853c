// Package registry discovers topic documents across an ordered list of
// sources (the embedded built-in topics, then user directories). Documents
// are validated against the topic schema and filtered by the version
// constraint they declare; the first source defining a name wins.
package registry
