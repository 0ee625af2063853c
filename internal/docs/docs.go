// Package docs embeds the built-in topic documents shipped with the CLI.
package docs

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var topics embed.FS

// Root is the directory inside FS holding the documents.
const Root = "topics"

// FS returns the embedded topic documents.
func FS() fs.FS { return topics }
