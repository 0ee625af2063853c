package registry

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Source represents a location to search for topic documents.
type Source struct {
	Name string // e.g., "builtin", "dir:/home/me/topics"
	FS   fs.FS
	Root string // directory inside FS holding the documents; "" means "."
}

// DirSource returns a source reading documents from a directory on disk.
// A leading "~/" is expanded to the user's home directory.
func DirSource(dir string) Source {
	if strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[2:])
		}
	}
	return Source{Name: "dir:" + dir, FS: os.DirFS(dir), Root: "."}
}

// Topic is a discovered topic document ready to be registered as a command.
type Topic struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Version     string   `json:"version,omitempty"`
	Requires    string   `json:"requires,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Hidden      bool     `json:"hidden,omitempty"`
	Source      string   `json:"source"`
	Path        string   `json:"path"`
	Body        string   `json:"-"`
}

// Result is the outcome of a discovery pass.
type Result struct {
	Topics   []Topic
	Warnings []string // one entry per skipped document or source
}
