package manifest

// TopicManifest holds the front matter of a topic document.
type TopicManifest struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Version     string   `yaml:"version,omitempty" json:"version,omitempty"`
	Requires    string   `yaml:"requires,omitempty" json:"requires,omitempty"`
	Aliases     []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Hidden      bool     `yaml:"hidden,omitempty" json:"hidden,omitempty"`
}

// Document is a parsed topic document.
type Document struct {
	Manifest TopicManifest
	Body     string
	Path     string // path inside its source, for diagnostics
}
