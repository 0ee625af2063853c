package registry

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/topix-labs/topix/internal/compat"
	"github.com/topix-labs/topix/internal/manifest"
)

// topicExt is the file extension of topic documents.
const topicExt = ".md"

// Discover walks all sources in order and returns every valid topic whose
// version constraint is satisfied by cliVersion. Topics found in earlier
// sources take priority; later duplicates are skipped with a warning.
// Inaccessible sources and invalid documents are reported as warnings.
func Discover(sources []Source, cliVersion string) *Result {
	res := &Result{}
	seen := make(map[string]string) // name -> source that defined it

	for _, src := range sources {
		paths, err := walkSource(src)
		if err != nil {
			res.warn("source %s: %v", src.Name, err)
			continue
		}
		for _, p := range paths {
			t, ok := loadTopic(src, p, cliVersion, res)
			if !ok {
				continue
			}
			if prev, dup := seen[t.Name]; dup {
				res.warn("%s:%s: topic %q already defined by %s", src.Name, p, t.Name, prev)
				continue
			}
			seen[t.Name] = src.Name
			res.Topics = append(res.Topics, t)
		}
	}

	return res
}

// loadTopic reads, validates, and version-checks a single document.
func loadTopic(src Source, p, cliVersion string, res *Result) (Topic, bool) {
	data, err := fs.ReadFile(src.FS, p)
	if err != nil {
		res.warn("%s:%s: %v", src.Name, p, err)
		return Topic{}, false
	}

	validation, err := manifest.ValidateDocument(data)
	if err != nil {
		res.warn("%s:%s: %v", src.Name, p, err)
		return Topic{}, false
	}
	if !validation.Valid {
		res.warn("%s:%s: invalid front matter: %s", src.Name, p, validation.Summary())
		return Topic{}, false
	}

	doc, err := manifest.Parse(data, p)
	if err != nil {
		res.warn("%s:%s: %v", src.Name, p, err)
		return Topic{}, false
	}
	m := doc.Manifest

	ok, err := compat.Satisfies(cliVersion, m.Requires)
	if err != nil {
		res.warn("%s:%s: %v", src.Name, p, err)
		return Topic{}, false
	}
	if !ok {
		res.warn("%s:%s: topic %q requires %s (running %s)", src.Name, p, m.Name, m.Requires, cliVersion)
		return Topic{}, false
	}

	return Topic{
		Name:        m.Name,
		Description: m.Description,
		Version:     m.Version,
		Requires:    m.Requires,
		Aliases:     m.Aliases,
		Tags:        m.Tags,
		Hidden:      m.Hidden,
		Source:      src.Name,
		Path:        p,
		Body:        doc.Body,
	}, true
}

// walkSource lists the topic documents of a source in lexical order.
func walkSource(src Source) ([]string, error) {
	if src.FS == nil {
		return nil, fmt.Errorf("no filesystem")
	}
	root := src.Root
	if root == "" {
		root = "."
	}

	var paths []string
	err := fs.WalkDir(src.FS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			return nil // skip inaccessible entries
		}
		if d.IsDir() {
			if p != root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if isTopicFile(d.Name()) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// isTopicFile returns true for markdown files that are not hidden and not a
// directory README. The README match is exact, so "readme.md" is a topic.
func isTopicFile(name string) bool {
	if strings.HasPrefix(name, ".") || path.Ext(name) != topicExt {
		return false
	}
	return name != "README.md"
}

func (r *Result) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
