package manifest

import (
	"bytes"
	"errors"
	"fmt"

	"go.yaml.in/yaml/v3"
)

const delimiter = "---"

// ErrNoFrontMatter is returned for documents that do not open with "---".
var ErrNoFrontMatter = errors.New("missing front matter")

// SplitFrontMatter separates the YAML block delimited by "---" lines from the
// markdown body that follows it.
func SplitFrontMatter(data []byte) (front, body []byte, err error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	first, rest, _ := cutLine(data)
	if string(bytes.TrimSpace(first)) != delimiter {
		return nil, nil, ErrNoFrontMatter
	}

	var block [][]byte
	for len(rest) > 0 {
		var line []byte
		line, rest, _ = cutLine(rest)
		if string(bytes.TrimSpace(line)) == delimiter {
			return bytes.Join(block, []byte("\n")), bytes.TrimLeft(rest, "\r\n"), nil
		}
		block = append(block, line)
	}
	return nil, nil, fmt.Errorf("unterminated front matter")
}

// Parse decodes a topic document. It does not validate the front matter
// against the schema; see Validate.
func Parse(data []byte, path string) (*Document, error) {
	front, body, err := SplitFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("parsing topic %s: %w", path, err)
	}
	var m TopicManifest
	if err := yaml.Unmarshal(front, &m); err != nil {
		return nil, fmt.Errorf("parsing topic %s: %w", path, err)
	}
	return &Document{Manifest: m, Body: string(body), Path: path}, nil
}

// cutLine splits data after the first newline, dropping a trailing "\r".
func cutLine(data []byte) (line, rest []byte, found bool) {
	line, rest, found = bytes.Cut(data, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r")), rest, found
}
