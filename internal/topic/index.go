package topic

import "strings"

// Index is an ordered, immutable snapshot of the available topics. Order
// follows host enumeration and carries no display meaning.
type Index struct {
	topics []Topic
	byID   map[string]int
}

// BuildIndex scans the registry for commands tagged as topics. An empty
// registry yields an empty index. Duplicate identifiers keep the first entry.
func BuildIndex(reg Registry) *Index {
	idx := &Index{byID: make(map[string]int)}
	if reg == nil {
		return idx
	}
	for _, cmd := range reg.Commands() {
		if !cmd.HasTag(Tag) {
			continue
		}
		idx.add(Topic{ID: cmd.ID, Description: cmd.Description, Ref: cmd.Ref})
	}
	return idx
}

func (ix *Index) add(t Topic) {
	if _, ok := ix.byID[t.ID]; ok {
		return
	}
	ix.byID[t.ID] = len(ix.topics)
	ix.topics = append(ix.topics, t)
}

// Filter returns the topics whose identifier contains query as a
// case-sensitive substring. An empty query keeps every topic. The receiver is
// never modified, so filtering twice with the same query is idempotent.
func (ix *Index) Filter(query string) *Index {
	out := &Index{byID: make(map[string]int)}
	for _, t := range ix.topics {
		if query == "" || strings.Contains(t.ID, query) {
			out.add(t)
		}
	}
	return out
}

// Len returns the number of topics in the snapshot.
func (ix *Index) Len() int { return len(ix.topics) }

// Topics returns a copy of the topics in enumeration order.
func (ix *Index) Topics() []Topic {
	out := make([]Topic, len(ix.topics))
	copy(out, ix.topics)
	return out
}

// IDs returns the topic identifiers in enumeration order.
func (ix *Index) IDs() []string {
	ids := make([]string, len(ix.topics))
	for i, t := range ix.topics {
		ids[i] = t.ID
	}
	return ids
}

// Lookup returns the topic with the given identifier.
func (ix *Index) Lookup(id string) (Topic, bool) {
	i, ok := ix.byID[id]
	if !ok {
		return Topic{}, false
	}
	return ix.topics[i], true
}
