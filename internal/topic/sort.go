package topic

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator returns a case-insensitive collator that orders embedded
// numbers by value ("doc2" before "doc10").
func newCollator(tag language.Tag) *collate.Collator {
	return collate.New(tag, collate.IgnoreCase, collate.Numeric)
}

// SortChoices orders choices by label using the collation rules of tag.
// Labels that collate equal keep a stable order by ID.
func SortChoices(choices []Choice, tag language.Tag) {
	c := newCollator(tag)
	sort.SliceStable(choices, func(i, j int) bool {
		if cmp := c.CompareString(choices[i].Label, choices[j].Label); cmp != 0 {
			return cmp < 0
		}
		return choices[i].ID < choices[j].ID
	})
}

// SortTopics orders topics by description, the same way choices are ordered.
func SortTopics(topics []Topic, tag language.Tag) {
	c := newCollator(tag)
	sort.SliceStable(topics, func(i, j int) bool {
		if cmp := c.CompareString(topics[i].Description, topics[j].Description); cmp != 0 {
			return cmp < 0
		}
		return topics[i].ID < topics[j].ID
	})
}

// Choices converts topics into choices labelled by description and sorted.
func Choices(topics []Topic, tag language.Tag) []Choice {
	choices := make([]Choice, len(topics))
	for i, t := range topics {
		choices[i] = Choice{ID: t.ID, Label: t.Description}
	}
	SortChoices(choices, tag)
	return choices
}
