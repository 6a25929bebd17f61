package itemtree

import (
	json "github.com/goccy/go-json"
)

type itemJSON struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Children   []*Item           `json:"children,omitempty"`
}

// MarshalJSON encodes the item and its subtree. The id field carries the
// absolute path.
func (it *Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemJSON{
		ID:         it.ID(),
		Name:       it.name,
		Attributes: it.Attrs(),
		Children:   it.Children(),
	})
}

// MarshalJSON encodes the top-level items and their subtrees.
func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.TopLevel())
}
