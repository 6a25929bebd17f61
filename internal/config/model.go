// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the item model every loader produces and the builder
// consumes. Items from several files are combined with Merge.

package config

import (
	"maps"
)

// Model is the unified, format-agnostic representation of the loaded item
// configuration.
type Model struct {
	Items []*Item
	Rules []*ExpansionRule
}

// Item is the format-agnostic representation of a single configured item
// and its subtree.
type Item struct {
	Name       string
	Attributes map[string]string
	Children   []*Item
	// Source is the file the item was first declared in.
	Source string
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// Child returns the direct child with the given name.
func (i *Item) Child(name string) *Item {
	for _, c := range i.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Merge folds other into m. Items with the same name at the same level are
// merged recursively: attributes from other override, new children are
// appended in their original order. Rules are appended.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Items = mergeItems(m.Items, other.Items)
	m.Rules = append(m.Rules, other.Rules...)
}

func mergeItems(dst, src []*Item) []*Item {
	for _, s := range src {
		var existing *Item
		for _, d := range dst {
			if d.Name == s.Name {
				existing = d
				break
			}
		}
		if existing == nil {
			dst = append(dst, s)
			continue
		}
		if existing.Attributes == nil {
			existing.Attributes = make(map[string]string, len(s.Attributes))
		}
		maps.Copy(existing.Attributes, s.Attributes)
		existing.Children = mergeItems(existing.Children, s.Children)
	}
	return dst
}

// Count returns the number of items in the model, including nested ones.
func (m *Model) Count() int {
	var count func(items []*Item) int
	count = func(items []*Item) int {
		n := len(items)
		for _, it := range items {
			n += count(it.Children)
		}
		return n
	}
	return count(m.Items)
}
