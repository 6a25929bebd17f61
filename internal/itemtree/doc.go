// Package itemtree holds the item hierarchy. A Tree owns every Item; items
// refer to their parent by its index in the tree's item table, so the tree
// has no pointer cycles and an item's path is always derived from the
// current structure.
//
// Relative references in attribute values are expanded against the item
// that carries the attribute, using package relpath. Expansion must happen
// once the tree is complete, so that every path is final.
package itemtree
