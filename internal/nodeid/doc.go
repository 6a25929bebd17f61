/*
Package nodeid provides the structured representation of item paths.

An item path is a dot-separated sequence of non-empty segments, e.g.
`item_tree.grandparent.parent.my_item`. The package answers the questions
the resolver needs from an item: its segments, its depth and the address of
an ancestor at a given distance.
*/
package nodeid
