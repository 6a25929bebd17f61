/*
Package relpath resolves relative item addresses and expands them inside
arbitrary text.

A relative address starts with one or more dots. The length N of the leading
dot-run moves N-1 levels up from the base item; anything after the dot-run is
appended as a path suffix:

	base:  item_tree.grandparent.parent.my_item
	.              -> item_tree.grandparent.parent.my_item
	.child         -> item_tree.grandparent.parent.my_item.child
	..sister       -> item_tree.grandparent.parent.sister
	....           -> item_tree
	.....          -> "" (above the top level)

Addresses that do not start with a dot are absolute and pass through
untouched, which makes every operation in this package idempotent.

Two scanning strategies find embedded references:

  - PrefixAnchored: a literal marker followed by a relative address, ended by
    a stop character, as in `sh..child()`.
  - BracketAnchored: a relative address enclosed between two identical
    delimiters, as in `'.onoff'`.
*/
package relpath
