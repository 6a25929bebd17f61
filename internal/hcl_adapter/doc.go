// Package hcl_adapter is the HCL implementation of config.Loader. Item files
// nest `item "<name>" { ... }` blocks; plain attributes inside a block become
// the item's attributes. Top-level `expand "<attribute>" { ... }` blocks
// declare how relative references in an attribute are expanded.
package hcl_adapter
