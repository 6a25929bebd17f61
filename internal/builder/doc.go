/*
Package builder turns the format-agnostic configuration model into a live
item tree and then expands the relative references its attributes carry.

The work happens in two phases, and the second must not start before the
first is complete:

 1. Tree Construction: Build walks the configured items depth-first, in file
    order, and adds each one to an *itemtree.Tree. Once it returns, every
    item's absolute path is final.

 2. Reference Expansion: Expand applies the expansion rules to every item
    carrying a ruled attribute. Items are processed concurrently by a bounded
    pool of workers; each item is handled by exactly one worker, so an item's
    attributes only ever have a single writer.

A reference that climbs above the top level resolves to an empty path and is
reported as a warning, unless strict mode turns it into an error.
*/
package builder
