package itemtree

import (
	"maps"
	"slices"
	"sync"

	"github.com/specialistvlad/itemtree/internal/nodeid"
	"github.com/specialistvlad/itemtree/internal/relpath"
)

// Item is a single addressable point in the hierarchy.
type Item struct {
	name string

	// tree, idx, parent and children are owned by the tree and only change
	// under tree.mu. tree is nil for detached items.
	tree     *Tree
	idx      int
	parent   int
	children []int

	// mu serializes access to attrs; one writer per item.
	mu    sync.RWMutex
	attrs map[string]string
}

// NewDetached creates an item that belongs to no tree. It has no path, so
// any attempt to resolve a relative address against it fails with an
// *UnattachedNodeError.
func NewDetached(name string, attrs map[string]string) *Item {
	it := &Item{
		name:   name,
		idx:    noParent,
		parent: noParent,
		attrs:  make(map[string]string, len(attrs)),
	}
	maps.Copy(it.attrs, attrs)
	return it
}

// Name returns the item's own path segment.
func (it *Item) Name() string {
	return it.name
}

// Address returns the absolute path of the item.
func (it *Item) Address() (nodeid.Address, error) {
	if it.tree == nil {
		return nodeid.Address{}, &UnattachedNodeError{Name: it.name}
	}
	it.tree.mu.RLock()
	defer it.tree.mu.RUnlock()
	return it.tree.addressLocked(it.idx), nil
}

// ID returns the absolute path as a string, or "" for a detached item.
func (it *Item) ID() string {
	addr, err := it.Address()
	if err != nil {
		return ""
	}
	return addr.String()
}

// Depth is the number of path segments; 0 for a detached item.
func (it *Item) Depth() int {
	addr, err := it.Address()
	if err != nil {
		return 0
	}
	return addr.Depth()
}

// Parent returns the item's parent, if it has one.
func (it *Item) Parent() (*Item, bool) {
	if it.tree == nil || it.parent == noParent {
		return nil, false
	}
	it.tree.mu.RLock()
	defer it.tree.mu.RUnlock()
	return it.tree.items[it.parent], true
}

// Children returns the direct children in insertion order.
func (it *Item) Children() []*Item {
	if it.tree == nil {
		return nil
	}
	it.tree.mu.RLock()
	defer it.tree.mu.RUnlock()
	return it.tree.collectLocked(it.children)
}

// Attr returns the value of an attribute.
func (it *Item) Attr(name string) (string, bool) {
	it.mu.RLock()
	defer it.mu.RUnlock()
	v, ok := it.attrs[name]
	return v, ok
}

// SetAttr sets the value of an attribute.
func (it *Item) SetAttr(name, value string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.attrs[name] = value
}

// Attrs returns a copy of all attributes.
func (it *Item) Attrs() map[string]string {
	it.mu.RLock()
	defer it.mu.RUnlock()
	return maps.Clone(it.attrs)
}

// AttrNames returns the attribute names in sorted order.
func (it *Item) AttrNames() []string {
	it.mu.RLock()
	defer it.mu.RUnlock()
	return slices.Sorted(maps.Keys(it.attrs))
}

// AbsolutePath resolves address against the item. Absolute addresses are
// returned unchanged; over-ascent yields "".
func (it *Item) AbsolutePath(address string) (string, error) {
	addr, err := it.Address()
	if err != nil {
		return "", err
	}
	return relpath.Resolve(address, addr.Path), nil
}

// RewriteString expands every `prefix<relative address>` reference in text
// against the item. The stop character ends a reference and is kept.
func (it *Item) RewriteString(text, prefix string, stop rune) (string, error) {
	addr, err := it.Address()
	if err != nil {
		return "", err
	}
	return relpath.Rewrite(text, prefix, stop, addr.Path), nil
}

// ExpandAttribute rewrites the named attribute in place, expanding every
// relative address enclosed in a pair of delimiter characters. A missing
// attribute is left absent.
func (it *Item) ExpandAttribute(name string, delimiter rune) error {
	scanner := relpath.NewBracketScanner(delimiter)
	_, err := it.RewriteAttribute(name, func(value string, base []string) (string, error) {
		return scanner.Rewrite(value, base), nil
	})
	return err
}

// RewriteAttribute replaces the named attribute with the result of rewrite,
// which receives the current value and the item's path segments. It reports
// whether the stored value changed. A missing attribute is a no-op.
func (it *Item) RewriteAttribute(name string, rewrite func(value string, base []string) (string, error)) (bool, error) {
	addr, err := it.Address()
	if err != nil {
		return false, err
	}

	it.mu.Lock()
	defer it.mu.Unlock()

	value, ok := it.attrs[name]
	if !ok {
		return false, nil
	}
	out, err := rewrite(value, addr.Path)
	if err != nil {
		return false, err
	}
	if out == value {
		return false, nil
	}
	it.attrs[name] = out
	return true, nil
}
