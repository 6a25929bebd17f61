package itemtree

import (
	"fmt"
	"maps"
	"strings"
	"sync"

	"github.com/specialistvlad/itemtree/internal/nodeid"
)

const noParent = -1

// Tree owns a hierarchy of items and indexes them by absolute path. It is
// safe for concurrent use; the structure is guarded by an RWMutex while each
// item guards its own attributes.
type Tree struct {
	mu    sync.RWMutex
	items []*Item
	byID  map[string]int // Key: absolute path, Value: index into items
	top   []int
}

// New creates a new, empty tree.
func New() *Tree {
	return &Tree{
		byID: make(map[string]int),
	}
}

// Add creates an item named name below parent, or at the top level when
// parent is nil. The attribute map is copied.
func (t *Tree) Add(parent *Item, name string, attrs map[string]string) (*Item, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if parent != nil && parent.tree != t {
		return nil, fmt.Errorf("adding %q: %w", name, ErrForeignParent)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	parentIdx := noParent
	addr := nodeid.Address{}
	if parent != nil {
		parentIdx = parent.idx
		addr = t.addressLocked(parentIdx)
	}
	addr = addr.Child(name)

	key := addr.String()
	if _, exists := t.byID[key]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, key)
	}

	it := &Item{
		name:   name,
		tree:   t,
		idx:    len(t.items),
		parent: parentIdx,
		attrs:  make(map[string]string, len(attrs)),
	}
	maps.Copy(it.attrs, attrs)

	t.items = append(t.items, it)
	t.byID[key] = it.idx
	if parent != nil {
		parent.children = append(parent.children, it.idx)
	} else {
		t.top = append(t.top, it.idx)
	}
	return it, nil
}

// Lookup retrieves an item by its absolute path.
func (t *Tree) Lookup(path string) (*Item, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	idx, ok := t.byID[path]
	if !ok {
		return nil, false
	}
	return t.items[idx], true
}

// Len returns the number of items in the tree.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}

// Items returns all items in insertion order.
func (t *Tree) Items() []*Item {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*Item, len(t.items))
	copy(out, t.items)
	return out
}

// TopLevel returns the items without a parent, in insertion order.
func (t *Tree) TopLevel() []*Item {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.collectLocked(t.top)
}

// Walk visits every item depth-first, parents before children, stopping at
// the first error.
func (t *Tree) Walk(fn func(*Item) error) error {
	for _, it := range t.TopLevel() {
		if err := walk(it, fn); err != nil {
			return err
		}
	}
	return nil
}

func walk(it *Item, fn func(*Item) error) error {
	if err := fn(it); err != nil {
		return err
	}
	for _, child := range it.Children() {
		if err := walk(child, fn); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) collectLocked(idxs []int) []*Item {
	out := make([]*Item, 0, len(idxs))
	for _, idx := range idxs {
		out = append(out, t.items[idx])
	}
	return out
}

// addressLocked builds the path of the item at idx by following parent
// indexes. Callers must hold t.mu.
func (t *Tree) addressLocked(idx int) nodeid.Address {
	var rev []string
	for i := idx; i != noParent; i = t.items[i].parent {
		rev = append(rev, t.items[i].name)
	}
	path := make([]string, len(rev))
	for i, seg := range rev {
		path[len(rev)-1-i] = seg
	}
	return nodeid.Address{Path: path}
}

func validateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	case strings.ContainsRune(name, nodeid.Separator):
		return fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, string(nodeid.Separator))
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("%w: %q has surrounding whitespace", ErrInvalidName, name)
	}
	return nil
}
