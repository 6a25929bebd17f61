package itemtree

import (
	"errors"
	"fmt"
)

var (
	// ErrUnattached is matched by *UnattachedNodeError.
	ErrUnattached = errors.New("item is not attached to a tree")
	// ErrDuplicateItem is returned when a path is added twice.
	ErrDuplicateItem = errors.New("duplicate item")
	// ErrInvalidName is returned for names that cannot be a path segment.
	ErrInvalidName = errors.New("invalid item name")
	// ErrForeignParent is returned when the parent belongs to another tree.
	ErrForeignParent = errors.New("parent item belongs to a different tree")
)

// UnattachedNodeError is returned when a relative address is resolved
// against an item that has no place in a tree and therefore no path.
type UnattachedNodeError struct {
	Name string
}

func (e *UnattachedNodeError) Error() string {
	return fmt.Sprintf("item %q is not attached to a tree", e.Name)
}

func (e *UnattachedNodeError) Is(target error) bool {
	return target == ErrUnattached
}
