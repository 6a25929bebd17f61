package nodeid

import (
	"slices"
	"strings"
)

// String serializes the Address into its canonical dotted form.
func (a Address) String() string {
	return strings.Join(a.Path, string(Separator))
}

// Depth is the number of segments. Top-level items have depth 1.
func (a Address) Depth() int {
	return len(a.Path)
}

// Segments returns a copy of the path segments.
func (a Address) Segments() []string {
	return slices.Clone(a.Path)
}

// Ancestor returns the address n levels above a. Asking for more levels than
// the address has yields the empty address.
func (a Address) Ancestor(n int) Address {
	if n <= 0 {
		return FromSegments(a.Path...)
	}
	if n >= len(a.Path) {
		return Address{}
	}
	return FromSegments(a.Path[:len(a.Path)-n]...)
}

// Parent is Ancestor(1).
func (a Address) Parent() Address {
	return a.Ancestor(1)
}

// Child returns a new address with name appended.
func (a Address) Child(name string) Address {
	path := make([]string, 0, len(a.Path)+1)
	path = append(path, a.Path...)
	return Address{Path: append(path, name)}
}

// HasPrefix reports whether other is a (non-strict) ancestor of a.
func (a Address) HasPrefix(other Address) bool {
	if len(other.Path) > len(a.Path) {
		return false
	}
	return slices.Equal(a.Path[:len(other.Path)], other.Path)
}

// Equal checks for deep equality between two Address pointers.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return slices.Equal(a.Path, other.Path)
}
