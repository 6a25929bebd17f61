package nodeid

import (
	"fmt"
	"strings"
)

// Parse creates a new Address by parsing an absolute dotted path. Relative
// addresses (leading dot) are not accepted here; see package relpath.
func Parse(rawID string) (*Address, error) {
	if rawID == "" {
		return nil, fmt.Errorf("identifier cannot be empty")
	}

	addr := &Address{}
	for _, segment := range strings.Split(rawID, string(Separator)) {
		if segment == "" {
			return nil, fmt.Errorf("identifier path %q contains empty segment", rawID)
		}
		if strings.TrimSpace(segment) != segment {
			return nil, fmt.Errorf("invalid path segment %q: surrounding whitespace", segment)
		}
		addr.Path = append(addr.Path, segment)
	}

	return addr, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(rawID string) Address {
	addr, err := Parse(rawID)
	if err != nil {
		panic(err)
	}
	return *addr
}
