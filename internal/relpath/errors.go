package relpath

import (
	"errors"
	"fmt"
)

// ErrAboveRoot is matched by errors returned from the strict resolution
// functions when an address climbs above the top level.
var ErrAboveRoot = errors.New("relative address ascends above the top level")

// AscentError describes a relative address that climbs further than the base
// path allows.
type AscentError struct {
	Address string
	Ascend  int
	Depth   int
}

func (e *AscentError) Error() string {
	return fmt.Sprintf("relative address %q ascends %d level(s) from a base of depth %d", e.Address, e.Ascend, e.Depth)
}

func (e *AscentError) Unwrap() error {
	return ErrAboveRoot
}
