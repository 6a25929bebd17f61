package relpath

import (
	"strings"

	"github.com/specialistvlad/itemtree/internal/nodeid"
)

const sep = string(nodeid.Separator)

// IsRelative reports whether s uses the leading-dot shorthand.
func IsRelative(s string) bool {
	return s != "" && s[0] == nodeid.Separator
}

// Resolve maps address to an absolute path using base as the item the
// address is relative to. Absolute input is returned unchanged. Climbing
// above the top level clamps to an empty path rather than failing, so a
// single bad reference cannot break the rewrite of a whole document.
func Resolve(address string, base []string) string {
	path, _ := resolve(address, base)
	return path
}

// ResolveStrict is Resolve with over-ascent reported as an *AscentError.
func ResolveStrict(address string, base []string) (string, error) {
	path, ascErr := resolve(address, base)
	if ascErr != nil {
		return "", ascErr
	}
	return path, nil
}

func resolve(address string, base []string) (string, *AscentError) {
	if !IsRelative(address) {
		return address, nil
	}

	dots := len(address) - len(strings.TrimLeft(address, sep))
	ascend := dots - 1
	suffix := address[dots:]

	var ascErr *AscentError
	var path []string
	if ascend >= len(base) {
		ascErr = &AscentError{Address: address, Ascend: ascend, Depth: len(base)}
	} else {
		path = make([]string, 0, len(base)-ascend+1)
		path = append(path, base[:len(base)-ascend]...)
	}

	if suffix != "" {
		path = append(path, strings.Split(suffix, sep)...)
	}

	return strings.Join(path, sep), ascErr
}
