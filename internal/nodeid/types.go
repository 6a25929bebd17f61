package nodeid

// Separator joins the segments of an item path.
const Separator = '.'

// Address is the structured representation of an absolute item path,
// ordered from the top-level item down to the addressed item.
type Address struct {
	Path []string
}

// FromSegments builds an Address from already split segments. The slice is
// copied so the caller may reuse it.
func FromSegments(segments ...string) Address {
	if len(segments) == 0 {
		return Address{}
	}
	path := make([]string, len(segments))
	copy(path, segments)
	return Address{Path: path}
}
