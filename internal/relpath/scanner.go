package relpath

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/specialistvlad/itemtree/internal/nodeid"
)

// Anchor selects how a Scanner recognizes an embedded reference.
type Anchor int

const (
	// PrefixAnchored references follow a literal marker and run up to a stop
	// character. Marker and stop character are kept.
	PrefixAnchored Anchor = iota
	// BracketAnchored references sit between two identical delimiters, both
	// of which are kept.
	BracketAnchored
)

func (a Anchor) String() string {
	switch a {
	case PrefixAnchored:
		return "prefix"
	case BracketAnchored:
		return "bracket"
	default:
		return "unknown"
	}
}

// Scanner rewrites relative references embedded in free text. The zero value
// is a prefix scanner with an empty marker, which leaves text untouched.
type Scanner struct {
	Anchor Anchor
	// Prefix is the marker for PrefixAnchored scanning.
	Prefix string
	// Stop ends a PrefixAnchored reference.
	Stop rune
	// Delimiter encloses a BracketAnchored reference.
	Delimiter rune
}

// NewPrefixScanner returns a PrefixAnchored scanner.
func NewPrefixScanner(prefix string, stop rune) Scanner {
	return Scanner{Anchor: PrefixAnchored, Prefix: prefix, Stop: stop}
}

// NewBracketScanner returns a BracketAnchored scanner.
func NewBracketScanner(delimiter rune) Scanner {
	return Scanner{Anchor: BracketAnchored, Delimiter: delimiter}
}

// Rewrite expands every reference in text against base, clamping over-ascent
// to an empty path.
func (s Scanner) Rewrite(text string, base []string) string {
	out, _ := s.scan(text, base, false)
	return out
}

// RewriteStrict is Rewrite but fails on the first reference that climbs
// above the top level.
func (s Scanner) RewriteStrict(text string, base []string) (string, error) {
	return s.scan(text, base, true)
}

// Rewrite expands `prefix<relative address>` occurrences in text, see
// NewPrefixScanner.
func Rewrite(text, prefix string, stop rune, base []string) string {
	return NewPrefixScanner(prefix, stop).Rewrite(text, base)
}

// RewriteBracketed expands `<delim><relative address><delim>` occurrences in
// text, see NewBracketScanner.
func RewriteBracketed(text string, delimiter rune, base []string) string {
	return NewBracketScanner(delimiter).Rewrite(text, base)
}

func (s Scanner) scan(text string, base []string, strict bool) (string, error) {
	var sb strings.Builder
	sb.Grow(len(text))

	expand := func(ref string) error {
		if !IsRelative(ref) {
			sb.WriteString(ref)
			return nil
		}
		path, ascErr := resolve(ref, base)
		if ascErr != nil && strict {
			return ascErr
		}
		sb.WriteString(path)
		return nil
	}

	rest := text
	switch s.Anchor {
	case PrefixAnchored:
		if s.Prefix == "" {
			return text, nil
		}
		for {
			i := strings.Index(rest, s.Prefix)
			if i < 0 {
				break
			}
			cut := i + len(s.Prefix)
			sb.WriteString(rest[:cut])
			rest = rest[cut:]

			n := s.runLength(rest)
			if err := expand(rest[:n]); err != nil {
				return "", err
			}
			rest = rest[n:]
		}

	case BracketAnchored:
		// RuneError would also match every invalid byte in text.
		width := utf8.RuneLen(s.Delimiter)
		if width < 0 || s.Delimiter == utf8.RuneError {
			return text, nil
		}
		for {
			open := strings.IndexRune(rest, s.Delimiter)
			if open < 0 {
				break
			}
			inner := rest[open+width:]
			end := strings.IndexRune(inner, s.Delimiter)
			if end < 0 {
				break
			}
			sb.WriteString(rest[:open+width])
			if err := expand(inner[:end]); err != nil {
				return "", err
			}
			sb.WriteRune(s.Delimiter)
			rest = inner[end+width:]
		}

	default:
		return text, nil
	}

	sb.WriteString(rest)
	return sb.String(), nil
}

// runLength is the byte length of the address-like run at the start of text.
func (s Scanner) runLength(text string) int {
	for i, r := range text {
		if r == s.Stop || !isAddressRune(r) {
			return i
		}
	}
	return len(text)
}

func isAddressRune(r rune) bool {
	return r == nodeid.Separator || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
