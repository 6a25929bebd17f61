package builder

import (
	"strings"
	"unicode"

	"github.com/specialistvlad/itemtree/internal/config"
	"github.com/specialistvlad/itemtree/internal/relpath"
)

// listSeparator splits the entries of an address-mode attribute.
const listSeparator = "|"

// rewriter applies one expansion rule to an attribute value. strict reports
// over-ascent as an error instead of clamping.
type rewriter func(value string, base []string, strict bool) (string, error)

func rewriterFor(rule *config.ExpansionRule) rewriter {
	switch rule.Mode {
	case config.ModePrefix:
		return scannerRewriter(relpath.NewPrefixScanner(rule.Prefix, rule.Stop))
	case config.ModeBracket:
		return scannerRewriter(relpath.NewBracketScanner(rule.Delimiter))
	default:
		return rewriteAddressList
	}
}

func scannerRewriter(s relpath.Scanner) rewriter {
	return func(value string, base []string, strict bool) (string, error) {
		if strict {
			return s.RewriteStrict(value, base)
		}
		return s.Rewrite(value, base), nil
	}
}

// rewriteAddressList resolves every `|`-separated entry of value on its own.
// Whitespace around entries and the separators are kept as they are.
func rewriteAddressList(value string, base []string, strict bool) (string, error) {
	parts := strings.Split(value, listSeparator)
	for i, part := range parts {
		core := strings.TrimFunc(part, unicode.IsSpace)
		if !relpath.IsRelative(core) {
			continue
		}
		start := strings.Index(part, core)

		var resolved string
		if strict {
			var err error
			if resolved, err = relpath.ResolveStrict(core, base); err != nil {
				return "", err
			}
		} else {
			resolved = relpath.Resolve(core, base)
		}
		parts[i] = part[:start] + resolved + part[start+len(core):]
	}
	return strings.Join(parts, listSeparator), nil
}
