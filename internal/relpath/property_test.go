package relpath

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func segmentGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z_][a-z0-9_]{0,6}`)
}

func baseGen() *rapid.Generator[[]string] {
	return rapid.SliceOfN(segmentGen(), 1, 6)
}

func relativeGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		dots := rapid.IntRange(1, 8).Draw(t, "dots")
		suffix := rapid.SliceOfN(segmentGen(), 0, 3).Draw(t, "suffix")
		return strings.Repeat(".", dots) + strings.Join(suffix, ".")
	})
}

func TestResolve_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := baseGen().Draw(t, "base")
		addr := rapid.OneOf(relativeGen(), rapid.String()).Draw(t, "address")

		once := Resolve(addr, base)
		twice := Resolve(once, base)
		if once != twice {
			t.Fatalf("Resolve not idempotent: %q -> %q -> %q", addr, once, twice)
		}
	})
}

func TestResolve_DotRunClamping(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := baseGen().Draw(t, "base")
		depth := len(base)
		k := rapid.IntRange(1, depth+4).Draw(t, "k")

		got := Resolve(strings.Repeat(".", k), base)
		if k > depth {
			if got != "" {
				t.Fatalf("expected empty path for %d dots at depth %d, got %q", k, depth, got)
			}
			return
		}
		want := strings.Join(base[:depth-k+1], ".")
		if got != want {
			t.Fatalf("%d dots at depth %d: want %q, got %q", k, depth, want, got)
		}
	})
}

func TestRewrite_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := baseGen().Draw(t, "base")
		refs := rapid.SliceOfN(relativeGen(), 0, 4).Draw(t, "refs")

		var prefixText, bracketText strings.Builder
		for i, ref := range refs {
			if i > 0 {
				prefixText.WriteString(" + ")
				bracketText.WriteString(", ")
			}
			prefixText.WriteString("sh" + "." + ref + "()")
			bracketText.WriteString("'" + ref + "'")
		}

		once := Rewrite(prefixText.String(), "sh.", '(', base)
		if twice := Rewrite(once, "sh.", '(', base); once != twice {
			t.Fatalf("prefix rewrite not idempotent: %q -> %q", once, twice)
		}

		once = RewriteBracketed(bracketText.String(), '\'', base)
		if twice := RewriteBracketed(once, '\'', base); once != twice {
			t.Fatalf("bracket rewrite not idempotent: %q -> %q", once, twice)
		}
	})
}

func TestRewrite_PlainTextUnchanged(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := baseGen().Draw(t, "base")
		text := rapid.StringMatching(`[a-z0-9 +*/()-]{0,40}`).Draw(t, "text")

		if got := Rewrite(text, "sh.", '(', base); got != text {
			t.Fatalf("text without marker changed: %q -> %q", text, got)
		}
		if got := RewriteBracketed(text, '\'', base); got != text {
			t.Fatalf("text without delimiter changed: %q -> %q", text, got)
		}
	})
}
