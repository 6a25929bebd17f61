package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/specialistvlad/itemtree/internal/itemtree"
)

const indent = "  "

// dump writes the tree, or the configured subtree, in the configured format.
func (a *App) dump(tree *itemtree.Tree) error {
	roots := tree.TopLevel()
	if a.config.Item != "" {
		it, ok := tree.Lookup(a.config.Item)
		if !ok {
			return fmt.Errorf("item %q not found", a.config.Item)
		}
		roots = []*itemtree.Item{it}
	}

	if a.config.Output == OutputJSON {
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", indent)
		return enc.Encode(roots)
	}
	return writeText(a.outW, roots)
}

// writeText renders items as an indented outline, attributes first in
// sorted order, then children.
func writeText(w io.Writer, roots []*itemtree.Item) error {
	bw := bufio.NewWriter(w)

	var write func(it *itemtree.Item, level int)
	write = func(it *itemtree.Item, level int) {
		pad := strings.Repeat(indent, level)
		fmt.Fprintf(bw, "%s%s\n", pad, it.Name())
		for _, name := range it.AttrNames() {
			value, _ := it.Attr(name)
			fmt.Fprintf(bw, "%s%s%s = %s\n", pad, indent, name, value)
		}
		for _, child := range it.Children() {
			write(child, level+1)
		}
	}
	for _, it := range roots {
		write(it, 0)
	}
	return bw.Flush()
}
