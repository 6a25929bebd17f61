// This file contains the logic for translating HCL item blocks into the
// format-agnostic configuration model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/itemtree/internal/config"
	"github.com/specialistvlad/itemtree/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// ListSeparator joins the elements of list-valued attributes.
const ListSeparator = " | "

var nestedItemSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "item", LabelNames: []string{"name"}}},
}

// translateItem converts an HCL item block and its nested blocks into the
// agnostic model.
func (l *Loader) translateItem(ctx context.Context, b *ItemBlock, file string) (*config.Item, error) {
	logger := ctxlog.FromContext(ctx).With("item", b.Name)
	logger.Debug("Translating HCL item to internal config model.")

	item := &config.Item{
		Name:       b.Name,
		Attributes: make(map[string]string),
		Source:     file,
	}

	if b.Remain != nil {
		// The remain body still carries the nested item blocks.
		_, rest, diags := b.Remain.PartialContent(nestedItemSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("in item '%s' (%s): %w", b.Name, file, diags)
		}
		attrs, diags := rest.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("in item '%s' (%s): %w", b.Name, file, diags)
		}
		for name, attr := range attrs {
			value, err := attributeString(attr)
			if err != nil {
				return nil, fmt.Errorf("in item '%s' (%s): %w", b.Name, file, err)
			}
			item.Attributes[name] = value
		}
	}

	for _, child := range b.Items {
		c, err := l.translateItem(ctx, child, file)
		if err != nil {
			return nil, err
		}
		item.Children = append(item.Children, c)
	}
	return item, nil
}

// attributeString evaluates a literal attribute and renders it as the string
// the item tree stores.
func attributeString(attr *hcl.Attribute) (string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("attribute '%s' must be a literal value: %w", attr.Name, diags)
	}
	s, err := ctyToString(val)
	if err != nil {
		return "", fmt.Errorf("attribute '%s': %w", attr.Name, err)
	}
	return s, nil
}

func ctyToString(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", nil
	}
	if !val.IsWhollyKnown() {
		return "", fmt.Errorf("value is not known")
	}

	ty := val.Type()
	switch {
	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		parts := make([]string, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			s, err := ctyToString(elem)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ListSeparator), nil

	case ty.IsPrimitiveType():
		str, err := convert.Convert(val, cty.String)
		if err != nil {
			return "", err
		}
		return str.AsString(), nil

	default:
		return "", fmt.Errorf("unsupported value of type %s", ty.FriendlyName())
	}
}
