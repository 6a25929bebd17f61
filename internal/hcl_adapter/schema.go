package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Items   []*ItemBlock   `hcl:"item,block"`
	Expands []*ExpandBlock `hcl:"expand,block"`
}

// ItemBlock is the HCL schema of a single item. Nested item blocks are its
// children; everything else in the body is an attribute.
type ItemBlock struct {
	Name   string       `hcl:"name,label"`
	Items  []*ItemBlock `hcl:"item,block"`
	Remain hcl.Body     `hcl:",remain"`
}

// ExpandBlock is the HCL schema of an expansion rule.
type ExpandBlock struct {
	Attribute string `hcl:"attribute,label"`
	Mode      string `hcl:"mode,optional"`
	Prefix    string `hcl:"prefix,optional"`
	Stop      string `hcl:"stop,optional"`
	Delimiter string `hcl:"delimiter,optional"`
}
