package relpath

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var myItem = []string{"item_tree", "grandparent", "parent", "my_item"}

func TestResolve(t *testing.T) {
	testCases := []struct {
		name     string
		address  string
		expected string
	}{
		{name: "self", address: ".", expected: "item_tree.grandparent.parent.my_item"},
		{name: "child", address: ".child", expected: "item_tree.grandparent.parent.my_item.child"},
		{name: "grandchild", address: ".child.grandchild", expected: "item_tree.grandparent.parent.my_item.child.grandchild"},
		{name: "parent", address: "..", expected: "item_tree.grandparent.parent"},
		{name: "grandparent", address: "...", expected: "item_tree.grandparent"},
		{name: "top level", address: "....", expected: "item_tree"},
		{name: "above top level", address: ".....", expected: ""},
		{name: "far above top level", address: "......", expected: ""},
		{name: "sibling", address: "..sister", expected: "item_tree.grandparent.parent.sister"},
		{name: "cousin", address: "...aunt.cousin", expected: "item_tree.grandparent.aunt.cousin"},
		{name: "suffix kept after clamping", address: "......other", expected: "other"},
		{name: "absolute pass-through", address: "item_tree.grandparent.parent.my_item", expected: "item_tree.grandparent.parent.my_item"},
		{name: "plain token", address: "abc", expected: "abc"},
		{name: "empty", address: "", expected: ""},
		{name: "leading space is absolute", address: " .child", expected: " .child"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Resolve(tc.address, myItem))
		})
	}
}

func TestResolve_DoesNotModifyBase(t *testing.T) {
	base := []string{"a", "b", "c"}
	_ = Resolve("..x.y", base[:2])
	assert.Equal(t, []string{"a", "b", "c"}, base)
}

func TestResolve_EmptyBase(t *testing.T) {
	assert.Equal(t, "", Resolve(".", nil))
	assert.Equal(t, "child", Resolve(".child", nil))
	assert.Equal(t, "abs", Resolve("abs", nil))
}

func TestResolveStrict(t *testing.T) {
	path, err := ResolveStrict("..sister", myItem)
	require.NoError(t, err)
	assert.Equal(t, "item_tree.grandparent.parent.sister", path)

	path, err = ResolveStrict("....", myItem)
	require.NoError(t, err)
	assert.Equal(t, "item_tree", path)

	_, err = ResolveStrict(".....", myItem)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAboveRoot))

	var ascErr *AscentError
	require.ErrorAs(t, err, &ascErr)
	assert.Equal(t, ".....", ascErr.Address)
	assert.Equal(t, 4, ascErr.Ascend)
	assert.Equal(t, 4, ascErr.Depth)
	assert.Contains(t, ascErr.Error(), "ascends 4 level(s)")
}

func TestIsRelative(t *testing.T) {
	assert.True(t, IsRelative("."))
	assert.True(t, IsRelative("..a"))
	assert.False(t, IsRelative(""))
	assert.False(t, IsRelative("a.b"))
}
