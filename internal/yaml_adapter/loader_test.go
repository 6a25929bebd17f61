package yaml_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/itemtree/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_Items(t *testing.T) {
	path := writeYAML(t, "items.yaml", `
item_tree:
  grandparent:
    parent:
      my_item:
        type: bool
        eval: sh..child() + 1
        eval_trigger:
          - .child
          - ..sister
        sv_widget: "{{ basic.switch('id_schreibtischleuchte', '.onoff') }}"
        cache:
        child:
          type: foo
      sister: {}

_expand:
  - attribute: sv_widget
    mode: bracket
    delimiter: "'"
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	expectedItem := &config.Item{
		Name: "my_item",
		Attributes: map[string]string{
			"type":         "bool",
			"eval":         "sh..child() + 1",
			"eval_trigger": ".child | ..sister",
			"sv_widget":    "{{ basic.switch('id_schreibtischleuchte', '.onoff') }}",
			"cache":        "",
		},
		Children: []*config.Item{
			{Name: "child", Attributes: map[string]string{"type": "foo"}, Source: path},
		},
		Source: path,
	}

	require.Len(t, model.Items, 1)
	parent := model.Items[0].Child("grandparent").Child("parent")
	require.NotNil(t, parent)
	require.Len(t, parent.Children, 2)
	assert.Equal(t, "my_item", parent.Children[0].Name)
	assert.Equal(t, "sister", parent.Children[1].Name)

	if diff := cmp.Diff(expectedItem, parent.Children[0]); diff != "" {
		t.Errorf("item mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, model.Rules, 1)
	assert.Equal(t, config.ModeBracket, model.Rules[0].Mode)
	assert.Equal(t, '\'', model.Rules[0].Delimiter)
}

func TestLoader_Anchors(t *testing.T) {
	path := writeYAML(t, "anchors.yaml", `
templates: &lamp
  type: bool
  visu: "'.onoff'"
living:
  lamp: *lamp
`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Items, 2)
	lamp := model.Items[1].Child("lamp")
	require.NotNil(t, lamp)
	assert.Equal(t, "'.onoff'", lamp.Attributes["visu"])
}

func TestLoader_EmptyFiles(t *testing.T) {
	for _, content := range []string{"", "# just a comment\n", "~\n"} {
		path := writeYAML(t, "empty.yaml", content)
		model, err := NewLoader().Load(context.Background(), path)
		require.NoError(t, err, "content %q", content)
		assert.Empty(t, model.Items)
	}
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		expectErr string
	}{
		{name: "malformed", content: "a: [", expectErr: "failed to parse YAML file"},
		{name: "top-level list", content: "- a\n- b\n", expectErr: "top level must be a mapping"},
		{name: "top-level scalar value", content: "a: 1\n", expectErr: "must be an item mapping"},
		{name: "nested list of maps", content: "a:\n  x:\n    - y: 1\n", expectErr: "may only list scalar values"},
		{name: "bad rule", content: "_expand:\n  - attribute: x\n    mode: nope\n", expectErr: "unknown expansion mode"},
		{name: "rules not a list", content: "_expand: 3\n", expectErr: "invalid _expand section"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeYAML(t, "bad.yaml", tc.content)
			_, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read YAML file")
}

func TestLoader_Extensions(t *testing.T) {
	assert.Equal(t, []string{".yaml", ".yml"}, NewLoader().Extensions())
}
