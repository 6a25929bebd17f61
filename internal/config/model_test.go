package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_Merge(t *testing.T) {
	m := &Model{Items: []*Item{
		{Name: "a", Attributes: map[string]string{"type": "num", "x": "1"}, Children: []*Item{
			{Name: "b"},
		}},
	}}
	other := &Model{
		Items: []*Item{
			{Name: "a", Attributes: map[string]string{"x": "2"}, Children: []*Item{
				{Name: "c", Attributes: map[string]string{"y": "3"}},
				{Name: "b", Attributes: map[string]string{"z": "4"}},
			}},
			{Name: "d"},
		},
		Rules: []*ExpansionRule{{Attribute: "w", Mode: ModeBracket, Delimiter: '\''}},
	}

	m.Merge(other)
	m.Merge(nil)

	expected := &Model{
		Items: []*Item{
			{Name: "a", Attributes: map[string]string{"type": "num", "x": "2"}, Children: []*Item{
				{Name: "b", Attributes: map[string]string{"z": "4"}},
				{Name: "c", Attributes: map[string]string{"y": "3"}},
			}},
			{Name: "d"},
		},
		Rules: []*ExpansionRule{{Attribute: "w", Mode: ModeBracket, Delimiter: '\''}},
	}
	if diff := cmp.Diff(expected, m); diff != "" {
		t.Errorf("merged model mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, m.Count())
	require.NotNil(t, m.Items[0].Child("c"))
	assert.Nil(t, m.Items[0].Child("nope"))
}
