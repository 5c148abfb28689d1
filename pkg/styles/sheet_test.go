package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ReplaceIsWholesale(t *testing.T) {
	r := NewRegistry()
	r.Replace("sheet", []Rule{{ID: "docker", Color: "#111111"}, {ID: "aws", Color: "#222222"}})
	r.Replace("sheet", []Rule{{ID: "aws", Color: "#333333"}})

	_, ok := r.Rule("sheet", "docker")
	assert.False(t, ok, "rules missing from the new sheet are gone")

	rule, ok := r.Rule("sheet", "aws")
	require.True(t, ok)
	assert.Equal(t, "#333333", rule.Color)
	assert.Len(t, r.Sheet("sheet"), 1)
}

func TestRegistry_SheetsAreIndependent(t *testing.T) {
	r := NewRegistry()
	r.Replace("one", []Rule{{ID: "a"}})
	r.Replace("two", []Rule{{ID: "b"}})

	_, ok := r.Rule("one", "b")
	assert.False(t, ok)

	r.Remove("one")
	assert.Empty(t, r.Sheet("one"))
	assert.Len(t, r.Sheet("two"), 1)
}

func TestRegistry_UnknownSheet(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Rule("missing", "a")
	assert.False(t, ok)
	assert.Nil(t, r.Sheet("missing"))
}
