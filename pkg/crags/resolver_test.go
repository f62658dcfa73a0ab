package crags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cragsync/pkg/crags"
	"github.com/agentstation/cragsync/pkg/errors"
)

func TestResolve(t *testing.T) {
	resolver := crags.DefaultResolver()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"empty path", "", ""},
		{"whitespace path", "   ", ""},
		{"single node", "Frankenjura", "Frankenjura"},
		{"plain crag", "Frankenjura - Sektor A", "Sektor A"},
		{"trailing stoplist label", "Frankenjura - Sektor A - Upper part", "Sektor A"},
		{"several trailing labels", "Frankenjura - Sektor A - Left - Upper part", "Sektor A"},
		{"stoplist label in the middle is kept", "Frankenjura - Left - Sektor B", "Sektor B"},
		{"all stoplisted", "Upper part - Left", ""},
		{"stoplist is case sensitive", "Frankenjura - Sektor A - upper part", "upper part"},
		{"override wins over stoplist", "Geyikbayırı - Sector X - Upper part", "Geyikbayırı"},
		{"override found deeper in path", "Geyikbayırı - Trebenna - Sarkit", "Geyikbayırı"},
		{"nodes are trimmed", "Frankenjura -  Sektor A  - Right", "Sektor A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolver.Resolve(tt.path))
		})
	}
}

func TestResolveOverrideDepth(t *testing.T) {
	resolver, err := crags.NewResolver(crags.DefaultStoplist(), crags.Overrides{
		"Sarkit":  2,
		"Massone": 9,
	})
	require.NoError(t, err)

	t.Run("depth counted from the start of the full path", func(t *testing.T) {
		assert.Equal(t, "Antalya", resolver.Resolve("Turkey - Antalya - Sarkit - Upper part"))
	})

	t.Run("depth beyond path falls back to stoplist result", func(t *testing.T) {
		assert.Equal(t, "Massone", resolver.Resolve("Arco - Massone - Left"))
	})

	t.Run("last override key in path wins", func(t *testing.T) {
		assert.Equal(t, "Antalya", resolver.Resolve("Arco - Antalya - Massone - Sarkit"))
	})

	t.Run("out of range key does not fall through to earlier keys", func(t *testing.T) {
		assert.Equal(t, "Massone", resolver.Resolve("Turkey - Sarkit - Massone - Left"))
	})
}

func TestNewResolverRejectsInvalidDepth(t *testing.T) {
	_, err := crags.NewResolver(nil, crags.Overrides{"Broken": 0})
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Contains(t, err.Error(), "Broken")
}

func TestDefaultTablesAreCopies(t *testing.T) {
	stoplist := crags.DefaultStoplist()
	stoplist[0] = "mutated"
	assert.NotContains(t, crags.DefaultStoplist(), "mutated")

	overrides := crags.DefaultOverrides()
	overrides["Geyikbayırı"] = 5
	assert.Equal(t, 1, crags.DefaultOverrides()["Geyikbayırı"])

	resolver := crags.DefaultResolver()
	assert.Contains(t, resolver.Stoplist(), "Upper part")
	assert.Equal(t, crags.DefaultOverrides(), resolver.Overrides())
}

func TestSplitPath(t *testing.T) {
	assert.Nil(t, crags.SplitPath(""))
	assert.Equal(t, []string{"A", "B", "C"}, crags.SplitPath("A - B - C"))
	assert.Equal(t, []string{"Hohe-Wand"}, crags.SplitPath("Hohe-Wand"))
}
