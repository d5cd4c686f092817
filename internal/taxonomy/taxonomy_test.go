package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTaxonomy(t *testing.T) {
	tx := Default()

	assert.Len(t, tx.Primaries(), 14)
	assert.True(t, tx.IsValid("Beverages", "Cola"))
	assert.False(t, tx.IsValid("Beverages", "Ice Cream"))
	assert.False(t, tx.IsValid("Snacks", "Cola"))

	// Ice Cream lives under two primaries; the first declared wins.
	p, ok := tx.PrimaryOf("Ice Cream")
	require.True(t, ok)
	assert.Equal(t, "Dairy & Dairy Alternatives", p)
}

func TestRelated(t *testing.T) {
	tx := Default()
	assert.Equal(t, []string{"Dark Chocolate", "Fudge"}, tx.Related("Candy"))
	assert.Empty(t, tx.Related("Ghee"))

	r := tx.Related("Candy")
	r[0] = "mutated"
	assert.Equal(t, "Dark Chocolate", tx.Related("Candy")[0])
}

func TestLoadRelatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "related.yaml")
	require.NoError(t, os.WriteFile(path, []byte("related:\n  Ghee:\n    - Butter\n    - Cream\n"), 0o644))

	related, err := LoadRelatedFile(path)
	require.NoError(t, err)

	tx := Default().WithRelated(related)
	assert.Equal(t, []string{"Butter", "Cream"}, tx.Related("Ghee"))
	assert.Empty(t, tx.Related("Candy"))
	assert.True(t, tx.IsValid("Beverages", "Cola"))
}

func TestLoadRelatedFileMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "related.yaml")
	require.NoError(t, os.WriteFile(path, []byte("other: {}\n"), 0o644))

	_, err := LoadRelatedFile(path)
	assert.Error(t, err)
}
