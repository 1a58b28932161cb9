package catalog

import (
	"testing"

	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("creates private category", func(t *testing.T) {
		c, err := NewCategory("Rings", "All rings")

		require.NoError(t, err)
		assert.Equal(t, "Rings", c.Name)
		assert.False(t, c.Public)
	})

	t.Run("rejects whitespace-only name", func(t *testing.T) {
		_, err := NewCategory("   ", "desc")
		assert.Error(t, err)
	})
}

func TestCategoryApply(t *testing.T) {
	t.Run("partial update leaves omitted fields unchanged", func(t *testing.T) {
		c, err := NewCategory("Rings", "All rings")
		require.NoError(t, err)

		public := true
		require.NoError(t, c.Apply(CategoryPatch{Public: &public}))

		assert.True(t, c.Public)
		assert.Equal(t, "Rings", c.Name)
		assert.Equal(t, "All rings", c.Description)
	})

	t.Run("empty patch is rejected", func(t *testing.T) {
		c, err := NewCategory("Rings", "")
		require.NoError(t, err)

		assert.ErrorIs(t, c.Apply(CategoryPatch{}), shared.ErrEmptyPatch)
	})

	t.Run("invalid name in patch is rejected", func(t *testing.T) {
		c, err := NewCategory("Rings", "")
		require.NoError(t, err)

		blank := " "
		assert.Error(t, c.Apply(CategoryPatch{Name: &blank}))
	})
}

func TestCollectionApply(t *testing.T) {
	c, err := NewCollection("Summer", "Summer picks")
	require.NoError(t, err)

	assert.ErrorIs(t, c.Apply(CollectionPatch{}), shared.ErrEmptyPatch)

	name := "Winter"
	require.NoError(t, c.Apply(CollectionPatch{Name: &name}))
	assert.Equal(t, "Winter", c.Name)
}
