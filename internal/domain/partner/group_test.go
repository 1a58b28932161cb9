package partner

import (
	"testing"

	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroup(t *testing.T) {
	t.Run("strips phone to digits", func(t *testing.T) {
		g, err := NewGroup("Família Silva", "", "(11) 98765-4321")

		require.NoError(t, err)
		assert.Equal(t, "11987654321", g.Phone)
	})

	t.Run("stores fallback when phone has no digits", func(t *testing.T) {
		g, err := NewGroup("Família Silva", "", "sem telefone")

		require.NoError(t, err)
		assert.Equal(t, PhoneFallback, g.Phone)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := NewGroup("  ", "", "")
		assert.Error(t, err)
	})
}

func TestGroupApply(t *testing.T) {
	g, err := NewGroup("Família Silva", "desc", "11987654321")
	require.NoError(t, err)

	t.Run("empty patch is rejected", func(t *testing.T) {
		assert.ErrorIs(t, g.Apply(GroupPatch{}), shared.ErrEmptyPatch)
	})

	t.Run("phone patch is normalized", func(t *testing.T) {
		phone := "(21) 1234-5678"
		require.NoError(t, g.Apply(GroupPatch{Phone: &phone}))
		assert.Equal(t, "2112345678", g.Phone)
	})
}
