package payment

import (
	"testing"

	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMethod(t *testing.T) {
	t.Run("creates enabled method", func(t *testing.T) {
		m, err := NewMethod("Pix", decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.Enabled)
	})

	t.Run("rejects negative tax rate", func(t *testing.T) {
		_, err := NewMethod("Pix", decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := NewMethod("  ", decimal.Zero)
		assert.Error(t, err)
	})
}

func TestMethodApplyAndDisable(t *testing.T) {
	m, err := NewMethod("Cartão", decimal.NewFromInt(5))
	require.NoError(t, err)

	t.Run("empty patch is rejected", func(t *testing.T) {
		assert.ErrorIs(t, m.Apply(MethodPatch{}), shared.ErrEmptyPatch)
	})

	t.Run("tax rate update", func(t *testing.T) {
		rate := decimal.NewFromInt(7)
		require.NoError(t, m.Apply(MethodPatch{TaxRate: &rate}))
		assert.True(t, m.TaxRate.Equal(rate))
	})

	t.Run("disable keeps the row", func(t *testing.T) {
		m.Disable()
		assert.False(t, m.Enabled)
	})
}
