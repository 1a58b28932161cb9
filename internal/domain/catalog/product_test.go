package catalog

import (
	"testing"

	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T) *Product {
	t.Helper()
	p, err := NewProduct("Silver Ring", "A ring", decimal.NewFromInt(100), decimal.NewFromInt(60), 5, "R-1", true, uuid.New())
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("derives profit from price and cost", func(t *testing.T) {
		p := newTestProduct(t)
		assert.True(t, p.Profit.Equal(decimal.NewFromInt(40)))
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := NewProduct("   ", "desc", decimal.Zero, decimal.Zero, 0, "", true, uuid.New())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_NAME", domainErr.Code)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		_, err := NewProduct("Ring", "", decimal.Zero, decimal.Zero, 0, "", true, uuid.New())
		assert.Error(t, err)
	})

	t.Run("rejects missing category", func(t *testing.T) {
		_, err := NewProduct("Ring", "desc", decimal.Zero, decimal.Zero, 0, "", true, uuid.Nil)
		assert.Error(t, err)
	})
}

func TestProductApply(t *testing.T) {
	t.Run("empty patch is rejected", func(t *testing.T) {
		p := newTestProduct(t)
		err := p.Apply(ProductPatch{})
		assert.ErrorIs(t, err, shared.ErrEmptyPatch)
	})

	t.Run("cost-only update recomputes profit from stored price", func(t *testing.T) {
		p := newTestProduct(t)
		newCost := decimal.NewFromInt(30)

		require.NoError(t, p.Apply(ProductPatch{Cost: &newCost}))

		assert.True(t, p.Profit.Equal(decimal.NewFromInt(70)), "profit = %s", p.Profit)
		assert.True(t, p.Price.Equal(decimal.NewFromInt(100)))
	})

	t.Run("price-only update recomputes profit from stored cost", func(t *testing.T) {
		p := newTestProduct(t)
		newPrice := decimal.NewFromInt(80)

		require.NoError(t, p.Apply(ProductPatch{Price: &newPrice}))

		assert.True(t, p.Profit.Equal(decimal.NewFromInt(20)))
	})

	t.Run("untouched fields keep their values", func(t *testing.T) {
		p := newTestProduct(t)
		available := false

		require.NoError(t, p.Apply(ProductPatch{Available: &available}))

		assert.False(t, p.Available)
		assert.Equal(t, "Silver Ring", p.Name)
		assert.True(t, p.Profit.Equal(decimal.NewFromInt(40)))
	})

	t.Run("negative quantity is rejected", func(t *testing.T) {
		p := newTestProduct(t)
		qty := -1

		assert.Error(t, p.Apply(ProductPatch{Quantity: &qty}))
	})
}
