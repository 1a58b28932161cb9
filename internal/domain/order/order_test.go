package order

import (
	"testing"
	"time"

	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	t.Run("creates item with snapshot fields", func(t *testing.T) {
		productID := uuid.New()
		item, err := NewLineItem(productID, "Ring", decimal.NewFromInt(100), decimal.NewFromInt(60), "R-1", decimal.NewFromInt(40), 2)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, item.ID)
		assert.Equal(t, productID, item.ProductID)
		assert.Equal(t, "Ring", item.Name)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewLineItem(uuid.New(), "Ring", decimal.NewFromInt(100), decimal.NewFromInt(60), "R-1", decimal.NewFromInt(40), 0)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
	})

	t.Run("rejects nil product reference", func(t *testing.T) {
		_, err := NewLineItem(uuid.Nil, "Ring", decimal.NewFromInt(100), decimal.NewFromInt(60), "R-1", decimal.NewFromInt(40), 1)
		assert.Error(t, err)
	})

	t.Run("rejects empty product name", func(t *testing.T) {
		_, err := NewLineItem(uuid.New(), "", decimal.NewFromInt(100), decimal.NewFromInt(60), "R-1", decimal.NewFromInt(40), 1)
		assert.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("computes totals and associates items", func(t *testing.T) {
		items := []LineItem{newTestItem(t, 100, 40, 2)}
		o, err := NewOrder(uuid.New(), uuid.New(), time.Now(), items, decimal.NewFromInt(5))

		require.NoError(t, err)
		assert.True(t, o.Paid)
		assert.True(t, o.Total.Equal(decimal.NewFromInt(200)))
		assert.True(t, o.Profit.Equal(decimal.NewFromInt(75)))
		require.Len(t, o.Items, 1)
		assert.Equal(t, o.ID, o.Items[0].OrderID)
	})

	t.Run("empty item list is allowed", func(t *testing.T) {
		o, err := NewOrder(uuid.New(), uuid.New(), time.Now(), nil, decimal.NewFromInt(5))

		require.NoError(t, err)
		assert.True(t, o.Total.IsZero())
		assert.True(t, o.Profit.Equal(decimal.NewFromInt(-5)))
	})

	t.Run("rejects missing references", func(t *testing.T) {
		_, err := NewOrder(uuid.Nil, uuid.New(), time.Now(), nil, decimal.Zero)
		assert.Error(t, err)

		_, err = NewOrder(uuid.New(), uuid.Nil, time.Now(), nil, decimal.Zero)
		assert.Error(t, err)
	})
}

func TestOrderItemsQuantity(t *testing.T) {
	o, err := NewOrder(uuid.New(), uuid.New(), time.Now(), []LineItem{
		newTestItem(t, 10, 1, 2),
		newTestItem(t, 20, 2, 3),
	}, decimal.Zero)
	require.NoError(t, err)

	assert.Equal(t, 5, o.ItemsQuantity())
}
