package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileItems(t *testing.T) {
	t.Run("classifies removed, added and kept items", func(t *testing.T) {
		kept := newTestItem(t, 100, 40, 1)
		removed := newTestItem(t, 50, 10, 2)
		added := newTestItem(t, 30, 5, 1)

		keptEdited := kept
		keptEdited.Quantity = 3

		plan := ReconcileItems(
			[]LineItem{kept, removed},
			[]LineItem{keptEdited, added},
		)

		require.Len(t, plan.Remove, 1)
		assert.Equal(t, removed.ID, plan.Remove[0])
		require.Len(t, plan.Add, 1)
		assert.Equal(t, added.ID, plan.Add[0].ID)
		require.Len(t, plan.Update, 1)
		assert.Equal(t, kept.ID, plan.Update[0].ID)
		assert.Equal(t, 3, plan.Update[0].Quantity)
	})

	t.Run("partition completeness", func(t *testing.T) {
		current := []LineItem{
			newTestItem(t, 10, 1, 1),
			newTestItem(t, 20, 2, 1),
			newTestItem(t, 30, 3, 1),
		}
		desired := []LineItem{
			current[0], // kept
			current[2], // kept
			newTestItem(t, 40, 4, 1),
			newTestItem(t, 50, 5, 1),
		}

		plan := ReconcileItems(current, desired)

		// Remove ∪ Update = current, Add ∪ Update = desired, buckets disjoint
		assert.Equal(t, len(current), len(plan.Remove)+len(plan.Update))
		assert.Equal(t, len(desired), len(plan.Add)+len(plan.Update))

		updated := make(map[uuid.UUID]bool)
		for _, item := range plan.Update {
			updated[item.ID] = true
		}
		for _, id := range plan.Remove {
			assert.False(t, updated[id], "item %s in both remove and update", id)
		}
		for _, item := range plan.Add {
			assert.False(t, updated[item.ID], "item %s in both add and update", item.ID)
		}
	})

	t.Run("same desired set is a noop plan except identical updates", func(t *testing.T) {
		current := []LineItem{
			newTestItem(t, 10, 1, 1),
			newTestItem(t, 20, 2, 2),
		}

		plan := ReconcileItems(current, current)

		assert.Empty(t, plan.Remove)
		assert.Empty(t, plan.Add)
		assert.Len(t, plan.Update, len(current))
	})

	t.Run("empty desired set removes everything", func(t *testing.T) {
		current := []LineItem{newTestItem(t, 10, 1, 1)}

		plan := ReconcileItems(current, nil)

		assert.Len(t, plan.Remove, 1)
		assert.Empty(t, plan.Add)
		assert.Empty(t, plan.Update)
	})

	t.Run("empty current set adds everything", func(t *testing.T) {
		desired := []LineItem{newTestItem(t, 10, 1, 1), newTestItem(t, 20, 2, 1)}

		plan := ReconcileItems(nil, desired)

		assert.Empty(t, plan.Remove)
		assert.Len(t, plan.Add, 2)
		assert.Empty(t, plan.Update)
	})

	t.Run("classification ignores desired ordering", func(t *testing.T) {
		current := []LineItem{newTestItem(t, 10, 1, 1), newTestItem(t, 20, 2, 1)}
		added := newTestItem(t, 30, 3, 1)

		forward := ReconcileItems(current, []LineItem{current[0], added})
		backward := ReconcileItems(current, []LineItem{added, current[0]})

		assert.ElementsMatch(t, forward.Remove, backward.Remove)
		assert.Len(t, forward.Add, 1)
		assert.Len(t, backward.Add, 1)
		assert.Equal(t, forward.Add[0].ID, backward.Add[0].ID)
		assert.Len(t, forward.Update, 1)
		assert.Equal(t, forward.Update[0].ID, backward.Update[0].ID)
	})

	t.Run("noop detection", func(t *testing.T) {
		assert.True(t, ItemPlan{}.IsNoop())
		assert.False(t, ItemPlan{Remove: []uuid.UUID{uuid.New()}}.IsNoop())
	})
}
