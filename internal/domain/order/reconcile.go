package order

import "github.com/google/uuid"

// ItemPlan is the result of classifying a desired line-item set against the
// stored one. The three buckets partition both sets by identifier membership:
// Remove ∪ Update covers every stored item, Add ∪ Update covers every desired
// item, and no item appears in two buckets.
type ItemPlan struct {
	Remove []uuid.UUID
	Add    []LineItem
	Update []LineItem
}

// IsNoop returns true when applying the plan would change nothing structural
// (updates may still overwrite rows with identical values)
func (p ItemPlan) IsNoop() bool {
	return len(p.Remove) == 0 && len(p.Add) == 0 && len(p.Update) == 0
}

// ReconcileItems classifies the desired line items against the currently
// stored ones. Classification is purely by identifier-set membership, so the
// ordering of either slice is irrelevant:
//
//   - stored items whose identifier does not appear in the desired set are
//     removed
//   - desired items whose identifier does not match a stored item are added
//     (brand-new items carry a freshly generated identifier)
//   - desired items whose identifier matches a stored item are updated in
//     place, preserving the row identifier
//
// Applying the same desired set twice is idempotent: the second pass yields
// empty remove/add buckets and updates that overwrite identical values.
func ReconcileItems(current, desired []LineItem) ItemPlan {
	currentIDs := make(map[uuid.UUID]struct{}, len(current))
	for _, item := range current {
		currentIDs[item.ID] = struct{}{}
	}
	desiredIDs := make(map[uuid.UUID]struct{}, len(desired))
	for _, item := range desired {
		desiredIDs[item.ID] = struct{}{}
	}

	var plan ItemPlan
	for _, item := range current {
		if _, ok := desiredIDs[item.ID]; !ok {
			plan.Remove = append(plan.Remove, item.ID)
		}
	}
	for _, item := range desired {
		if _, ok := currentIDs[item.ID]; ok {
			plan.Update = append(plan.Update, item)
		} else {
			plan.Add = append(plan.Add, item)
		}
	}
	return plan
}
