package order

import "github.com/shopspring/decimal"

// Totals holds the monetary aggregates of an order
type Totals struct {
	Total  decimal.Decimal
	Profit decimal.Decimal
}

// ComputeTotals computes an order's total and profit from its line items and
// the payment method's flat tax rate. The tax is subtracted once per order,
// not per unit. The result does not depend on item order; an empty item list
// yields a total of zero and a profit of minus the tax rate.
func ComputeTotals(items []LineItem, taxRate decimal.Decimal) Totals {
	total := decimal.Zero
	profit := decimal.Zero
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		total = total.Add(item.Price.Mul(qty))
		profit = profit.Add(item.Profit.Mul(qty))
	}
	return Totals{
		Total:  total,
		Profit: profit.Sub(taxRate),
	}
}
