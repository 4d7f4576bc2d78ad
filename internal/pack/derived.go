package pack

// Derived quantities are computed over an immutable Pack snapshot rather than
// bound to the live store, so consumers can never observe a stale closure and
// the arithmetic is testable in isolation.

// ItemCount returns the number of distinct items in the pack.
func (p Pack) ItemCount() int {
	return len(p.Items)
}

// TotalQuantity returns the sum of all item quantities.
func (p Pack) TotalQuantity() int {
	total := 0
	for _, it := range p.Items {
		total += it.Quantity
	}
	return total
}

// TotalWeight returns the summed item weight in kg: per-piece weight times
// quantity, counting items without a weight as 0.
func (p Pack) TotalWeight() float64 {
	total := 0.0
	for _, it := range p.Items {
		if it.WeightPerUnit == nil {
			continue
		}
		total += *it.WeightPerUnit * float64(it.Quantity)
	}
	return total
}

// TotalWithBagWeight returns the total item weight plus the empty bag weight.
func (p Pack) TotalWithBagWeight() float64 {
	return p.TotalWeight() + p.BagWeight
}

// RemainingAllowance returns how much of the airline allowance is left after
// the packed items and the bag, or nil when no allowance is set.
func (p Pack) RemainingAllowance() *float64 {
	if p.Allowance == nil {
		return nil
	}
	rem := *p.Allowance - p.TotalWithBagWeight()
	return &rem
}
