package pack

import "testing"

func TestPack_DerivedQuantities(t *testing.T) {
	p := Pack{
		Items: []PackItem{
			{ID: "a", Name: "A", Quantity: 2, WeightPerUnit: floatPtr(1.5)},
			{ID: "b", Name: "B", Quantity: 4, WeightPerUnit: floatPtr(0.5)},
			{ID: "c", Name: "C", Quantity: 3},
		},
		BagWeight: 1.0,
	}

	if got := p.ItemCount(); got != 3 {
		t.Errorf("ItemCount() = %d, want 3", got)
	}
	if got := p.TotalQuantity(); got != 9 {
		t.Errorf("TotalQuantity() = %d, want 9", got)
	}
	// 1.5*2 + 0.5*4, the weightless item counts as zero
	if got := p.TotalWeight(); got != 5.0 {
		t.Errorf("TotalWeight() = %v, want 5.0", got)
	}
	if got := p.TotalWithBagWeight(); got != 6.0 {
		t.Errorf("TotalWithBagWeight() = %v, want 6.0", got)
	}
}

func TestPack_RemainingAllowance(t *testing.T) {
	p := Pack{
		Items:     []PackItem{{ID: "a", Quantity: 2, WeightPerUnit: floatPtr(1.5)}},
		BagWeight: 1.0,
	}

	if got := p.RemainingAllowance(); got != nil {
		t.Errorf("RemainingAllowance() = %v, want nil without allowance", *got)
	}

	p.Allowance = floatPtr(20)
	got := p.RemainingAllowance()
	if got == nil {
		t.Fatal("RemainingAllowance() = nil")
	}
	if *got != 16.0 {
		t.Errorf("RemainingAllowance() = %v, want 16.0", *got)
	}

	// allowance can go negative when overpacked
	p.Allowance = floatPtr(2)
	got = p.RemainingAllowance()
	if got == nil || *got != -2.0 {
		t.Errorf("RemainingAllowance() = %v, want -2.0", got)
	}
}

func TestPack_DerivedQuantities_Empty(t *testing.T) {
	var p Pack

	if got := p.ItemCount(); got != 0 {
		t.Errorf("ItemCount() = %d, want 0", got)
	}
	if got := p.TotalQuantity(); got != 0 {
		t.Errorf("TotalQuantity() = %d, want 0", got)
	}
	if got := p.TotalWeight(); got != 0 {
		t.Errorf("TotalWeight() = %v, want 0", got)
	}
}
