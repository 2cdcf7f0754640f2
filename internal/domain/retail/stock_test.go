package retail

import "testing"

func TestClassifyStock(t *testing.T) {
	products := []Product{
		{ID: "a", Name: "Water", StockQuantity: 0, MinStockLevel: 5},
		{ID: "b", Name: "Towel", StockQuantity: 3, MinStockLevel: 5},
		{ID: "c", Name: "Racket", StockQuantity: 5, MinStockLevel: 5},
		{ID: "d", Name: "Shirt", StockQuantity: 50, MinStockLevel: 5},
	}

	sum := ClassifyStock(products)
	if sum.Total != 4 {
		t.Errorf("expected total 4, got %d", sum.Total)
	}
	if len(sum.OutOfStock) != 1 || sum.OutOfStock[0].ID != "a" {
		t.Errorf("expected only product a out of stock, got %v", sum.OutOfStock)
	}
	for _, p := range sum.LowStock {
		if p.ID == "a" {
			t.Errorf("zero-quantity product must never appear in low stock")
		}
	}
	if len(sum.LowStock) != 2 {
		t.Errorf("expected b and c in low stock, got %v", sum.LowStock)
	}
}

func TestClassifyStockEmpty(t *testing.T) {
	sum := ClassifyStock(nil)
	if sum.Total != 0 || len(sum.OutOfStock) != 0 || len(sum.LowStock) != 0 {
		t.Errorf("expected empty summary, got %+v", sum)
	}
}

func TestFilterProducts(t *testing.T) {
	products := []Product{
		{ID: "a", Name: "Tennis Racket", Category: "equipment"},
		{ID: "b", Name: "Energy Bar", Category: "snacks"},
		{ID: "c", Name: "Racket Grip", Category: "equipment"},
	}

	out := FilterProducts(products, "racket", "")
	if len(out) != 2 {
		t.Errorf("expected 2 matches for 'racket', got %v", out)
	}

	out = FilterProducts(products, "", "snacks")
	if len(out) != 1 || out[0].ID != "b" {
		t.Errorf("expected only b in snacks, got %v", out)
	}

	out = FilterProducts(products, "racket", "snacks")
	if len(out) != 0 {
		t.Errorf("expected no matches, got %v", out)
	}
}
