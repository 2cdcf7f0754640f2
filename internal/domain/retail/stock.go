package retail

import "facility-admin/internal/utils"

// StockSummary is the derived stock breakdown list views show. Out-of-stock
// and low-stock are disjoint: quantity zero is out of stock only.
type StockSummary struct {
	Total      int       `json:"total"`
	OutOfStock []Product `json:"outOfStock"`
	LowStock   []Product `json:"lowStock"`
}

func ClassifyStock(products []Product) StockSummary {
	sum := StockSummary{
		Total:      len(products),
		OutOfStock: []Product{},
		LowStock:   []Product{},
	}
	for _, p := range products {
		switch {
		case p.StockQuantity == 0:
			sum.OutOfStock = append(sum.OutOfStock, p)
		case p.StockQuantity <= p.MinStockLevel:
			sum.LowStock = append(sum.LowStock, p)
		}
	}
	return sum
}

// FilterProducts re-derives the visible subset from the full list: substring
// search over name and category plus an exact category filter.
func FilterProducts(products []Product, query, category string) []Product {
	out := []Product{}
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if !utils.MatchesSearch(query, p.Name, p.Category) {
			continue
		}
		out = append(out, p)
	}
	return out
}
