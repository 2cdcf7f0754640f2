package order

import (
	"math"
	"testing"
)

func TestRecalculate(t *testing.T) {
	o := Order{
		Items: []OrderItem{
			{ProductID: "p1", StoreID: "s1", UnitPrice: 12.50, Quantity: 2},
			{ProductID: "p2", StoreID: "s2", UnitPrice: 3.75, Quantity: 4},
		},
		Tax:      2.00,
		Shipping: 5.00,
	}
	o.Recalculate()

	if math.Abs(o.Subtotal-40.00) > 1e-9 {
		t.Errorf("expected subtotal 40.00, got %v", o.Subtotal)
	}
	if math.Abs(o.Total-47.00) > 1e-9 {
		t.Errorf("expected total 47.00, got %v", o.Total)
	}

	o.Items = append(o.Items, OrderItem{ProductID: "p3", StoreID: "s1", UnitPrice: 10, Quantity: 1})
	o.Recalculate()
	if math.Abs(o.Total-57.00) > 1e-9 {
		t.Errorf("total must track every item change, got %v", o.Total)
	}
}

func TestRecalculateEmptyOrder(t *testing.T) {
	o := Order{Tax: 1.50, Shipping: 3.00}
	o.Recalculate()
	if o.Subtotal != 0 {
		t.Errorf("expected zero subtotal, got %v", o.Subtotal)
	}
	if math.Abs(o.Total-4.50) > 1e-9 {
		t.Errorf("expected total 4.50, got %v", o.Total)
	}
}

func TestCanTransition(t *testing.T) {
	legal := [][2]string{
		{StatusPending, StatusConfirmed},
		{StatusConfirmed, StatusProcessing},
		{StatusProcessing, StatusShipped},
		{StatusShipped, StatusDelivered},
		{StatusPending, StatusCancelled},
		{StatusShipped, StatusCancelled},
	}
	for _, tr := range legal {
		if !CanTransition(tr[0], tr[1]) {
			t.Errorf("expected %s -> %s to be legal", tr[0], tr[1])
		}
	}

	illegal := [][2]string{
		{StatusPending, StatusShipped},
		{StatusDelivered, StatusCancelled},
		{StatusCancelled, StatusConfirmed},
		{StatusShipped, StatusProcessing},
	}
	for _, tr := range illegal {
		if CanTransition(tr[0], tr[1]) {
			t.Errorf("expected %s -> %s to be illegal", tr[0], tr[1])
		}
	}
}
