package models

import (
	"testing"
)

func TestApplyQuantityDelta(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		delta    int
		want     int
		wantKeep bool
	}{
		{name: "positive delta increments", current: 2, delta: 3, want: 5, wantKeep: true},
		{name: "negative delta decrements", current: 5, delta: -2, want: 3, wantKeep: true},
		{name: "delta to exactly zero removes", current: 2, delta: -2, want: 0, wantKeep: false},
		{name: "delta below zero removes", current: 2, delta: -7, want: 0, wantKeep: false},
		{name: "decrement to one keeps", current: 2, delta: -1, want: 1, wantKeep: true},
		{name: "zero delta keeps quantity", current: 4, delta: 0, want: 4, wantKeep: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, keep := ApplyQuantityDelta(tt.current, tt.delta)
			if got != tt.want || keep != tt.wantKeep {
				t.Errorf("ApplyQuantityDelta(%d, %d) = (%d, %v), want (%d, %v)",
					tt.current, tt.delta, got, keep, tt.want, tt.wantKeep)
			}
		})
	}
}

func TestQuantityTotals(t *testing.T) {
	merch := []MerchCartItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 7, Quantity: 1},
		{ProductID: 9, Quantity: 4},
	}
	if got := MerchQuantityTotal(merch); got != 7 {
		t.Errorf("MerchQuantityTotal() = %d, want 7", got)
	}
	if got := MerchQuantityTotal(nil); got != 0 {
		t.Errorf("MerchQuantityTotal(nil) = %d, want 0", got)
	}

	tickets := []TicketCartItem{
		{TicketID: 3, Quantity: 2, SeatInfo: []string{"A1", "A2"}},
		{TicketID: 4, Quantity: 1, SeatInfo: []string{"C5"}},
	}
	if got := TicketQuantityTotal(tickets); got != 3 {
		t.Errorf("TicketQuantityTotal() = %d, want 3", got)
	}
	if got := TicketQuantityTotal(nil); got != 0 {
		t.Errorf("TicketQuantityTotal(nil) = %d, want 0", got)
	}
}
