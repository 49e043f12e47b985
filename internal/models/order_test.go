package models

import (
	"testing"
)

func TestOrder_Validate(t *testing.T) {
	tests := []struct {
		name    string
		order   Order
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid merch order",
			order: Order{
				UserID:      1,
				OrderNumber: "ORD-20240101-123456",
				MerchLines:  []MerchCartItem{{ProductID: 1, Quantity: 2}},
			},
			wantErr: false,
		},
		{
			name: "valid ticket order",
			order: Order{
				UserID:      1,
				OrderNumber: "ORD-20240101-123456",
				TicketLines: []TicketCartItem{{TicketID: 1, Quantity: 1, SeatInfo: []string{"A1"}}},
			},
			wantErr: false,
		},
		{
			name: "missing user",
			order: Order{
				OrderNumber: "ORD-20240101-123456",
				MerchLines:  []MerchCartItem{{ProductID: 1, Quantity: 2}},
			},
			wantErr: true,
			errMsg:  "order user is required",
		},
		{
			name: "missing order number",
			order: Order{
				UserID:     1,
				MerchLines: []MerchCartItem{{ProductID: 1, Quantity: 2}},
			},
			wantErr: true,
			errMsg:  "order number is required",
		},
		{
			name: "malformed order number",
			order: Order{
				UserID:      1,
				OrderNumber: "2024-01-01-123456",
				MerchLines:  []MerchCartItem{{ProductID: 1, Quantity: 2}},
			},
			wantErr: true,
			errMsg:  "order number format is invalid",
		},
		{
			name: "no lines at all",
			order: Order{
				UserID:      1,
				OrderNumber: "ORD-20240101-123456",
			},
			wantErr: true,
			errMsg:  "order must contain at least one line",
		},
		{
			name: "merch line with zero quantity",
			order: Order{
				UserID:      1,
				OrderNumber: "ORD-20240101-123456",
				MerchLines:  []MerchCartItem{{ProductID: 1, Quantity: 0}},
			},
			wantErr: true,
			errMsg:  "order line quantity must be positive",
		},
		{
			name: "ticket line without seat info",
			order: Order{
				UserID:      1,
				OrderNumber: "ORD-20240101-123456",
				TicketLines: []TicketCartItem{{TicketID: 1, Quantity: 1}},
			},
			wantErr: true,
			errMsg:  "order ticket line seat info is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Validate() expected error, got nil")
					return
				}
				if err.Error() != tt.errMsg {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	number := GenerateOrderNumber()
	if !orderNumberRegex.MatchString(number) {
		t.Errorf("GenerateOrderNumber() = %q, does not match expected format", number)
	}

	// Collisions are possible, but 100 draws from a million values repeating
	// would point at a broken generator
	seen := make(map[string]int)
	for i := 0; i < 100; i++ {
		seen[GenerateOrderNumber()]++
	}
	if len(seen) < 95 {
		t.Errorf("GenerateOrderNumber() produced only %d distinct values in 100 draws", len(seen))
	}
}
