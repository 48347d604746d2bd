package handlers

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func TestCheckCatalogPrice(t *testing.T) {
	tests := []struct {
		name  string
		price decimal.Decimal
		ok    bool
	}{
		{"positive", decimal.RequireFromString("49.90"), true},
		{"cent", decimal.RequireFromString("0.01"), true},
		{"zero", decimal.Zero, false},
		{"negative", decimal.NewFromInt(-10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkCatalogPrice(tt.price)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !httperr.IsBusiness(err, "invalid_price") {
				t.Fatalf("expected invalid_price, got %v", err)
			}
		})
	}
}
