package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAccountType_Valid(t *testing.T) {
	valid := []AccountType{
		AccountTypeAsset,
		AccountTypeLiability,
		AccountTypeEquity,
		AccountTypeRevenue,
		AccountTypeExpense,
	}
	for _, at := range valid {
		if !at.Valid() {
			t.Errorf("expected %s to be valid", at)
		}
	}

	invalid := []AccountType{"", "SUSPENSE", "asset", "ASSETS"}
	for _, at := range invalid {
		if at.Valid() {
			t.Errorf("expected %q to be invalid", at)
		}
	}
}

func TestAccount_ApplyDelta(t *testing.T) {
	tests := []struct {
		name     string
		balance  string
		delta    string
		expected string
	}{
		{name: "positive delta", balance: "100.00", delta: "50.25", expected: "150.25"},
		{name: "negative delta", balance: "100.00", delta: "-150.00", expected: "-50"},
		{name: "zero delta", balance: "42.50", delta: "0", expected: "42.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &Account{Balance: decimal.RequireFromString(tt.balance)}

			got := acc.ApplyDelta(decimal.RequireFromString(tt.delta))
			if got.String() != tt.expected {
				t.Fatalf("expected %s, got %s", tt.expected, got.String())
			}

			// the receiver's stored balance is untouched
			if !acc.Balance.Equal(decimal.RequireFromString(tt.balance)) {
				t.Fatalf("balance mutated to %s", acc.Balance.String())
			}
		})
	}
}
