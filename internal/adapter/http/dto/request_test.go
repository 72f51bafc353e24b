package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvoy/ledgerbook/internal/domain"
)

func TestCreateEntryRequestToUseCaseInput(t *testing.T) {
	req := CreateEntryRequest{
		EntryNumber: "JE-001",
		EntryDate:   "2024-01-17",
		Description: "cash sale",
		Reference:   "INV-42",
		Lines: []LineRequest{
			{AccountID: "acc-cash", Side: "DEBIT", Amount: decimal.RequireFromString("100.00")},
			{AccountID: "acc-sales", Side: "CREDIT", Amount: decimal.RequireFromString("100.00")},
		},
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !input.EntryDate.Equal(time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected parsed date, got %s", input.EntryDate)
	}

	if len(input.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(input.Lines))
	}

	if input.Lines[0].Side != domain.SideDebit || input.Lines[1].Side != domain.SideCredit {
		t.Fatalf("expected sides to carry over, got %+v", input.Lines)
	}
}

func TestCreateEntryRequestRejectsBadDate(t *testing.T) {
	for _, date := range []string{"", "17/01/2024", "2024-13-01", "not-a-date"} {
		req := CreateEntryRequest{EntryNumber: "JE-001", EntryDate: date}

		if _, err := req.ToUseCaseInput(); err == nil {
			t.Errorf("expected error for entry date %q", date)
		}
	}
}
