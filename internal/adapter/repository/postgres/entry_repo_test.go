package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	"github.com/finvoy/ledgerbook/internal/domain"
)

// Removing a line leaves a gap in the stored positions; the append statement
// must take max+1 so the new line never collides with a surviving row.
func TestEntryRepositoryAddLineDerivesNextPosition(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectExec(`INSERT INTO journal_lines[\s\S]*COALESCE\(MAX\(line_no\) \+ 1, 0\)[\s\S]*WHERE entry_id = \$2`).
		WithArgs("line-3", "entry-1", "acc-cash", "DEBIT", pgxmock.AnyArg(), "cash movement", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mockPool.ExpectCommit()

	manager := newTxManagerWithPool(mockPool)
	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line, err := domain.NewDebitLine("acc-cash", decimal.RequireFromString("25.00"), "cash movement")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line.ID = "line-3"

	repo := &EntryRepository{}
	if err := repo.AddLine(context.Background(), tx, "entry-1", line, time.Now().UTC()); err != nil {
		t.Fatalf("add line failed: %v", err)
	}

	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	assertExpectations(t, mockPool)
}
