package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func newDraftEntry(t *testing.T) *JournalEntry {
	t.Helper()
	now := time.Now().UTC()
	return NewJournalEntry("entry-1", "JE-2024-001", now, "test entry", "INV-42", now)
}

func mustDebit(t *testing.T, accountID, amount string) JournalLine {
	t.Helper()
	line, err := NewDebitLine(accountID, decimal.RequireFromString(amount), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return line
}

func mustCredit(t *testing.T, accountID, amount string) JournalLine {
	t.Helper()
	line, err := NewCreditLine(accountID, decimal.RequireFromString(amount), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return line
}

func TestJournalEntry_PostBalanced(t *testing.T) {
	entry := newDraftEntry(t)

	if err := entry.AddLine(mustDebit(t, "acc-cash", "100.00")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := entry.AddLine(mustCredit(t, "acc-sales", "100.00")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !entry.IsBalanced() {
		t.Fatal("expected balanced entry")
	}

	if err := entry.Post(time.Now().UTC()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !entry.Posted {
		t.Error("expected posted flag set")
	}

	expected := decimal.RequireFromString("100.00")
	if !entry.TotalAmount.Equal(expected) {
		t.Errorf("expected total %s, got %s", expected, entry.TotalAmount)
	}
}

func TestJournalEntry_PostUnbalanced(t *testing.T) {
	entry := newDraftEntry(t)

	entry.AddLine(mustDebit(t, "acc-cash", "100.00"))
	entry.AddLine(mustCredit(t, "acc-sales", "90.00"))

	err := entry.Post(time.Now().UTC())
	if !errors.Is(err, ErrEntryNotBalanced) {
		t.Fatalf("expected ErrEntryNotBalanced, got %v", err)
	}

	if entry.Posted {
		t.Error("failed post must leave entry in draft")
	}

	if !entry.TotalAmount.IsZero() {
		t.Errorf("draft total must stay zero, got %s", entry.TotalAmount)
	}
}

func TestJournalEntry_PostInsufficientLines(t *testing.T) {
	tests := []struct {
		name  string
		lines int
	}{
		{name: "no lines", lines: 0},
		{name: "single line", lines: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := newDraftEntry(t)
			if tt.lines == 1 {
				entry.AddLine(mustDebit(t, "acc-cash", "10.00"))
			}

			err := entry.Post(time.Now().UTC())
			if !errors.Is(err, ErrInsufficientLines) {
				t.Fatalf("expected ErrInsufficientLines, got %v", err)
			}
		})
	}
}

func TestJournalEntry_DoublePost(t *testing.T) {
	entry := newDraftEntry(t)
	entry.AddLine(mustDebit(t, "acc-cash", "25.00"))
	entry.AddLine(mustCredit(t, "acc-sales", "25.00"))

	if err := entry.Post(time.Now().UTC()); err != nil {
		t.Fatalf("first post failed: %v", err)
	}

	err := entry.Post(time.Now().UTC())
	if !errors.Is(err, ErrEntryAlreadyPosted) {
		t.Fatalf("expected ErrEntryAlreadyPosted, got %v", err)
	}
}

func TestJournalEntry_MutateAfterPost(t *testing.T) {
	entry := newDraftEntry(t)

	debit := mustDebit(t, "acc-cash", "25.00")
	debit.ID = "line-1"
	entry.AddLine(debit)

	credit := mustCredit(t, "acc-sales", "25.00")
	credit.ID = "line-2"
	entry.AddLine(credit)

	if err := entry.Post(time.Now().UTC()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := entry.AddLine(mustDebit(t, "acc-cash", "1.00")); !errors.Is(err, ErrEntryAlreadyPosted) {
		t.Errorf("expected ErrEntryAlreadyPosted on AddLine, got %v", err)
	}

	if err := entry.RemoveLine("line-1"); !errors.Is(err, ErrEntryAlreadyPosted) {
		t.Errorf("expected ErrEntryAlreadyPosted on RemoveLine, got %v", err)
	}

	if entry.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", entry.LineCount())
	}
}

func TestJournalEntry_RemoveLine(t *testing.T) {
	entry := newDraftEntry(t)

	debit := mustDebit(t, "acc-cash", "10.00")
	debit.ID = "line-1"
	entry.AddLine(debit)

	if err := entry.RemoveLine("line-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.LineCount() != 0 {
		t.Errorf("expected 0 lines, got %d", entry.LineCount())
	}

	if err := entry.RemoveLine("line-missing"); !errors.Is(err, ErrLineNotFound) {
		t.Errorf("expected ErrLineNotFound, got %v", err)
	}
}

func TestJournalEntry_LinesOrderAndCopy(t *testing.T) {
	entry := newDraftEntry(t)

	first := mustDebit(t, "acc-a", "10.00")
	first.ID = "line-1"
	second := mustCredit(t, "acc-b", "4.00")
	second.ID = "line-2"
	third := mustCredit(t, "acc-c", "6.00")
	third.ID = "line-3"

	entry.AddLine(first)
	entry.AddLine(second)
	entry.AddLine(third)

	lines := entry.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	for i, want := range []string{"line-1", "line-2", "line-3"} {
		if lines[i].ID != want {
			t.Errorf("line %d: expected %s, got %s", i, want, lines[i].ID)
		}
	}

	// Mutating the returned slice must not touch the entry.
	lines[0] = lines[2]
	if entry.Lines()[0].ID != "line-1" {
		t.Error("Lines must return a copy")
	}
}

func TestJournalEntry_Totals(t *testing.T) {
	entry := newDraftEntry(t)

	entry.AddLine(mustDebit(t, "acc-a", "10.50"))
	entry.AddLine(mustDebit(t, "acc-b", "0.25"))
	entry.AddLine(mustCredit(t, "acc-c", "10.75"))

	if want := decimal.RequireFromString("10.75"); !entry.TotalDebits().Equal(want) {
		t.Errorf("expected debits %s, got %s", want, entry.TotalDebits())
	}

	if want := decimal.RequireFromString("10.75"); !entry.TotalCredits().Equal(want) {
		t.Errorf("expected credits %s, got %s", want, entry.TotalCredits())
	}

	if !entry.IsBalanced() {
		t.Error("expected balanced entry")
	}
}
