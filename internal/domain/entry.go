package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is one atomic, balanced transaction made of two or more lines.
// It starts as a mutable draft; Post is the irreversible transition that
// freezes the entry. Lines are owned exclusively by the entry and kept in
// insertion order for the audit trail.
type JournalEntry struct {
	ID          string
	EntryNumber string
	EntryDate   time.Time
	Description string
	Reference   string
	TotalAmount decimal.Decimal
	Posted      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	lines []JournalLine
}

// NewJournalEntry creates a draft entry with no lines.
func NewJournalEntry(id, entryNumber string, entryDate time.Time, description, reference string, now time.Time) *JournalEntry {
	return &JournalEntry{
		ID:          id,
		EntryNumber: entryNumber,
		EntryDate:   entryDate,
		Description: description,
		Reference:   reference,
		TotalAmount: decimal.Zero,
		Posted:      false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// RestoreJournalEntry rebuilds an entry from stored state. Repositories use it
// to rehydrate both draft and posted entries; it performs no validation.
func RestoreJournalEntry(
	id, entryNumber string,
	entryDate time.Time,
	description, reference string,
	totalAmount decimal.Decimal,
	posted bool,
	lines []JournalLine,
	createdAt, updatedAt time.Time,
) *JournalEntry {
	return &JournalEntry{
		ID:          id,
		EntryNumber: entryNumber,
		EntryDate:   entryDate,
		Description: description,
		Reference:   reference,
		TotalAmount: totalAmount,
		Posted:      posted,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		lines:       lines,
	}
}

// AddLine appends a line to a draft entry.
func (e *JournalEntry) AddLine(line JournalLine) error {
	if e.Posted {
		return ErrEntryAlreadyPosted
	}

	e.lines = append(e.lines, line)

	return nil
}

// RemoveLine removes the line with the given ID from a draft entry.
func (e *JournalEntry) RemoveLine(lineID string) error {
	if e.Posted {
		return ErrEntryAlreadyPosted
	}

	for i, l := range e.lines {
		if l.ID == lineID {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			return nil
		}
	}

	return ErrLineNotFound
}

// Lines returns the lines in insertion order. The returned slice is a copy so
// callers cannot mutate a posted entry through it.
func (e *JournalEntry) Lines() []JournalLine {
	out := make([]JournalLine, len(e.lines))
	copy(out, e.lines)

	return out
}

// LineCount returns the number of lines.
func (e *JournalEntry) LineCount() int {
	return len(e.lines)
}

// TotalDebits sums the debit lines.
func (e *JournalEntry) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.lines {
		if l.IsDebit() {
			total = total.Add(l.Amount())
		}
	}

	return total
}

// TotalCredits sums the credit lines.
func (e *JournalEntry) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.lines {
		if l.IsCredit() {
			total = total.Add(l.Amount())
		}
	}

	return total
}

// IsBalanced reports whether total debits exactly equal total credits.
func (e *JournalEntry) IsBalanced() bool {
	return e.TotalDebits().Equal(e.TotalCredits())
}

// Post transitions the entry from draft to posted. The transition is
// irreversible: a second Post fails with ErrEntryAlreadyPosted, and no
// transition out of the posted state exists. TotalAmount is fixed to the
// total debits, which equal the total credits once the balance check passes.
func (e *JournalEntry) Post(now time.Time) error {
	if e.Posted {
		return ErrEntryAlreadyPosted
	}

	if len(e.lines) < 2 {
		return ErrInsufficientLines
	}

	if !e.IsBalanced() {
		return ErrEntryNotBalanced
	}

	e.Posted = true
	e.TotalAmount = e.TotalDebits()
	e.UpdatedAt = now

	return nil
}
