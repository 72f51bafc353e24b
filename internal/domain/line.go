package domain

import (
	"github.com/shopspring/decimal"
)

// Side is the movement type of a journal line.
type Side string

const (
	SideDebit  Side = "DEBIT"
	SideCredit Side = "CREDIT"
)

// Valid reports whether s is a known side.
func (s Side) Valid() bool {
	return s == SideDebit || s == SideCredit
}

// JournalLine is a single debit-or-credit movement against one account.
// A line carries exactly one side and one amount; the factories below are the
// only way to build one, so a line with both or neither side set cannot exist.
type JournalLine struct {
	ID          string
	AccountID   string
	Description string
	side        Side
	amount      decimal.Decimal
}

// NewDebitLine creates a debit line against accountID.
func NewDebitLine(accountID string, amount decimal.Decimal, description string) (JournalLine, error) {
	return newLine(SideDebit, accountID, amount, description)
}

// NewCreditLine creates a credit line against accountID.
func NewCreditLine(accountID string, amount decimal.Decimal, description string) (JournalLine, error) {
	return newLine(SideCredit, accountID, amount, description)
}

// NewLine creates a line on the given side. Used when the side is data rather
// than a call-site decision, e.g. when decoding requests or rehydrating rows.
func NewLine(side Side, accountID string, amount decimal.Decimal, description string) (JournalLine, error) {
	if !side.Valid() {
		return JournalLine{}, ErrInvalidAmount
	}
	return newLine(side, accountID, amount, description)
}

func newLine(side Side, accountID string, amount decimal.Decimal, description string) (JournalLine, error) {
	if accountID == "" {
		return JournalLine{}, ErrMissingAccount
	}

	if err := ValidateAmount(amount); err != nil {
		return JournalLine{}, err
	}

	return JournalLine{
		AccountID:   accountID,
		Description: description,
		side:        side,
		amount:      amount,
	}, nil
}

// Side returns the movement type of the line.
func (l JournalLine) Side() Side {
	return l.side
}

// Amount returns the line amount. Exactly one of debit/credit is set by
// construction, so this is that amount.
func (l JournalLine) Amount() decimal.Decimal {
	return l.amount
}

// IsDebit reports whether the line is a debit.
func (l JournalLine) IsDebit() bool {
	return l.side == SideDebit
}

// IsCredit reports whether the line is a credit.
func (l JournalLine) IsCredit() bool {
	return l.side == SideCredit
}

// DebitAmount returns the debit amount, or zero for credit lines.
func (l JournalLine) DebitAmount() decimal.Decimal {
	if l.side == SideDebit {
		return l.amount
	}
	return decimal.Zero
}

// CreditAmount returns the credit amount, or zero for debit lines.
func (l JournalLine) CreditAmount() decimal.Decimal {
	if l.side == SideCredit {
		return l.amount
	}
	return decimal.Zero
}
