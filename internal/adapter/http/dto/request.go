package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvoy/ledgerbook/internal/domain"
	"github.com/finvoy/ledgerbook/internal/usecase"
)

// entryDateLayout is the wire format for entry dates.
const entryDateLayout = "2006-01-02"

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	AccountNumber string `json:"account_number"`
	HolderName    string `json:"holder_name"`
	Type          string `json:"type"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		AccountNumber: r.AccountNumber,
		HolderName:    r.HolderName,
		Type:          domain.AccountType(r.Type),
	}
}

// LineRequest represents a single journal line in a request.
type LineRequest struct {
	AccountID   string          `json:"account_id"`
	Side        string          `json:"side"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *LineRequest) ToUseCaseInput() usecase.LineInput {
	return usecase.LineInput{
		AccountID:   r.AccountID,
		Side:        domain.Side(r.Side),
		Amount:      r.Amount,
		Description: r.Description,
	}
}

// CreateEntryRequest represents a request to create a journal entry.
type CreateEntryRequest struct {
	EntryNumber string        `json:"entry_number"`
	EntryDate   string        `json:"entry_date"`
	Description string        `json:"description,omitempty"`
	Reference   string        `json:"reference,omitempty"`
	Lines       []LineRequest `json:"lines,omitempty"`
}

// ToUseCaseInput converts to use case input. The entry date must be in
// YYYY-MM-DD format.
func (r *CreateEntryRequest) ToUseCaseInput() (usecase.CreateEntryInput, error) {
	entryDate, err := time.Parse(entryDateLayout, r.EntryDate)
	if err != nil {
		return usecase.CreateEntryInput{}, err
	}

	lines := make([]usecase.LineInput, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = l.ToUseCaseInput()
	}

	return usecase.CreateEntryInput{
		EntryNumber: r.EntryNumber,
		EntryDate:   entryDate,
		Description: r.Description,
		Reference:   r.Reference,
		Lines:       lines,
	}, nil
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
