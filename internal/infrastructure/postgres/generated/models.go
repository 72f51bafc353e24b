package generated

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Account struct {
	ID            string             `json:"id"`
	AccountNumber string             `json:"account_number"`
	HolderName    string             `json:"holder_name"`
	AccountType   string             `json:"account_type"`
	Balance       pgtype.Numeric     `json:"balance"`
	Version       int64              `json:"version"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

type JournalEntry struct {
	ID          string             `json:"id"`
	EntryNumber string             `json:"entry_number"`
	EntryDate   pgtype.Date        `json:"entry_date"`
	Description string             `json:"description"`
	Reference   string             `json:"reference"`
	TotalAmount pgtype.Numeric     `json:"total_amount"`
	Posted      bool               `json:"posted"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type JournalLine struct {
	ID          string             `json:"id"`
	EntryID     string             `json:"entry_id"`
	AccountID   string             `json:"account_id"`
	Side        string             `json:"side"`
	Amount      pgtype.Numeric     `json:"amount"`
	Description string             `json:"description"`
	LineNo      int32              `json:"line_no"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}
