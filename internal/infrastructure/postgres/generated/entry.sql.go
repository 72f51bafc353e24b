package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countEntries = `-- name: CountEntries :one
SELECT COUNT(*) FROM journal_entries
`

func (q *Queries) CountEntries(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countEntries)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createJournalEntry = `-- name: CreateJournalEntry :one
INSERT INTO journal_entries (id, entry_number, entry_date, description, reference, total_amount, posted, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, entry_number, entry_date, description, reference, total_amount, posted, created_at, updated_at
`

type CreateJournalEntryParams struct {
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

func (q *Queries) CreateJournalEntry(ctx context.Context, arg CreateJournalEntryParams) (JournalEntry, error) {
	row := q.db.QueryRow(ctx, createJournalEntry,
		arg.ID,
		arg.EntryNumber,
		arg.EntryDate,
		arg.Description,
		arg.Reference,
		arg.TotalAmount,
		arg.Posted,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var i JournalEntry
	err := row.Scan(
		&i.ID,
		&i.EntryNumber,
		&i.EntryDate,
		&i.Description,
		&i.Reference,
		&i.TotalAmount,
		&i.Posted,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getJournalEntryByID = `-- name: GetJournalEntryByID :one
SELECT id, entry_number, entry_date, description, reference, total_amount, posted, created_at, updated_at FROM journal_entries WHERE id = $1
`

func (q *Queries) GetJournalEntryByID(ctx context.Context, id string) (JournalEntry, error) {
	row := q.db.QueryRow(ctx, getJournalEntryByID, id)
	var i JournalEntry
	err := row.Scan(
		&i.ID,
		&i.EntryNumber,
		&i.EntryDate,
		&i.Description,
		&i.Reference,
		&i.TotalAmount,
		&i.Posted,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getJournalEntryByIDForUpdate = `-- name: GetJournalEntryByIDForUpdate :one
SELECT id, entry_number, entry_date, description, reference, total_amount, posted, created_at, updated_at FROM journal_entries WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetJournalEntryByIDForUpdate(ctx context.Context, id string) (JournalEntry, error) {
	row := q.db.QueryRow(ctx, getJournalEntryByIDForUpdate, id)
	var i JournalEntry
	err := row.Scan(
		&i.ID,
		&i.EntryNumber,
		&i.EntryDate,
		&i.Description,
		&i.Reference,
		&i.TotalAmount,
		&i.Posted,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getJournalEntryByNumber = `-- name: GetJournalEntryByNumber :one
SELECT id, entry_number, entry_date, description, reference, total_amount, posted, created_at, updated_at FROM journal_entries WHERE entry_number = $1
`

func (q *Queries) GetJournalEntryByNumber(ctx context.Context, entryNumber string) (JournalEntry, error) {
	row := q.db.QueryRow(ctx, getJournalEntryByNumber, entryNumber)
	var i JournalEntry
	err := row.Scan(
		&i.ID,
		&i.EntryNumber,
		&i.EntryDate,
		&i.Description,
		&i.Reference,
		&i.TotalAmount,
		&i.Posted,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listJournalEntries = `-- name: ListJournalEntries :many
SELECT id, entry_number, entry_date, description, reference, total_amount, posted, created_at, updated_at FROM journal_entries ORDER BY entry_date DESC, entry_number DESC LIMIT $1 OFFSET $2
`

type ListJournalEntriesParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListJournalEntries(ctx context.Context, arg ListJournalEntriesParams) ([]JournalEntry, error) {
	rows, err := q.db.Query(ctx, listJournalEntries, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []JournalEntry{}
	for rows.Next() {
		var i JournalEntry
		if err := rows.Scan(
			&i.ID,
			&i.EntryNumber,
			&i.EntryDate,
			&i.Description,
			&i.Reference,
			&i.TotalAmount,
			&i.Posted,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markJournalEntryPosted = `-- name: MarkJournalEntryPosted :exec
UPDATE journal_entries SET posted = TRUE, total_amount = $2, updated_at = $3 WHERE id = $1
`

type MarkJournalEntryPostedParams struct {
	ID          string             `json:"id"`
	TotalAmount pgtype.Numeric     `json:"total_amount"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) MarkJournalEntryPosted(ctx context.Context, arg MarkJournalEntryPostedParams) error {
	_, err := q.db.Exec(ctx, markJournalEntryPosted, arg.ID, arg.TotalAmount, arg.UpdatedAt)
	return err
}

const deleteJournalEntry = `-- name: DeleteJournalEntry :exec
DELETE FROM journal_entries WHERE id = $1
`

func (q *Queries) DeleteJournalEntry(ctx context.Context, id string) error {
	_, err := q.db.Exec(ctx, deleteJournalEntry, id)
	return err
}

const createJournalLine = `-- name: CreateJournalLine :one
INSERT INTO journal_lines (id, entry_id, account_id, side, amount, description, line_no, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, entry_id, account_id, side, amount, description, line_no, created_at
`

type CreateJournalLineParams struct {
	ID          string             `json:"id"`
	EntryID     string             `json:"entry_id"`
	AccountID   string             `json:"account_id"`
	Side        string             `json:"side"`
	Amount      pgtype.Numeric     `json:"amount"`
	Description string             `json:"description"`
	LineNo      int32              `json:"line_no"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateJournalLine(ctx context.Context, arg CreateJournalLineParams) (JournalLine, error) {
	row := q.db.QueryRow(ctx, createJournalLine,
		arg.ID,
		arg.EntryID,
		arg.AccountID,
		arg.Side,
		arg.Amount,
		arg.Description,
		arg.LineNo,
		arg.CreatedAt,
	)
	var i JournalLine
	err := row.Scan(
		&i.ID,
		&i.EntryID,
		&i.AccountID,
		&i.Side,
		&i.Amount,
		&i.Description,
		&i.LineNo,
		&i.CreatedAt,
	)
	return i, err
}

const appendJournalLine = `-- name: AppendJournalLine :exec
INSERT INTO journal_lines (id, entry_id, account_id, side, amount, description, line_no, created_at)
SELECT $1, $2, $3, $4, $5, $6, COALESCE(MAX(line_no) + 1, 0), $7
FROM journal_lines
WHERE entry_id = $2
`

type AppendJournalLineParams struct {
	ID          string             `json:"id"`
	EntryID     string             `json:"entry_id"`
	AccountID   string             `json:"account_id"`
	Side        string             `json:"side"`
	Amount      pgtype.Numeric     `json:"amount"`
	Description string             `json:"description"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) AppendJournalLine(ctx context.Context, arg AppendJournalLineParams) error {
	_, err := q.db.Exec(ctx, appendJournalLine,
		arg.ID,
		arg.EntryID,
		arg.AccountID,
		arg.Side,
		arg.Amount,
		arg.Description,
		arg.CreatedAt,
	)
	return err
}

const deleteJournalLine = `-- name: DeleteJournalLine :exec
DELETE FROM journal_lines WHERE entry_id = $1 AND id = $2
`

type DeleteJournalLineParams struct {
	EntryID string `json:"entry_id"`
	ID      string `json:"id"`
}

func (q *Queries) DeleteJournalLine(ctx context.Context, arg DeleteJournalLineParams) error {
	_, err := q.db.Exec(ctx, deleteJournalLine, arg.EntryID, arg.ID)
	return err
}

const getJournalLinesByEntry = `-- name: GetJournalLinesByEntry :many
SELECT id, entry_id, account_id, side, amount, description, line_no, created_at FROM journal_lines WHERE entry_id = $1 ORDER BY line_no, created_at, id
`

func (q *Queries) GetJournalLinesByEntry(ctx context.Context, entryID string) ([]JournalLine, error) {
	rows, err := q.db.Query(ctx, getJournalLinesByEntry, entryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []JournalLine{}
	for rows.Next() {
		var i JournalLine
		if err := rows.Scan(
			&i.ID,
			&i.EntryID,
			&i.AccountID,
			&i.Side,
			&i.Amount,
			&i.Description,
			&i.LineNo,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
