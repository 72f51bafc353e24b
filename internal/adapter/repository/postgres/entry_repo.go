package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finvoy/ledgerbook/internal/domain"
	"github.com/finvoy/ledgerbook/internal/infrastructure/postgres/generated"
	"github.com/finvoy/ledgerbook/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// CreateTx creates an entry with its lines inside the given transaction.
func (r *EntryRepository) CreateTx(ctx context.Context, tx usecase.Transaction, entry *domain.JournalEntry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateJournalEntry(ctx, generated.CreateJournalEntryParams{
		ID:          entry.ID,
		EntryNumber: entry.EntryNumber,
		EntryDate:   timeToPgDate(entry.EntryDate),
		Description: entry.Description,
		Reference:   entry.Reference,
		TotalAmount: decimalToNumeric(entry.TotalAmount),
		Posted:      entry.Posted,
		CreatedAt:   timeToPgTimestamptz(entry.CreatedAt),
		UpdatedAt:   timeToPgTimestamptz(entry.UpdatedAt),
	})
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEntryNumber
	}
	if err != nil {
		return err
	}

	for lineNo, line := range entry.Lines() {
		if err := insertLine(ctx, queries, entry.ID, line, lineNo, entry.CreatedAt); err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves an entry with its lines by ID.
func (r *EntryRepository) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	row, err := r.queries.GetJournalEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return r.loadLines(ctx, r.queries, row)
}

// GetByEntryNumber retrieves an entry with its lines by entry number.
func (r *EntryRepository) GetByEntryNumber(ctx context.Context, entryNumber string) (*domain.JournalEntry, error) {
	row, err := r.queries.GetJournalEntryByNumber(ctx, entryNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return r.loadLines(ctx, r.queries, row)
}

// GetByIDForUpdate retrieves an entry with a FOR UPDATE lock on its row.
// The lock serializes concurrent posting attempts against the same entry.
func (r *EntryRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.JournalEntry, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetJournalEntryByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return r.loadLines(ctx, queries, row)
}

// AddLine appends a line to an entry inside the given transaction. The line's
// position is derived from the entry's current maximum position, so positions
// stay unique after earlier removals left gaps.
func (r *EntryRepository) AddLine(ctx context.Context, tx usecase.Transaction, entryID string, line domain.JournalLine, createdAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.AppendJournalLine(ctx, generated.AppendJournalLineParams{
		ID:          line.ID,
		EntryID:     entryID,
		AccountID:   line.AccountID,
		Side:        string(line.Side()),
		Amount:      decimalToNumeric(line.Amount()),
		Description: line.Description,
		CreatedAt:   timeToPgTimestamptz(createdAt),
	})
}

// RemoveLine deletes a line from an entry inside the given transaction.
func (r *EntryRepository) RemoveLine(ctx context.Context, tx usecase.Transaction, entryID, lineID string) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.DeleteJournalLine(ctx, generated.DeleteJournalLineParams{
		EntryID: entryID,
		ID:      lineID,
	})
}

// MarkPosted flips the entry to posted and records its total amount.
func (r *EntryRepository) MarkPosted(ctx context.Context, tx usecase.Transaction, id string, totalAmount decimal.Decimal, postedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.MarkJournalEntryPosted(ctx, generated.MarkJournalEntryPostedParams{
		ID:          id,
		TotalAmount: decimalToNumeric(totalAmount),
		UpdatedAt:   timeToPgTimestamptz(postedAt),
	})
}

// Delete removes an entry inside the given transaction. Lines cascade.
func (r *EntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.DeleteJournalEntry(ctx, id)
}

// List lists entries with pagination, newest entry date first.
func (r *EntryRepository) List(ctx context.Context, limit, offset int) ([]*domain.JournalEntry, error) {
	rows, err := r.queries.ListJournalEntries(ctx, generated.ListJournalEntriesParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.JournalEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := r.loadLines(ctx, r.queries, row)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *EntryRepository) loadLines(ctx context.Context, queries *generated.Queries, row generated.JournalEntry) (*domain.JournalEntry, error) {
	lineRows, err := queries.GetJournalLinesByEntry(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.JournalLine, 0, len(lineRows))
	for _, lr := range lineRows {
		line, err := domain.NewLine(domain.Side(lr.Side), lr.AccountID, numericToDecimal(lr.Amount), lr.Description)
		if err != nil {
			return nil, err
		}

		line.ID = lr.ID
		lines = append(lines, line)
	}

	return domain.RestoreJournalEntry(
		row.ID,
		row.EntryNumber,
		row.EntryDate.Time,
		row.Description,
		row.Reference,
		numericToDecimal(row.TotalAmount),
		row.Posted,
		lines,
		row.CreatedAt.Time,
		row.UpdatedAt.Time,
	), nil
}

func insertLine(ctx context.Context, queries *generated.Queries, entryID string, line domain.JournalLine, lineNo int, createdAt time.Time) error {
	_, err := queries.CreateJournalLine(ctx, generated.CreateJournalLineParams{
		ID:          line.ID,
		EntryID:     entryID,
		AccountID:   line.AccountID,
		Side:        string(line.Side()),
		Amount:      decimalToNumeric(line.Amount()),
		Description: line.Description,
		LineNo:      int32(lineNo),
		CreatedAt:   timeToPgTimestamptz(createdAt),
	})

	return err
}
