package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvoy/ledgerbook/internal/domain"
)

// LedgerUseCase orchestrates the journal entry lifecycle. It is the only
// component that persists entries and the only place posted line effects are
// applied to account balances.
type LedgerUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	entryRepo   EntryRepository
	idGen       IDGenerator
	retrier     Retrier
	cache       Cache
}

// NewLedgerUseCase creates a new LedgerUseCase. retrier and cache are optional.
func NewLedgerUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	idGen IDGenerator,
	retrier Retrier,
	cache Cache,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		idGen:       idGen,
		retrier:     retrier,
		cache:       cache,
	}
}

// debitIncreases is the single source of truth for the double-entry sign
// convention: a debit increases asset and expense balances, a credit increases
// liability, equity and revenue balances. Nothing outside this table decides
// how a line moves a balance.
var debitIncreases = map[domain.AccountType]bool{
	domain.AccountTypeAsset:     true,
	domain.AccountTypeExpense:   true,
	domain.AccountTypeLiability: false,
	domain.AccountTypeEquity:    false,
	domain.AccountTypeRevenue:   false,
}

func signedDelta(line domain.JournalLine, accountType domain.AccountType) decimal.Decimal {
	if line.IsDebit() == debitIncreases[accountType] {
		return line.Amount()
	}

	return line.Amount().Neg()
}

// persistenceError marks a storage failure during commit so callers can tell
// transient faults apart from validation failures. Both sentinels stay on the
// chain: errors.Is sees domain.ErrPersistence and the retrier still sees the
// PostgreSQL error code underneath.
func persistenceError(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
}

// LineInput describes one debit-or-credit movement to record.
type LineInput struct {
	AccountID   string
	Side        domain.Side
	Amount      decimal.Decimal
	Description string
}

// CreateEntryInput describes a draft entry to create.
type CreateEntryInput struct {
	EntryNumber string
	EntryDate   time.Time
	Description string
	Reference   string
	Lines       []LineInput
}

// CreateEntry allocates a draft entry, optionally with initial lines.
func (uc *LedgerUseCase) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.JournalEntry, error) {
	// Validation matches on the trimmed form; store that same form so later
	// lookups by entry number find the row.
	input.EntryNumber = strings.TrimSpace(input.EntryNumber)

	if err := domain.ValidateEntryNumber(input.EntryNumber); err != nil {
		return nil, err
	}

	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}

	if err := domain.ValidateReference(input.Reference); err != nil {
		return nil, err
	}

	// Early duplicate check for a clean error; the unique constraint on
	// entry_number still backs this up under concurrency.
	_, err := uc.entryRepo.GetByEntryNumber(ctx, input.EntryNumber)
	if err == nil {
		return nil, domain.ErrDuplicateEntryNumber
	}
	if !errors.Is(err, domain.ErrEntryNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	entry := domain.NewJournalEntry(uc.idGen.Generate(), input.EntryNumber, input.EntryDate, input.Description, input.Reference, now)

	for _, li := range input.Lines {
		line, err := uc.buildLine(ctx, li)
		if err != nil {
			return nil, err
		}

		if err := entry.AddLine(line); err != nil {
			return nil, err
		}
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.entryRepo.CreateTx(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, persistenceError(err)
	}

	return entry, nil
}

// AddLine appends a line to a draft entry. The entry row is locked for the
// duration so a concurrent post cannot slip in between the draft check and
// the insert.
func (uc *LedgerUseCase) AddLine(ctx context.Context, entryID string, input LineInput) (*domain.JournalEntry, error) {
	line, err := uc.buildLine(ctx, input)
	if err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	entry, err := uc.entryRepo.GetByIDForUpdate(ctx, tx, entryID)
	if err != nil {
		return nil, err
	}

	if err := entry.AddLine(line); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := uc.entryRepo.AddLine(ctx, tx, entry.ID, line, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, persistenceError(err)
	}

	return entry, nil
}

// RemoveLine removes a line from a draft entry.
func (uc *LedgerUseCase) RemoveLine(ctx context.Context, entryID, lineID string) (*domain.JournalEntry, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	entry, err := uc.entryRepo.GetByIDForUpdate(ctx, tx, entryID)
	if err != nil {
		return nil, err
	}

	if err := entry.RemoveLine(lineID); err != nil {
		return nil, err
	}

	if err := uc.entryRepo.RemoveLine(ctx, tx, entry.ID, lineID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, persistenceError(err)
	}

	return entry, nil
}

// PostEntry runs the irreversible draft-to-posted transition: it locks the
// entry, re-validates balance, locks every referenced account and applies each
// line's signed effect exactly once. All of it commits atomically or not at
// all; the loser of a posting race observes ErrEntryAlreadyPosted. Transient
// storage conflicts are retried as a whole unit.
func (uc *LedgerUseCase) PostEntry(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	var posted *domain.JournalEntry

	op := func() error {
		entry, err := uc.postEntryOnce(ctx, entryID)
		if err != nil {
			return err
		}

		posted = entry

		return nil
	}

	var err error
	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, op)
	} else {
		err = op()
	}

	if err != nil {
		return nil, err
	}

	return posted, nil
}

func (uc *LedgerUseCase) postEntryOnce(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Locking the entry row serializes concurrent posts: the second caller
	// blocks here, then reads posted = true and fails the transition.
	entry, err := uc.entryRepo.GetByIDForUpdate(ctx, tx, entryID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := entry.Post(now); err != nil {
		return nil, err
	}

	lines := entry.Lines()

	// Lock accounts in sorted order (deadlock prevention).
	accountIDs := collectUniqueAccountIDs(lines)
	sort.Strings(accountIDs)

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return nil, err
	}

	if len(accounts) != len(accountIDs) {
		return nil, domain.ErrAccountNotFound
	}

	accountMap := buildAccountMap(accounts)

	for _, line := range lines {
		account := accountMap[line.AccountID]
		if !account.Type.Valid() {
			return nil, domain.ErrUnknownAccountType
		}

		account.Balance = account.ApplyDelta(signedDelta(line, account.Type))
	}

	for _, id := range accountIDs {
		if err := uc.accountRepo.UpdateBalance(ctx, tx, id, accountMap[id].Balance, now); err != nil {
			return nil, persistenceError(err)
		}
	}

	if err := uc.entryRepo.MarkPosted(ctx, tx, entry.ID, entry.TotalAmount, now); err != nil {
		return nil, persistenceError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, persistenceError(err)
	}

	uc.invalidateBalances(ctx, accountIDs)

	return entry, nil
}

// DeleteEntry deletes a draft entry and cascades to its lines. Posted entries
// are never deleted.
func (uc *LedgerUseCase) DeleteEntry(ctx context.Context, entryID string) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	entry, err := uc.entryRepo.GetByIDForUpdate(ctx, tx, entryID)
	if err != nil {
		return err
	}

	if entry.Posted {
		return domain.ErrEntryAlreadyPosted
	}

	if err := uc.entryRepo.Delete(ctx, tx, entry.ID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return persistenceError(err)
	}

	return nil
}

// GetEntry retrieves an entry with its lines by ID.
func (uc *LedgerUseCase) GetEntry(ctx context.Context, id string) (*domain.JournalEntry, error) {
	return uc.entryRepo.GetByID(ctx, id)
}

// GetEntryByNumber retrieves an entry with its lines by entry number.
func (uc *LedgerUseCase) GetEntryByNumber(ctx context.Context, entryNumber string) (*domain.JournalEntry, error) {
	return uc.entryRepo.GetByEntryNumber(ctx, entryNumber)
}

// ListEntriesInput represents input for listing entries.
type ListEntriesInput struct {
	Limit  int
	Offset int
}

// ListEntries lists entries with pagination.
func (uc *LedgerUseCase) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.JournalEntry, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.entryRepo.List(ctx, limit, offset)
}

func (uc *LedgerUseCase) buildLine(ctx context.Context, input LineInput) (domain.JournalLine, error) {
	if input.AccountID == "" {
		return domain.JournalLine{}, domain.ErrMissingAccount
	}

	if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
		return domain.JournalLine{}, err
	}

	line, err := domain.NewLine(input.Side, input.AccountID, input.Amount, input.Description)
	if err != nil {
		return domain.JournalLine{}, err
	}

	line.ID = uc.idGen.Generate()

	return line, nil
}

func (uc *LedgerUseCase) invalidateBalances(ctx context.Context, accountIDs []string) {
	if uc.cache == nil {
		return
	}

	for _, id := range accountIDs {
		// Best effort: a stale cached balance expires via TTL anyway.
		_ = uc.cache.Delete(ctx, balanceCacheKey(id))
	}
}

func collectUniqueAccountIDs(lines []domain.JournalLine) []string {
	seen := make(map[string]bool)

	var ids []string
	for _, l := range lines {
		if !seen[l.AccountID] {
			seen[l.AccountID] = true
			ids = append(ids, l.AccountID)
		}
	}

	return ids
}

func buildAccountMap(accounts []*domain.Account) map[string]*domain.Account {
	m := make(map[string]*domain.Account)
	for _, a := range accounts {
		m[a.ID] = a
	}

	return m
}
