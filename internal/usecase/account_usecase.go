package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvoy/ledgerbook/internal/domain"
)

// AccountUseCase handles account registry operations.
type AccountUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
	cache       Cache
}

// NewAccountUseCase creates a new AccountUseCase. cache is optional.
func NewAccountUseCase(accountRepo AccountRepository, idGen IDGenerator, cache Cache) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		idGen:       idGen,
		cache:       cache,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	AccountNumber string
	HolderName    string
	Type          domain.AccountType
}

// CreateAccount creates a new account with a zero balance.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	// Validation matches on the trimmed form; store that same form so later
	// lookups by account number find the row.
	input.AccountNumber = strings.TrimSpace(input.AccountNumber)
	input.HolderName = strings.TrimSpace(input.HolderName)

	if err := domain.ValidateAccountNumber(input.AccountNumber); err != nil {
		return nil, err
	}

	if err := domain.ValidateHolderName(input.HolderName); err != nil {
		return nil, err
	}

	if !input.Type.Valid() {
		return nil, domain.ErrUnknownAccountType
	}

	_, err := uc.accountRepo.GetByNumber(ctx, input.AccountNumber)
	if err == nil {
		return nil, domain.ErrDuplicateAccountNumber
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:            uc.idGen.Generate(),
		AccountNumber: input.AccountNumber,
		HolderName:    input.HolderName,
		Type:          input.Type,
		Balance:       decimal.Zero,
		Version:       0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// GetAccountByNumber retrieves an account by account number.
func (uc *AccountUseCase) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	return uc.accountRepo.GetByNumber(ctx, accountNumber)
}

// GetBalance returns the current balance of an account. Reads go through the
// cache when one is configured; postings invalidate the key.
func (uc *AccountUseCase) GetBalance(ctx context.Context, id string) (decimal.Decimal, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, balanceCacheKey(id)); err == nil && raw != nil {
			if balance, err := decimal.NewFromString(string(raw)); err == nil {
				return balance, nil
			}
		}
	}

	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, balanceCacheKey(id), []byte(account.Balance.String()), BalanceCacheTTL)
	}

	return account.Balance, nil
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.accountRepo.List(ctx, limit, offset)
}

func balanceCacheKey(accountID string) string {
	return "balance:" + accountID
}
