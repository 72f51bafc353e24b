package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound        = errors.New("account not found")
	ErrDuplicateAccountNumber = errors.New("account number already exists")
	ErrUnknownAccountType     = errors.New("unknown account type")

	// Line errors
	ErrInvalidAmount  = errors.New("amount must be positive with at most two decimal places")
	ErrMissingAccount = errors.New("line must reference an account")
	ErrLineNotFound   = errors.New("journal line not found")

	// Entry errors
	ErrEntryNotFound        = errors.New("journal entry not found")
	ErrDuplicateEntryNumber = errors.New("entry number already exists")
	ErrEntryAlreadyPosted   = errors.New("journal entry is already posted")
	ErrEntryNotBalanced     = errors.New("journal entry debits do not equal credits")
	ErrInsufficientLines    = errors.New("journal entry needs at least two lines to post")

	// ErrPersistence marks storage failures during the posting commit, as
	// opposed to validation failures the caller can fix and resubmit.
	ErrPersistence = errors.New("persistence failure")
)
