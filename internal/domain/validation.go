package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidEntryNumber   = errors.New("invalid entry number")
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrInvalidHolderName    = errors.New("invalid holder name")
	ErrDescriptionTooLong   = errors.New("description exceeds maximum length")
	ErrReferenceTooLong     = errors.New("reference exceeds maximum length")
	ErrAmountTooLarge       = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxHolderNameLength  = 255
	MinHolderNameLength  = 1
	MaxDescriptionLength = 500
	MaxReferenceLength   = 100
	MaxAmount            = "9999999999.99" // numeric(12,2)
	DefaultPageSize      = 50
	MaxPageSize          = 1000
)

var (
	entryNumberRegex   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._/-]{0,49}$`)
	accountNumberRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]{0,31}$`)
)

// ValidateEntryNumber validates a journal entry number.
func ValidateEntryNumber(entryNumber string) error {
	entryNumber = strings.TrimSpace(entryNumber)

	if !entryNumberRegex.MatchString(entryNumber) {
		return fmt.Errorf("%w: %q", ErrInvalidEntryNumber, entryNumber)
	}

	return nil
}

// ValidateAccountNumber validates an account number.
func ValidateAccountNumber(accountNumber string) error {
	accountNumber = strings.TrimSpace(accountNumber)

	if !accountNumberRegex.MatchString(accountNumber) {
		return fmt.Errorf("%w: %q", ErrInvalidAccountNumber, accountNumber)
	}

	return nil
}

// ValidateHolderName validates an account holder name.
func ValidateHolderName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinHolderNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidHolderName)
	}

	if len(name) > MaxHolderNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidHolderName, MaxHolderNameLength)
	}

	return nil
}

// ValidateAmount validates a line amount: strictly positive, at most two
// decimal places, within numeric(12,2) range. Exact representation matters
// here; a rejected third decimal digit is data loss, not rounding.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !amount.Equal(amount.Round(2)) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxAmount)
	}

	return nil
}

// ValidateDescription validates a free-text description.
func ValidateDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("%w: limit is %d characters", ErrDescriptionTooLong, MaxDescriptionLength)
	}

	return nil
}

// ValidateReference validates an external reference string.
func ValidateReference(reference string) error {
	if len(reference) > MaxReferenceLength {
		return fmt.Errorf("%w: limit is %d characters", ErrReferenceTooLong, MaxReferenceLength)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
