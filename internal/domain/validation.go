package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidWalletName = errors.New("invalid wallet name")
)

// Validation constants
const (
	MaxWalletNameLength = 255
	MinWalletNameLength = 1
)

// ValidateWalletName validates wallet name
func ValidateWalletName(name string) error {
	trimmed := strings.TrimSpace(name)

	if len(trimmed) < MinWalletNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidWalletName)
	}

	if trimmed != name {
		return fmt.Errorf("%w: name cannot start or end with whitespace", ErrInvalidWalletName)
	}

	if len(name) > MaxWalletNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidWalletName, MaxWalletNameLength)
	}

	return nil
}

// ParseAmount parses a user supplied amount. Amounts are stored as JSON
// numbers, so values a float64 cannot hold as a finite non-zero number are
// rejected along with non-numeric input.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}

	f := amount.InexactFloat64()
	if math.IsInf(f, 0) || (f == 0 && !amount.IsZero()) {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, s)
	}
	return amount, nil
}

// ValidateAmount validates credit/debit amount
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}
