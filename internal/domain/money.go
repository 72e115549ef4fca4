package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrAmountTooLarge    = errors.New("amount exceeds maximum allowed")
	ErrAmountTooPrecise  = errors.New("amount has too many decimal places")
	ErrAmountBadExponent = errors.New("amount must not use a positive exponent")

	maxTransferAmount = decimal.RequireFromString(MaxTransferAmount)
)

const (
	// MaxTransferAmount is the largest amount a single transfer may carry.
	MaxTransferAmount = "1000000000000" // 1 trillion

	// MinAmountExponent bounds the scale of an amount to 28 decimal places.
	MinAmountExponent = -28
)

// ParseAmount parses a transfer amount. Amounts are exact decimals and never negative.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty amount", ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	return amount, nil
}

// ValidateAmount validates a transfer amount. The scale and magnitude are
// bounded so that arithmetic on balances stays cheap.
func ValidateAmount(amount decimal.Decimal) error {
	// Checked before anything that would print or rescale the value.
	if exp := amount.Exponent(); exp < MinAmountExponent {
		return fmt.Errorf("%w: %w: exponent %d below %d", ErrInvalidAmount, ErrAmountTooPrecise, exp, MinAmountExponent)
	} else if exp > 0 {
		return fmt.Errorf("%w: %w: exponent %d", ErrInvalidAmount, ErrAmountBadExponent, exp)
	}

	if amount.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}

	if amount.GreaterThan(maxTransferAmount) {
		return fmt.Errorf("%w: %w: maximum amount is %s", ErrInvalidAmount, ErrAmountTooLarge, MaxTransferAmount)
	}

	return nil
}
