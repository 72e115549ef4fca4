package domain

import (
	"errors"
	"fmt"
)

var (
	// Account errors
	ErrAccountLocked     = errors.New("account is locked")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Ledger entry errors
	ErrDispute    = errors.New("dispute could not be processed on transaction")
	ErrResolve    = errors.New("resolve could not be processed on transaction")
	ErrChargeBack = errors.New("charge back could not be processed on transaction")

	// Ledger errors
	ErrDuplicateTransaction = errors.New("duplicate transaction")
	ErrMissingTransaction   = errors.New("missing transaction")
	ErrClientMismatch       = errors.New("transaction belongs to another client")

	// Input errors
	ErrInvalidAmount = errors.New("amount must be a non-negative decimal")
	ErrMalformedRow  = errors.New("malformed transaction row")

	ErrUnknownTransaction = errors.New("unknown transaction type")
)

// DuplicateTransactionError is returned when a transfer reuses a transaction id.
type DuplicateTransactionError struct {
	ID TransactionID
}

func (e *DuplicateTransactionError) Error() string {
	return fmt.Sprintf("%s %d", ErrDuplicateTransaction, e.ID)
}

func (e *DuplicateTransactionError) Unwrap() error {
	return ErrDuplicateTransaction
}

// MissingTransactionError is returned when a mutation references an unknown transaction id.
type MissingTransactionError struct {
	ID TransactionID
}

func (e *MissingTransactionError) Error() string {
	return fmt.Sprintf("%s %d", ErrMissingTransaction, e.ID)
}

func (e *MissingTransactionError) Unwrap() error {
	return ErrMissingTransaction
}
