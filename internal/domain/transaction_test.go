package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input       string
		expected    string
		expectError bool
	}{
		{input: "1.0", expected: "1"},
		{input: " 2.7500 ", expected: "2.75"},
		{input: "0", expected: "0"},
		{input: "0.0001", expected: "0.0001"},
		{input: "", expectError: true},
		{input: "-1", expectError: true},
		{input: "abc", expectError: true},
		{input: "1e-300000000", expectError: true},
		{input: "1e3", expectError: true},
		{input: "0.00000000000000000000000000001", expectError: true},
		{input: "1000000000000.0001", expectError: true},
		{input: "0.0000000000000000000000000001", expected: "0.0000000000000000000000000001"},
		{input: "1000000000000", expected: "1000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			amount, err := ParseAmount(tt.input)

			if tt.expectError {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("expected ErrInvalidAmount, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !amount.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, amount)
			}
		})
	}
}

func TestParseAmount_Bounds(t *testing.T) {
	tests := []struct {
		input    string
		expected error
	}{
		{input: "1e-300000000", expected: ErrAmountTooPrecise},
		{input: "5E+10", expected: ErrAmountBadExponent},
		{input: "1000000000001", expected: ErrAmountTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseAmount(tt.input)
			if !errors.Is(err, tt.expected) || !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("expected %v wrapped in ErrInvalidAmount, got %v", tt.expected, err)
			}
			if err != nil && len(err.Error()) > 200 {
				t.Errorf("error message should not render the amount, got %d bytes", len(err.Error()))
			}
		})
	}
}

func TestParseLockPolicy(t *testing.T) {
	tests := []struct {
		input       string
		expected    LockPolicy
		expectError bool
	}{
		{input: "", expected: LockRejectAll},
		{input: "reject", expected: LockRejectAll},
		{input: " Accept ", expected: LockAcceptDeposits},
		{input: "sometimes", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			policy, err := ParseLockPolicy(tt.input)
			if tt.expectError != (err != nil) {
				t.Fatalf("unexpected error state: %v", err)
			}
			if err == nil && policy != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, policy)
			}
		})
	}
}

func TestLockPolicy_Permits(t *testing.T) {
	if LockRejectAll.Permits(Deposit) {
		t.Error("reject policy must not permit deposits")
	}
	if !LockAcceptDeposits.Permits(Deposit) {
		t.Error("accept policy must permit deposits")
	}
	if LockAcceptDeposits.Permits(Withdrawal) {
		t.Error("accept policy must not permit withdrawals")
	}
}

func TestTransactionErrors(t *testing.T) {
	var err error = &DuplicateTransactionError{ID: 3}
	if !errors.Is(err, ErrDuplicateTransaction) {
		t.Error("expected DuplicateTransactionError to match ErrDuplicateTransaction")
	}
	if err.Error() != "duplicate transaction 3" {
		t.Errorf("unexpected message %q", err.Error())
	}

	err = &MissingTransactionError{ID: 100}
	var missing *MissingTransactionError
	if !errors.As(err, &missing) || missing.ID != 100 {
		t.Errorf("expected MissingTransactionError for 100, got %v", err)
	}
}

func TestTransaction_Accessors(t *testing.T) {
	txs := []Transaction{
		NewDeposit(1, 10, decimal.NewFromInt(1)),
		NewWithdrawal(2, 11, decimal.NewFromInt(1)),
		NewDispute(3, 10),
		NewResolve(4, 10),
		NewChargeback(5, 10),
	}
	types := []string{"deposit", "withdrawal", "dispute", "resolve", "chargeback"}

	for i, tx := range txs {
		if tx.Type() != types[i] {
			t.Errorf("tx %d: expected type %s, got %s", i, types[i], tx.Type())
		}
		if tx.Client() != Client(i+1) {
			t.Errorf("tx %d: expected client %d, got %d", i, i+1, tx.Client())
		}
	}
}
