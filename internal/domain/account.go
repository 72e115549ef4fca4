package domain

import (
	"github.com/shopspring/decimal"
)

// Account holds the balance state of a single client.
// Total is derived from available and held and never stored.
type Account struct {
	client    Client
	available decimal.Decimal
	held      decimal.Decimal
	locked    bool
}

// AccountSnapshot is a read-only view of an account.
type AccountSnapshot struct {
	Client    Client
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// NewAccount creates an empty, unlocked account.
func NewAccount(client Client) *Account {
	return &Account{
		client:    client,
		available: decimal.Zero,
		held:      decimal.Zero,
	}
}

// Client returns the account holder.
func (a *Account) Client() Client { return a.client }

// Available returns the funds free for withdrawal. It may be negative.
func (a *Account) Available() decimal.Decimal { return a.available }

// Held returns the funds frozen by open disputes.
func (a *Account) Held() decimal.Decimal { return a.held }

// Locked reports whether a chargeback has frozen the account.
func (a *Account) Locked() bool { return a.locked }

// Total returns available plus held.
func (a *Account) Total() decimal.Decimal {
	return a.available.Add(a.held)
}

// Lock permanently locks the account. Locking twice is a no-op.
func (a *Account) Lock() {
	a.locked = true
}

// Snapshot returns the current state with the derived total.
func (a *Account) Snapshot() AccountSnapshot {
	return AccountSnapshot{
		Client:    a.client,
		Available: a.available,
		Held:      a.held,
		Total:     a.Total(),
		Locked:    a.locked,
	}
}

// ValidateTransfer checks if the transfer can be applied under policy.
func (a *Account) ValidateTransfer(t Transfer, policy LockPolicy) error {
	if a.locked && !policy.Permits(t.Kind) {
		return ErrAccountLocked
	}
	if t.Kind == Withdrawal && a.available.LessThan(t.Amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyTransfer credits a deposit or debits a withdrawal from available funds.
// On error the account is unchanged.
func (a *Account) ApplyTransfer(t Transfer, policy LockPolicy) error {
	if err := a.ValidateTransfer(t, policy); err != nil {
		return err
	}

	switch t.Kind {
	case Deposit:
		a.available = a.available.Add(t.Amount)
	case Withdrawal:
		a.available = a.available.Sub(t.Amount)
	}
	return nil
}

// ApplyMutation moves amount between available and held for a dispute
// lifecycle step. Available may go negative on dispute and held may go
// negative on chargeback. A chargeback always locks the account.
func (a *Account) ApplyMutation(kind MutationKind, amount decimal.Decimal) error {
	if a.locked {
		return ErrAccountLocked
	}

	switch kind {
	case Dispute:
		a.available = a.available.Sub(amount)
		a.held = a.held.Add(amount)
	case Resolve:
		a.held = a.held.Sub(amount)
		a.available = a.available.Add(amount)
	case Chargeback:
		a.held = a.held.Sub(amount)
		a.Lock()
	}
	return nil
}
