package domain

import "fmt"

// EntryState is the dispute lifecycle state of a ledger entry.
type EntryState uint8

const (
	EntryClean EntryState = iota
	EntryDisputed
	EntryChargedBack
)

func (s EntryState) String() string {
	switch s {
	case EntryDisputed:
		return "disputed"
	case EntryChargedBack:
		return "charged_back"
	default:
		return "clean"
	}
}

// LedgerEntry records a single transfer and its dispute lifecycle.
// It is created on first sight of the transfer, whether or not the
// transfer applied, and is never removed.
type LedgerEntry struct {
	transfer     Transfer
	underDispute bool
	chargedBack  bool
}

// NewLedgerEntry creates a clean entry for transfer.
func NewLedgerEntry(transfer Transfer) *LedgerEntry {
	return &LedgerEntry{transfer: transfer}
}

// Transfer returns the originating transfer.
func (e *LedgerEntry) Transfer() Transfer {
	return e.transfer
}

// UnderDispute reports whether the entry is currently disputed.
func (e *LedgerEntry) UnderDispute() bool {
	return e.underDispute
}

// ChargedBack reports whether the entry has been charged back.
func (e *LedgerEntry) ChargedBack() bool {
	return e.chargedBack
}

// State returns the lifecycle state.
func (e *LedgerEntry) State() EntryState {
	switch {
	case e.chargedBack:
		return EntryChargedBack
	case e.underDispute:
		return EntryDisputed
	default:
		return EntryClean
	}
}

// Apply transitions the entry for kind. On error the entry is unchanged.
func (e *LedgerEntry) Apply(kind MutationKind) error {
	switch kind {
	case Dispute:
		return e.dispute()
	case Resolve:
		return e.resolve()
	case Chargeback:
		return e.chargeback()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownTransaction, kind)
	}
}

func (e *LedgerEntry) dispute() error {
	if e.underDispute || e.chargedBack {
		return ErrDispute
	}
	e.underDispute = true
	return nil
}

func (e *LedgerEntry) resolve() error {
	if !e.underDispute {
		return ErrResolve
	}
	e.underDispute = false
	return nil
}

func (e *LedgerEntry) chargeback() error {
	if !e.underDispute {
		return ErrChargeBack
	}
	e.underDispute = false
	e.chargedBack = true
	return nil
}
