package usecase

const (
	// DefaultAccountCapacity is the initial size of the account table.
	DefaultAccountCapacity = 1000

	// DefaultLedgerCapacity is the initial size of the ledger entry table.
	DefaultLedgerCapacity = 100000
)
