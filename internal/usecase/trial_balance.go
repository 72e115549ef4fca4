package usecase

import (
	"fmt"
	"sort"

	"github.com/iho/trialbalance/internal/domain"
)

// TrialBalance owns every account and ledger entry and applies
// transactions to them one at a time.
type TrialBalance struct {
	policy   domain.LockPolicy
	accounts map[domain.Client]*domain.Account
	ledger   map[domain.TransactionID]*domain.LedgerEntry
}

// NewTrialBalance creates an empty TrialBalance.
func NewTrialBalance(policy domain.LockPolicy) *TrialBalance {
	return &TrialBalance{
		policy:   policy,
		accounts: make(map[domain.Client]*domain.Account, DefaultAccountCapacity),
		ledger:   make(map[domain.TransactionID]*domain.LedgerEntry, DefaultLedgerCapacity),
	}
}

// Policy returns the locked-deposit policy in use.
func (tb *TrialBalance) Policy() domain.LockPolicy {
	return tb.policy
}

// Process applies tx. The account for tx's client is created if needed,
// even when tx is rejected.
func (tb *TrialBalance) Process(tx domain.Transaction) error {
	account := tb.account(tx.Client())

	switch t := tx.(type) {
	case domain.Transfer:
		return tb.processTransfer(account, t)
	case domain.Mutation:
		return tb.processMutation(account, t)
	default:
		return fmt.Errorf("%w: %T", domain.ErrUnknownTransaction, tx)
	}
}

func (tb *TrialBalance) processTransfer(account *domain.Account, t domain.Transfer) error {
	// Rejected transfers on a locked account must not claim their id.
	if account.Locked() && !tb.policy.Permits(t.Kind) {
		return domain.ErrAccountLocked
	}

	if _, exists := tb.ledger[t.TxID]; exists {
		return &domain.DuplicateTransactionError{ID: t.TxID}
	}

	// The entry records intent, so it is kept even if the transfer fails.
	tb.ledger[t.TxID] = domain.NewLedgerEntry(t)

	return account.ApplyTransfer(t, tb.policy)
}

func (tb *TrialBalance) processMutation(account *domain.Account, m domain.Mutation) error {
	if account.Locked() {
		return domain.ErrAccountLocked
	}

	entry, ok := tb.ledger[m.TxID]
	if !ok {
		return &domain.MissingTransactionError{ID: m.TxID}
	}

	transfer := entry.Transfer()
	if transfer.ClientID != m.ClientID {
		return fmt.Errorf("%w: tx %d belongs to client %d, not %d",
			domain.ErrClientMismatch, m.TxID, transfer.ClientID, m.ClientID)
	}

	if err := entry.Apply(m.Kind); err != nil {
		return err
	}

	// The entry transition stands even if the balance move is refused.
	return account.ApplyMutation(m.Kind, transfer.Amount)
}

func (tb *TrialBalance) account(client domain.Client) *domain.Account {
	account, ok := tb.accounts[client]
	if !ok {
		account = domain.NewAccount(client)
		tb.accounts[client] = account
	}
	return account
}

// Entry returns the ledger entry for id, if any.
func (tb *TrialBalance) Entry(id domain.TransactionID) (*domain.LedgerEntry, bool) {
	entry, ok := tb.ledger[id]
	return entry, ok
}

// Account returns a snapshot of the client's account, if it exists.
func (tb *TrialBalance) Account(client domain.Client) (domain.AccountSnapshot, bool) {
	account, ok := tb.accounts[client]
	if !ok {
		return domain.AccountSnapshot{}, false
	}
	return account.Snapshot(), true
}

// Accounts returns a snapshot of every known account ordered by client.
func (tb *TrialBalance) Accounts() []domain.AccountSnapshot {
	snapshots := make([]domain.AccountSnapshot, 0, len(tb.accounts))
	for _, account := range tb.accounts {
		snapshots = append(snapshots, account.Snapshot())
	}
	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Client < snapshots[j].Client
	})
	return snapshots
}
