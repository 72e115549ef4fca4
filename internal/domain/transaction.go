package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Client identifies an account holder.
type Client uint16

// TransactionID identifies a transfer. Ids are unique across all clients.
type TransactionID uint32

// TransferKind distinguishes money entering and leaving an account.
type TransferKind uint8

const (
	Deposit TransferKind = iota + 1
	Withdrawal
)

func (k TransferKind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	default:
		return fmt.Sprintf("transfer(%d)", uint8(k))
	}
}

// MutationKind is a step of the dispute lifecycle.
type MutationKind uint8

const (
	Dispute MutationKind = iota + 1
	Resolve
	Chargeback
)

func (k MutationKind) String() string {
	switch k {
	case Dispute:
		return "dispute"
	case Resolve:
		return "resolve"
	case Chargeback:
		return "chargeback"
	default:
		return fmt.Sprintf("mutation(%d)", uint8(k))
	}
}

// Transaction is a unit of input to the ledger. It is either a Transfer or a
// Mutation; no other implementations exist outside this package.
type Transaction interface {
	Client() Client
	Tx() TransactionID
	Type() string
	isTransaction()
}

// Transfer is a deposit or withdrawal. It introduces a new transaction id.
type Transfer struct {
	Kind     TransferKind
	ClientID Client
	TxID     TransactionID
	Amount   decimal.Decimal
}

// NewDeposit creates a deposit transfer.
func NewDeposit(client Client, tx TransactionID, amount decimal.Decimal) Transfer {
	return Transfer{Kind: Deposit, ClientID: client, TxID: tx, Amount: amount}
}

// NewWithdrawal creates a withdrawal transfer.
func NewWithdrawal(client Client, tx TransactionID, amount decimal.Decimal) Transfer {
	return Transfer{Kind: Withdrawal, ClientID: client, TxID: tx, Amount: amount}
}

// Client, Tx and Type implement Transaction.
func (t Transfer) Client() Client { return t.ClientID }
func (t Transfer) Tx() TransactionID { return t.TxID }
func (t Transfer) Type() string { return t.Kind.String() }
func (t Transfer) isTransaction() {}

// String formats the transfer for logs.
func (t Transfer) String() string {
	return fmt.Sprintf("%s{client:%d tx:%d amount:%s}", t.Kind, t.ClientID, t.TxID, t.Amount)
}

// Mutation is a dispute, resolve or chargeback referencing a prior Transfer.
// It carries no amount; the amount comes from the referenced transfer.
type Mutation struct {
	Kind     MutationKind
	ClientID Client
	TxID     TransactionID
}

// NewDispute creates a dispute mutation.
func NewDispute(client Client, tx TransactionID) Mutation {
	return Mutation{Kind: Dispute, ClientID: client, TxID: tx}
}

// NewResolve creates a resolve mutation.
func NewResolve(client Client, tx TransactionID) Mutation {
	return Mutation{Kind: Resolve, ClientID: client, TxID: tx}
}

// NewChargeback creates a chargeback mutation.
func NewChargeback(client Client, tx TransactionID) Mutation {
	return Mutation{Kind: Chargeback, ClientID: client, TxID: tx}
}

// Client, Tx and Type implement Transaction.
func (m Mutation) Client() Client { return m.ClientID }
func (m Mutation) Tx() TransactionID { return m.TxID }
func (m Mutation) Type() string { return m.Kind.String() }
func (m Mutation) isTransaction() {}

// String formats the mutation for logs.
func (m Mutation) String() string {
	return fmt.Sprintf("%s{client:%d tx:%d}", m.Kind, m.ClientID, m.TxID)
}
