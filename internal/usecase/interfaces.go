package usecase

import (
	"github.com/iho/trialbalance/internal/domain"
)

// TransactionSource yields transactions in arrival order.
// Next returns io.EOF when the source is exhausted. Errors wrapping
// domain.ErrMalformedRow affect a single row only; any other error is fatal.
type TransactionSource interface {
	Next() (domain.Transaction, error)
}

// Ledger applies a single transaction.
type Ledger interface {
	Process(tx domain.Transaction) error
}

// Recorder receives the outcome of every row.
type Recorder interface {
	TransactionProcessed(txType string, err error)
	RowRejected()
}
