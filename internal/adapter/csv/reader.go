package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iho/trialbalance/internal/domain"
)

// ErrInvalidHeader is returned when the header lacks a required column.
var ErrInvalidHeader = errors.New("invalid transaction header")

// RowError describes a row that could not be decoded into a transaction.
// It matches domain.ErrMalformedRow under errors.Is.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() []error {
	return []error{domain.ErrMalformedRow, e.Err}
}

// Reader decodes transactions from CSV rows of the form
// type,client,tx,amount. Columns are located by header name.
type Reader struct {
	csv       *stdcsv.Reader
	typeCol   int
	clientCol int
	txCol     int
	amountCol int
	empty     bool
}

// NewReader reads the header from r and returns a Reader positioned at the first row.
func NewReader(r io.Reader) (*Reader, error) {
	cr := stdcsv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Reader{csv: cr, empty: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	reader := &Reader{csv: cr, typeCol: -1, clientCol: -1, txCol: -1, amountCol: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "type":
			reader.typeCol = i
		case "client":
			reader.clientCol = i
		case "tx":
			reader.txCol = i
		case "amount":
			reader.amountCol = i
		}
	}

	if reader.typeCol < 0 || reader.clientCol < 0 || reader.txCol < 0 {
		return nil, fmt.Errorf("%w: want type, client and tx columns, got %q", ErrInvalidHeader, header)
	}

	return reader, nil
}

// Next returns the next transaction. It returns io.EOF at the end of input
// and a *RowError for a row that could not be decoded; reading may continue
// after a RowError.
func (r *Reader) Next() (domain.Transaction, error) {
	if r.empty {
		return nil, io.EOF
	}

	record, err := r.csv.Read()
	if err != nil {
		var parseErr *stdcsv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &RowError{Line: parseErr.Line, Err: parseErr.Err}
		}
		return nil, err
	}

	line, _ := r.csv.FieldPos(0)

	tx, err := r.decode(record)
	if err != nil {
		return nil, &RowError{Line: line, Err: err}
	}
	return tx, nil
}

func (r *Reader) decode(record []string) (domain.Transaction, error) {
	field := func(col int) string {
		if col < 0 || col >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[col])
	}

	client, err := strconv.ParseUint(field(r.clientCol), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid client %q", field(r.clientCol))
	}

	txID, err := strconv.ParseUint(field(r.txCol), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid tx %q", field(r.txCol))
	}

	c, id := domain.Client(client), domain.TransactionID(txID)

	switch kind := strings.ToLower(field(r.typeCol)); kind {
	case "deposit", "withdrawal":
		amount, err := domain.ParseAmount(field(r.amountCol))
		if err != nil {
			return nil, fmt.Errorf("%s requires an amount: %w", kind, err)
		}
		if kind == "deposit" {
			return domain.NewDeposit(c, id, amount), nil
		}
		return domain.NewWithdrawal(c, id, amount), nil
	case "dispute":
		return domain.NewDispute(c, id), nil
	case "resolve":
		return domain.NewResolve(c, id), nil
	case "chargeback":
		return domain.NewChargeback(c, id), nil
	default:
		return nil, fmt.Errorf("%w %q", domain.ErrUnknownTransaction, kind)
	}
}
