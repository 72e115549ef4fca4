package csv

import (
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/iho/trialbalance/internal/domain"
)

// ExactPrecision prints amounts without rounding.
const ExactPrecision = -1

var accountHeader = []string{"client", "available", "held", "total", "locked"}

// WriteAccounts writes one row per account after a header row.
// A negative precision prints exact decimals.
func WriteAccounts(w io.Writer, accounts []domain.AccountSnapshot, precision int32) error {
	cw := stdcsv.NewWriter(w)

	if err := cw.Write(accountHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, acc := range accounts {
		row := []string{
			strconv.FormatUint(uint64(acc.Client), 10),
			FormatAmount(acc.Available, precision),
			FormatAmount(acc.Held, precision),
			FormatAmount(acc.Total, precision),
			strconv.FormatBool(acc.Locked),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write account %d: %w", acc.Client, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// FormatAmount renders d exactly, or rounded to precision places when precision >= 0.
func FormatAmount(d decimal.Decimal, precision int32) string {
	if precision < 0 {
		return d.String()
	}
	return d.StringFixed(precision)
}
