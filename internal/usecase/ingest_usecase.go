package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/iho/trialbalance/internal/domain"
)

// IngestUseCase drives a Ledger over a TransactionSource. Rejected
// transactions and unparsable rows are logged and skipped.
type IngestUseCase struct {
	ledger   Ledger
	recorder Recorder
	logger   zerolog.Logger
}

// Summary counts the outcome of a run.
type Summary struct {
	Rows      int
	Applied   int
	Rejected  int
	Malformed int
}

// NewIngestUseCase creates a new IngestUseCase. recorder may be nil.
func NewIngestUseCase(ledger Ledger, recorder Recorder, logger zerolog.Logger) *IngestUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &IngestUseCase{
		ledger:   ledger,
		recorder: recorder,
		logger:   logger,
	}
}

// Run consumes source until io.EOF. Only a fatal source error or a
// cancelled context stops it early.
func (uc *IngestUseCase) Run(ctx context.Context, source TransactionSource) (Summary, error) {
	var summary Summary

	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		tx, err := source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if !errors.Is(err, domain.ErrMalformedRow) {
				return summary, fmt.Errorf("failed to read transaction: %w", err)
			}
			summary.Rows++
			summary.Malformed++
			uc.recorder.RowRejected()
			uc.logger.Warn().Err(err).Msg("skipping unparsable row")
			continue
		}

		summary.Rows++
		err = uc.ledger.Process(tx)
		uc.recorder.TransactionProcessed(tx.Type(), err)

		if err != nil {
			summary.Rejected++
			uc.logger.Warn().
				Err(err).
				Str("type", tx.Type()).
				Uint16("client", uint16(tx.Client())).
				Uint32("tx", uint32(tx.Tx())).
				Msg("transaction rejected")
			continue
		}

		summary.Applied++
		uc.logger.Debug().
			Str("type", tx.Type()).
			Uint16("client", uint16(tx.Client())).
			Uint32("tx", uint32(tx.Tx())).
			Msg("transaction applied")
	}

	uc.logger.Info().
		Int("rows", summary.Rows).
		Int("applied", summary.Applied).
		Int("rejected", summary.Rejected).
		Int("malformed", summary.Malformed).
		Msg("ingest complete")

	return summary, nil
}

type nopRecorder struct{}

func (nopRecorder) TransactionProcessed(string, error) {}
func (nopRecorder) RowRejected() {}
