package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	csvadapter "github.com/iho/trialbalance/internal/adapter/csv"
	"github.com/iho/trialbalance/internal/infrastructure/config"
	"github.com/iho/trialbalance/internal/infrastructure/logger"
	"github.com/iho/trialbalance/internal/infrastructure/metrics"
	"github.com/iho/trialbalance/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trialbalance <transactions.csv>",
		Short: "Apply a transaction log to client accounts",
		Long: `Reads deposits, withdrawals, disputes, resolves and chargebacks from a CSV
file, applies them in order and prints the final state of every account as CSV.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd.Context(), cfg, args[0], stdout, stderr)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (console, json)")
	flags.StringVar(&cfg.LockedDeposits, "locked-deposits", cfg.LockedDeposits, "Deposits on locked accounts: reject or accept")
	flags.Int32Var(&cfg.OutputPrecision, "precision", cfg.OutputPrecision, "Decimal places in output, -1 for exact")
	flags.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write Prometheus metrics to this file after the run")

	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		_, err := cfg.LockPolicy()
		return err
	}

	return rootCmd
}

func run(ctx context.Context, cfg *config.Config, path string, stdout, stderr io.Writer) error {
	policy, err := cfg.LockPolicy()
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, stderr, logger.NewRunID())

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()

	source, err := csvadapter.NewReader(bufio.NewReader(file))
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	log.Info().
		Str("input", path).
		Stringer("locked_deposits", policy).
		Msg("starting trial balance")

	m := metrics.New()
	trialBalance := usecase.NewTrialBalance(policy)

	if _, err := usecase.NewIngestUseCase(trialBalance, m, log).Run(ctx, source); err != nil {
		return err
	}

	accounts := trialBalance.Accounts()
	m.ObserveAccounts(accounts)

	if err := csvadapter.WriteAccounts(stdout, accounts, cfg.OutputPrecision); err != nil {
		return fmt.Errorf("failed to write accounts: %w", err)
	}

	if cfg.MetricsFile != "" {
		if err := m.WriteToFile(cfg.MetricsFile); err != nil {
			log.Error().Err(err).Str("path", cfg.MetricsFile).Msg("failed to write metrics")
		}
	}

	return nil
}

var (
	_ usecase.Ledger            = (*usecase.TrialBalance)(nil)
	_ usecase.TransactionSource = (*csvadapter.Reader)(nil)
	_ usecase.Recorder          = (*metrics.Metrics)(nil)
)
