package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/trialbalance/internal/infrastructure/config"
)

const input = `type, client, tx, amount
deposit, 1, 1, 100.0
withdrawal, 1, 2, 50.0
dispute, 1, 1,
resolve, 1, 1,
chargeback, 1, 1,
withdrawal, 1, 3, 50.0
withdrawal, 1, 3, 50.0
chargeback, 1, 100,
deposit, 2, 4, 100
dispute, 2, 4,
chargeback, 2, 4,
deposit, 2, 5, 10
deposit, 3, 6,
deposit, 3, 7, 1.2345
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfg := &config.Config{
		LogLevel:        "debug",
		LogFormat:       "json",
		LockedDeposits:  "reject",
		OutputPrecision: -1,
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(cfg, &stdout, &stderr)
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRoot_RejectLockedDeposits(t *testing.T) {
	stdout, stderr, err := execute(t, writeInput(t, input))
	require.NoError(t, err)

	expected := "client,available,held,total,locked\n" +
		"1,0,0,0,false\n" +
		"2,0,0,0,true\n" +
		"3,1.2345,0,1.2345,false\n"
	assert.Equal(t, expected, stdout)
	assert.Contains(t, stderr, "skipping unparsable row")
	assert.Contains(t, stderr, "run_id")
}

func TestRoot_AcceptLockedDeposits(t *testing.T) {
	stdout, _, err := execute(t, "--locked-deposits", "accept", "--precision", "4", writeInput(t, input))
	require.NoError(t, err)

	expected := "client,available,held,total,locked\n" +
		"1,0.0000,0.0000,0.0000,false\n" +
		"2,10.0000,0.0000,10.0000,true\n" +
		"3,1.2345,0.0000,1.2345,false\n"
	assert.Equal(t, expected, stdout)
}

func TestRoot_MetricsFile(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "run.prom")

	_, _, err := execute(t, "--metrics-file", metricsPath, writeInput(t, input))
	require.NoError(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, `trialbalance_transactions_total{result="duplicate_transaction",type="withdrawal"} 1`), text)
	assert.True(t, strings.Contains(text, "trialbalance_rows_rejected_total 1"), text)
	assert.True(t, strings.Contains(text, "trialbalance_locked_accounts 1"), text)
}

func TestRoot_InvalidInvocation(t *testing.T) {
	t.Run("missing argument", func(t *testing.T) {
		_, _, err := execute(t)
		assert.Error(t, err)
	})

	t.Run("unknown policy", func(t *testing.T) {
		_, _, err := execute(t, "--locked-deposits", "sometimes", writeInput(t, input))
		assert.Error(t, err)
	})

	t.Run("unreadable input", func(t *testing.T) {
		_, _, err := execute(t, filepath.Join(t.TempDir(), "missing.csv"))
		assert.ErrorContains(t, err, "failed to open input")
	})
}

func TestRoot_ExtremeScaleAmountRejected(t *testing.T) {
	content := "type,client,tx,amount\n" +
		"deposit,1,1,1e-300000000\n" +
		"deposit,1,2,5\n"

	stdout, stderr, err := execute(t, writeInput(t, content))
	require.NoError(t, err)

	assert.Equal(t, "client,available,held,total,locked\n1,5,0,5,false\n", stdout)
	assert.Contains(t, stderr, "skipping unparsable row")
	assert.Less(t, len(stderr), 1<<16, "logs must not render the rejected amount")
}
