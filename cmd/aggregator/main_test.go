package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optpaircli/internal/config"
	apperrors "optpaircli/internal/errors"
	"optpaircli/internal/shared/testutil"
)

// unsetEnv removes OPTPAIR_ variables for the duration of the test
func unsetEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, val, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, config.EnvPrefix+"_") {
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, val) })
		}
	}
}

func newTestApp(t *testing.T) (*app, *bytes.Buffer, *testutil.BufferedSlogHandler) {
	t.Helper()
	unsetEnv(t)

	logger, handler := testutil.NewTestLogger(t)
	out := &bytes.Buffer{}
	a := &app{
		out:       out,
		newLogger: func(config.LoggingConfig) (*slog.Logger, error) { return logger, nil },
	}
	return a, out, handler
}

func baseArgs(dir string) runArgs {
	return runArgs{
		ConfigFile: filepath.Join(dir, "config.yaml"),
		EnvFile:    filepath.Join(dir, ".env"),
	}
}

func TestRun_WritesConsolidatedWorkbook(t *testing.T) {
	a, out, handler := newTestApp(t)
	dir := t.TempDir()
	base := filepath.Join(dir, "data")
	testutil.WriteWorkbook(t, filepath.Join(base, "250101A", "chain.xlsx"), testutil.DefaultChainHeader,
		testutil.ChainRow("Call", 100, 50, 1.5),
		testutil.ChainRow("Put", 100, 50, 2.0),
	)

	args := baseArgs(dir)
	args.BaseDirs = base
	args.Output = filepath.Join(dir, "out", "matched.xlsx")

	require.NoError(t, a.run(context.Background(), args))

	rows := testutil.ReadWorkbook(t, args.Output)
	require.Len(t, rows, 2)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "250101", rows[1][0])

	testutil.AssertLogContains(t, handler, slog.LevelInfo, "Saved consolidated results")
	testutil.AssertLogAttr(t, handler, "count", int64(1))
	testutil.AssertNoErrors(t, handler)
	assert.Contains(t, out.String(), "Run Summary:")
}

func TestRun_RepeatedRunsWriteIdenticalBytes(t *testing.T) {
	a, _, _ := newTestApp(t)
	dir := t.TempDir()
	base := filepath.Join(dir, "data")
	for _, day := range []string{"250101A", "250102"} {
		testutil.WriteWorkbook(t, filepath.Join(base, day, "chain.xlsx"), testutil.DefaultChainHeader,
			testutil.ChainRow("Call", 100, 50, 1.5),
			testutil.ChainRow("Put", 100, 50, 2.0),
		)
	}

	args := baseArgs(dir)
	args.BaseDirs = base
	args.Output = filepath.Join(dir, "matched.xlsx")
	args.Quiet = true

	require.NoError(t, a.run(context.Background(), args))
	first, err := os.ReadFile(args.Output)
	require.NoError(t, err)

	require.NoError(t, a.run(context.Background(), args))
	second, err := os.ReadFile(args.Output)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "output changed between runs")
}

func TestRun_NoMatchesWritesNothing(t *testing.T) {
	a, _, handler := newTestApp(t)
	dir := t.TempDir()
	base := filepath.Join(dir, "data")
	testutil.WriteWorkbook(t, filepath.Join(base, "250101", "chain.xlsx"), testutil.DefaultChainHeader,
		testutil.ChainRow("Call", 100, 5, 1),
		testutil.ChainRow("Put", 100, 6, 1),
	)

	args := baseArgs(dir)
	args.BaseDirs = base
	args.Output = filepath.Join(dir, "matched.xlsx")
	args.Quiet = true

	require.NoError(t, a.run(context.Background(), args))

	_, err := os.Stat(args.Output)
	assert.True(t, os.IsNotExist(err))
	testutil.AssertLogContains(t, handler, slog.LevelInfo, "No matching records found")
}

func TestRun_ConfigErrors(t *testing.T) {
	a, _, _ := newTestApp(t)
	dir := t.TempDir()

	t.Run("explicit config file missing", func(t *testing.T) {
		args := baseArgs(dir)
		args.ConfigExplicit = true
		args.BaseDirs = dir
		args.Output = filepath.Join(dir, "matched.xlsx")

		err := a.run(context.Background(), args)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
		assert.Equal(t, 1, exitCode(err))
	})

	t.Run("no base directories", func(t *testing.T) {
		args := baseArgs(dir)
		args.Output = filepath.Join(dir, "matched.xlsx")

		err := a.run(context.Background(), args)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
	})
}

func TestRun_ReportAndMetricsFiles(t *testing.T) {
	a, _, _ := newTestApp(t)
	dir := t.TempDir()
	base := filepath.Join(dir, "data")
	testutil.WriteWorkbook(t, filepath.Join(base, "250101", "chain.xlsx"), testutil.DefaultChainHeader,
		testutil.ChainRow("Call", 100, 50, 1.5),
		testutil.ChainRow("Put", 100, 50, 2.0),
	)
	testutil.WriteCorruptWorkbook(t, filepath.Join(base, "250101", "broken.xlsx"))

	reportPath := filepath.Join(dir, "reports", "run.csv")
	metricsPath := filepath.Join(dir, "metrics", "optpair.prom")
	t.Setenv("OPTPAIR_AGGREGATION_REPORT_PATH", reportPath)
	t.Setenv("OPTPAIR_AGGREGATION_METRICS_PATH", metricsPath)

	args := baseArgs(dir)
	args.BaseDirs = base + "," + filepath.Join(dir, "missing")
	args.Output = filepath.Join(dir, "matched.xlsx")
	args.Quiet = true

	require.NoError(t, a.run(context.Background(), args))

	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(report), "broken.xlsx")
	assert.Contains(t, string(report), "failed")

	metrics, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "optpair_files_total{")
	assert.Contains(t, string(metrics), `status="failed"`)
	assert.Contains(t, string(metrics), "optpair_missing_base_dirs_total")
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd(newApp(&bytes.Buffer{}))

	for _, name := range []string{"config", "env-file", "base-dirs", "output", "quiet"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, config.DefaultConfigFile, cmd.Flags().Lookup("config").DefValue)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(apperrors.NewStorageError("disk full", nil)))
}
