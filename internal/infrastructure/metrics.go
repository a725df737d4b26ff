package infrastructure

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"optpaircli/internal/config"
)

// MeterName identifies the instrumentation scope of run metrics.
const MeterName = "optpaircli"

// RunMetrics counts what one aggregation run did. Instruments are backed by
// an OpenTelemetry meter exported into a private Prometheus registry, so a
// finished run can be dumped as a node-exporter textfile.
type RunMetrics struct {
	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider

	files       metric.Int64Counter
	folders     metric.Int64Counter
	matchedRows metric.Int64Counter
	missingDirs metric.Int64Counter
	lastRun     metric.Float64Gauge
}

// NewRunMetrics creates the meter provider and registers all instruments.
func NewRunMetrics() (*RunMetrics, error) {
	registry := prometheus.NewRegistry()

	exporter, err := otelprom.New(
		otelprom.WithRegisterer(registry),
		otelprom.WithoutTargetInfo(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	meter := provider.Meter(MeterName, metric.WithInstrumentationVersion(config.AppVersion))

	m := &RunMetrics{registry: registry, provider: provider}

	if m.files, err = meter.Int64Counter(
		"optpair_files",
		metric.WithDescription("Spreadsheets processed, by outcome"),
	); err != nil {
		return nil, err
	}
	if m.folders, err = meter.Int64Counter(
		"optpair_folders",
		metric.WithDescription("Dated folders scanned"),
	); err != nil {
		return nil, err
	}
	if m.matchedRows, err = meter.Int64Counter(
		"optpair_matched_rows",
		metric.WithDescription("Matched call/put rows accumulated"),
	); err != nil {
		return nil, err
	}
	if m.missingDirs, err = meter.Int64Counter(
		"optpair_missing_base_dirs",
		metric.WithDescription("Configured base directories that did not exist"),
	); err != nil {
		return nil, err
	}
	if m.lastRun, err = meter.Float64Gauge(
		"optpair_last_run_timestamp",
		metric.WithDescription("Unix time the last run finished"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// FileProcessed records one file outcome.
func (m *RunMetrics) FileProcessed(ctx context.Context, status string) {
	m.files.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

// FolderScanned records one scanned folder.
func (m *RunMetrics) FolderScanned(ctx context.Context) {
	m.folders.Add(ctx, 1)
}

// RowsMatched records accumulated matched rows.
func (m *RunMetrics) RowsMatched(ctx context.Context, n int) {
	m.matchedRows.Add(ctx, int64(n))
}

// BaseDirMissing records a configured base directory that was skipped.
func (m *RunMetrics) BaseDirMissing(ctx context.Context) {
	m.missingDirs.Add(ctx, 1)
}

// RunFinished stamps the completion time.
func (m *RunMetrics) RunFinished(ctx context.Context, at time.Time) {
	m.lastRun.Record(ctx, float64(at.Unix()))
}

// Gatherer exposes the registry for inspection.
func (m *RunMetrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes the current metric values in the Prometheus text
// format, creating the parent directory if needed.
func (m *RunMetrics) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

// Shutdown releases the meter provider.
func (m *RunMetrics) Shutdown(ctx context.Context) error {
	return m.provider.Shutdown(ctx)
}
