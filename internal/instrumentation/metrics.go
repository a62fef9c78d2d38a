package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrOperation = "operation"
	attrStatus    = "status"
	attrSheet     = "sheet"
)

// Metrics provides methods for recording exporter metrics. The zero
// value is a no-op recorder, used when instrumentation is disabled.
type Metrics struct {
	exportsTotal      metric.Int64Counter
	rowsExportedTotal metric.Int64Counter
	exportDuration    metric.Float64Histogram

	sheetsOperationsTotal   metric.Int64Counter
	sheetsOperationDuration metric.Float64Histogram
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.exportsTotal, err = meter.Int64Counter(
		"exports_total",
		metric.WithDescription("Total number of export calls"),
		metric.WithUnit("{export}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create exports_total counter: %w", err)
	}

	m.rowsExportedTotal, err = meter.Int64Counter(
		"rows_exported_total",
		metric.WithDescription("Total number of rows appended to the tracker sheet"),
		metric.WithUnit("{row}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rows_exported_total counter: %w", err)
	}

	m.exportDuration, err = meter.Float64Histogram(
		"export_duration_seconds",
		metric.WithDescription("End-to-end export call duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create export_duration_seconds histogram: %w", err)
	}

	m.sheetsOperationsTotal, err = meter.Int64Counter(
		"sheets_operations_total",
		metric.WithDescription("Total number of Google Sheets API operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets_operations_total counter: %w", err)
	}

	m.sheetsOperationDuration, err = meter.Float64Histogram(
		"sheets_operation_duration_seconds",
		metric.WithDescription("Google Sheets API operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets_operation_duration_seconds histogram: %w", err)
	}

	return m, nil
}

// RecordExport records one export call with its status, the number of
// rows written, and the end-to-end duration.
func (m *Metrics) RecordExport(ctx context.Context, sheet, status string, rows int, duration time.Duration) {
	if m.exportsTotal == nil || m.rowsExportedTotal == nil || m.exportDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrSheet, sheet),
		attribute.String(attrStatus, status),
	}

	m.exportsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.rowsExportedTotal.Add(ctx, int64(rows), metric.WithAttributes(attrs...))
	m.exportDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordSheetsOperation records a Google Sheets API operation.
//
// Parameters:
//   - operation: Operation type (lookup, create, append)
//   - status: Result status ("success" or "error")
//   - duration: Time taken for the operation
func (m *Metrics) RecordSheetsOperation(ctx context.Context, operation, status string, duration time.Duration) {
	if m.sheetsOperationsTotal == nil || m.sheetsOperationDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	m.sheetsOperationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.sheetsOperationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}
