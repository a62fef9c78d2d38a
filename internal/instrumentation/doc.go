// Package instrumentation provides OpenTelemetry metrics for the
// exporter.
//
// The Provider owns the meter provider and its exporter (stdout for
// local debugging, OTLP HTTP for a collector). Instrumentation is
// disabled by default since the exporter is a short-lived CLI process;
// when disabled, the Metrics recorder is a no-op and no SDK machinery
// is initialized. Shutdown flushes pending telemetry and must be called
// before process exit when enabled.
package instrumentation
