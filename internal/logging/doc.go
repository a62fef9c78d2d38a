// Package logging provides structured logging helpers built on log/slog.
//
// It defines the canonical attribute keys used across the exporter and
// a small Logger interface so components can take an injected logger
// instead of reaching for a global.
package logging
