package export

import (
	"context"
	"fmt"
	"time"

	"github.com/meetily/sheetsync/internal/instrumentation"
	"github.com/meetily/sheetsync/internal/logging"
	"github.com/meetily/sheetsync/internal/summary"
)

// Store is the destination the exporter writes to. The Google Sheets
// client satisfies it in production; tests use a fake.
type Store interface {
	// EnsureSheet guarantees a sheet with the given title exists and
	// carries the canonical header row.
	EnsureSheet(ctx context.Context, title string) error

	// AppendRows appends all value rows in a single batch and returns
	// the number of rows written.
	AppendRows(ctx context.Context, title string, values [][]interface{}) (int, error)
}

// Exporter runs the full export flow: extract rows from a summary,
// provision the destination sheet, append the rows. The store is an
// injected, already-authenticated dependency; it is reused across
// calls for the lifetime of the Exporter.
type Exporter struct {
	store   Store
	sheet   string
	logger  logging.Logger
	metrics *instrumentation.Metrics
	now     func() time.Time
}

// New creates an Exporter writing to the named sheet of the given
// store. A nil logger falls back to the default slog logger; a nil
// metrics recorder disables metric recording.
func New(store Store, sheet string, logger logging.Logger, metrics *instrumentation.Metrics) *Exporter {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}
	return &Exporter{
		store:   store,
		sheet:   sheet,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
}

// Export extracts rows from the summary and appends them to the
// tracker sheet. It returns the number of rows written. Zero actionable
// rows is a normal outcome: no remote call is made and (0, nil) is
// returned.
func (e *Exporter) Export(ctx context.Context, s *summary.Summary, fallbackTitle string) (int, error) {
	start := time.Now()
	ts := e.now()

	rows := Extract(s, fallbackTitle, ts)
	if len(rows) == 0 {
		e.logger.Info("no actionable items to export",
			logging.KeySheet, e.sheet,
			logging.KeyMeeting, fallbackTitle,
		)
		e.metrics.RecordExport(ctx, e.sheet, instrumentation.StatusSuccess, 0, time.Since(start))
		return 0, nil
	}

	e.logger.Debug("extracted rows from summary",
		logging.KeyRows, len(rows),
		logging.KeyMeeting, rows[0].Source,
		"time_slot", TimeSlot(ts),
	)

	if err := e.store.EnsureSheet(ctx, e.sheet); err != nil {
		e.metrics.RecordExport(ctx, e.sheet, instrumentation.StatusError, 0, time.Since(start))
		return 0, fmt.Errorf("failed to provision sheet %q: %w", e.sheet, err)
	}

	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = row.Values()
	}

	n, err := e.store.AppendRows(ctx, e.sheet, values)
	if err != nil {
		e.metrics.RecordExport(ctx, e.sheet, instrumentation.StatusError, 0, time.Since(start))
		return 0, fmt.Errorf("failed to append rows to sheet %q: %w", e.sheet, err)
	}

	e.logger.Info("exported action items",
		logging.KeySheet, e.sheet,
		logging.KeyRows, n,
		logging.KeyDuration, time.Since(start),
	)
	e.metrics.RecordExport(ctx, e.sheet, instrumentation.StatusSuccess, n, time.Since(start))

	return n, nil
}

// ExportJSON parses a JSON-encoded summary and exports it. Parse
// failures surface as *summary.MalformedInputError.
func (e *Exporter) ExportJSON(ctx context.Context, data []byte, fallbackTitle string) (int, error) {
	s, err := summary.Parse(data)
	if err != nil {
		return 0, err
	}
	return e.Export(ctx, s, fallbackTitle)
}

// ExportMap exports a summary that arrives as an already-decoded
// mapping.
func (e *Exporter) ExportMap(ctx context.Context, m map[string]any, fallbackTitle string) (int, error) {
	s, err := summary.FromMap(m)
	if err != nil {
		return 0, err
	}
	return e.Export(ctx, s, fallbackTitle)
}
