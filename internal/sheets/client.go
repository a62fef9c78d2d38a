package sheets

import (
	"context"
	"fmt"
	"time"

	sheets "google.golang.org/api/sheets/v4"

	"github.com/meetily/sheetsync/internal/google"
	"github.com/meetily/sheetsync/internal/instrumentation"
)

// Initial grid size for newly created sheets: large enough for
// long-term accumulation, exactly as wide as the row schema.
const (
	initialRowCount    = 1000
	initialColumnCount = 10
)

// RemoteError wraps a failed call against the remote spreadsheet
// (authentication, lookup, creation, or append).
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("sheets %s failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Client wraps the Google Sheets service for a single spreadsheet.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	header        []string
	metrics       *instrumentation.Metrics
}

// NewClient creates a Client authenticated with the service-account
// key at credentialsFile. The header row is written to any sheet the
// client creates. A nil metrics recorder disables metric recording.
func NewClient(ctx context.Context, spreadsheetID, credentialsFile string, header []string, metrics *instrumentation.Metrics) (*Client, error) {
	svc, err := google.NewSheetsService(ctx, credentialsFile)
	if err != nil {
		return nil, err
	}
	return NewClientWithService(svc, spreadsheetID, header, metrics), nil
}

// NewClientWithService creates a Client around an existing Sheets
// service. Useful for wiring a custom-configured service or a test
// double.
func NewClientWithService(svc *sheets.Service, spreadsheetID string, header []string, metrics *instrumentation.Metrics) *Client {
	if metrics == nil {
		metrics = &instrumentation.Metrics{}
	}
	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		header:        header,
		metrics:       metrics,
	}
}

// SpreadsheetID returns the spreadsheet this client writes to.
func (c *Client) SpreadsheetID() string {
	return c.spreadsheetID
}

// EnsureSheet guarantees a sheet with the given title exists in the
// spreadsheet. An existing sheet is returned as-is: the header is not
// verified or repaired, so a manually edited header will silently
// diverge from the schema. A missing sheet is created with the initial
// grid, the header as row 1, bold formatting on row 1, and row 1
// frozen.
func (c *Client) EnsureSheet(ctx context.Context, title string) error {
	start := time.Now()
	resp, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	c.record(ctx, "lookup", start, err)
	if err != nil {
		return &RemoteError{Op: "lookup", Err: err}
	}

	if _, ok := findSheet(resp, title); ok {
		return nil
	}

	return c.createSheet(ctx, title)
}

// createSheet adds the sheet and writes and formats its header row.
func (c *Client) createSheet(ctx context.Context, title string) error {
	addReq := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: title,
					GridProperties: &sheets.GridProperties{
						RowCount:    initialRowCount,
						ColumnCount: initialColumnCount,
					},
				},
			},
		}},
	}

	start := time.Now()
	resp, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, addReq).Context(ctx).Do()
	c.record(ctx, "create", start, err)
	if err != nil {
		return &RemoteError{Op: "create", Err: err}
	}

	sheetID, err := createdSheetID(resp)
	if err != nil {
		return &RemoteError{Op: "create", Err: err}
	}

	start = time.Now()
	_, err = c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rangeA1(title), headerValueRange(c.header)).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	c.record(ctx, "write_header", start, err)
	if err != nil {
		return &RemoteError{Op: "write header", Err: err}
	}

	formatReq := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: headerFormatRequests(sheetID),
	}

	start = time.Now()
	_, err = c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, formatReq).Context(ctx).Do()
	c.record(ctx, "format_header", start, err)
	if err != nil {
		return &RemoteError{Op: "format header", Err: err}
	}

	return nil
}

// AppendRows appends all value rows to the named sheet in a single
// batch write and returns the number of rows written. USER_ENTERED
// lets the backing store interpret formatted values such as dates.
// Empty input is a no-op returning zero.
func (c *Client) AppendRows(ctx context.Context, title string, values [][]interface{}) (int, error) {
	if len(values) == 0 {
		return 0, nil
	}

	vr := &sheets.ValueRange{Values: values}

	start := time.Now()
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rangeA1(title), vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	c.record(ctx, "append", start, err)
	if err != nil {
		return 0, &RemoteError{Op: "append", Err: err}
	}

	return len(values), nil
}

// record reports one remote operation to the metrics recorder.
func (c *Client) record(ctx context.Context, op string, start time.Time, err error) {
	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
	}
	c.metrics.RecordSheetsOperation(ctx, op, status, time.Since(start))
}

// findSheet looks up a sheet by title in the spreadsheet metadata.
// Presence is an explicit result, not an error.
func findSheet(s *sheets.Spreadsheet, title string) (*sheets.SheetProperties, bool) {
	if s == nil {
		return nil, false
	}
	for _, sh := range s.Sheets {
		if sh.Properties != nil && sh.Properties.Title == title {
			return sh.Properties, true
		}
	}
	return nil, false
}

// createdSheetID extracts the sheet ID from an AddSheet reply.
func createdSheetID(resp *sheets.BatchUpdateSpreadsheetResponse) (int64, error) {
	if resp == nil || len(resp.Replies) == 0 || resp.Replies[0].AddSheet == nil || resp.Replies[0].AddSheet.Properties == nil {
		return 0, fmt.Errorf("add sheet reply carried no sheet properties")
	}
	return resp.Replies[0].AddSheet.Properties.SheetId, nil
}

// rangeA1 returns the A1 reference anchoring writes to the top-left of
// the named sheet.
func rangeA1(title string) string {
	return fmt.Sprintf("'%s'!A1", title)
}

// headerValueRange builds the single-row value range for the header.
func headerValueRange(header []string) *sheets.ValueRange {
	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	return &sheets.ValueRange{Values: [][]interface{}{row}}
}

// headerFormatRequests bolds row 1 and freezes it so the header stays
// visible on scroll.
func headerFormatRequests(sheetID int64) []*sheets.Request {
	return []*sheets.Request{
		{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					SheetId:       sheetID,
					StartRowIndex: 0,
					EndRowIndex:   1,
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						TextFormat: &sheets.TextFormat{Bold: true},
					},
				},
				Fields: "userEnteredFormat.textFormat.bold",
			},
		},
		{
			UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
				Properties: &sheets.SheetProperties{
					SheetId: sheetID,
					GridProperties: &sheets.GridProperties{
						FrozenRowCount: 1,
					},
				},
				Fields: "gridProperties.frozenRowCount",
			},
		},
	}
}
