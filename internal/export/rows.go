package export

import (
	"time"

	"github.com/meetily/sheetsync/internal/summary"
)

// Priority classifies how urgent an exported item is. Only two values
// exist: items from ImmediateActionItems and CriticalDeadlines are
// high, items from NextSteps are medium.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// Fixed values written into every row.
const (
	StatusNotStarted = "not started"
	OriginLabel      = "Meetily"

	dateLayout       = "2006-01-02"
	registeredLayout = "2006-01-02 15:04:05"
)

// Row is one normalized tracker entry. Field order matches the sheet
// header exactly; Values must stay in sync with Header.
type Row struct {
	Date       string
	Source     string
	Priority   Priority
	Task       string
	Detail     string
	Assignee   string
	Deadline   string
	Status     string
	Registered string
	Origin     string
}

// Header returns the canonical header row for the tracker sheet.
func Header() []string {
	return []string{
		"Date", "Source", "Priority", "Task", "Detail",
		"Assignee", "Deadline", "Status", "Registered", "Origin",
	}
}

// Values returns the row as a value slice in header order, ready for a
// spreadsheet append call.
func (r Row) Values() []interface{} {
	return []interface{}{
		r.Date,
		r.Source,
		string(r.Priority),
		r.Task,
		r.Detail,
		r.Assignee,
		r.Deadline,
		r.Status,
		r.Registered,
		r.Origin,
	}
}

// Extract produces tracker rows from a summary. The result preserves
// section order (ImmediateActionItems, then CriticalDeadlines, then
// NextSteps) and, within each section, original block order. All rows
// from one call share the same date and registration timestamp, both
// derived from now.
func Extract(s *summary.Summary, fallbackTitle string, now time.Time) []Row {
	title := s.MeetingName
	if title == "" {
		title = fallbackTitle
	}
	if title == "" {
		title = "Unknown"
	}

	date := now.Format(dateLayout)
	registered := now.Format(registeredLayout)

	sections := []struct {
		section  summary.Section
		priority Priority
	}{
		{s.ImmediateActionItems, PriorityHigh},
		{s.CriticalDeadlines, PriorityHigh},
		{s.NextSteps, PriorityMedium},
	}

	var rows []Row
	for _, sec := range sections {
		for _, block := range sec.section.Blocks {
			if !block.Actionable() {
				continue
			}
			rows = append(rows, Row{
				Date:       date,
				Source:     title,
				Priority:   sec.priority,
				Task:       block.Text(),
				Status:     StatusNotStarted,
				Registered: registered,
				Origin:     OriginLabel,
			})
		}
	}

	return rows
}

// TimeSlot returns a coarse time-of-day band for the given time. It is
// not part of the row schema; the exporter logs it for debugging and a
// future schema revision may add it as a column.
func TimeSlot(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 6:
		return "pre-dawn"
	case hour < 12:
		return "morning"
	case hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}
