package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meetily/sheetsync/internal/summary"
)

var testNow = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func TestExtract_SectionOrderAndPriority(t *testing.T) {
	s := &summary.Summary{
		MeetingName: "Weekly Sync",
		ImmediateActionItems: summary.Section{Blocks: []summary.Block{
			{Type: "paragraph", Content: "A1"},
			{Type: "paragraph", Content: "A2"},
		}},
		CriticalDeadlines: summary.Section{Blocks: []summary.Block{
			{Type: "paragraph", Content: "D1"},
		}},
		NextSteps: summary.Section{Blocks: []summary.Block{
			{Type: "paragraph", Content: "N1"},
			{Type: "paragraph", Content: "N2"},
			{Type: "paragraph", Content: "N3"},
		}},
	}

	rows := Extract(s, "", testNow)
	require.Len(t, rows, 6)

	// All ImmediateActionItems rows first, then CriticalDeadlines,
	// then NextSteps, each preserving block order.
	assert.Equal(t, "A1", rows[0].Task)
	assert.Equal(t, "A2", rows[1].Task)
	assert.Equal(t, "D1", rows[2].Task)
	assert.Equal(t, "N1", rows[3].Task)
	assert.Equal(t, "N2", rows[4].Task)
	assert.Equal(t, "N3", rows[5].Task)

	for i := 0; i < 3; i++ {
		assert.Equal(t, PriorityHigh, rows[i].Priority, "row %d", i)
	}
	for i := 3; i < 6; i++ {
		assert.Equal(t, PriorityMedium, rows[i].Priority, "row %d", i)
	}
}

func TestExtract_SkipsHeadingsAndBlankContent(t *testing.T) {
	s := &summary.Summary{
		ImmediateActionItems: summary.Section{Blocks: []summary.Block{
			{Type: "heading1", Content: "Action Items"},
			{Type: "paragraph", Content: "   "},
			{Type: "paragraph", Content: ""},
			{Type: "heading2", Content: "Sub"},
			{Type: "paragraph", Content: "Only real item"},
		}},
	}

	rows := Extract(s, "Standup", testNow)
	require.Len(t, rows, 1)
	assert.Equal(t, "Only real item", rows[0].Task)
}

func TestExtract_TitleResolution(t *testing.T) {
	tests := []struct {
		name     string
		summary  string
		fallback string
		want     string
	}{
		{name: "summary title wins", summary: "From Summary", fallback: "From Caller", want: "From Summary"},
		{name: "fallback when summary empty", summary: "", fallback: "From Caller", want: "From Caller"},
		{name: "unknown when both empty", summary: "", fallback: "", want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &summary.Summary{
				MeetingName: tt.summary,
				NextSteps: summary.Section{Blocks: []summary.Block{
					{Type: "paragraph", Content: "Item"},
				}},
			}
			rows := Extract(s, tt.fallback, testNow)
			require.Len(t, rows, 1)
			assert.Equal(t, tt.want, rows[0].Source)
		})
	}
}

func TestExtract_EmptySummary(t *testing.T) {
	rows := Extract(&summary.Summary{MeetingName: "Empty"}, "", testNow)
	assert.Empty(t, rows)
}

func TestExtract_SharedTimestamps(t *testing.T) {
	s := &summary.Summary{
		ImmediateActionItems: summary.Section{Blocks: []summary.Block{
			{Type: "paragraph", Content: "One"},
		}},
		NextSteps: summary.Section{Blocks: []summary.Block{
			{Type: "paragraph", Content: "Two"},
		}},
	}

	rows := Extract(s, "Sync", testNow)
	require.Len(t, rows, 2)

	assert.Equal(t, "2026-03-14", rows[0].Date)
	assert.Equal(t, "2026-03-14 10:30:00", rows[0].Registered)
	// All rows from one call share the same date and timestamp.
	assert.Equal(t, rows[0].Date, rows[1].Date)
	assert.Equal(t, rows[0].Registered, rows[1].Registered)
}

func TestExtract_FixedFields(t *testing.T) {
	s := &summary.Summary{
		CriticalDeadlines: summary.Section{Blocks: []summary.Block{
			{Type: "paragraph", Content: "  File taxes  "},
		}},
	}

	rows := Extract(s, "Finance", testNow)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "File taxes", row.Task, "task content is trimmed")
	assert.Equal(t, "", row.Detail)
	assert.Equal(t, "", row.Assignee)
	assert.Equal(t, "", row.Deadline)
	assert.Equal(t, StatusNotStarted, row.Status)
	assert.Equal(t, OriginLabel, row.Origin)
}

func TestRow_ValuesMatchesHeader(t *testing.T) {
	header := Header()
	require.Len(t, header, 10)

	values := Row{
		Date:       "2026-03-14",
		Source:     "Sync",
		Priority:   PriorityHigh,
		Task:       "Do it",
		Status:     StatusNotStarted,
		Registered: "2026-03-14 10:30:00",
		Origin:     OriginLabel,
	}.Values()

	require.Len(t, values, len(header))
	assert.Equal(t, "2026-03-14", values[0])
	assert.Equal(t, "Sync", values[1])
	assert.Equal(t, "high", values[2])
	assert.Equal(t, "Do it", values[3])
	assert.Equal(t, "", values[4])
	assert.Equal(t, "", values[5])
	assert.Equal(t, "", values[6])
	assert.Equal(t, StatusNotStarted, values[7])
	assert.Equal(t, "2026-03-14 10:30:00", values[8])
	assert.Equal(t, OriginLabel, values[9])
}

func TestHeader_Columns(t *testing.T) {
	want := []string{
		"Date", "Source", "Priority", "Task", "Detail",
		"Assignee", "Deadline", "Status", "Registered", "Origin",
	}
	assert.Equal(t, want, Header())
}

func TestTimeSlot(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{hour: 0, want: "pre-dawn"},
		{hour: 5, want: "pre-dawn"},
		{hour: 6, want: "morning"},
		{hour: 11, want: "morning"},
		{hour: 12, want: "afternoon"},
		{hour: 17, want: "afternoon"},
		{hour: 18, want: "evening"},
		{hour: 23, want: "evening"},
	}

	for _, tt := range tests {
		now := time.Date(2026, 3, 14, tt.hour, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.want, TimeSlot(now), "hour %d", tt.hour)
	}
}
