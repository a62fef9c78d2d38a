package summary

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Section names recognized by the exporter, in export order.
const (
	SectionImmediateActionItems = "ImmediateActionItems"
	SectionCriticalDeadlines    = "CriticalDeadlines"
	SectionNextSteps            = "NextSteps"
)

// Summary is the parsed meeting summary. Only the three known sections
// and the meeting title are consumed; anything else in the input is
// ignored.
type Summary struct {
	MeetingName          string  `json:"MeetingName"`
	ImmediateActionItems Section `json:"ImmediateActionItems"`
	CriticalDeadlines    Section `json:"CriticalDeadlines"`
	NextSteps            Section `json:"NextSteps"`
}

// Section holds an ordered sequence of blocks.
type Section struct {
	Blocks []Block `json:"blocks"`
}

// Block is a unit of summary content with a type tag and text content.
type Block struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Actionable reports whether the block should be exported: heading
// blocks and blocks with blank content are skipped.
func (b Block) Actionable() bool {
	if b.Type == "heading1" || b.Type == "heading2" {
		return false
	}
	return strings.TrimSpace(b.Content) != ""
}

// Text returns the block content with surrounding whitespace trimmed.
func (b Block) Text() string {
	return strings.TrimSpace(b.Content)
}

// MalformedInputError indicates the summary input could not be
// deserialized into the expected structure.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed summary input: %v", e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// Parse deserializes a JSON-encoded meeting summary.
func Parse(data []byte) (*Summary, error) {
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &MalformedInputError{Err: err}
	}
	return &s, nil
}

// FromMap converts an already-decoded mapping (for example the result
// of unmarshaling a larger API payload) into a Summary. It round-trips
// through JSON so the same field mapping rules apply as for Parse.
func FromMap(m map[string]any) (*Summary, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, &MalformedInputError{Err: err}
	}
	return Parse(data)
}
