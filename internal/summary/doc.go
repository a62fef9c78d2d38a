// Package summary defines the meeting summary data model and parsing.
//
// A summary carries three recognized sections (ImmediateActionItems,
// CriticalDeadlines, NextSteps), each holding an ordered list of blocks.
// Blocks are typed content units; headings and blank blocks are not
// actionable and are skipped during export.
//
// Input arrives either as serialized JSON (Parse) or as an
// already-decoded mapping (FromMap). Both return *MalformedInputError
// when the data does not match the expected structure.
package summary
