// Package export turns parsed meeting summaries into tracker rows and
// writes them to a sheet store.
//
// Extraction is a pure function of the summary, a fallback title and
// the current time: the three known sections are walked in fixed order
// (ImmediateActionItems, CriticalDeadlines, NextSteps), headings and
// blank blocks are skipped, and every remaining block becomes one
// ten-column row. The Exporter wires extraction to a Store (the Google
// Sheets client in production, a fake in tests) and performs the
// provision-then-append flow for a single export call.
package export
