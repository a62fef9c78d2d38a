// Package sheets provides a client for the tracker spreadsheet.
//
// This package wraps the Google Sheets API (sheets/v4) and provides
// functionality for:
//   - Find-or-create provisioning of a named sheet with a header row
//     (bold, frozen) on first use
//   - Batch-appending value rows with USER_ENTERED interpretation
//
// Sheet lookup is an explicit presence check over the spreadsheet
// metadata, so "not found" is an ordinary branch rather than an error.
// Provisioning is safe to call repeatedly; two concurrent exporters
// racing through first-use provisioning can still create duplicate
// sheets, since the remote store offers no compare-and-create
// primitive. Callers needing strict safety must serialize first use.
//
// Remote failures are surfaced as *RemoteError and are never retried
// internally.
package sheets
