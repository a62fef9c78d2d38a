// Package google handles authentication against the Google Sheets API.
//
// The exporter authenticates with a service-account JSON key, located
// via an explicit path, the GOOGLE_SA_CREDENTIALS environment variable,
// or a fixed default path, in that order. A missing key file is a
// startup-time failure surfaced as *CredentialsNotFoundError with the
// attempted path. The requested scope is limited to spreadsheet
// read/write.
package google
