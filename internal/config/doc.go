// Package config loads exporter configuration from the environment.
//
// A .env file in the working directory is loaded first when present;
// explicit environment variables take precedence over it. All settings
// have working defaults, so a zero-configuration run targets the
// standard ToDo tracker spreadsheet.
package config
