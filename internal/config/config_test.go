package config

import (
	"os"
	"testing"
)

// unsetenv clears a variable for the test while restoring the original
// value afterwards. envconfig only applies defaults to unset variables,
// so setting an empty value is not equivalent.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "SHEETSYNC_SPREADSHEET_ID")
	unsetenv(t, "SHEETSYNC_SHEET_NAME")
	unsetenv(t, "SHEETSYNC_GOOGLE_SA_CREDENTIALS")
	unsetenv(t, "GOOGLE_SA_CREDENTIALS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.SpreadsheetID != "1fEQp7jbcpHKcKCUrU0JreX4Xs20P1f0viNOkKpwNNng" {
		t.Errorf("unexpected default spreadsheet ID %q", cfg.SpreadsheetID)
	}
	if cfg.SheetName != "ToDo" {
		t.Errorf("unexpected default sheet name %q", cfg.SheetName)
	}
	if cfg.CredentialsFile != "" {
		t.Errorf("expected empty credentials file by default, got %q", cfg.CredentialsFile)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SHEETSYNC_SPREADSHEET_ID", "custom-spreadsheet")
	t.Setenv("SHEETSYNC_SHEET_NAME", "Tracker")
	t.Setenv("GOOGLE_SA_CREDENTIALS", "/etc/keys/sa.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.SpreadsheetID != "custom-spreadsheet" {
		t.Errorf("spreadsheet ID = %q, want %q", cfg.SpreadsheetID, "custom-spreadsheet")
	}
	if cfg.SheetName != "Tracker" {
		t.Errorf("sheet name = %q, want %q", cfg.SheetName, "Tracker")
	}
	if cfg.CredentialsFile != "/etc/keys/sa.json" {
		t.Errorf("credentials file = %q, want %q", cfg.CredentialsFile, "/etc/keys/sa.json")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{name: "valid", config: Config{SpreadsheetID: "id", SheetName: "ToDo"}, expectError: false},
		{name: "missing spreadsheet", config: Config{SheetName: "ToDo"}, expectError: true},
		{name: "missing sheet name", config: Config{SpreadsheetID: "id"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError && err == nil {
				t.Error("Validate() expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}
