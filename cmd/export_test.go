package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadSummaryInput_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "summary.json")
	content := `{"MeetingName": "Weekly Sync"}`
	if err := os.WriteFile(file, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	data, err := readSummaryInput([]string{file}, strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("readSummaryInput() unexpected error: %v", err)
	}
	if string(data) != content {
		t.Errorf("readSummaryInput() = %q, want %q", data, content)
	}
}

func TestReadSummaryInput_Stdin(t *testing.T) {
	content := `{"MeetingName": "From Stdin"}`

	data, err := readSummaryInput(nil, strings.NewReader(content))
	if err != nil {
		t.Fatalf("readSummaryInput() unexpected error: %v", err)
	}
	if string(data) != content {
		t.Errorf("readSummaryInput() = %q, want %q", data, content)
	}
}

func TestReadSummaryInput_DashMeansStdin(t *testing.T) {
	content := `{"MeetingName": "Dash"}`

	data, err := readSummaryInput([]string{"-"}, strings.NewReader(content))
	if err != nil {
		t.Fatalf("readSummaryInput() unexpected error: %v", err)
	}
	if string(data) != content {
		t.Errorf("readSummaryInput() = %q, want %q", data, content)
	}
}

func TestReadSummaryInput_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")

	_, err := readSummaryInput([]string{missing}, strings.NewReader(""))
	if err == nil {
		t.Fatal("readSummaryInput() expected error for missing file")
	}
}

func TestNewExportCmd_Flags(t *testing.T) {
	cmd := newExportCmd()

	for _, flag := range []string{"meeting-name", "sheet", "spreadsheet", "credentials", "debug"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected flag --%s to be registered", flag)
		}
	}
}
