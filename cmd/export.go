package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/meetily/sheetsync/internal/config"
	"github.com/meetily/sheetsync/internal/export"
	"github.com/meetily/sheetsync/internal/google"
	"github.com/meetily/sheetsync/internal/instrumentation"
	"github.com/meetily/sheetsync/internal/logging"
	"github.com/meetily/sheetsync/internal/sheets"
)

func newExportCmd() *cobra.Command {
	var (
		meetingName     string
		sheetName       string
		spreadsheetID   string
		credentialsFile string
		debug           bool
	)

	cmd := &cobra.Command{
		Use:   "export [summary-file]",
		Short: "Export action items from a meeting summary to the tracker sheet",
		Long: `Read a meeting summary as JSON from a file or stdin and append its
ImmediateActionItems, CriticalDeadlines and NextSteps as rows to the
tracker sheet. Headings and blank blocks are skipped. The target sheet
is created with a formatted header row on first use.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(debug)

			ctx := context.Background()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			// Flags override environment configuration.
			if spreadsheetID != "" {
				cfg.SpreadsheetID = spreadsheetID
			}
			if sheetName != "" {
				cfg.SheetName = sheetName
			}
			if credentialsFile != "" {
				cfg.CredentialsFile = credentialsFile
			}

			data, err := readSummaryInput(args, cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read summary input: %w", err)
			}

			instrCfg := instrumentation.DefaultConfig()
			instrCfg.ServiceVersion = version
			if err := instrCfg.Validate(); err != nil {
				return fmt.Errorf("invalid instrumentation config: %w", err)
			}

			provider, err := instrumentation.NewProvider(ctx, instrCfg)
			if err != nil {
				return fmt.Errorf("failed to initialize instrumentation: %w", err)
			}
			defer func() {
				if err := provider.Shutdown(context.Background()); err != nil {
					slog.Warn("failed to shut down instrumentation", logging.Err(err))
				}
			}()

			credsPath := google.ResolveCredentialsFile(cfg.CredentialsFile)
			client, err := sheets.NewClient(ctx, cfg.SpreadsheetID, credsPath, export.Header(), provider.Metrics())
			if err != nil {
				return fmt.Errorf("failed to create Sheets client: %w", err)
			}

			exporter := export.New(client, cfg.SheetName, logging.DefaultLogger(), provider.Metrics())

			n, err := exporter.ExportJSON(ctx, data, meetingName)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", n, cfg.SheetName)
			return nil
		},
	}

	cmd.Flags().StringVar(&meetingName, "meeting-name", "", "Fallback meeting name when the summary carries none")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Target sheet name (default: from environment or 'ToDo')")
	cmd.Flags().StringVar(&spreadsheetID, "spreadsheet", "", "Target spreadsheet ID (default: from environment)")
	cmd.Flags().StringVar(&credentialsFile, "credentials", "", "Service account key file (default: GOOGLE_SA_CREDENTIALS or credentials/service_account.json)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}

// readSummaryInput reads the summary JSON from the file argument, or
// from stdin when no argument (or "-") is given.
func readSummaryInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(stdin)
}

// setupLogging installs the default text logger on stderr.
func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
