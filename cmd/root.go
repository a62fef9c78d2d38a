package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the sheetsync application
var rootCmd = &cobra.Command{
	Use:   "sheetsync",
	Short: "Exports meeting action items to a Google Sheets tracker",
	Long: `sheetsync reads a meeting summary (JSON) and appends its action items,
critical deadlines and next steps as rows to the ToDo tracker spreadsheet,
creating and formatting the target sheet on first use.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "sheetsync version %s\n" .Version}}`)

	// If no subcommand is provided, run the export command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "export")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newVersionCmd())
}
