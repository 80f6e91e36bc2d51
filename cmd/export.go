package cmd

import (
	"fmt"

	"github.com/theirongolddev/partyplan/internal/export"

	"github.com/spf13/cobra"
)

var (
	flagExportOut    string
	flagExportCopy   bool
	flagExportStdout bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the plan as Markdown",
	Long:  "Write the plan as Markdown to a file (default from config), the clipboard, or stdout.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default from config)")
	exportCmd.Flags().BoolVar(&flagExportCopy, "copy", false, "Copy to the system clipboard")
	exportCmd.Flags().BoolVar(&flagExportStdout, "stdout", false, "Print to stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	md := export.Markdown(s.plan, export.Event{
		BudgetCap:    s.cfg.Event.BudgetCap,
		StudentCount: s.cfg.Event.StudentCount,
	})

	toFile := cmd.Flags().Changed("out") || (!flagExportCopy && !flagExportStdout)

	if flagExportStdout {
		fmt.Println(md)
	}
	if flagExportCopy {
		if err := export.CopyToClipboard(md); err != nil {
			return err
		}
		progressf("  Copied to clipboard\n")
	}
	if toFile {
		path := flagExportOut
		if path == "" {
			path = s.cfg.Export.File
		}
		if err := export.WriteFile(path, md); err != nil {
			return err
		}
		progressf("  Wrote %s\n", path)
	}
	return nil
}
