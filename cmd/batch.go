package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosteel/internal/batch"
	"github.com/alexiusacademia/gosteel/internal/report"
)

var (
	batchFile    string
	batchWorkers int
	batchXLSX    string
	batchPDF     string
	batchTitle   string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Check many members from a JSON or Excel file",
	Long: `Check every member of a JSON or Excel (.xlsx) member table.

Members are checked concurrently. A member that cannot be loaded or
checked is reported as failed; the other members are still checked.

JSON files hold {"design": "ASD", "members": [...]}; each member names
its section definition, grade or material, lengths and either required
strengths ("loads") or unfactored load effects ("effects"). With load
effects every ASCE 7 combination of the design method is checked and the
governing one is reported.

Excel files are read from the first sheet. The first row holds the
column headers:
  ` + strings.Join(batch.Columns, ", ") + `
Dimensions and lengths are in mm, forces in kN and moments in kN-m.

Examples:
  gosteel batch --file frame.json
  gosteel batch -f members.xlsx --workers 8 --xlsx results.xlsx --pdf results.pdf`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Path to member JSON or XLSX file [required]")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Concurrent checks, 0 for one per CPU [$"+envWorkers+"]")
	batchCmd.Flags().StringVar(&batchXLSX, "xlsx", "", "Write results to an Excel file")
	batchCmd.Flags().StringVar(&batchPDF, "pdf", "", "Write a PDF report")
	batchCmd.Flags().StringVar(&batchTitle, "title", "Steel Member Check", "PDF report title")
	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := designConfig()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("workers") {
		batchWorkers = envInt(envWorkers, batchWorkers)
	}

	var members []batch.Member
	switch strings.ToLower(filepath.Ext(batchFile)) {
	case ".xlsx", ".xlsm":
		members, err = batch.LoadXLSX(batchFile)
	default:
		var f batch.File
		f, members, err = batch.LoadJSON(batchFile)
		if err == nil && f.Design != nil && !cmd.Flags().Changed("method") {
			cfg.Design = *f.Design
		}
	}
	if err != nil {
		return fmt.Errorf("loading members: %w", err)
	}
	slog.Info("members loaded", "file", batchFile, "members", len(members), "design", cfg.Design)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := batch.Run(ctx, members, cfg, batchWorkers)
	if err != nil {
		return err
	}
	for _, o := range rep.Outcomes {
		if o.Err != nil {
			slog.Warn("member failed", "member", o.Name, "error", o.Err)
		}
	}
	slog.Info("batch finished", "run", rep.RunID, "members", len(rep.Outcomes),
		"failed", rep.Failed(), "inadequate", rep.Inadequate(), "elapsed", rep.Duration)

	report.WriteBatch(os.Stdout, rep)

	if batchXLSX != "" {
		if err := batch.WriteXLSX(rep, batchXLSX); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
		fmt.Printf("  ✓ Results written to %s\n", batchXLSX)
	}
	if batchPDF != "" {
		if err := report.WritePDF(rep, batchTitle, batchPDF); err != nil {
			return fmt.Errorf("writing PDF: %w", err)
		}
		fmt.Printf("  ✓ Report written to %s\n", batchPDF)
	}
	fmt.Println()
	return nil
}
