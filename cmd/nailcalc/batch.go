package main

import (
	"fmt"
	"os"

	"Hammerforce/internal/calc/importer"
	"Hammerforce/internal/calc/report"

	"github.com/spf13/cobra"
)

var (
	batchOut     string
	batchMaxRows int
)

var batchCmd = &cobra.Command{
	Use:   "batch <strikes.xlsx>",
	Short: "Run every row of a workbook",
	Long: `Run every data row of the first sheet. Columns are the form fields in form order
and display units; the first row is a header.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		res, err := importer.Process(f, batchMaxRows, pipelineOpts()...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, row := range res.Rows {
			if row.Result != nil {
				fmt.Fprintf(out, "row %d: %s%%\n", row.Line, num(row.Result.PenetrationPercentage))
			} else {
				fmt.Fprintf(out, "row %d: error: %s\n", row.Line, row.Error)
			}
		}
		fmt.Fprintf(out, "%d ok, %d failed\n", res.Count, res.Failed)

		if batchOut == "" {
			return nil
		}
		w, err := os.Create(batchOut)
		if err != nil {
			return err
		}
		if err := report.XLSX(w, report.FromImport(res)); err != nil {
			w.Close()
			return err
		}
		return w.Close()
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchOut, "out", "", "write the results to this XLSX file")
	batchCmd.Flags().IntVar(&batchMaxRows, "max-rows", 0, "refuse workbooks with more data rows (0 = no limit)")
	rootCmd.AddCommand(batchCmd)
}
