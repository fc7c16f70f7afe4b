package main

import (
	"fmt"
	"os"

	"Hammerforce/internal/calc/report"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report <scenario.yaml>",
	Short: "Render a PDF report for a scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadScenario(args[0])
		if err != nil {
			return err
		}
		in, res, err := s.run(pipelineOpts()...)
		if err != nil {
			return err
		}

		f, err := os.Create(reportOut)
		if err != nil {
			return err
		}
		id, err := report.PDF(f, s.meta(), in, res)
		if err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		info, err := os.Stat(reportOut)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, document %s)\n", reportOut, humanize.Bytes(uint64(info.Size())), id)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportOut, "out", "report.pdf", "PDF file to write")
	rootCmd.AddCommand(reportCmd)
}
