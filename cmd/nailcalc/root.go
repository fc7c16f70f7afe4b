package main

import (
	"Hammerforce/internal/calc/penetration"

	"github.com/spf13/cobra"
)

var clampTip bool

var rootCmd = &cobra.Command{
	Use:   "nailcalc",
	Short: "Nail penetration calculator",
	Long: `Estimate how far a hammer strike drives a nail into a material.

Subcommands:
  compute  - Run one strike from a YAML scenario file
  batch    - Run every row of an XLSX workbook
  report   - Render a PDF report for a scenario`,
	SilenceUsage: true,
}

func pipelineOpts() []penetration.Option {
	return []penetration.Option{penetration.WithClampedTip(clampTip)}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&clampTip, "clamp-tip", false, "clamp a negative cone tip radius to zero")
}
