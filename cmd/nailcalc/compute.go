package main

import (
	"encoding/json"
	"fmt"
	"io"

	"Hammerforce/internal/calc/penetration"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var computeJSON bool

var computeCmd = &cobra.Command{
	Use:   "compute <scenario.yaml>",
	Short: "Run one strike from a scenario file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadScenario(args[0])
		if err != nil {
			return err
		}
		_, res, err := s.run(pipelineOpts()...)
		if err != nil {
			return err
		}
		if computeJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		printResult(cmd.OutOrStdout(), res)
		return nil
	},
}

func num(v float64) string {
	return humanize.CommafWithDigits(v, 3)
}

func printResult(w io.Writer, res penetration.Result) {
	rows := []struct {
		label string
		value float64
		unit  string
	}{
		{"Total arm length", res.TotalArmLength, "m"},
		{"Velocity", res.Velocity, "m/s"},
		{"Total mass", res.TotalMass, "kg"},
		{"Kinetic energy", res.KineticEnergy, "J"},
		{"Friction force", res.FrictionForce, "N"},
		{"Max penetration depth", res.MaxPenetrationDepth, "m"},
		{"Penetration", res.PenetrationPercentage, "%"},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-22s %14s %s\n", r.label, num(r.value), r.unit)
	}
}

func init() {
	computeCmd.Flags().BoolVar(&computeJSON, "json", false, "print the breakdown as JSON")
	rootCmd.AddCommand(computeCmd)
}
