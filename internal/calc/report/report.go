// Package report renders penetration results as PDF summaries and XLSX tables.
package report

import (
	"fmt"
	"io"
	"time"

	"Hammerforce/internal/calc/batch"
	"Hammerforce/internal/calc/importer"
	"Hammerforce/internal/calc/penetration"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

type Meta struct {
	Title   string `json:"title"`
	Project string `json:"project"`
	Author  string `json:"author"`
	Notes   string `json:"notes"`
}

func num(v float64) string {
	return humanize.CommafWithDigits(v, 3)
}

type line struct {
	label, value, unit string
}

func inputLines(in penetration.SIInput) []line {
	return []line{
		{"Arm length", num(in.ArmLength), "m"},
		{"Handle to hammer head", num(in.HandleToHammerHeadLength), "m"},
		{"Hammer head height", num(in.HammerHeadHeight), "m"},
		{"Travel time", num(in.TravelTime), "s"},
		{"Hammer weight", num(in.HammerWeight), "kg"},
		{"Arm weight", num(in.ArmWeight), "kg"},
		{"Nail diameter", num(in.Diameter), "m"},
		{"Nail length", num(in.NailLength), "m"},
		{"Cone length", num(in.ConeLength), "m"},
		{"Cone angle", num(in.ConeAngleDeg), "deg"},
		{"Material hardness", num(in.MaterialHardness), "Pa"},
		{"Material height", num(in.MaterialHeight), "m"},
		{"Friction coefficient", num(in.NailFrictionCoefficient), ""},
	}
}

func resultLines(res penetration.Result) []line {
	return []line{
		{"Total arm length", num(res.TotalArmLength), "m"},
		{"Velocity", num(res.Velocity), "m/s"},
		{"Total mass", num(res.TotalMass), "kg"},
		{"Kinetic energy", num(res.KineticEnergy), "J"},
		{"Shaft cross-section", fmt.Sprintf("%.4g", res.ShaftArea), "m2"},
		{"Cone cross-section (avg)", fmt.Sprintf("%.4g", res.ConeAreaAvg), "m2"},
		{"Friction force", num(res.FrictionForce), "N"},
		{"Max penetration depth", num(res.MaxPenetrationDepth), "m"},
		{"Penetration", num(res.PenetrationPercentage), "%"},
	}
}

// PDF writes a one-page summary of a strike and its stage breakdown. It returns the
// document id printed in the footer.
func PDF(w io.Writer, meta Meta, in penetration.SIInput, res penetration.Result) (string, error) {
	if meta.Title == "" {
		meta.Title = "Nail Penetration Report"
	}
	id := uuid.NewString()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, "Document "+id, "", 0, "C", false, 0, "")
	})
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	table := func(title string, lines []line) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, l := range lines {
			pdf.CellFormat(70, 6, l.label, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 6, l.value, "1", 0, "R", false, 0, "")
			pdf.CellFormat(20, 6, l.unit, "1", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}
	table("Input (SI)", inputLines(in))
	table("Result", resultLines(res))

	if meta.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, meta.Notes, "", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return "", fmt.Errorf("render pdf: %w", err)
	}
	return id, nil
}

// Row is one line of a tabular export. Result is nil for a failed item.
type Row struct {
	Label  string
	Result *penetration.Result
	Error  string
}

func FromBatch(res batch.Result) []Row {
	rows := make([]Row, 0, len(res.Items))
	for _, it := range res.Items {
		rows = append(rows, Row{Label: fmt.Sprintf("#%d", it.Index+1), Result: it.Result, Error: it.Error})
	}
	return rows
}

func FromImport(res importer.Result) []Row {
	rows := make([]Row, 0, len(res.Rows))
	for _, rr := range res.Rows {
		rows = append(rows, Row{Label: fmt.Sprintf("row %d", rr.Line), Result: rr.Result, Error: rr.Error})
	}
	return rows
}

var xlsxHeader = []any{
	"Item", "Total arm length [m]", "Velocity [m/s]", "Total mass [kg]", "Kinetic energy [J]",
	"Friction force [N]", "Max penetration depth [m]", "Penetration [%]", "Error",
}

const sheet = "Results"

// XLSX writes one row per item under a header row.
func XLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &xlsxHeader); err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{r.Label}
		if r.Result != nil {
			values = append(values,
				r.Result.TotalArmLength, r.Result.Velocity, r.Result.TotalMass, r.Result.KineticEnergy,
				r.Result.FrictionForce, r.Result.MaxPenetrationDepth, r.Result.PenetrationPercentage, "")
		} else {
			values = append(values, nil, nil, nil, nil, nil, nil, nil, r.Error)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
