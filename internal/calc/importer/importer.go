// Package importer reads strikes from the first sheet of an XLSX workbook. Columns follow
// the form order, in display units, and the first row is a header.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"Hammerforce/internal/calc/numeric"
	"Hammerforce/internal/calc/penetration"
	"Hammerforce/internal/units"

	"github.com/xuri/excelize/v2"
)

// Columns is the expected header, one per FormInput field.
var Columns = []string{
	"armLength", "handleToHammerHeadLength", "hammerHeadHeight", "travelTime",
	"hammerWeight", "armWeight", "diameter", "nailLength", "coneLength",
	"coneAngleDeg", "materialHardness", "materialHeight", "nailFrictionCoefficient",
}

var ErrEmptySheet = errors.New("empty sheet")

// Row is one parsed data row. Line is the 1-based spreadsheet row number.
type Row struct {
	Line  int
	Input units.FormInput
	Err   error
}

type RowResult struct {
	Line   int                 `json:"line"`
	Result *penetration.Result `json:"result,omitempty"`
	Field  string              `json:"field,omitempty"`
	Error  string              `json:"error,omitempty"`
}

type Result struct {
	Count  int         `json:"count"`
	Failed int         `json:"failed"`
	Rows   []RowResult `json:"rows"`
}

// ParseRows reads every non-blank data row. Malformed rows come back with Err set.
func ParseRows(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	var out []Row
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		in, err := parseRow(rows[i])
		out = append(out, Row{Line: i + 1, Input: in, Err: err})
	}
	if len(out) == 0 {
		return nil, ErrEmptySheet
	}
	return out, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseRow(row []string) (units.FormInput, error) {
	if len(row) < len(Columns) {
		return units.FormInput{}, fmt.Errorf("expected %d columns, got %d", len(Columns), len(row))
	}
	vals := make([]float64, len(Columns))
	for i, name := range Columns {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return units.FormInput{}, fmt.Errorf("%s: not a number: %q", name, row[i])
		}
		vals[i] = v
	}
	return units.FormInput{
		ArmLength:                vals[0],
		HandleToHammerHeadLength: vals[1],
		HammerHeadHeight:         vals[2],
		TravelTime:               vals[3],
		HammerWeight:             vals[4],
		ArmWeight:                vals[5],
		Diameter:                 vals[6],
		NailLength:               vals[7],
		ConeLength:               vals[8],
		ConeAngleDeg:             vals[9],
		MaterialHardness:         vals[10],
		MaterialHeight:           vals[11],
		NailFrictionCoefficient:  vals[12],
	}, nil
}

// Process parses the workbook and runs each row through the form checks and the
// pipeline. maxRows <= 0 means no limit.
func Process(r io.Reader, maxRows int, opts ...penetration.Option) (Result, error) {
	rows, err := ParseRows(r)
	if err != nil {
		return Result{}, err
	}
	if maxRows > 0 && len(rows) > maxRows {
		return Result{}, fmt.Errorf("too many rows: %d > %d", len(rows), maxRows)
	}

	out := Result{Rows: make([]RowResult, 0, len(rows))}
	for _, row := range rows {
		rr := RowResult{Line: row.Line}
		err := row.Err
		if err == nil {
			var res penetration.Result
			res, err = units.Compute(row.Input, opts...)
			if err == nil {
				rr.Result = &res
			}
		}
		if err != nil {
			rr.Error = err.Error()
			var verr *numeric.ValidationError
			if errors.As(err, &verr) {
				rr.Field = verr.Field
			}
			out.Failed++
		}
		out.Rows = append(out.Rows, rr)
	}
	out.Count = len(out.Rows) - out.Failed
	return out, nil
}
