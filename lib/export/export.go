// Package export writes a dataset as text, CSV or an XLSX workbook.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"coolchart/lib/chart"
	"coolchart/lib/timeseries"

	"github.com/xuri/excelize/v2"
)

var ErrUnknownFormat = errors.New("unknown dataset format")

// Formats lists the accepted dataset formats.
var Formats = []string{"text", "csv", "xlsx"}

// PeriodLayout is how periods are written in text and CSV output.
const PeriodLayout = "2006-01"

// Write dispatches on format.
func Write(d *timeseries.Dataset, format string, w io.Writer) error {
	switch strings.ToLower(format) {
	case "text", "txt":
		return WriteText(d, w)
	case "csv":
		return WriteCSV(d, w)
	case "xlsx":
		return WriteXLSX(d, w)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// WriteText prints every series as an aligned table.
func WriteText(d *timeseries.Dataset, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, s := range d.Series() {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s (%d points)\n", s.Name(), s.Len())
		for _, p := range s.Points() {
			fmt.Fprintf(tw, "  %s\t%s\n", p.Period.Start().Format("Jan-2006"), chart.FormatValue(p.Value))
		}
	}
	return tw.Flush()
}

// WriteCSV writes one row per period with a column per series. Periods a
// series has no value for are left empty.
func WriteCSV(d *timeseries.Dataset, w io.Writer) error {
	cw := csv.NewWriter(w)
	series := d.Series()

	header := make([]string, 0, len(series)+1)
	header = append(header, "period")
	for _, s := range series {
		header = append(header, s.Name())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range d.Periods() {
		row := make([]string, 0, len(series)+1)
		row = append(row, p.Start().Format(PeriodLayout))
		for _, s := range series {
			if v, ok := s.Value(p); ok {
				row = append(row, chart.FormatValue(v))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes a workbook with one sheet per series, each holding a
// Month and a Value column.
func WriteXLSX(d *timeseries.Dataset, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	series := d.Series()
	if len(series) == 0 {
		return timeseries.ErrEmptyDataset
	}

	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr("mmm-yyyy")})
	if err != nil {
		return fmt.Errorf("create date style: %w", err)
	}

	for i, s := range series {
		sheet := sheetName(s.Name(), i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("add sheet %s: %w", sheet, err)
		}

		if err := f.SetSheetRow(sheet, "A1", &[]interface{}{"Month", "Value"}); err != nil {
			return err
		}
		for j, p := range s.Points() {
			row := j + 2
			if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &[]interface{}{p.Period.Start(), p.Value}); err != nil {
				return fmt.Errorf("write %s row %d: %w", sheet, row, err)
			}
		}
		if s.Len() > 0 {
			if err := f.SetCellStyle(sheet, "A2", fmt.Sprintf("A%d", s.Len()+1), dateStyle); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// sheetName makes a series name acceptable as a worksheet name.
func sheetName(name string, i int) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		name = fmt.Sprintf("Series%d", i+1)
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}

func strPtr(s string) *string {
	return &s
}
