package export

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/analysis"
	"github.com/Asselm02/RenewableEnergyDashboard/internal/logging"
)

// Workbook collects the views going into one xlsx download: the
// time-series table, the regression table with its diagnostics, and one
// sheet per delta map.
type Workbook struct {
	Series analysis.TimeSeriesView
	Fit    analysis.RegressionView
	HasFit bool
	Maps   []analysis.DeltaMapView
}

const seriesSheet = "Time Series"

// WriteWorkbook builds the workbook and streams it to w.
func WriteWorkbook(w io.Writer, logger *slog.Logger, book Workbook) (err error) {
	f := excelize.NewFile()
	defer logging.HandleDeferredError(&err, f.Close, logger, "close workbook")

	if err := writeSeriesSheet(f, book.Series); err != nil {
		return fmt.Errorf("time series sheet: %w", err)
	}
	if err := writeRegressionSheet(f, book.Fit, book.HasFit); err != nil {
		return fmt.Errorf("regression sheet: %w", err)
	}
	for _, view := range book.Maps {
		if err := writeMapSheet(f, view); err != nil {
			return fmt.Errorf("%s map sheet: %w", view.Source, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSeriesSheet(f *excelize.File, view analysis.TimeSeriesView) error {
	if err := f.SetSheetName("Sheet1", seriesSheet); err != nil {
		return err
	}

	headers := []string{"Country", "Year", fmt.Sprintf("%s (TWh)", view.Source.Label())}
	if err := writeHeaders(f, seriesSheet, 1, headers); err != nil {
		return err
	}
	for i, row := range view.ByCountry {
		if err := setCells(f, seriesSheet, 1, i+2, row.Country, row.Year, row.Total); err != nil {
			return err
		}
	}

	// The summed line gets its own block beside the per-country rows
	if err := writeHeaders(f, seriesSheet, 5, []string{"Year", "Total (TWh)"}); err != nil {
		return err
	}
	for i, row := range view.Total {
		if err := setCells(f, seriesSheet, 5, i+2, row.Year, row.Total); err != nil {
			return err
		}
	}
	return nil
}

func writeRegressionSheet(f *excelize.File, view analysis.RegressionView, hasFit bool) error {
	const sheet = "Regression"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Country", "Year", "GDP (billion USD)", "Production (TWh)"}
	if err := writeHeaders(f, sheet, 1, headers); err != nil {
		return err
	}
	for i, point := range view.Points {
		if err := setCells(f, sheet, 1, i+2, point.Country, point.Year, point.GDP, point.Production); err != nil {
			return err
		}
	}

	if !hasFit {
		return setCells(f, sheet, 6, 1, "insufficient data for regression")
	}

	diagnostics := []struct {
		name  string
		value interface{}
	}{
		{"Slope", view.Fit.Slope},
		{"Intercept", view.Fit.Intercept},
		{"R^2", view.Fit.RSquared},
		{"Std err (slope)", view.Fit.StdErr},
		{"p-value", view.Fit.PValue},
		{"Observations", view.Fit.N},
	}
	for i, d := range diagnostics {
		if err := setCells(f, sheet, 6, i+1, d.name, d.value); err != nil {
			return err
		}
	}
	return nil
}

// writeMapSheet writes one delta map as a table: every plottable point,
// the raw endpoint values where present, and the clamped change.
func writeMapSheet(f *excelize.File, view analysis.DeltaMapView) error {
	sheet := view.Source.Label()
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	records := make(map[string]analysis.DeltaRecord, len(view.Records))
	for _, record := range view.Records {
		records[record.Country] = record
	}

	headers := []string{"Country", "Latitude", "Longitude",
		fmt.Sprintf("%d (TWh)", view.StartYear),
		fmt.Sprintf("%d (TWh)", view.LatestYear),
		"Change"}
	if err := writeHeaders(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, point := range view.Points {
		row := i + 2
		if err := setCells(f, sheet, 1, row, point.Country, point.Latitude, point.Longitude); err != nil {
			return err
		}
		if point.Delta == nil {
			continue
		}

		record := records[point.Country]
		if record.ValueStart != nil {
			if err := setCells(f, sheet, 4, row, *record.ValueStart); err != nil {
				return err
			}
		}
		if record.ValueLatest != nil {
			if err := setCells(f, sheet, 5, row, *record.ValueLatest); err != nil {
				return err
			}
		}
		if err := setCells(f, sheet, 6, row, *point.Delta); err != nil {
			return err
		}
	}
	return nil
}

// writeHeaders writes a header row starting at the given column and
// widens its columns enough to read.
func writeHeaders(f *excelize.File, sheet string, startCol int, headers []string) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(startCol+i, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}

		name, err := excelize.ColumnNumberToName(startCol + i)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, 18); err != nil {
			return err
		}
	}
	return nil
}

// setCells writes consecutive cells of one row, starting at the given
// column.
func setCells(f *excelize.File, sheet string, startCol, row int, values ...interface{}) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(startCol+i, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
