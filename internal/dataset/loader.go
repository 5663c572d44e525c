package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/logging"
	"github.com/Asselm02/RenewableEnergyDashboard/internal/utils"
)

// Canonical energy-table column names. Input files may carry additional
// columns (population, ISO codes, and so on); anything not listed here is
// ignored.
const (
	colCountry         = "country"
	colYear            = "year"
	colSolar           = "solar_electricity"
	colWind            = "wind_electricity"
	colHydro           = "hydro_electricity"
	colTotalRenewables = "renewables_electricity"
	colGDP             = "gdp"

	colCoordCountry   = "country"
	colCoordLatitude  = "latitude"
	colCoordLongitude = "longitude"
)

// headerIndex maps normalized (lowercased, trimmed) column names to their
// positions. The two input files disagree on header casing ("country" vs
// "Country"), so normalization happens here, once, at the boundary.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	return index
}

// cell returns the raw cell for a named column, or "" when the column is
// missing from the header or the row is too short.
func cell(row []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseOptionalFloat turns a CSV cell into a nullable float. Empty and
// unparseable cells load as absent, never as zero.
func parseOptionalFloat(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &v
}

func readCSVFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer logging.SafeCloseWithLogging(f,
		slog.Default().With(slog.String("component", "dataset_loader")),
		"csv_file")

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // input rows may be ragged

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return rows, nil
}

// loadEnergyRecords parses the energy table. Rows with a missing country
// or an unparseable year are skipped and counted; numeric cells that do
// not parse load as absent. Country names are sanitized once here at the
// boundary; the coordinate join downstream matches them case-sensitively.
func loadEnergyRecords(path string) ([]EnergyRecord, int, error) {
	rows, err := readCSVFile(path)
	if err != nil {
		return nil, 0, err
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("energy table %s is empty", path)
	}

	index := headerIndex(rows[0])
	for _, required := range []string{colCountry, colYear} {
		if _, ok := index[required]; !ok {
			return nil, 0, fmt.Errorf("energy table %s is missing required column %q", path, required)
		}
	}

	records := make([]EnergyRecord, 0, len(rows)-1)
	skipped := 0
	for _, row := range rows[1:] {
		country := utils.SanitizeInput(cell(row, index, colCountry))
		if country == "" {
			skipped++
			continue
		}

		year, err := strconv.Atoi(strings.TrimSpace(cell(row, index, colYear)))
		if err != nil {
			skipped++
			continue
		}

		records = append(records, EnergyRecord{
			Country:         country,
			Year:            year,
			Solar:           parseOptionalFloat(cell(row, index, colSolar)),
			Wind:            parseOptionalFloat(cell(row, index, colWind)),
			Hydro:           parseOptionalFloat(cell(row, index, colHydro)),
			TotalRenewables: parseOptionalFloat(cell(row, index, colTotalRenewables)),
			GDP:             parseOptionalFloat(cell(row, index, colGDP)),
		})
	}

	return records, skipped, nil
}

// loadCountryCoordinates parses the coordinates table. Rows without a
// parseable, in-range latitude and longitude cannot be plotted and are
// skipped.
func loadCountryCoordinates(path string) ([]CountryCoordinate, int, error) {
	rows, err := readCSVFile(path)
	if err != nil {
		return nil, 0, err
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("coordinates table %s is empty", path)
	}

	index := headerIndex(rows[0])
	for _, required := range []string{colCoordCountry, colCoordLatitude, colCoordLongitude} {
		if _, ok := index[required]; !ok {
			return nil, 0, fmt.Errorf("coordinates table %s is missing required column %q", path, required)
		}
	}

	coords := make([]CountryCoordinate, 0, len(rows)-1)
	skipped := 0
	for _, row := range rows[1:] {
		country := utils.SanitizeInput(cell(row, index, colCoordCountry))
		if country == "" {
			skipped++
			continue
		}

		lat, latErr := strconv.ParseFloat(strings.TrimSpace(cell(row, index, colCoordLatitude)), 64)
		lon, lonErr := strconv.ParseFloat(strings.TrimSpace(cell(row, index, colCoordLongitude)), 64)
		if latErr != nil || lonErr != nil {
			skipped++
			continue
		}
		if utils.ValidateLatitude(lat) != nil || utils.ValidateLongitude(lon) != nil {
			skipped++
			continue
		}

		coords = append(coords, CountryCoordinate{
			Country:   country,
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return coords, skipped, nil
}
