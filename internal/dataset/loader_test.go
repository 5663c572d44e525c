package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnergyRecordsFixture(t *testing.T) {
	records, skipped, err := loadEnergyRecords(GetFixturePath(t, "energy-data.csv"))
	require.NoError(t, err)

	// The fixture carries one row with no country and one with an
	// unparseable year.
	assert.Equal(t, 2, skipped)
	require.Len(t, records, 10)

	first := records[0]
	assert.Equal(t, "Germany", first.Country)
	assert.Equal(t, 2016, first.Year)
	require.NotNil(t, first.Solar)
	assert.Equal(t, 10.0, *first.Solar)
	require.NotNil(t, first.Wind)
	assert.Equal(t, 40.0, *first.Wind)
	require.NotNil(t, first.Hydro)
	assert.Equal(t, 25.0, *first.Hydro)
	require.NotNil(t, first.TotalRenewables)
	assert.Equal(t, 80.0, *first.TotalRenewables)
	require.NotNil(t, first.GDP)
	assert.Equal(t, 3300.0, *first.GDP)
}

func TestLoadEnergyRecordsEmptyCellsLoadAsAbsent(t *testing.T) {
	records, _, err := loadEnergyRecords(GetFixturePath(t, "energy-data.csv"))
	require.NoError(t, err)

	var france2018, spain2020 *EnergyRecord
	for i := range records {
		switch {
		case records[i].Country == "France" && records[i].Year == 2018:
			france2018 = &records[i]
		case records[i].Country == "Spain" && records[i].Year == 2020:
			spain2020 = &records[i]
		}
	}

	require.NotNil(t, france2018)
	assert.Nil(t, france2018.GDP, "empty gdp cell must load as absent, not zero")
	assert.NotNil(t, france2018.Solar)

	require.NotNil(t, spain2020)
	assert.Nil(t, spain2020.Wind, "empty wind cell must load as absent, not zero")
	assert.NotNil(t, spain2020.Solar)
}

func TestLoadEnergyRecordsNormalizesHeaderCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "energy.csv")
	content := "Country, YEAR ,Solar_Electricity,wind_electricity,hydro_electricity,renewables_electricity,GDP\n" +
		"Testland,2020,1,2,3,6,100\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, skipped, err := loadEnergyRecords(path)
	require.NoError(t, err)

	assert.Equal(t, 0, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "Testland", records[0].Country)
	assert.Equal(t, 2020, records[0].Year)
	require.NotNil(t, records[0].Solar)
	assert.Equal(t, 1.0, *records[0].Solar)
	require.NotNil(t, records[0].GDP)
	assert.Equal(t, 100.0, *records[0].GDP)
}

func TestLoadEnergyRecordsMissingRequiredColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "energy.csv")
	content := "country,solar_electricity\nTestland,1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, _, err := loadEnergyRecords(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year")
}

func TestLoadEnergyRecordsMissingFile(t *testing.T) {
	_, _, err := loadEnergyRecords(filepath.Join(t.TempDir(), "no-such-file.csv"))
	assert.Error(t, err)
}

func TestLoadEnergyRecordsSanitizesCountryNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "energy.csv")
	content := "country,year,solar_electricity\n" +
		" Germany ,2020,1\n" +
		"France<b>,2020,2\n" +
		"   ,2020,3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, skipped, err := loadEnergyRecords(path)
	require.NoError(t, err)

	assert.Equal(t, 1, skipped, "a whitespace-only country is no country at all")
	require.Len(t, records, 2)
	assert.Equal(t, "Germany", records[0].Country)
	assert.Equal(t, "France", records[1].Country)
}

func TestLoadEnergyRecordsRaggedRows(t *testing.T) {
	// Short rows load with the trailing columns absent.
	path := filepath.Join(t.TempDir(), "energy.csv")
	content := "country,year,solar_electricity,gdp\nTestland,2020,5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, skipped, err := loadEnergyRecords(path)
	require.NoError(t, err)

	assert.Equal(t, 0, skipped)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].Solar)
	assert.Equal(t, 5.0, *records[0].Solar)
	assert.Nil(t, records[0].GDP)
}

func TestParseOptionalFloat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *float64
	}{
		{name: "empty", raw: "", want: nil},
		{name: "whitespace", raw: "   ", want: nil},
		{name: "unparseable", raw: "n/a", want: nil},
		{name: "plain", raw: "3.5", want: Float(3.5)},
		{name: "padded", raw: " 42 ", want: Float(42)},
		{name: "negative", raw: "-2", want: Float(-2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseOptionalFloat(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestLoadCountryCoordinatesFixture(t *testing.T) {
	coords, skipped, err := loadCountryCoordinates(GetFixturePath(t, "country_coords.csv"))
	require.NoError(t, err)

	// One fixture row carries an unparseable latitude.
	assert.Equal(t, 1, skipped)
	require.Len(t, coords, 4)

	assert.Equal(t, "Germany", coords[0].Country)
	assert.InDelta(t, 51.1657, coords[0].Latitude, 1e-9)
	assert.InDelta(t, 10.4515, coords[0].Longitude, 1e-9)

	names := make([]string, len(coords))
	for i, c := range coords {
		names[i] = c.Country
	}
	assert.Equal(t, []string{"Germany", "France", "Spain", "Wakanda"}, names)
}

func TestLoadCountryCoordinatesSkipsOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coords.csv")
	content := "country,latitude,longitude\n" +
		"Valid,45.0,90.0\n" +
		"BadLat,91.0,10.0\n" +
		"BadLon,10.0,-181.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	coords, skipped, err := loadCountryCoordinates(path)
	require.NoError(t, err)

	assert.Equal(t, 2, skipped)
	require.Len(t, coords, 1)
	assert.Equal(t, "Valid", coords[0].Country)
}

func TestLoadCountryCoordinatesMissingRequiredColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coords.csv")
	content := "country,latitude\nTestland,1.5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, _, err := loadCountryCoordinates(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "longitude")
}
