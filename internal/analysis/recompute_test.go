package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/dataset"
)

func recomputerFixture() *Recomputer {
	records := []dataset.EnergyRecord{
		{Country: "Germany", Year: 2016, Solar: dataset.Float(10), Wind: dataset.Float(40), TotalRenewables: dataset.Float(90), GDP: dataset.Float(3300)},
		{Country: "Germany", Year: 2020, Solar: dataset.Float(18), Wind: dataset.Float(55), TotalRenewables: dataset.Float(130), GDP: dataset.Float(3800)},
		{Country: "France", Year: 2016, Solar: dataset.Float(3), Wind: dataset.Float(8), TotalRenewables: dataset.Float(50), GDP: dataset.Float(2400)},
		{Country: "France", Year: 2020, Solar: dataset.Float(6), Wind: dataset.Float(14), TotalRenewables: dataset.Float(70), GDP: dataset.Float(2600)},
		{Country: "Spain", Year: 2020, Solar: dataset.Float(9), Wind: dataset.Float(20), TotalRenewables: dataset.Float(60), GDP: dataset.Float(1400)},
	}
	coords := []dataset.CountryCoordinate{
		{Country: "Germany", Latitude: 51.17, Longitude: 10.45},
		{Country: "France", Latitude: 46.23, Longitude: 2.21},
		{Country: "Spain", Latitude: 40.46, Longitude: -3.75},
	}
	return NewRecomputer(records, coords)
}

func TestRecomputerTimeSeriesMemoizes(t *testing.T) {
	rc := recomputerFixture()
	sel := Selection{Countries: []string{"Germany"}, YearMin: 2000, YearMax: 2025, Source: SourceSolar}

	first := rc.TimeSeries(sel)
	second := rc.TimeSeries(sel)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, rc.seriesComputes)
}

func TestRecomputerTimeSeriesRecomputesOnChange(t *testing.T) {
	rc := recomputerFixture()
	base := Selection{Countries: []string{"Germany"}, YearMin: 2000, YearMax: 2025, Source: SourceSolar}

	rc.TimeSeries(base)

	changed := base
	changed.Countries = []string{"France"}
	rc.TimeSeries(changed)
	assert.Equal(t, 2, rc.seriesComputes)

	changed = base
	changed.YearMax = 2018
	rc.TimeSeries(changed)
	assert.Equal(t, 3, rc.seriesComputes)

	changed = base
	changed.Source = SourceWind
	rc.TimeSeries(changed)
	assert.Equal(t, 4, rc.seriesComputes)
}

func TestRecomputerKeyIgnoresCountryOrder(t *testing.T) {
	rc := recomputerFixture()

	rc.TimeSeries(Selection{Countries: []string{"Germany", "France"}, YearMin: 2000, YearMax: 2025, Source: SourceSolar})
	rc.TimeSeries(Selection{Countries: []string{"France", "Germany"}, YearMin: 2000, YearMax: 2025, Source: SourceSolar})

	assert.Equal(t, 1, rc.seriesComputes)
}

func TestRecomputerTimeSeriesMatchesEngines(t *testing.T) {
	rc := recomputerFixture()
	sel := Selection{Countries: []string{"Germany", "France"}, YearMin: 2016, YearMax: 2020, Source: SourceWind}

	view := rc.TimeSeries(sel)

	filtered, fallback := Filter(rc.records, sel.Countries, sel.YearMin, sel.YearMax)
	assert.Equal(t, fallback, view.Fallback)
	assert.Equal(t, SumByYear(filtered, sel.Source), view.Total)
	assert.Equal(t, SumByCountryYear(filtered, sel.Source), view.ByCountry)
}

func TestRecomputerRegressionIgnoresSource(t *testing.T) {
	rc := recomputerFixture()
	sel := Selection{Countries: []string{"Germany", "France"}, YearMin: 2000, YearMax: 2025, Source: SourceSolar}

	first, err := rc.Regression(sel)
	require.NoError(t, err)

	sel.Source = SourceHydro
	second, err := rc.Regression(sel)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, rc.fitComputes)
}

func TestRecomputerRegressionMemoizesError(t *testing.T) {
	// One country, one year: a single aggregated point cannot be fit.
	records := []dataset.EnergyRecord{
		{Country: "Spain", Year: 2020, TotalRenewables: dataset.Float(60), GDP: dataset.Float(1400)},
	}
	rc := NewRecomputer(records, nil)
	sel := Selection{YearMin: 2000, YearMax: 2025, Source: SourceSolar}

	_, err := rc.Regression(sel)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = rc.Regression(sel)
	assert.ErrorIs(t, err, ErrInsufficientData)
	assert.Equal(t, 1, rc.fitComputes)
}

func TestRecomputerRegressionFitsSelection(t *testing.T) {
	rc := recomputerFixture()
	sel := Selection{YearMin: 2000, YearMax: 2025, Source: SourceSolar}

	view, err := rc.Regression(sel)
	require.NoError(t, err)

	assert.True(t, view.Fallback)
	assert.Len(t, view.Points, 5)
	assert.Equal(t, 5, view.Fit.N)
	assert.Positive(t, view.Fit.Slope, "richer selections produce more renewables in this fixture")
}

func TestRecomputerDeltaMapComputesOncePerSource(t *testing.T) {
	rc := recomputerFixture()

	first := rc.DeltaMap(SourceSolar)
	second := rc.DeltaMap(SourceSolar)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, rc.mapComputes)

	wind := rc.DeltaMap(SourceWind)
	assert.Equal(t, 2, rc.mapComputes)
	assert.Equal(t, SourceWind, wind.Source)
}

func TestRecomputerDeltaMapJoinsAllCoordinates(t *testing.T) {
	rc := recomputerFixture()

	view := rc.DeltaMap(SourceSolar)

	assert.Equal(t, 2016, view.StartYear)
	assert.Equal(t, 2020, view.LatestYear)

	// Every coordinate row is plottable; Spain has no 2016 row so its
	// delta collapses to 0 but the point is present.
	require.Len(t, view.Points, 3)
	for _, p := range view.Points {
		require.NotNil(t, p.Delta, "all fixture countries appear at the latest year")
		assert.GreaterOrEqual(t, *p.Delta, 0.0)
		assert.LessOrEqual(t, *p.Delta, 100.0)
	}
}
