package analysis

import (
	"sync"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/dataset"
)

// TimeSeriesView is the derived table behind the time-series chart:
// the per-country production lines plus the dashed total line.
type TimeSeriesView struct {
	Source    Source
	Fallback  bool // the empty-selection "all countries" fallback applied
	Total     []YearTotal
	ByCountry []CountryYearTotal
}

// RegressionView is the derived table behind the regression chart:
// the aggregated scatter points and the fitted model.
type RegressionView struct {
	Fallback bool
	Points   []GDPProductionPoint
	Fit      FitResult
}

// DeltaMapView is the derived table behind one delta map: the raw delta
// records, their joined plottable positions, and the two years compared.
type DeltaMapView struct {
	Source     Source
	StartYear  int
	LatestYear int
	Records    []DeltaRecord
	Points     []MapPoint
}

// Recomputer is the dashboard's recomputation driver. Each view is a
// pure function of named inputs (the immutable base tables plus the
// explicit Selection), and the driver re-evaluates a view only when that
// view's inputs changed, holding the latest result per view otherwise.
// The engines themselves stay pure and cache nothing; memoization lives
// only here.
//
// The memo is one entry per view kind, which matches the interaction
// model: one user, one control change at a time, each change followed by
// a synchronous recomputation of whatever that change invalidated.
// Returned views are shared; callers must treat them as read-only.
type Recomputer struct {
	records []dataset.EnergyRecord
	coords  []dataset.CountryCoordinate

	mu sync.RWMutex

	seriesKey  string
	seriesView TimeSeriesView

	fitKey  string
	fitView RegressionView
	fitErr  error

	mapViews map[Source]DeltaMapView

	// compute counters, read by tests to verify re-evaluation behavior
	seriesComputes int
	fitComputes    int
	mapComputes    int
}

// NewRecomputer builds a driver over the loaded base tables.
func NewRecomputer(records []dataset.EnergyRecord, coords []dataset.CountryCoordinate) *Recomputer {
	return &Recomputer{
		records:  records,
		coords:   coords,
		mapViews: make(map[Source]DeltaMapView),
	}
}

// TimeSeries returns the time-series view for the selection, recomputing
// only when the countries, year range, or source changed.
func (rc *Recomputer) TimeSeries(sel Selection) TimeSeriesView {
	key := sel.filterKey() + "|" + sel.Source.String()

	rc.mu.RLock()
	if rc.seriesKey == key {
		view := rc.seriesView
		rc.mu.RUnlock()
		return view
	}
	rc.mu.RUnlock()

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.seriesKey == key {
		return rc.seriesView
	}

	filtered, fallback := Filter(rc.records, sel.Countries, sel.YearMin, sel.YearMax)
	view := TimeSeriesView{
		Source:    sel.Source,
		Fallback:  fallback,
		Total:     SumByYear(filtered, sel.Source),
		ByCountry: SumByCountryYear(filtered, sel.Source),
	}

	rc.seriesKey = key
	rc.seriesView = view
	rc.seriesComputes++
	return view
}

// Regression returns the regression view for the selection, recomputing
// only when the countries or year range changed. The selected source
// does not participate: the regression always relates GDP to total
// renewables. Degenerate input memoizes and returns
// ErrInsufficientData.
func (rc *Recomputer) Regression(sel Selection) (RegressionView, error) {
	key := sel.filterKey()

	rc.mu.RLock()
	if rc.fitKey == key {
		view, err := rc.fitView, rc.fitErr
		rc.mu.RUnlock()
		return view, err
	}
	rc.mu.RUnlock()

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.fitKey == key {
		return rc.fitView, rc.fitErr
	}

	filtered, fallback := Filter(rc.records, sel.Countries, sel.YearMin, sel.YearMax)
	points := RegressionInput(filtered)

	gdp := make([]float64, len(points))
	production := make([]float64, len(points))
	for i, p := range points {
		gdp[i] = p.GDP
		production[i] = p.Production
	}

	view := RegressionView{Fallback: fallback, Points: points}
	fit, err := FitLinear(gdp, production)
	if err == nil {
		view.Fit = fit
	}

	rc.fitKey = key
	rc.fitView = view
	rc.fitErr = err
	rc.fitComputes++
	return view, err
}

// DeltaMap returns the map view for one source. Its only inputs are the
// base tables and the source tag, so each source computes at most once
// per process.
func (rc *Recomputer) DeltaMap(source Source) DeltaMapView {
	rc.mu.RLock()
	if view, ok := rc.mapViews[source]; ok {
		rc.mu.RUnlock()
		return view
	}
	rc.mu.RUnlock()

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if view, ok := rc.mapViews[source]; ok {
		return view
	}

	startYear, latestYear := DeltaYears(rc.records)
	records := FourYearDelta(rc.records, source)
	view := DeltaMapView{
		Source:     source,
		StartYear:  startYear,
		LatestYear: latestYear,
		Records:    records,
		Points:     JoinCoordinates(rc.coords, records),
	}

	rc.mapViews[source] = view
	rc.mapComputes++
	return view
}
