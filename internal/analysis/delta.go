package analysis

import (
	"sort"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/dataset"
)

// deltaWindow is the number of years between the two compared snapshots.
// The start year is the literal latestYear-4: if the dataset has a gap
// there, the start value is simply absent. There is no nearest-year
// fallback.
const deltaWindow = 4

// DeltaRecord is the per-country result of the four-year comparison.
// ValueStart and ValueLatest keep the raw endpoint values (absent when
// the country has no usable row at that year); Delta is always present
// and always within [0, 100].
type DeltaRecord struct {
	Country     string
	ValueStart  *float64
	ValueLatest *float64
	Delta       float64
}

// DeltaYears returns the two years FourYearDelta compares over the given
// records: the latest year present and the year four before it.
func DeltaYears(records []dataset.EnergyRecord) (startYear, latestYear int) {
	if len(records) == 0 {
		return 0, 0
	}
	latestYear = records[0].Year
	for _, rec := range records[1:] {
		if rec.Year > latestYear {
			latestYear = rec.Year
		}
	}
	return latestYear - deltaWindow, latestYear
}

// FourYearDelta computes each country's clamped percentage change in
// production of the given source between latestYear-4 and latestYear.
// It always operates on the full dataset: the map views deliberately
// ignore the dashboard's country and year filters.
//
// The result covers the full outer join of the two years' country sets:
// one record per country with a row at either endpoint, sorted by
// country. Records are built fresh on every call.
//
// Clamping rules: the raw change (valueLatest-valueStart)/valueStart*100
// is only defined when both endpoints are present and the start value is
// positive; any other combination is invalid and collapses to exactly 0.
// Valid changes clamp into [0, 100] because the map color scale is fixed
// to that domain, which also means "no data" and "decline" render alike.
func FourYearDelta(records []dataset.EnergyRecord, source Source) []DeltaRecord {
	if len(records) == 0 {
		return nil
	}

	startYear, latestYear := DeltaYears(records)

	valueStart, presentStart := valuesAtYear(records, source, startYear)
	valueLatest, presentLatest := valuesAtYear(records, source, latestYear)

	countrySet := make(map[string]bool, len(presentStart)+len(presentLatest))
	for country := range presentStart {
		countrySet[country] = true
	}
	for country := range presentLatest {
		countrySet[country] = true
	}

	countries := make([]string, 0, len(countrySet))
	for country := range countrySet {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	deltas := make([]DeltaRecord, 0, len(countries))
	for _, country := range countries {
		start := valueStart[country]
		latest := valueLatest[country]
		deltas = append(deltas, DeltaRecord{
			Country:     country,
			ValueStart:  start,
			ValueLatest: latest,
			Delta:       clampDelta(start, latest),
		})
	}

	return deltas
}

// valuesAtYear collects each country's production value at one year.
// A country is present as soon as it has any row at the year, even one
// with an absent value; duplicate rows sum. The returned value map holds
// nil for present-but-absent countries.
func valuesAtYear(records []dataset.EnergyRecord, source Source, year int) (map[string]*float64, map[string]bool) {
	values := make(map[string]*float64)
	present := make(map[string]bool)

	for _, rec := range records {
		if rec.Year != year {
			continue
		}
		present[rec.Country] = true

		v := source.ValueIn(rec)
		if v == nil {
			if _, exists := values[rec.Country]; !exists {
				values[rec.Country] = nil
			}
			continue
		}
		if existing := values[rec.Country]; existing != nil {
			sum := *existing + *v
			values[rec.Country] = &sum
		} else {
			value := *v
			values[rec.Country] = &value
		}
	}

	return values, present
}

// clampDelta applies the invalid-input collapse and the [0, 100] clamp.
func clampDelta(start, latest *float64) float64 {
	if start == nil || *start <= 0 || latest == nil {
		return 0
	}
	raw := (*latest - *start) / *start * 100
	if raw < 0 {
		return 0
	}
	if raw > 100 {
		return 100
	}
	return raw
}
