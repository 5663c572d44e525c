package analysis

import (
	"sort"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/dataset"
)

// YearTotal is one point of a per-year production sum.
type YearTotal struct {
	Year  int
	Total float64
}

// CountryYearTotal is one point of a per-country, per-year production sum.
type CountryYearTotal struct {
	Country string
	Year    int
	Total   float64
}

// GDPProductionPoint is one aggregated (country, year) observation for
// the regression view: summed GDP against summed total-renewables
// production.
type GDPProductionPoint struct {
	Country    string
	Year       int
	GDP        float64
	Production float64
}

// SumByYear groups the rows by year and sums the source column per
// group. Absent values contribute 0, so a year whose rows all have
// absent values still yields a true 0; the charts cannot tell "zero
// production" from "no data". Years with no rows at all form no group.
// Results are sorted by year.
func SumByYear(records []dataset.EnergyRecord, source Source) []YearTotal {
	sums := make(map[int]float64)
	for _, rec := range records {
		total := sums[rec.Year] // zero-fills the group on first sight
		if v := source.ValueIn(rec); v != nil {
			total += *v
		}
		sums[rec.Year] = total
	}

	totals := make([]YearTotal, 0, len(sums))
	for year, total := range sums {
		totals = append(totals, YearTotal{Year: year, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Year < totals[j].Year })
	return totals
}

// SumByCountryYear is SumByYear with country as an additional group key,
// feeding the per-country chart lines. Same absent-as-zero rule.
// Results are sorted by country, then year.
func SumByCountryYear(records []dataset.EnergyRecord, source Source) []CountryYearTotal {
	type key struct {
		country string
		year    int
	}
	sums := make(map[key]float64)
	for _, rec := range records {
		k := key{rec.Country, rec.Year}
		total := sums[k]
		if v := source.ValueIn(rec); v != nil {
			total += *v
		}
		sums[k] = total
	}

	totals := make([]CountryYearTotal, 0, len(sums))
	for k, total := range sums {
		totals = append(totals, CountryYearTotal{Country: k.country, Year: k.year, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Country != totals[j].Country {
			return totals[i].Country < totals[j].Country
		}
		return totals[i].Year < totals[j].Year
	})
	return totals
}

// RegressionInput builds the aggregated observations for the GDP
// regression. Unlike the production sums above, rows with an absent GDP
// are dropped before grouping: their (country, year) contributes
// nothing at all, rather than being zero-filled. Production still sums
// absent-as-zero within the surviving rows. Results are sorted by
// country, then year.
func RegressionInput(records []dataset.EnergyRecord) []GDPProductionPoint {
	type key struct {
		country string
		year    int
	}
	type sums struct {
		gdp        float64
		production float64
	}

	grouped := make(map[key]*sums)
	for _, rec := range records {
		if rec.GDP == nil {
			continue
		}
		k := key{rec.Country, rec.Year}
		group := grouped[k]
		if group == nil {
			group = &sums{}
			grouped[k] = group
		}
		group.gdp += *rec.GDP
		if rec.TotalRenewables != nil {
			group.production += *rec.TotalRenewables
		}
	}

	points := make([]GDPProductionPoint, 0, len(grouped))
	for k, group := range grouped {
		points = append(points, GDPProductionPoint{
			Country:    k.country,
			Year:       k.year,
			GDP:        group.gdp,
			Production: group.production,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Country != points[j].Country {
			return points[i].Country < points[j].Country
		}
		return points[i].Year < points[j].Year
	})
	return points
}
