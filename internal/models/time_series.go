package models

import "github.com/Asselm02/RenewableEnergyDashboard/internal/analysis"

// YearValue is one point on a production line.
type YearValue struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// CountrySeries is one country's production line.
type CountrySeries struct {
	Country string      `json:"country"`
	Points  []YearValue `json:"points"`
}

// TimeSeriesModel is the payload behind the time-series tab: one line per
// selected country plus the dashed total line across the selection.
type TimeSeriesModel struct {
	Source      string          `json:"source"`
	SourceLabel string          `json:"sourceLabel"`
	Fallback    bool            `json:"fallback"`
	Total       []YearValue     `json:"total"`
	Series      []CountrySeries `json:"series"`
}

// NewTimeSeriesModel reshapes the flat per-country-per-year totals into
// chartable series. The view's rows arrive sorted by country then year,
// so each country's points come out in year order.
func NewTimeSeriesModel(view analysis.TimeSeriesView) TimeSeriesModel {
	total := make([]YearValue, 0, len(view.Total))
	for _, row := range view.Total {
		total = append(total, YearValue{Year: row.Year, Value: row.Total})
	}

	series := make([]CountrySeries, 0)
	for _, row := range view.ByCountry {
		if len(series) == 0 || series[len(series)-1].Country != row.Country {
			series = append(series, CountrySeries{Country: row.Country})
		}
		last := &series[len(series)-1]
		last.Points = append(last.Points, YearValue{Year: row.Year, Value: row.Total})
	}

	return TimeSeriesModel{
		Source:      view.Source.String(),
		SourceLabel: view.Source.Label(),
		Fallback:    view.Fallback,
		Total:       total,
		Series:      series,
	}
}
