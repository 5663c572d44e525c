package models

import "github.com/Asselm02/RenewableEnergyDashboard/internal/analysis"

// SourceOption is one entry of the source dropdown.
type SourceOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// TabOption is one entry of the dashboard's tab strip.
type TabOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ControlsModel describes the dashboard's interactive controls: which
// countries and sources can be selected and the year-slider bounds. The
// UI builds itself entirely from this payload, so adding a country or a
// year to the dataset never requires a frontend change.
type ControlsModel struct {
	Countries      []string       `json:"countries"`
	DefaultCountry string         `json:"defaultCountry"`
	Sources        []SourceOption `json:"sources"`
	DefaultSource  string         `json:"defaultSource"`
	Tabs           []TabOption    `json:"tabs"`
	YearMin        int            `json:"yearMin"`
	YearMax        int            `json:"yearMax"`
}

// dashboardTabs lists the five views in display order.
var dashboardTabs = []TabOption{
	{ID: "time-series", Label: "Time Series"},
	{ID: "regression", Label: "GDP Regression"},
	{ID: "map-solar", Label: "Solar Delta Map"},
	{ID: "map-wind", Label: "Wind Delta Map"},
	{ID: "map-water", Label: "Water Delta Map"},
}

// NewControlsModel creates the controls payload. The default country is
// the dataset's first; the slider's lower bound is fixed while its upper
// bound tracks the dataset's latest year.
func NewControlsModel(countries []string, yearMin, yearMax int) ControlsModel {
	defaultCountry := ""
	if len(countries) > 0 {
		defaultCountry = countries[0]
	}

	sources := make([]SourceOption, 0, len(analysis.Sources()))
	for _, source := range analysis.Sources() {
		sources = append(sources, SourceOption{
			ID:    source.String(),
			Label: source.Label(),
		})
	}

	return ControlsModel{
		Countries:      countries,
		DefaultCountry: defaultCountry,
		Sources:        sources,
		DefaultSource:  analysis.SourceSolar.String(),
		Tabs:           dashboardTabs,
		YearMin:        yearMin,
		YearMax:        yearMax,
	}
}
