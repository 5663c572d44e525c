package restapi

import (
	"fmt"
	"net/http"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/analysis"
	"github.com/Asselm02/RenewableEnergyDashboard/internal/utils"
)

// yearSliderMin is the fixed lower bound of the dashboard's year slider.
// The upper bound tracks the dataset's latest year.
const yearSliderMin = 2000

// parseSelection reads the shared dashboard controls from the query
// string: countries (comma-separated, empty means all), yearMin/yearMax
// (defaulting to the slider bounds), and source (defaulting to solar).
func (api *RestAPI) parseSelection(r *http.Request) (analysis.Selection, map[string][]string) {
	query := r.URL.Query()

	countries := utils.ParseCountriesParam(query)
	fieldErrors := utils.ValidateCountriesParam(countries)

	_, maxYear := api.Dataset.YearBounds()
	yearMin, fieldErrors := utils.ParseYearParam(query, "yearMin", yearSliderMin, fieldErrors)
	yearMax, fieldErrors := utils.ParseYearParam(query, "yearMax", maxYear, fieldErrors)

	source := analysis.SourceSolar
	if raw := query.Get("source"); raw != "" {
		parsed, err := analysis.ParseSource(raw)
		if err != nil {
			fieldErrors["source"] = append(fieldErrors["source"], fmt.Sprintf("Invalid field value for field %q.", "source"))
		} else {
			source = parsed
		}
	}

	selection := analysis.Selection{
		Countries: countries,
		YearMin:   yearMin,
		YearMax:   yearMax,
		Source:    source,
	}
	return selection, fieldErrors
}
