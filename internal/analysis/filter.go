package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/dataset"
)

// Selection is the complete set of user-chosen filter parameters. Every
// derivation takes it (or part of it) as an explicit argument; there is
// no hidden reactive state anywhere in the pipeline.
type Selection struct {
	Countries []string
	YearMin   int
	YearMax   int
	Source    Source
}

// filterKey canonicalizes the filter-relevant parameters (countries and
// year range) for memoization: order and duplicates in the country list
// do not change the filtered view.
func (sel Selection) filterKey() string {
	countries := append([]string(nil), sel.Countries...)
	sort.Strings(countries)
	return fmt.Sprintf("%s|%d|%d", strings.Join(countries, "\x1f"), sel.YearMin, sel.YearMax)
}

// Filter returns the rows matching the country selection and year range.
// An empty country selection means "all countries": the effective
// selection becomes every distinct country of the input, and the second
// return value reports that the fallback applied so the UI can say so.
// An inverted year range yields an empty result rather than an error;
// the slider prevents it, but nothing downstream should have to care.
// The result is always a subset of the input, in input order.
func Filter(records []dataset.EnergyRecord, countries []string, yearMin, yearMax int) ([]dataset.EnergyRecord, bool) {
	fallback := len(countries) == 0

	selected := make(map[string]bool)
	if fallback {
		for _, rec := range records {
			selected[rec.Country] = true
		}
	} else {
		for _, country := range countries {
			selected[country] = true
		}
	}

	filtered := make([]dataset.EnergyRecord, 0, len(records))
	for _, rec := range records {
		if rec.Year < yearMin || rec.Year > yearMax {
			continue
		}
		if !selected[rec.Country] {
			continue
		}
		filtered = append(filtered, rec)
	}

	return filtered, fallback
}
