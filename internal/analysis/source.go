package analysis

import (
	"fmt"
	"strings"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/dataset"
)

// Source identifies one energy-production column of the energy table.
// The dashboard selects columns through this tag rather than by column
// name, so there is exactly one place that maps a selectable source to
// the field it reads.
type Source int

const (
	SourceSolar Source = iota
	SourceWind
	SourceHydro
	SourceTotalRenewables
)

// Sources lists all selectable sources in display order. Solar is the
// dashboard default.
func Sources() []Source {
	return []Source{SourceSolar, SourceWind, SourceHydro, SourceTotalRenewables}
}

// String returns the wire name used in query parameters and URLs.
func (s Source) String() string {
	switch s {
	case SourceSolar:
		return "solar"
	case SourceWind:
		return "wind"
	case SourceHydro:
		return "hydro"
	case SourceTotalRenewables:
		return "total"
	default:
		return "unknown"
	}
}

// Label returns the human-readable name used in chart titles and
// control captions.
func (s Source) Label() string {
	switch s {
	case SourceSolar:
		return "Solar"
	case SourceWind:
		return "Wind"
	case SourceHydro:
		return "Hydro"
	case SourceTotalRenewables:
		return "Total renewables"
	default:
		return "Unknown"
	}
}

// ValueIn returns the record's production value for this source, nil when
// the cell is absent.
func (s Source) ValueIn(rec dataset.EnergyRecord) *float64 {
	switch s {
	case SourceSolar:
		return rec.Solar
	case SourceWind:
		return rec.Wind
	case SourceHydro:
		return rec.Hydro
	case SourceTotalRenewables:
		return rec.TotalRenewables
	default:
		return nil
	}
}

// ParseSource resolves a wire name to its Source tag. Matching is
// case-insensitive. "renewables" is accepted as an alias for "total"
// because the underlying column is named renewables_electricity, and
// "water" as an alias for "hydro" to match the map tab's label.
func ParseSource(name string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "solar":
		return SourceSolar, nil
	case "wind":
		return SourceWind, nil
	case "hydro", "water":
		return SourceHydro, nil
	case "total", "renewables":
		return SourceTotalRenewables, nil
	default:
		return 0, fmt.Errorf("unknown energy source %q", name)
	}
}
