package analysis

import (
	"sort"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/dataset"
)

// MapPoint is a display-ready map row: a plottable position with the
// country's clamped delta. Delta is nil for coordinate rows that had no
// delta result; the render layer drops those, not this join.
type MapPoint struct {
	Country   string
	Latitude  float64
	Longitude float64
	Delta     *float64
}

// JoinCoordinates left-joins the coordinates table onto the delta
// records by country. The coordinate side drives the join: every
// coordinate row survives, keeping an absent delta when no delta record
// matches, while delta records without a coordinate row are dropped:
// they have no position to plot. The match is exact (case- and
// whitespace-sensitive). Results are sorted by country.
func JoinCoordinates(coords []dataset.CountryCoordinate, deltas []DeltaRecord) []MapPoint {
	byCountry := make(map[string]DeltaRecord, len(deltas))
	for _, d := range deltas {
		byCountry[d.Country] = d
	}

	points := make([]MapPoint, 0, len(coords))
	for _, c := range coords {
		point := MapPoint{
			Country:   c.Country,
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
		}
		if d, ok := byCountry[c.Country]; ok {
			delta := d.Delta
			point.Delta = &delta
		}
		points = append(points, point)
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Country < points[j].Country })
	return points
}
