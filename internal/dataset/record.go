package dataset

// EnergyRecord is one row of the energy table: a (country, year) pair with
// per-source electricity production and GDP. Numeric fields are pointers
// because "absent" is distinct from zero: a nil value contributes nothing
// to sums and disqualifies a country from delta computation, while a true
// zero participates normally. (country, year) pairs are not required to be
// unique in the input; duplicates sum together under any aggregation key.
type EnergyRecord struct {
	Country         string
	Year            int
	Solar           *float64
	Wind            *float64
	Hydro           *float64
	TotalRenewables *float64
	GDP             *float64
}

// CountryCoordinate is one row of the coordinates table. The join key is
// the country name, matched exactly (case- and whitespace-sensitive).
type CountryCoordinate struct {
	Country   string
	Latitude  float64
	Longitude float64
}

// Float returns a pointer to v, for building records with present values
// in tests across packages.
func Float(v float64) *float64 {
	return &v
}
