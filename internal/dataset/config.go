package dataset

// Config holds the locations of the two input tables. Both are plain
// CSV files on local disk; the dashboard has no remote data sources.
type Config struct {
	EnergyDataPath    string
	CountryCoordsPath string
}
