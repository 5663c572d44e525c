package dataset

import (
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Manager owns the two base tables. Both are loaded exactly once, before
// any request is served, and are never mutated afterwards; every accessor
// hands out read-only views of that immutable state. Derived values
// (filtered views, deltas, aggregates) are computed elsewhere as pure
// functions over these tables.
type Manager struct {
	energy []EnergyRecord
	coords []CountryCoordinate

	countries     []string // distinct, in first-appearance dataset order
	countrySet    map[string]bool
	coordIndex    map[string]CountryCoordinate
	minYear       int
	maxYear       int
	energySkipped int
	coordsSkipped int
}

// InitManager loads and validates both input tables. The two files are
// independent, so they load concurrently.
func InitManager(config Config) (*Manager, error) {
	manager := &Manager{}

	var g errgroup.Group
	g.Go(func() error {
		records, skipped, err := loadEnergyRecords(config.EnergyDataPath)
		if err != nil {
			return err
		}
		manager.energy = records
		manager.energySkipped = skipped
		return nil
	})
	g.Go(func() error {
		coords, skipped, err := loadCountryCoordinates(config.CountryCoordsPath)
		if err != nil {
			return err
		}
		manager.coords = coords
		manager.coordsSkipped = skipped
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error loading dashboard dataset: %w", err)
	}

	if len(manager.energy) == 0 {
		return nil, fmt.Errorf("energy table %s contains no usable rows", config.EnergyDataPath)
	}

	manager.buildIndexes()

	return manager, nil
}

func (manager *Manager) buildIndexes() {
	manager.countrySet = make(map[string]bool)
	for _, rec := range manager.energy {
		if !manager.countrySet[rec.Country] {
			manager.countrySet[rec.Country] = true
			manager.countries = append(manager.countries, rec.Country)
		}
		if manager.minYear == 0 || rec.Year < manager.minYear {
			manager.minYear = rec.Year
		}
		if rec.Year > manager.maxYear {
			manager.maxYear = rec.Year
		}
	}

	manager.coordIndex = make(map[string]CountryCoordinate, len(manager.coords))
	for _, c := range manager.coords {
		if _, exists := manager.coordIndex[c.Country]; !exists {
			manager.coordIndex[c.Country] = c
		}
	}
}

// EnergyRecords returns the full energy table. Callers must treat the
// slice as read-only.
func (manager *Manager) EnergyRecords() []EnergyRecord {
	return manager.energy
}

// Coordinates returns the full coordinates table, read-only.
func (manager *Manager) Coordinates() []CountryCoordinate {
	return manager.coords
}

// Countries returns the distinct countries of the energy table in
// first-appearance order. The dashboard's default country selection is
// the first entry.
func (manager *Manager) Countries() []string {
	return manager.countries
}

// HasCountry reports whether the energy table contains the given country.
func (manager *Manager) HasCountry(country string) bool {
	return manager.countrySet[country]
}

// YearBounds returns the earliest and latest years present in the energy
// table.
func (manager *Manager) YearBounds() (minYear, maxYear int) {
	return manager.minYear, manager.maxYear
}

// LatestYear returns the most recent year in the energy table. Delta
// computation is anchored to it regardless of the user's filters.
func (manager *Manager) LatestYear() int {
	return manager.maxYear
}

// CoordinateFor looks up the plotting position for a country. The match
// is exact: no case folding, no whitespace trimming.
func (manager *Manager) CoordinateFor(country string) (CountryCoordinate, bool) {
	c, ok := manager.coordIndex[country]
	return c, ok
}

// UnmatchedCountries reports join-key mismatches between the two tables:
// energy countries with no coordinate row, and coordinate rows for
// countries absent from the energy table. Both lists are sorted.
func (manager *Manager) UnmatchedCountries() (energyOnly, coordsOnly []string) {
	for _, country := range manager.countries {
		if _, ok := manager.coordIndex[country]; !ok {
			energyOnly = append(energyOnly, country)
		}
	}
	for country := range manager.coordIndex {
		if !manager.countrySet[country] {
			coordsOnly = append(coordsOnly, country)
		}
	}
	sort.Strings(energyOnly)
	sort.Strings(coordsOnly)
	return energyOnly, coordsOnly
}

// LogStatistics reports what was loaded, and warns about rows that were
// skipped and about join-key mismatches between the two tables. Countries
// named here will silently drop off the delta maps, so surfacing them at
// startup is the cheapest place to catch data-quality drift.
func (manager *Manager) LogStatistics(logger *slog.Logger) {
	minYear, maxYear := manager.YearBounds()
	logger.Info("dataset loaded",
		"energy_rows", len(manager.energy),
		"coordinate_rows", len(manager.coords),
		"countries", len(manager.countries),
		"year_min", minYear,
		"year_max", maxYear)

	if manager.energySkipped > 0 || manager.coordsSkipped > 0 {
		logger.Warn("skipped unparseable rows",
			"energy_rows", manager.energySkipped,
			"coordinate_rows", manager.coordsSkipped)
	}

	energyOnly, coordsOnly := manager.UnmatchedCountries()
	if len(energyOnly) > 0 {
		logger.Warn("countries without coordinates (excluded from delta maps)",
			"count", len(energyOnly),
			"countries", energyOnly)
	}
	if len(coordsOnly) > 0 {
		logger.Warn("coordinate rows without energy data",
			"count", len(coordsOnly),
			"countries", coordsOnly)
	}
}
