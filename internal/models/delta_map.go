package models

import (
	"math"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/analysis"
)

// DeltaMapPoint is one plottable country on a delta map. Delta is null
// when the country has coordinates but no energy data at either compared
// year; ValueStart and ValueLatest are null when the corresponding
// endpoint value is absent.
type DeltaMapPoint struct {
	Country     string   `json:"country"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Delta       *float64 `json:"delta"`
	ValueStart  *float64 `json:"valueStart"`
	ValueLatest *float64 `json:"valueLatest"`
}

// DeltaMapModel is the payload behind one delta-map tab.
type DeltaMapModel struct {
	Source      string          `json:"source"`
	SourceLabel string          `json:"sourceLabel"`
	StartYear   int             `json:"startYear"`
	LatestYear  int             `json:"latestYear"`
	Points      []DeltaMapPoint `json:"points"`
}

// roundDelta rounds to two decimals for display. The engine keeps full
// precision; only the payload rounds.
func roundDelta(v float64) float64 {
	return math.Round(v*100) / 100
}

// NewDeltaMapModel converts the computed map view into its response
// shape, attaching the raw endpoint values for tooltips.
func NewDeltaMapModel(view analysis.DeltaMapView) DeltaMapModel {
	endpoints := make(map[string]analysis.DeltaRecord, len(view.Records))
	for _, rec := range view.Records {
		endpoints[rec.Country] = rec
	}

	points := make([]DeltaMapPoint, 0, len(view.Points))
	for _, p := range view.Points {
		point := DeltaMapPoint{
			Country:   p.Country,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		}
		if p.Delta != nil {
			rounded := roundDelta(*p.Delta)
			point.Delta = &rounded
			rec := endpoints[p.Country]
			point.ValueStart = rec.ValueStart
			point.ValueLatest = rec.ValueLatest
		}
		points = append(points, point)
	}

	return DeltaMapModel{
		Source:      view.Source.String(),
		SourceLabel: view.Source.Label(),
		StartYear:   view.StartYear,
		LatestYear:  view.LatestYear,
		Points:      points,
	}
}
