package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/analysis"
	"github.com/Asselm02/RenewableEnergyDashboard/internal/dataset"
)

func TestNewDeltaMapModel(t *testing.T) {
	view := analysis.DeltaMapView{
		Source:     analysis.SourceSolar,
		StartYear:  2016,
		LatestYear: 2020,
		Records: []analysis.DeltaRecord{
			{Country: "Germany", ValueStart: dataset.Float(10), ValueLatest: dataset.Float(18), Delta: 80},
			{Country: "France", ValueStart: dataset.Float(3), ValueLatest: dataset.Float(6), Delta: 100},
		},
		Points: []analysis.MapPoint{
			{Country: "France", Latitude: 46.23, Longitude: 2.21, Delta: dataset.Float(100)},
			{Country: "Germany", Latitude: 51.17, Longitude: 10.45, Delta: dataset.Float(80)},
			{Country: "Wakanda", Latitude: -1.29, Longitude: 36.82},
		},
	}

	model := NewDeltaMapModel(view)

	assert.Equal(t, "solar", model.Source)
	assert.Equal(t, "Solar", model.SourceLabel)
	assert.Equal(t, 2016, model.StartYear)
	assert.Equal(t, 2020, model.LatestYear)
	require.Len(t, model.Points, 3)

	france := model.Points[0]
	assert.Equal(t, "France", france.Country)
	require.NotNil(t, france.Delta)
	assert.Equal(t, 100.0, *france.Delta)
	require.NotNil(t, france.ValueStart)
	assert.Equal(t, 3.0, *france.ValueStart)
	require.NotNil(t, france.ValueLatest)
	assert.Equal(t, 6.0, *france.ValueLatest)

	// Coordinate-only countries keep their position with no delta.
	wakanda := model.Points[2]
	assert.Equal(t, "Wakanda", wakanda.Country)
	assert.Nil(t, wakanda.Delta)
	assert.Nil(t, wakanda.ValueStart)
	assert.Nil(t, wakanda.ValueLatest)
}

func TestNewDeltaMapModelRoundsDeltas(t *testing.T) {
	view := analysis.DeltaMapView{
		Source: analysis.SourceWind,
		Records: []analysis.DeltaRecord{
			{Country: "X", Delta: 33.333333},
			{Country: "Y", Delta: 66.666666},
		},
		Points: []analysis.MapPoint{
			{Country: "X", Delta: dataset.Float(33.333333)},
			{Country: "Y", Delta: dataset.Float(66.666666)},
		},
	}

	model := NewDeltaMapModel(view)

	require.Len(t, model.Points, 2)
	require.NotNil(t, model.Points[0].Delta)
	assert.Equal(t, 33.33, *model.Points[0].Delta)
	require.NotNil(t, model.Points[1].Delta)
	assert.Equal(t, 66.67, *model.Points[1].Delta)
}
