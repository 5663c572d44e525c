package models

import "github.com/Asselm02/RenewableEnergyDashboard/internal/analysis"

// RegressionPoint is one aggregated (country, year) observation on the
// GDP scatter plot.
type RegressionPoint struct {
	Country    string  `json:"country"`
	Year       int     `json:"year"`
	GDP        float64 `json:"gdp"`
	Production float64 `json:"production"`
}

// RegressionFit carries the fitted model and its diagnostics.
type RegressionFit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"rSquared"`
	StdErr    float64 `json:"stdErr"`
	PValue    float64 `json:"pValue"`
	N         int     `json:"n"`
	Summary   string  `json:"summary"`
}

// RegressionModel is the payload behind the regression tab: the scatter
// points and the line fitted through them.
type RegressionModel struct {
	Fallback bool              `json:"fallback"`
	Points   []RegressionPoint `json:"points"`
	Fit      RegressionFit     `json:"fit"`
}

// NewRegressionModel converts the computed regression view into its
// response shape.
func NewRegressionModel(view analysis.RegressionView) RegressionModel {
	points := make([]RegressionPoint, 0, len(view.Points))
	for _, p := range view.Points {
		points = append(points, RegressionPoint{
			Country:    p.Country,
			Year:       p.Year,
			GDP:        p.GDP,
			Production: p.Production,
		})
	}

	return RegressionModel{
		Fallback: view.Fallback,
		Points:   points,
		Fit: RegressionFit{
			Slope:     view.Fit.Slope,
			Intercept: view.Fit.Intercept,
			RSquared:  view.Fit.RSquared,
			StdErr:    view.Fit.StdErr,
			PValue:    view.Fit.PValue,
			N:         view.Fit.N,
			Summary:   view.Fit.Summary,
		},
	}
}
