package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInsufficientData is returned when the regression input cannot
// support a fit: fewer than two observations, or no variation in GDP.
// The display layer shows it as a message instead of a broken chart.
var ErrInsufficientData = errors.New("insufficient data for regression")

// FitResult is the linear fit of production against GDP, with enough
// diagnostics for the dashboard's model-summary panel.
type FitResult struct {
	Slope     float64
	Intercept float64
	RSquared  float64
	StdErr    float64 // standard error of the slope
	PValue    float64 // two-sided, H0: slope = 0
	N         int
	Summary   string
}

// FitLinear fits production = intercept + slope*gdp by ordinary least
// squares. It is a pure function of the two columns and knows nothing
// about countries or years; callers extract the columns from
// RegressionInput's output.
func FitLinear(gdp, production []float64) (FitResult, error) {
	if len(gdp) != len(production) {
		return FitResult{}, fmt.Errorf("regression input length mismatch: %d gdp values, %d production values", len(gdp), len(production))
	}
	if len(gdp) < 2 {
		return FitResult{}, ErrInsufficientData
	}

	meanGDP := stat.Mean(gdp, nil)
	sxx := 0.0
	for _, x := range gdp {
		sxx += (x - meanGDP) * (x - meanGDP)
	}
	if sxx == 0 {
		// All GDP values identical: the slope is undefined.
		return FitResult{}, ErrInsufficientData
	}

	intercept, slope := stat.LinearRegression(gdp, production, nil, false)

	rsq := stat.RSquared(gdp, production, nil, intercept, slope)
	if math.IsNaN(rsq) {
		// Constant production: the fit explains nothing (and the usual
		// ratio is 0/0). Report 0 rather than letting NaN reach JSON.
		rsq = 0
	}

	sse := 0.0
	for i, x := range gdp {
		resid := production[i] - (intercept + slope*x)
		sse += resid * resid
	}

	stdErr := 0.0
	pValue := 0.0
	if dof := float64(len(gdp) - 2); dof > 0 {
		stdErr = math.Sqrt(sse/dof) / math.Sqrt(sxx)
		if stdErr > 0 {
			t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: dof}
			pValue = 2 * t.Survival(math.Abs(slope/stdErr))
		}
	}

	result := FitResult{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  rsq,
		StdErr:    stdErr,
		PValue:    pValue,
		N:         len(gdp),
	}
	result.Summary = fmt.Sprintf(
		"production = %.6g + %.6g * gdp  (R^2 = %.4f, slope SE = %.4g, p = %.4g, n = %d)",
		result.Intercept, result.Slope, result.RSquared, result.StdErr, result.PValue, result.N)

	return result, nil
}
