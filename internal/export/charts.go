// Package export renders the dashboard views into shareable artifacts:
// PNG charts for the web UI's tabs and an xlsx workbook for download.
package export

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Asselm02/RenewableEnergyDashboard/internal/analysis"
)

// seriesPalette is cycled over the per-country lines. The total line has
// its own fixed style and never takes a palette slot.
var seriesPalette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
	{R: 227, G: 119, B: 194, A: 255},
	{R: 127, G: 127, B: 127, A: 255},
}

// RenderTimeSeriesChart draws one line per selected country plus a
// dashed total line over all of them.
func RenderTimeSeriesChart(view analysis.TimeSeriesView) ([]byte, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s electricity generation", view.Source.Label())
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Electricity generation (TWh)"

	countryIndex := 0
	for start := 0; start < len(view.ByCountry); {
		end := start
		for end < len(view.ByCountry) && view.ByCountry[end].Country == view.ByCountry[start].Country {
			end++
		}

		points := make(plotter.XYs, 0, end-start)
		for _, row := range view.ByCountry[start:end] {
			points = append(points, plotter.XY{X: float64(row.Year), Y: row.Total})
		}

		line, err := plotter.NewLine(points)
		if err != nil {
			return nil, fmt.Errorf("country line: %w", err)
		}
		line.Color = seriesPalette[countryIndex%len(seriesPalette)]
		line.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(view.ByCountry[start].Country, line)

		countryIndex++
		start = end
	}

	totalPoints := make(plotter.XYs, 0, len(view.Total))
	for _, row := range view.Total {
		totalPoints = append(totalPoints, plotter.XY{X: float64(row.Year), Y: row.Total})
	}

	total, err := plotter.NewLine(totalPoints)
	if err != nil {
		return nil, fmt.Errorf("total line: %w", err)
	}
	total.Color = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	total.Width = vg.Points(2)
	total.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}

	p.Add(total)
	p.Legend.Add("Total", total)

	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	return renderPNG(p, 10*vg.Inch, 6*vg.Inch)
}

// RenderRegressionChart draws the aggregated (GDP, production)
// observations as a scatter with the fitted line across them. The fit is
// drawn only when the view carries one.
func RenderRegressionChart(view analysis.RegressionView) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "GDP vs total renewables generation"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "GDP (billion USD)"
	p.Y.Label.Text = "Electricity generation (TWh)"

	points := make(plotter.XYs, 0, len(view.Points))
	for _, obs := range view.Points {
		points = append(points, plotter.XY{X: obs.GDP, Y: obs.Production})
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, fmt.Errorf("observations: %w", err)
	}
	scatter.GlyphStyle.Color = seriesPalette[0]
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(scatter)
	p.Legend.Add("observed", scatter)

	if view.Fit.N > 0 {
		fit := plotter.NewFunction(func(x float64) float64 {
			return view.Fit.Intercept + view.Fit.Slope*x
		})
		fit.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
		fit.Width = vg.Points(2)

		p.Add(fit)
		p.Legend.Add("fitted", fit)
	}

	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	return renderPNG(p, 10*vg.Inch, 6*vg.Inch)
}

// RenderDeltaMapChart draws the joined map points on a fixed world
// extent, one glyph per country, colored by the clamped four-year
// change. Points without a delta have no value to color and are left
// off the chart.
func RenderDeltaMapChart(view analysis.DeltaMapView) ([]byte, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s generation change, %d to %d",
		view.Source.Label(), view.StartYear, view.LatestYear)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	p.X.Min, p.X.Max = -180, 180
	p.Y.Min, p.Y.Max = -90, 90

	var labeled plotter.XYs
	var labels []string
	for _, point := range view.Points {
		if point.Delta == nil {
			continue
		}

		xy := plotter.XY{X: point.Longitude, Y: point.Latitude}
		glyph, err := plotter.NewScatter(plotter.XYs{xy})
		if err != nil {
			return nil, fmt.Errorf("map point: %w", err)
		}
		glyph.GlyphStyle.Color = deltaColor(*point.Delta)
		glyph.GlyphStyle.Radius = vg.Points(6)
		glyph.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(glyph)

		labeled = append(labeled, xy)
		labels = append(labels, point.Country)
	}

	if len(labeled) > 0 {
		countryLabels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    labeled,
			Labels: labels,
		})
		if err != nil {
			return nil, fmt.Errorf("map labels: %w", err)
		}
		p.Add(countryLabels)
	}

	p.Add(plotter.NewGrid())

	return renderPNG(p, 12*vg.Inch, 6*vg.Inch)
}

// deltaColor maps a clamped change onto a red-yellow-green ramp:
// 0 is red, 50 yellow, 100 green.
func deltaColor(delta float64) color.RGBA {
	t := delta / 100
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	if t <= 0.5 {
		return color.RGBA{R: 255, G: uint8(255 * 2 * t), B: 0, A: 255}
	}
	return color.RGBA{R: uint8(255 * 2 * (1 - t)), G: 255, B: 0, A: 255}
}

func renderPNG(p *plot.Plot, width, height vg.Length) ([]byte, error) {
	writer, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
