package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/gokinetics/autoorder"
	"github.com/sartorproj/gokinetics/ratelaw"
	"github.com/sartorproj/gokinetics/series"
)

// SavePlot renders the selected order's transformed data as a scatter plot
// with the fitted regression line and saves it to path. The output format
// follows the file extension (.svg, .png, .pdf). Canvas is 6×4 inches.
func SavePlot(path string, s *series.Series, result *autoorder.Result) error {
	points := ratelaw.TransformedPoints(s, result.Order)

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.T
		xys[i].Y = pt.Y
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Integrated Rate Law Fit (%s order)", result.Order)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = result.Order.TransformLabel()
	p.Add(plotter.NewGrid())

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}
	scatter.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(3)

	line := plotter.NewFunction(result.Fit.Line.Predict)
	line.Color = color.RGBA{R: 255, A: 255}
	line.Width = vg.Points(1.5)

	p.Add(scatter, line)
	p.Legend.Add("data", scatter)
	p.Legend.Add(fmt.Sprintf("fit: slope = %.4f, k = %.4e, R² = %.4f",
		result.Fit.Line.Slope, result.RateConstant(), result.RSquared()), line)
	p.Legend.Top = true

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
