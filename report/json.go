package report

import (
	"encoding/json"
	"io"
	"math"

	"github.com/sartorproj/gokinetics/autoorder"
	"github.com/sartorproj/gokinetics/ratelaw"
	"github.com/sartorproj/gokinetics/series"
)

// pointJSON is one (t, y) pair of the transformed series.
type pointJSON struct {
	T float64 `json:"t"`
	Y float64 `json:"y"`
}

// candidateJSON holds one candidate fit for JSON export. RSquared is null
// when the fit failed or its R² is undefined (NaN has no JSON encoding).
type candidateJSON struct {
	Order        string   `json:"order"`
	Slope        float64  `json:"slope"`
	Intercept    float64  `json:"intercept"`
	RSquared     *float64 `json:"r_squared"`
	RateConstant float64  `json:"rate_constant"`
	Error        string   `json:"error,omitempty"`
}

// analysisJSON holds the full analysis for JSON export.
type analysisJSON struct {
	Times          []float64       `json:"times"`
	Concentrations []float64       `json:"concentrations"`
	SelectedOrder  string          `json:"selected_order"`
	Slope          float64         `json:"slope"`
	Intercept      float64         `json:"intercept"`
	RateConstant   float64         `json:"rate_constant"`
	RateUnits      string          `json:"rate_units"`
	RSquared       float64         `json:"r_squared"`
	HalfLife       *float64        `json:"half_life,omitempty"`
	Transformed    []pointJSON     `json:"transformed"`
	Fitted         []float64       `json:"fitted"`
	Candidates     []candidateJSON `json:"candidates"`
}

// WriteJSON writes the analysis as indented JSON, including the raw data,
// the selected order's transformed points and fitted values, and all
// candidate fits. The output feeds external visualization tooling.
func WriteJSON(w io.Writer, s *series.Series, result *autoorder.Result) error {
	points := ratelaw.TransformedPoints(s, result.Order)

	out := analysisJSON{
		Times:          s.Times(),
		Concentrations: s.Concentrations(),
		SelectedOrder:  result.Order.String(),
		Slope:          result.Fit.Line.Slope,
		Intercept:      result.Fit.Line.Intercept,
		RateConstant:   result.RateConstant(),
		RateUnits:      result.Order.RateUnits(),
		RSquared:       result.RSquared(),
		Transformed:    make([]pointJSON, len(points)),
		Fitted:         make([]float64, len(points)),
	}

	for i, p := range points {
		out.Transformed[i] = pointJSON{T: p.T, Y: p.Y}
		out.Fitted[i] = result.Fit.Line.Predict(p.T)
	}

	if half := result.Fit.HalfLife(s.At(0).Conc); !math.IsNaN(half) {
		out.HalfLife = &half
	}

	for _, c := range result.Candidates {
		cj := candidateJSON{Order: c.Order.String()}
		if c.Err != nil {
			cj.Error = c.Err.Error()
		} else {
			cj.Slope = c.Fit.Line.Slope
			cj.Intercept = c.Fit.Line.Intercept
			cj.RateConstant = c.Fit.RateConstant
			if c.Fit.Line.Defined() {
				r2 := c.Fit.Line.RSquared
				cj.RSquared = &r2
			}
		}
		out.Candidates = append(out.Candidates, cj)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
