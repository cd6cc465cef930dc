// Package ratelaw implements integrated rate-law transforms and fitting.
package ratelaw

import (
	"fmt"
	"math"

	"github.com/sartorproj/gokinetics/series"
	"github.com/sartorproj/gokinetics/stats"
)

// Order is a candidate reaction order. The set is closed: zero, first, and
// second order are the only integrated rate laws considered.
type Order int

const (
	Zero Order = iota
	First
	Second
)

// Orders returns the candidate orders in selection precedence
// (lowest order first).
func Orders() []Order {
	return []Order{Zero, First, Second}
}

// String returns the order name.
func (o Order) String() string {
	switch o {
	case Zero:
		return "zero"
	case First:
		return "first"
	case Second:
		return "second"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// Transform applies the order's linearizing transform to a concentration:
//
//	Zero:   [A]      (slope = -k)
//	First:  ln[A]    (slope = -k)
//	Second: 1/[A]    (slope = +k)
func (o Order) Transform(conc float64) float64 {
	switch o {
	case Zero:
		return conc
	case First:
		return math.Log(conc)
	case Second:
		return 1 / conc
	}
	panic(fmt.Sprintf("ratelaw: unknown order %d", int(o)))
}

// TransformLabel returns the axis label for the transformed quantity.
func (o Order) TransformLabel() string {
	switch o {
	case Zero:
		return "[A] (M)"
	case First:
		return "ln[A]"
	case Second:
		return "1/[A] (1/M)"
	}
	panic(fmt.Sprintf("ratelaw: unknown order %d", int(o)))
}

// RateConstant derives the rate constant k from a fitted slope. For zero and
// first order the slope is -k; for second order the slope is k itself.
func (o Order) RateConstant(slope float64) float64 {
	switch o {
	case Zero, First:
		return -slope
	case Second:
		return slope
	}
	panic(fmt.Sprintf("ratelaw: unknown order %d", int(o)))
}

// RateUnits returns the units of the rate constant for this order.
func (o Order) RateUnits() string {
	switch o {
	case Zero:
		return "mol/(L·s)"
	case First:
		return "1/s"
	case Second:
		return "L/(mol·s)"
	}
	panic(fmt.Sprintf("ratelaw: unknown order %d", int(o)))
}

// Point is one transformed observation: time against transform(concentration).
type Point struct {
	T float64 // seconds
	Y float64 // transformed concentration
}

// TransformedPoints returns the (t, y) sequence for the given order, where
// y is the order's transform of concentration. This is the series a plot of
// the fitted rate law is drawn from.
func TransformedPoints(s *series.Series, o Order) []Point {
	points := make([]Point, s.Len())
	for i := range points {
		sample := s.At(i)
		points[i] = Point{T: sample.Time, Y: o.Transform(sample.Conc)}
	}
	return points
}

// Fit holds a fitted integrated rate law for one candidate order.
type Fit struct {
	Order        Order
	Line         stats.Fit // Regression of transform(conc) on time
	RateConstant float64   // k, derived from Line.Slope per the order
}

// FitOrder fits the integrated rate law of a single candidate order to the
// series by least-squares regression of the transformed concentrations on
// time.
func FitOrder(s *series.Series, o Order) (Fit, error) {
	points := TransformedPoints(s, o)
	ts := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		ts[i] = p.T
		ys[i] = p.Y
	}

	line, err := stats.Linear(ts, ys)
	if err != nil {
		return Fit{}, fmt.Errorf("%s order: %w", o, err)
	}

	return Fit{
		Order:        o,
		Line:         line,
		RateConstant: o.RateConstant(line.Slope),
	}, nil
}

// HalfLife returns the half-life implied by the fit for a reaction starting
// at the given initial concentration:
//
//	Zero:   [A]₀ / 2k
//	First:  ln2 / k
//	Second: 1 / (k·[A]₀)
//
// Returns NaN when k is not positive (no decay to halve).
func (f Fit) HalfLife(initialConc float64) float64 {
	k := f.RateConstant
	if k <= 0 {
		return math.NaN()
	}
	switch f.Order {
	case Zero:
		return initialConc / (2 * k)
	case First:
		return math.Ln2 / k
	case Second:
		return 1 / (k * initialConc)
	}
	panic(fmt.Sprintf("ratelaw: unknown order %d", int(f.Order)))
}
