// Package stats implements least-squares linear regression.
package stats

import (
	"errors"
	"fmt"
	"math"
)

// epsilon below which a sum of squares is treated as numerically zero.
const epsilon = 1e-12

// Regression errors.
var (
	// ErrTooFewPoints indicates fewer than two points were provided.
	ErrTooFewPoints = errors.New("regression requires at least 2 points")

	// ErrSingular indicates the x values carry no variance (all identical),
	// making the slope denominator zero.
	ErrSingular = errors.New("regression is singular: x values are identical")
)

// Fit holds the result of a simple linear regression y = Slope*x + Intercept.
type Fit struct {
	Slope     float64
	Intercept float64
	RSquared  float64 // Coefficient of determination; NaN when undefined
	N         int     // Number of points fitted
}

// Defined reports whether the coefficient of determination is defined.
// R² is undefined when the dependent variable carries no variance but the
// fit still has non-zero residual.
func (f Fit) Defined() bool {
	return !math.IsNaN(f.RSquared)
}

// Predict returns the fitted value at x.
func (f Fit) Predict(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// Linear performs ordinary least-squares regression of y on x using the
// closed-form estimators:
//
//	slope     = (nΣxy − ΣxΣy) / (nΣx² − (Σx)²)
//	intercept = (Σy − slope·Σx) / n
//
// R² is computed as 1 − SSres/SStot. When SStot is numerically zero (all y
// identical) R² is 1 if the residual is also zero, and NaN otherwise.
//
// Returns ErrTooFewPoints for fewer than two points, a length-mismatch error
// for unequal slices, and ErrSingular when all x values are identical.
func Linear(x, y []float64) (Fit, error) {
	if len(x) != len(y) {
		return Fit{}, fmt.Errorf("x and y lengths differ: %d vs %d", len(x), len(y))
	}
	n := len(x)
	if n < 2 {
		return Fit{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}

	var sumX, sumY, sumXY, sumXX float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumXX += x[i] * x[i]
	}

	nf := float64(n)
	denom := nf*sumXX - sumX*sumX
	if math.Abs(denom) < epsilon {
		return Fit{}, ErrSingular
	}

	slope := (nf*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / nf

	meanY := sumY / nf
	var ssRes, ssTot float64
	for i := 0; i < n; i++ {
		resid := y[i] - (slope*x[i] + intercept)
		ssRes += resid * resid
		dev := y[i] - meanY
		ssTot += dev * dev
	}

	rSquared := math.NaN()
	switch {
	case ssTot > epsilon:
		rSquared = 1 - ssRes/ssTot
	case ssRes <= epsilon:
		// Constant y fitted exactly (slope ~0 through identical values)
		rSquared = 1
	}

	return Fit{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  rSquared,
		N:         n,
	}, nil
}
