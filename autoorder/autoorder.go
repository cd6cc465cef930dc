// Package autoorder implements automatic reaction-order selection.
package autoorder

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/gokinetics/ratelaw"
	"github.com/sartorproj/gokinetics/series"
)

// ErrDegenerateFit indicates that no candidate order produced a defined
// goodness of fit. The usual cause is a series whose time values are all
// identical, which makes every regression singular.
var ErrDegenerateFit = errors.New("no candidate order produced a usable fit")

// Candidate records the outcome of fitting one candidate order.
type Candidate struct {
	Order ratelaw.Order
	Fit   ratelaw.Fit
	Err   error // non-nil when the fit failed (singular regression)
}

// Usable reports whether this candidate was eligible for selection: the fit
// succeeded and its R² is defined.
func (c Candidate) Usable() bool {
	return c.Err == nil && c.Fit.Line.Defined()
}

// Result is the outcome of automatic order selection: the chosen order, its
// fit, and the full set of candidates that were evaluated.
type Result struct {
	Order      ratelaw.Order
	Fit        ratelaw.Fit
	Candidates []Candidate // All evaluated candidates, in precedence order
}

// RateConstant returns the rate constant k of the selected fit.
func (r *Result) RateConstant() float64 {
	return r.Fit.RateConstant
}

// RSquared returns the coefficient of determination of the selected fit.
func (r *Result) RSquared() float64 {
	return r.Fit.Line.RSquared
}

// DetermineOrder fits all candidate reaction orders to the series and
// selects the one with the highest R².
//
// Candidates are evaluated in precedence order (zero, first, second) and
// compared strictly, so an exact R² tie keeps the lower order. A candidate
// whose fit failed or whose R² is undefined is never selected; if that holds
// for all three candidates, DetermineOrder returns ErrDegenerateFit.
func DetermineOrder(s *series.Series) (*Result, error) {
	candidates := make([]Candidate, 0, 3)
	bestIdx := -1
	bestR2 := math.Inf(-1)

	for _, o := range ratelaw.Orders() {
		fit, err := ratelaw.FitOrder(s, o)
		cand := Candidate{Order: o, Fit: fit, Err: err}
		candidates = append(candidates, cand)

		if !cand.Usable() {
			continue
		}
		if fit.Line.RSquared > bestR2 {
			bestR2 = fit.Line.RSquared
			bestIdx = len(candidates) - 1
		}
	}

	if bestIdx < 0 {
		return nil, fmt.Errorf("%w: %d samples over %g s", ErrDegenerateFit, s.Len(), s.Span())
	}

	best := candidates[bestIdx]
	return &Result{
		Order:      best.Order,
		Fit:        best.Fit,
		Candidates: candidates,
	}, nil
}
