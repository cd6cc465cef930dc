// Package ratelaw implements the integrated rate laws for zero, first, and
// second order reactions.
//
// Each reaction order linearizes the concentration-time relationship under a
// specific transform of concentration:
//
//	Order  Transform  Linear form            Slope
//	Zero   [A]        [A]  = [A]₀ − kt       -k
//	First  ln[A]      ln[A] = ln[A]₀ − kt    -k
//	Second 1/[A]      1/[A] = 1/[A]₀ + kt    +k
//
// Fitting a candidate order means regressing the transformed concentrations
// on time and reading the rate constant off the slope.
//
// # Fitting a Candidate Order
//
// Fit a single order to a measured series:
//
//	fit, err := ratelaw.FitOrder(s, ratelaw.First)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("k = %.4e %s (R² = %.4f)\n",
//	    fit.RateConstant, fit.Order.RateUnits(), fit.Line.RSquared)
//
// For automatic selection of the best-fitting order, use the autoorder
// package.
//
// # Plotting
//
// TransformedPoints exposes the (t, y) sequence a rate-law plot is drawn
// from:
//
//	points := ratelaw.TransformedPoints(s, fit.Order)
//
// The report package renders these points together with the fitted line.
package ratelaw
