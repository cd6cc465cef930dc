// Package stats provides statistical routines for series analysis.
//
// The package implements ordinary least-squares simple linear regression
// with the coefficient of determination (R²) as its goodness-of-fit
// statistic. It is the numeric core behind rate-law fitting; see the
// ratelaw and autoorder packages.
//
// # Fitting a Line
//
// Fit y = slope·x + intercept:
//
//	fit, err := stats.Linear(x, y)
//	if err != nil {
//	    // fewer than 2 points, mismatched lengths, or all x identical
//	}
//	fmt.Printf("slope=%.4f intercept=%.4f R²=%.4f\n",
//	    fit.Slope, fit.Intercept, fit.RSquared)
//
// # Degenerate Inputs
//
// Two cases are distinguished:
//
//   - All x values identical: the slope denominator is zero and Linear
//     returns ErrSingular. No Fit is produced.
//   - All y values identical: the line is fitted normally. R² is 1 when the
//     residual is zero (the usual case) and NaN otherwise; Fit.Defined
//     reports which.
package stats
