// Package gokinetics determines chemical reaction order from time series
// concentration data.
//
// GoKinetics fits the integrated rate laws for zero, first, and second order
// reactions to a series of (time, concentration) measurements. Each candidate
// order maps to a linear transform of concentration; ordinary least-squares
// regression against time is run on every transform, and the order whose fit
// has the highest coefficient of determination (R²) wins. The rate constant k
// follows from the slope of the winning fit.
//
// # Quick Start
//
// Determine the reaction order of a measured series:
//
//	s, err := series.New(times, concentrations)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := autoorder.DetermineOrder(s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Order: %s, k = %.4e %s, R² = %.4f\n",
//	    result.Order, result.RateConstant(), result.Order.RateUnits(), result.RSquared())
//
// Fit a single candidate order directly:
//
//	fit, err := ratelaw.FitOrder(s, ratelaw.First)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - series: concentration time series data structures and CSV loading
//   - stats: least-squares linear regression
//   - ratelaw: integrated rate-law transforms and per-order fitting
//   - autoorder: automatic reaction-order selection
//   - report: console, JSON, and plot reporting of analysis results
//
// # References
//
//   - Atkins, P., & de Paula, J. (2014). Physical Chemistry
//   - Espenson, J. H. (1995). Chemical Kinetics and Reaction Mechanisms
package gokinetics
