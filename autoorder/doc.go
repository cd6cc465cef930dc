// Package autoorder implements automatic reaction-order determination.
//
// Given a validated concentration series, DetermineOrder fits the integrated
// rate laws for zero, first, and second order (see the ratelaw package) and
// selects the candidate whose linear fit has the highest coefficient of
// determination (R²).
//
// # Usage
//
//	s, err := series.New(times, concentrations)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := autoorder.DetermineOrder(s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("order: %s  k = %.4e %s  R² = %.4f\n",
//	    result.Order, result.RateConstant(), result.Order.RateUnits(), result.RSquared())
//
// The Result also carries every evaluated candidate, so a reporter can show
// how decisively the winning order beat the alternatives.
//
// # Selection Rules
//
// Candidates are compared strictly by R², evaluated in the fixed precedence
// zero, first, second. An exact tie therefore resolves to the lowest tied
// order. A candidate with a failed fit or an undefined R² is never selected;
// when no candidate is usable, DetermineOrder returns ErrDegenerateFit.
//
// DetermineOrder is a pure function of the series: it holds no state between
// calls and is safe for concurrent use.
package autoorder
