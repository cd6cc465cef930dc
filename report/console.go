package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sartorproj/gokinetics/autoorder"
	"github.com/sartorproj/gokinetics/series"
)

// Console writes a human-readable analysis report to w: the measured data
// summary, the determined order with slope, rate constant, and R², and the
// per-candidate comparison table.
func Console(w io.Writer, s *series.Series, result *autoorder.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Samples:        %d over %g s\n", s.Len(), s.Span())
	fmt.Fprintf(&b, "Concentration:  %g → %g mol/L\n", s.At(0).Conc, s.At(s.Len()-1).Conc)
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Determined reaction order: %s\n", result.Order)
	fmt.Fprintf(&b, "Slope: %.4f\n", result.Fit.Line.Slope)
	fmt.Fprintf(&b, "Rate constant k = %.4e %s\n", result.RateConstant(), result.Order.RateUnits())
	fmt.Fprintf(&b, "R² = %.4f\n", result.RSquared())

	if half := result.Fit.HalfLife(s.At(0).Conc); half > 0 {
		fmt.Fprintf(&b, "Half-life t½ = %.4g s\n", half)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Candidate fits:")
	for _, c := range result.Candidates {
		marker := " "
		if c.Order == result.Order {
			marker = "*"
		}
		if !c.Usable() {
			fmt.Fprintf(&b, "%s %-6s  unusable: %v\n", marker, c.Order, c.Err)
			continue
		}
		fmt.Fprintf(&b, "%s %-6s  slope = %10.4g  R² = %.6f\n",
			marker, c.Order, c.Fit.Line.Slope, c.Fit.Line.RSquared)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
