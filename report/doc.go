// Package report renders reaction-order analysis results.
//
// Three reporters are provided, all stateless and fed the same pair of
// inputs (the measured series and the autoorder result):
//
//   - Console writes a human-readable summary: the determined order, slope,
//     rate constant with units, R², half-life, and a comparison table of all
//     candidate fits.
//   - WriteJSON exports the full analysis, including the transformed points
//     and fitted values of the selected order, for external tooling.
//   - SavePlot renders a scatter of the selected transform with the fitted
//     line and an annotated legend, via gonum.org/v1/plot.
//
// Reporting never alters the analysis: a reporter consumes the result value
// and produces output, nothing more.
package report
