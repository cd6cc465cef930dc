// Package series provides data structures for concentration time series.
//
// This package includes the Series type for representing a sequence of
// (time, concentration) measurements, along with validation and CSV loading.
// A Series is the input to reaction-order analysis; see the ratelaw and
// autoorder packages.
//
// # Creating a Series
//
// Create a series from parallel slices:
//
//	times := []float64{0, 50, 100, 150, 200, 250}
//	concs := []float64{10.0, 7.80, 6.05, 4.72, 3.68, 2.86}
//	s, err := series.New(times, concs)
//
// Or from samples:
//
//	s, err := series.FromSamples([]series.Sample{
//	    {Time: 0, Conc: 10.0},
//	    {Time: 50, Conc: 7.80},
//	})
//
// Construction validates the input: the slices must have equal length, hold
// at least two samples, and every concentration must be strictly positive.
// Violations are reported via the sentinel errors ErrLengthMismatch,
// ErrInsufficientData, and ErrInvalidConcentration, which callers can test
// with errors.Is.
//
// # Loading from CSV
//
// Load measurement data from CSV files:
//
//	// Autodetect "time"/"conc" style columns
//	s, err := series.LoadCSV("run1.csv", nil)
//
//	// Explicit column names
//	opts := series.DefaultCSVOptions()
//	opts.TimeColumn = "elapsed"
//	opts.ConcColumn = "absorbance_conc"
//	s, err := series.LoadCSV("run1.csv", opts)
//
// # Summary Statistics
//
// Inspect the measured data:
//
//	n := s.Len()
//	span := s.Span()        // seconds between first and last sample
//	lo, hi := s.MinConc(), s.MaxConc()
package series
