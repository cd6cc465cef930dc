// Command ratefit determines the kinetic order of a chemical reaction from
// time/concentration measurements.
//
// Measurements come from a CSV file (-csv) or, by default, from an
// interactive prompt that reads one line of time values and one line of
// concentration values. The analysis report is printed to stdout; the
// analysis JSON and a plot of the fitted rate law can be written with
// -json and -plot.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/sartorproj/gokinetics/autoorder"
	"github.com/sartorproj/gokinetics/report"
	"github.com/sartorproj/gokinetics/series"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML run configuration file")
		csvPath    = flag.String("csv", "", "CSV input file (omit for interactive prompt)")
		timeCol    = flag.String("time-col", "", "CSV time column name")
		concCol    = flag.String("conc-col", "", "CSV concentration column name")
		jsonOut    = flag.String("json", "", "write analysis JSON to this file")
		plotOut    = flag.String("plot", "", "write plot (.svg/.png/.pdf) to this file")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ratefit: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags override file values
	if *csvPath != "" {
		cfg.Input.CSV = *csvPath
	}
	if *timeCol != "" {
		cfg.Input.TimeColumn = *timeCol
	}
	if *concCol != "" {
		cfg.Input.ConcColumn = *concCol
	}
	if *jsonOut != "" {
		cfg.Output.JSON = *jsonOut
	}
	if *plotOut != "" {
		cfg.Output.Plot = *plotOut
	}
	if *verbose {
		cfg.Verbose = true
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	if err := run(cfg); err != nil {
		slog.Error("analysis failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *Config) error {
	s, err := loadSeries(cfg)
	if err != nil {
		return err
	}
	slog.Debug("series loaded", "samples", s.Len(), "span_s", s.Span())

	result, err := autoorder.DetermineOrder(s)
	if err != nil {
		return err
	}
	slog.Debug("order determined",
		"order", result.Order.String(),
		"k", result.RateConstant(),
		"r_squared", result.RSquared())

	if err := report.Console(os.Stdout, s, result); err != nil {
		return err
	}

	if cfg.Output.JSON != "" {
		f, err := os.Create(cfg.Output.JSON)
		if err != nil {
			return err
		}
		if err := report.WriteJSON(f, s, result); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		slog.Info("wrote analysis JSON", "path", cfg.Output.JSON)
	}

	if cfg.Output.Plot != "" {
		if err := report.SavePlot(cfg.Output.Plot, s, result); err != nil {
			return err
		}
		slog.Info("wrote plot", "path", cfg.Output.Plot)
	}

	return nil
}

func loadSeries(cfg *Config) (*series.Series, error) {
	if cfg.Input.CSV == "" {
		return promptSeries(os.Stdin)
	}

	opts := series.DefaultCSVOptions()
	opts.TimeColumn = cfg.Input.TimeColumn
	opts.ConcColumn = cfg.Input.ConcColumn
	return series.LoadCSV(cfg.Input.CSV, opts)
}

// promptSeries reads one line of time values and one line of concentration
// values from r.
func promptSeries(r io.Reader) (*series.Series, error) {
	scanner := bufio.NewScanner(r)

	fmt.Print("Enter time values (in seconds) separated by spaces: ")
	times, err := scanLine(scanner, "time values")
	if err != nil {
		return nil, err
	}

	fmt.Print("Enter concentration values (in mol/L) separated by spaces: ")
	concs, err := scanLine(scanner, "concentration values")
	if err != nil {
		return nil, err
	}

	return series.New(times, concs)
}

func scanLine(scanner *bufio.Scanner, what string) ([]float64, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read %s: %w", what, err)
		}
		return nil, fmt.Errorf("no %s provided", what)
	}
	values, err := series.ParseValues(scanner.Text())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	return values, nil
}
