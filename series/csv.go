package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	TimeColumn string // Column name for time values (default: autodetect)
	ConcColumn string // Column name for concentration values (default: autodetect)
	HasHeader  bool   // Whether CSV has a header row (default: true)
	Delimiter  rune   // Field delimiter (default: ',')
	SkipRows   int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadCSV loads a concentration series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a concentration series from an io.Reader.
//
// When column names are not configured, the time column is detected from the
// headers "t", "time", or "Time (s)" and the concentration column from
// "conc", "concentration", or "[A]". Without a header the first column is
// time and the second is concentration.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	timeIdx, concIdx := 0, 1

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		timeIdx, concIdx = -1, -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case opts.TimeColumn != "" && h == opts.TimeColumn:
				timeIdx = i
			case opts.ConcColumn != "" && h == opts.ConcColumn:
				concIdx = i
			case opts.TimeColumn == "" && isTimeHeader(h):
				if timeIdx == -1 {
					timeIdx = i
				}
			case opts.ConcColumn == "" && isConcHeader(h):
				if concIdx == -1 {
					concIdx = i
				}
			}
		}

		if timeIdx == -1 || concIdx == -1 {
			return nil, fmt.Errorf("could not locate time/concentration columns in header %v", header)
		}
	}

	var times, concs []float64

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if timeIdx >= len(record) || concIdx >= len(record) {
			continue
		}

		tv, tok := parseField(record[timeIdx])
		cv, cok := parseField(record[concIdx])
		if !tok || !cok {
			continue // Skip rows with missing or non-numeric values
		}

		times = append(times, tv)
		concs = append(concs, cv)
	}

	if len(times) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	return New(times, concs)
}

// SaveCSV saves a concentration series to a CSV file with a "t,conc" header.
func SaveCSV(s *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"t", "conc"}); err != nil {
		return err
	}
	for i := 0; i < s.Len(); i++ {
		sample := s.At(i)
		rec := []string{
			strconv.FormatFloat(sample.Time, 'f', -1, 64),
			strconv.FormatFloat(sample.Conc, 'f', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func isTimeHeader(h string) bool {
	switch strings.ToLower(h) {
	case "t", "time", "time (s)", "time_s", "seconds":
		return true
	}
	return false
}

func isConcHeader(h string) bool {
	switch strings.ToLower(h) {
	case "conc", "concentration", "[a]", "[a] (m)", "c", "conc_m":
		return true
	}
	return false
}

func parseField(field string) (float64, bool) {
	s := strings.TrimSpace(strings.Trim(field, "\""))
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
