package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gokinetics/autoorder"
	"github.com/sartorproj/gokinetics/series"
)

// analyzed returns a first-order decay series and its analysis result.
func analyzed(t *testing.T) (*series.Series, *autoorder.Result) {
	t.Helper()

	s, err := series.New(
		[]float64{0, 50, 100, 150, 200, 250},
		[]float64{10.0, 7.80, 6.05, 4.72, 3.68, 2.86},
	)
	require.NoError(t, err)

	result, err := autoorder.DetermineOrder(s)
	require.NoError(t, err)

	return s, result
}

func TestConsole(t *testing.T) {
	s, result := analyzed(t)

	var buf bytes.Buffer
	err := Console(&buf, s, result)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "Determined reaction order: first")
	require.Contains(t, out, "Rate constant k = 5.0061e-03 1/s")
	require.Contains(t, out, "R² = 1.0000")
	require.Contains(t, out, "Half-life")
	require.Contains(t, out, "Candidate fits:")
	require.Contains(t, out, "* first")
	require.Contains(t, out, "6 over 250 s")
}

func TestWriteJSON(t *testing.T) {
	s, result := analyzed(t)

	var buf bytes.Buffer
	err := WriteJSON(&buf, s, result)
	require.NoError(t, err)

	var decoded struct {
		Times         []float64 `json:"times"`
		SelectedOrder string    `json:"selected_order"`
		RateConstant  float64   `json:"rate_constant"`
		RateUnits     string    `json:"rate_units"`
		RSquared      float64   `json:"r_squared"`
		HalfLife      *float64  `json:"half_life"`
		Transformed   []struct {
			T float64 `json:"t"`
			Y float64 `json:"y"`
		} `json:"transformed"`
		Fitted     []float64 `json:"fitted"`
		Candidates []struct {
			Order    string   `json:"order"`
			RSquared *float64 `json:"r_squared"`
		} `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Equal(t, "first", decoded.SelectedOrder)
	require.Equal(t, "1/s", decoded.RateUnits)
	require.Len(t, decoded.Times, 6)
	require.Len(t, decoded.Transformed, 6)
	require.Len(t, decoded.Fitted, 6)
	require.Len(t, decoded.Candidates, 3)
	require.InDelta(t, 0.0050061, decoded.RateConstant, 1e-5)
	require.Greater(t, decoded.RSquared, 0.999)
	require.NotNil(t, decoded.HalfLife)

	for _, c := range decoded.Candidates {
		require.NotNil(t, c.RSquared, "candidate %s should have a defined R²", c.Order)
	}
}

func TestSavePlot(t *testing.T) {
	s, result := analyzed(t)

	for _, name := range []string{"fit.svg", "fit.png"} {
		path := filepath.Join(t.TempDir(), name)

		err := SavePlot(path, s, result)
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Greater(t, info.Size(), int64(0))
	}
}
