package stats

import (
	"errors"
	"math"
	"testing"
)

func TestLinearExactLine(t *testing.T) {
	// y = 2x + 1, noise-free
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 5, 7, 9}

	fit, err := Linear(x, y)
	if err != nil {
		t.Fatalf("Linear returned error: %v", err)
	}

	if math.Abs(fit.Slope-2) > 1e-12 {
		t.Errorf("Slope: expected 2, got %f", fit.Slope)
	}
	if math.Abs(fit.Intercept-1) > 1e-12 {
		t.Errorf("Intercept: expected 1, got %f", fit.Intercept)
	}
	if math.Abs(fit.RSquared-1) > 1e-12 {
		t.Errorf("RSquared: expected 1, got %f", fit.RSquared)
	}
	if fit.N != 5 {
		t.Errorf("N: expected 5, got %d", fit.N)
	}
}

func TestLinearNoisyData(t *testing.T) {
	// y ≈ 0.5x + 2 with small perturbations
	x := []float64{0, 1, 2, 3, 4, 5}
	y := []float64{2.1, 2.4, 3.05, 3.45, 4.0, 4.55}

	fit, err := Linear(x, y)
	if err != nil {
		t.Fatalf("Linear returned error: %v", err)
	}

	if math.Abs(fit.Slope-0.5) > 0.05 {
		t.Errorf("Slope: expected ~0.5, got %f", fit.Slope)
	}
	if fit.RSquared < 0.99 || fit.RSquared > 1 {
		t.Errorf("RSquared: expected in (0.99, 1], got %f", fit.RSquared)
	}
}

func TestLinearTwoPoints(t *testing.T) {
	// Any two points with distinct x form an exact line
	fit, err := Linear([]float64{1, 3}, []float64{5, 1})
	if err != nil {
		t.Fatalf("Linear returned error: %v", err)
	}
	if math.Abs(fit.Slope+2) > 1e-12 {
		t.Errorf("Slope: expected -2, got %f", fit.Slope)
	}
	if math.Abs(fit.RSquared-1) > 1e-12 {
		t.Errorf("RSquared: expected 1, got %f", fit.RSquared)
	}
}

func TestLinearPredict(t *testing.T) {
	fit := Fit{Slope: 3, Intercept: -1}
	if got := fit.Predict(2); got != 5 {
		t.Errorf("Predict(2): expected 5, got %f", got)
	}
}

func TestLinearConstantY(t *testing.T) {
	// Constant y is fitted exactly: slope 0, R² 1 by convention
	fit, err := Linear([]float64{0, 1, 2, 3}, []float64{4, 4, 4, 4})
	if err != nil {
		t.Fatalf("Linear returned error: %v", err)
	}
	if math.Abs(fit.Slope) > 1e-12 {
		t.Errorf("Slope: expected 0, got %f", fit.Slope)
	}
	if fit.RSquared != 1 {
		t.Errorf("RSquared: expected 1 for constant y, got %f", fit.RSquared)
	}
	if !fit.Defined() {
		t.Error("Fit should be defined for constant y with zero residual")
	}
}

func TestLinearTooFewPoints(t *testing.T) {
	_, err := Linear([]float64{1}, []float64{2})
	if !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("Expected ErrTooFewPoints, got %v", err)
	}
}

func TestLinearLengthMismatch(t *testing.T) {
	_, err := Linear([]float64{1, 2, 3}, []float64{1, 2})
	if err == nil {
		t.Error("Expected error for mismatched lengths")
	}
}

func TestLinearSingular(t *testing.T) {
	// All x identical: slope denominator is zero
	_, err := Linear([]float64{5, 5, 5}, []float64{1, 2, 3})
	if !errors.Is(err, ErrSingular) {
		t.Errorf("Expected ErrSingular, got %v", err)
	}
}

func TestLinearRSquaredRange(t *testing.T) {
	// Scattered data: R² must stay within [0, 1]
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	y := []float64{3, -1, 4, 1, 5, -2, 6, 0}

	fit, err := Linear(x, y)
	if err != nil {
		t.Fatalf("Linear returned error: %v", err)
	}
	if fit.RSquared < 0 || fit.RSquared > 1 {
		t.Errorf("RSquared out of [0,1]: %f", fit.RSquared)
	}
}
