package extinction

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	// At x = 1 µm⁻¹ the curve is pure infrared power law:
	// a = 0.574, b = -0.527.
	c := SMC.Curve(NewGrid([]float64{1.0}, PerMicrometer), 3.1)
	got, err := c.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.574 - 0.527/3.1}
	diff(t, want, got, approx(1e-12))
}

func TestEvaluateDefaults(t *testing.T) {
	g := NewGrid([]float64{1.0, 3.0, 7.0}, PerMicrometer)
	c := New(g)
	if c.RV() != DefaultRV {
		t.Errorf("got rv %v, want %v", c.RV(), DefaultRV)
	}
	got, err := c.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	want, err := SMC.Curve(g, DefaultRV).Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, got)
}

func TestEvaluateUnitEquivalence(t *testing.T) {
	wavenumbers := []float64{0.8, 1.0, 2.5, 4.6, 6.5, 8.0}
	wavelengths := make([]float64, len(wavenumbers))
	for i, x := range wavenumbers {
		wavelengths[i] = 1 / x
	}
	for _, l := range []Law{SMC, CCM89} {
		byNumber, err := l.Curve(NewGrid(wavenumbers, PerMicrometer), 3.1).Evaluate()
		if err != nil {
			t.Fatal(err)
		}
		byLength, err := l.Curve(NewGrid(wavelengths, Micrometer), 3.1).Evaluate()
		if err != nil {
			t.Fatal(err)
		}
		diff(t, byNumber, byLength, approx(1e-9))
	}
}

func TestEvaluateAlignment(t *testing.T) {
	xs := []float64{8.0, 0.5, 4.6, 1.0, 3.0}
	got, err := New(NewGrid(xs, PerMicrometer)).Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(xs) {
		t.Fatalf("got %d values for %d samples", len(got), len(xs))
	}
	// Results follow grid order, not wavenumber order.
	for i, x := range xs {
		one, err := New(NewGrid([]float64{x}, PerMicrometer)).Evaluate()
		if err != nil {
			t.Fatal(err)
		}
		if got[i] != one[0] {
			t.Errorf("sample %d: got %v, want %v", i, got[i], one[0])
		}
	}
}

func TestEvaluateZeroRV(t *testing.T) {
	c := SMC.Curve(NewGrid([]float64{1.0}, PerMicrometer), 0)
	if _, err := c.Evaluate(); !errors.Is(err, ErrZeroRV) {
		t.Fatalf("got %v, want ErrZeroRV", err)
	}
}

func TestEvaluateNegativeRV(t *testing.T) {
	// Negative rv is physically meaningless but mathematically fine; the
	// curve is just rescaled.
	g := NewGrid([]float64{1.0}, PerMicrometer)
	got, err := SMC.Curve(g, -2).Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.574 + 0.527/2}
	diff(t, want, got, approx(1e-12))
}

func TestEvaluatePropagatesUnitErrors(t *testing.T) {
	if _, err := New(NewGrid([]float64{1.0}, nil)).Evaluate(); !errors.Is(err, ErrMissingUnit) {
		t.Fatalf("got %v, want ErrMissingUnit", err)
	}
}

func TestEvaluateRecomputes(t *testing.T) {
	c := New(NewGrid([]float64{1.0, 4.6}, PerMicrometer))
	first, err := c.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	want := append([]float64(nil), first...)
	first[0] = math.NaN()
	second, err := c.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, second)
}

// At the V band (0.55 µm) the Galactic curve is normalized to itself, so the
// result must sit at 1 regardless of rv.
func TestEvaluateVBandIdentity(t *testing.T) {
	g := NewGrid([]float64{0.55}, Micrometer)
	for _, rv := range []float64{2.0, 3.1, 3.4, 5.0} {
		got, err := CCM89.Curve(g, rv).Evaluate()
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got[0]-1) > 5e-3 {
			t.Errorf("rv = %v: A(V)/A(V) = %v, want 1", rv, got[0])
		}
	}
}
