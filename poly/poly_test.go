package poly

import (
	"testing"

	"github.com/cwbudde/algo-lockboost/internal/testutil"
)

func TestEvalHorner(t *testing.T) {
	// 2x^3 - x + 5 at x = 3: 54 - 3 + 5 = 56
	p := New(2, 0, -1, 5)
	if got := p.Eval(3); got != 56 {
		t.Fatalf("Eval(3) = %v, want 56", got)
	}

	if p.Degree() != 3 {
		t.Fatalf("Degree() = %d, want 3", p.Degree())
	}
}

func TestZeroValue(t *testing.T) {
	var p Polynomial

	if got := p.Eval(7); got != 0 {
		t.Fatalf("zero polynomial Eval = %v", got)
	}

	if got := p.String(); got != "0" {
		t.Fatalf("zero polynomial String = %q", got)
	}

	out := []float64{1, 2}
	p.EvalInto(out, []float64{3, 4})
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 0}, 0)
}

func TestNewCopiesCoefficients(t *testing.T) {
	c := []float64{1, 2, 3}
	p := New(c...)
	c[0] = 100

	if got := p.Coeffs()[0]; got != 1 {
		t.Fatalf("polynomial aliased caller slice: c0 = %v", got)
	}

	p.Coeffs()[1] = 100
	if got := p.Coeffs()[1]; got != 2 {
		t.Fatalf("Coeffs exposed internal slice: c1 = %v", got)
	}
}

func TestEvalIntoMatchesEval(t *testing.T) {
	p := New(testutil.BoostCubic...)
	xs := testutil.Ramp(90, 1006)

	got := p.EvalAll(xs)
	want := testutil.Sample(testutil.BoostCubic, xs)

	testutil.RequireFinite(t, got)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestEvalIntoShortDestinationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for short destination")
		}
	}()

	New(1, 2).EvalInto(make([]float64, 1), []float64{1, 2})
}

func TestDerivative(t *testing.T) {
	d := New(2, 0, -1, 5).Derivative()
	testutil.RequireSliceNearlyEqual(t, d.Coeffs(), []float64{6, 0, -1}, 0)

	c := New(4).Derivative()
	testutil.RequireSliceNearlyEqual(t, c.Coeffs(), []float64{0}, 0)
}

func TestString(t *testing.T) {
	tests := []struct {
		p    Polynomial
		want string
	}{
		{New(testutil.BoostCubic...), "1.541e-09 x^3 - 7.486e-07 x^2 + 0.001163 x + 0.9003"},
		{New(-1, 0, 2), "-1 x^2 + 2"},
		{New(0, 3, -0.5), "3 x - 0.5"},
		{New(0, 0), "0"},
	}

	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRealRoots(t *testing.T) {
	roots, err := New(1, -6, 11, -6).RealRoots()
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, roots, []float64{1, 2, 3}, 1e-9)
}

func TestNondecreasingOn(t *testing.T) {
	tests := []struct {
		name   string
		p      Polynomial
		lo, hi float64
		want   bool
	}{
		{"boost curve", New(testutil.BoostCubic...), 90, 1095, true},
		{"boost curve wide", New(testutil.BoostCubic...), -1e4, 1e4, true},
		{"constant", New(3), 0, 10, true},
		{"flat quadratic coefficients", New(0, 0, 5), 0, 10, true},
		{"decreasing line", New(-1, 0), 0, 10, false},
		{"parabola right half", New(1, 0, 0), 0, 5, true},
		{"parabola both sides", New(1, 0, 0), -1, 5, false},
		{"cubic with dip", New(1, -6, 9, 0), 0, 4, false},
		{"cubic before dip", New(1, -6, 9, 0), -2, 1, true},
		{"reversed bounds", New(1, 0, 0), 5, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.p.NondecreasingOn(tt.lo, tt.hi)
			if err != nil {
				t.Fatal(err)
			}

			if got != tt.want {
				t.Errorf("NondecreasingOn(%v, %v) = %v, want %v", tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
