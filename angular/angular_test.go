package angular

import (
	"errors"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/SophiaLi20/grid/internal/monitoring"
)

func TestLebedevWeightSumIs4Pi(t *testing.T) {
	for _, deg := range (Lebedev{}).Degrees() {
		g, err := Lebedev{}.Build(deg)
		if err != nil {
			t.Fatalf("degree %d: %v", deg, err)
		}
		if got := g.WeightSum(); math.Abs(got-4*math.Pi) > 1e-12 {
			t.Errorf("degree %d: weight sum = %v, want 4π", deg, got)
		}
	}
}

func TestLebedevPointsOnUnitSphere(t *testing.T) {
	for _, deg := range (Lebedev{}).Degrees() {
		g, err := Lebedev{}.Build(deg)
		if err != nil {
			t.Fatalf("degree %d: %v", deg, err)
		}
		for i, p := range g.Points {
			if norm := r3.Norm(p); math.Abs(norm-1) > 1e-13 {
				t.Errorf("degree %d point %d: |p| = %v, want 1", deg, i, norm)
			}
		}
	}
}

func TestLebedevSizes(t *testing.T) {
	want := map[int]int{3: 6, 5: 14, 7: 26, 9: 38, 11: 50, 13: 74, 15: 86, 17: 110, 19: 146, 23: 194}
	for deg, n := range want {
		g, err := Lebedev{}.Build(deg)
		if err != nil {
			t.Fatalf("degree %d: %v", deg, err)
		}
		if g.Len() != n {
			t.Errorf("degree %d: %d points, want %d", deg, g.Len(), n)
		}
	}
}

func TestLebedevRoundsUpToSupportedDegree(t *testing.T) {
	cases := []struct{ request, want int }{
		{0, 3}, {1, 3}, {4, 5}, {10, 11}, {12, 13}, {20, 23}, {21, 23}, {23, 23},
	}
	for _, tc := range cases {
		g, err := Lebedev{}.Build(tc.request)
		if err != nil {
			t.Fatalf("degree %d: %v", tc.request, err)
		}
		if g.Degree != tc.want {
			t.Errorf("Build(%d).Degree = %d, want %d", tc.request, g.Degree, tc.want)
		}
	}
}

func TestLebedevRejectsExcessiveDegree(t *testing.T) {
	for _, deg := range []int{24, 100, -1} {
		if _, err := (Lebedev{}).Build(deg); !errors.Is(err, ErrUnsupportedDegree) {
			t.Errorf("Build(%d) error = %v, want ErrUnsupportedDegree", deg, err)
		}
	}
}

// exactness checks every monomial x^i y^j z^k with i+j+k <= degree against
// the closed-form surface integral. Odd powers integrate to zero; for all
// even powers the integral is 4π·(i-1)!!(j-1)!!(k-1)!!/(i+j+k+1)!!.
func exactness(t *testing.T, g *Grid, degree int) {
	t.Helper()
	for i := 0; i <= degree; i++ {
		for j := 0; j <= degree-i; j++ {
			for k := 0; k <= degree-i-j; k++ {
				var sum float64
				for n, p := range g.Points {
					sum += g.Weights[n] * math.Pow(p.X, float64(i)) * math.Pow(p.Y, float64(j)) * math.Pow(p.Z, float64(k))
				}
				want := 0.0
				if i%2 == 0 && j%2 == 0 && k%2 == 0 {
					want = 4 * math.Pi * doubleFactorial(i-1) * doubleFactorial(j-1) * doubleFactorial(k-1) / doubleFactorial(i+j+k+1)
				}
				if math.Abs(sum-want) > 1e-10 {
					t.Errorf("monomial x^%d y^%d z^%d: got %v, want %v", i, j, k, sum, want)
				}
			}
		}
	}
}

func doubleFactorial(n int) float64 {
	out := 1.0
	for n > 1 {
		out *= float64(n)
		n -= 2
	}
	return out
}

func TestLebedevPolynomialExactness(t *testing.T) {
	for _, deg := range []int{3, 7, 11, 13, 17} {
		g, err := Lebedev{}.Build(deg)
		if err != nil {
			t.Fatal(err)
		}
		exactness(t, g, deg)
	}
}

func TestGaussProductPolynomialExactness(t *testing.T) {
	for _, deg := range []int{0, 4, 9, 15, 25} {
		g, err := GaussProduct{}.Build(deg)
		if err != nil {
			t.Fatal(err)
		}
		exactness(t, g, deg)
		if math.Abs(g.WeightSum()-4*math.Pi) > 1e-11 {
			t.Errorf("degree %d: weight sum = %v, want 4π", deg, g.WeightSum())
		}
	}
}

func TestGaussProductBuildsEveryDegree(t *testing.T) {
	// Unlike the tabulated Lebedev rule, the product rule must cover any
	// degree up to the cap, including the high-degree shells used for
	// heavy atoms.
	for _, deg := range []int{1, 2, 10, 23, 51, 75} {
		g, err := GaussProduct{}.Build(deg)
		if err != nil {
			t.Fatalf("Build(%d): %v", deg, err)
		}
		if g.Degree != deg {
			t.Errorf("Build(%d) reports degree %d", deg, g.Degree)
		}
		if math.Abs(g.WeightSum()-4*math.Pi) > 1e-10 {
			t.Errorf("degree %d: weight sum = %v, want 4π", deg, g.WeightSum())
		}
	}
}

func TestGaussProductRejectsOutOfRangeDegree(t *testing.T) {
	for _, deg := range []int{-1, MaxProductDegree + 1} {
		if _, err := (GaussProduct{}).Build(deg); !errors.Is(err, ErrUnsupportedDegree) {
			t.Errorf("Build(%d) error = %v, want ErrUnsupportedDegree", deg, err)
		}
	}
}

func TestNegativeWeightDiagnostic(t *testing.T) {
	var captured []string
	monitoring.SetLogger(func(format string, v ...interface{}) {
		captured = append(captured, format)
	})
	defer monitoring.SetLogger(nil)

	// Degree 13 is the tabulated rule with a genuinely negative orbit weight.
	if _, err := (Lebedev{}).Build(13); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, msg := range captured {
		if strings.Contains(msg, "negative weight") {
			found = true
		}
	}
	if !found {
		t.Error("expected a negative-weight diagnostic for the 74-point grid")
	}

	// Positive-weight grids must stay silent.
	captured = nil
	if _, err := (Lebedev{}).Build(11); err != nil {
		t.Fatal(err)
	}
	if len(captured) != 0 {
		t.Errorf("unexpected diagnostics for degree 11: %v", captured)
	}
}

func TestSizeToDegree(t *testing.T) {
	cases := []struct {
		rule Rule
		size int
		want int
	}{
		{Lebedev{}, 1, 3},
		{Lebedev{}, 6, 3},
		{Lebedev{}, 7, 5},
		{Lebedev{}, 50, 11},
		{Lebedev{}, 51, 13},
		{Lebedev{}, 194, 23},
	}
	for _, tc := range cases {
		got, err := SizeToDegree(tc.rule, tc.size)
		if err != nil {
			t.Fatalf("SizeToDegree(%s, %d): %v", tc.rule.Name(), tc.size, err)
		}
		if got != tc.want {
			t.Errorf("SizeToDegree(%s, %d) = %d, want %d", tc.rule.Name(), tc.size, got, tc.want)
		}
	}
}

func TestSizeToDegreeTooLarge(t *testing.T) {
	if _, err := SizeToDegree(Lebedev{}, 1000); !errors.Is(err, ErrUnsupportedDegree) {
		t.Errorf("size 1000: %v, want ErrUnsupportedDegree", err)
	}
	if _, err := SizeToDegree(Lebedev{}, 0); !errors.Is(err, ErrUnsupportedDegree) {
		t.Errorf("size 0: %v, want ErrUnsupportedDegree", err)
	}
}
