package element

import "testing"

func TestSymbol(t *testing.T) {
	cases := []struct {
		z    int
		want string
	}{
		{1, "H"},
		{6, "C"},
		{8, "O"},
		{54, "Xe"},
		{0, ""},
		{-3, ""},
		{55, ""},
	}
	for _, tc := range cases {
		if got := Symbol(tc.z); got != tc.want {
			t.Errorf("Symbol(%d) = %q, want %q", tc.z, got, tc.want)
		}
	}
}

func TestBraggSlaterRadiusPositive(t *testing.T) {
	for z := 1; z <= MaxTabulatedZ; z++ {
		if r := BraggSlaterRadius(z); r <= 0 {
			t.Errorf("BraggSlaterRadius(%d) = %v, want > 0", z, r)
		}
	}
}

func TestBraggSlaterRadiusFallback(t *testing.T) {
	if got := BraggSlaterRadius(92); got != DefaultRadius {
		t.Errorf("BraggSlaterRadius(92) = %v, want DefaultRadius %v", got, DefaultRadius)
	}
	if got := BraggSlaterRadius(0); got != DefaultRadius {
		t.Errorf("BraggSlaterRadius(0) = %v, want DefaultRadius %v", got, DefaultRadius)
	}
}

func TestNumber(t *testing.T) {
	cases := []struct {
		symbol string
		want   int
	}{
		{"H", 1},
		{"C", 6},
		{"Cl", 17},
		{"Xe", 54},
		{"h", 0},
		{"Uuo", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := Number(tc.symbol); got != tc.want {
			t.Errorf("Number(%q) = %d, want %d", tc.symbol, got, tc.want)
		}
	}
}

func TestNumberRoundTrip(t *testing.T) {
	for z := 1; z <= MaxTabulatedZ; z++ {
		if got := Number(Symbol(z)); got != z {
			t.Errorf("Number(Symbol(%d)) = %d", z, got)
		}
	}
}

func TestRow(t *testing.T) {
	cases := []struct{ z, want int }{
		{1, 1}, {2, 1}, {3, 2}, {10, 2}, {11, 3}, {18, 3}, {19, 4}, {36, 4}, {37, 5}, {80, 5},
	}
	for _, tc := range cases {
		if got := Row(tc.z); got != tc.want {
			t.Errorf("Row(%d) = %d, want %d", tc.z, got, tc.want)
		}
	}
}
