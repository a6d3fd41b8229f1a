package domain

import "testing"

func TestFloatEquals(t *testing.T) {
	cases := []struct {
		a, b float64
		want bool
	}{
		{1.0, 1.0, true},
		{1.0, 1.0 + 1e-12, true},
		{1.0, 1.0 + 1e-6, false},
		{0.0, -0.0, true},
	}
	for _, c := range cases {
		if got := FloatEquals(c.a, c.b); got != c.want {
			t.Errorf("FloatEquals(%g, %g) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestFloatLess(t *testing.T) {
	cases := []struct {
		a, b float64
		want bool
	}{
		{1.0, 2.0, true},
		{2.0, 1.0, false},
		{1.0, 1.0, false},
		{1.0, 1.0 + 1e-12, false},
	}
	for _, c := range cases {
		if got := FloatLess(c.a, c.b); got != c.want {
			t.Errorf("FloatLess(%g, %g) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
