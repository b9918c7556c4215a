package core

import "testing"

func TestScaleClamps(t *testing.T) {
	c := RGB{R: 100, G: 100, B: 100}
	if got := c.Scale(-1); got != RGBBlack {
		t.Errorf("Negative factor: expected black, got %+v", got)
	}
	if got := c.Scale(2); got != c {
		t.Errorf("Factor above 1: expected unchanged, got %+v", got)
	}
	if got := c.Scale(0.5); got.R != 50 || got.G != 50 || got.B != 50 {
		t.Errorf("Factor 0.5: expected half intensity, got %+v", got)
	}
}

func TestLerpRGB(t *testing.T) {
	a := RGB{R: 0, G: 0, B: 0}
	b := RGB{R: 200, G: 100, B: 50}

	if got := LerpRGB(a, b, 0); got != a {
		t.Errorf("t=0: expected %+v, got %+v", a, got)
	}
	if got := LerpRGB(a, b, 1); got != b {
		t.Errorf("t=1: expected %+v, got %+v", b, got)
	}
	mid := LerpRGB(a, b, 0.5)
	if mid.R != 100 || mid.G != 50 || mid.B != 25 {
		t.Errorf("t=0.5: expected (100, 50, 25), got %+v", mid)
	}
}

func TestStaticAnchorRoundTrip(t *testing.T) {
	a := &StaticAnchor{}
	a.SetPosition(3.5, -2)
	x, y := a.Position()
	if x != 3.5 || y != -2 {
		t.Errorf("Expected (3.5, -2), got (%g, %g)", x, y)
	}
}
