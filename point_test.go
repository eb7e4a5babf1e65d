package sinecure

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(4, 6).Midpoint(Pt(2, 10)), Pt(3, 8))
	diff(t, Pt(0, 0).Lerp(Pt(10, 4), 0.25), Pt(2.5, 1))
}

func TestPointSplat(t *testing.T) {
	x, y := Pt(3, -4).Splat()
	if x != 3 || y != -4 {
		t.Errorf("got (%v, %v), want (3, -4)", x, y)
	}
	if s := Pt(2.5, -1).String(); s != "(2.5, -1)" {
		t.Errorf("got %q", s)
	}
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}
