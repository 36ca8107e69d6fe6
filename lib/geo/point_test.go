package geo

import (
	"testing"
)

func TestPointDistanceTo(t *testing.T) {
	p1 := &Point{0, 0}
	p2 := &Point{3, 4}

	d := p1.DistanceTo(p2)

	if d != 5.0 {
		t.Fatalf("Expected 5.0 and got %v", d)
	}
	if d2 := p2.DistanceTo(p1); d2 != d {
		t.Fatalf("Expected distance to be symmetric, got %v and %v", d, d2)
	}
}

func TestPointsToString(t *testing.T) {
	ps := Points{NewPoint(1.5, 2), NewPoint(-3, 0)}
	if s := ps.ToString(); s != "(1.5, 2), (-3, 0)" {
		t.Fatalf("unexpected string %q", s)
	}

	var p *Point
	if p.ToString() != "" {
		t.Fatal("Expected nil point to print as empty")
	}
}
