package texel

import (
	"math"
	"testing"
)

func TestPt(t *testing.T) {
	p := Pt(3, 4)
	if p.X != 3 || p.Y != 4 {
		t.Errorf("Pt(3, 4) = %v", p)
	}
}

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(3, -4)

	if got := p.Add(q); got != Pt(4, -2) {
		t.Errorf("Add() = %v, want (4, -2)", got)
	}
	if got := p.Sub(q); got != Pt(-2, 6) {
		t.Errorf("Sub() = %v, want (-2, 6)", got)
	}
	if got := p.Mul(2); got != Pt(2, 4) {
		t.Errorf("Mul(2) = %v, want (2, 4)", got)
	}
	if got := p.Div(2); got != Pt(0.5, 1) {
		t.Errorf("Div(2) = %v, want (0.5, 1)", got)
	}
}

func TestPoint_DotCross(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(3, 4)

	if got := p.Dot(q); got != 11 {
		t.Errorf("Dot() = %v, want 11", got)
	}
	if got := p.Cross(q); got != -2 {
		t.Errorf("Cross() = %v, want -2", got)
	}
}

func TestPoint_Length(t *testing.T) {
	p := Pt(3, 4)

	if got := p.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := p.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared() = %v, want 25", got)
	}
	if got := Pt(0, 0).Distance(p); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestPoint_Normalize(t *testing.T) {
	p := Pt(3, 4).Normalize()
	if math.Abs(p.Length()-1) > 1e-12 {
		t.Errorf("Normalize().Length() = %v, want 1", p.Length())
	}

	// Zero vector normalizes to zero, not NaN.
	z := Pt(0, 0).Normalize()
	if z != Pt(0, 0) {
		t.Errorf("Normalize() of zero = %v, want (0, 0)", z)
	}
}

func TestPoint_Lerp(t *testing.T) {
	p := Pt(0, 0)
	q := Pt(10, -10)

	if got := p.Lerp(q, 0); got != p {
		t.Errorf("Lerp(q, 0) = %v, want %v", got, p)
	}
	if got := p.Lerp(q, 1); got != q {
		t.Errorf("Lerp(q, 1) = %v, want %v", got, q)
	}
	if got := p.Lerp(q, 0.5); got != Pt(5, -5) {
		t.Errorf("Lerp(q, 0.5) = %v, want (5, -5)", got)
	}
}
