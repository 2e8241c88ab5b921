package texel

import (
	"math"
	"testing"
)

func TestClipToScreen(t *testing.T) {
	tests := []struct {
		name          string
		p             Point
		width, height int
		wantX, wantY  float64
	}{
		{"center maps to window center", Pt(0, 0), 800, 600, 400, 300},
		{"top-left corner", Pt(-1, 1), 800, 600, 0, 0},
		{"bottom-right corner", Pt(1, -1), 800, 600, 800, 600},
		{"top-right corner", Pt(1, 1), 640, 480, 640, 0},
		{"bottom-left corner", Pt(-1, -1), 640, 480, 0, 480},
		{"y flips sign", Pt(0, 0.5), 100, 100, 50, 25},
		{"non-square window", Pt(0.5, 0), 200, 100, 150, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClipToScreen(tt.p, tt.width, tt.height)
			if math.Abs(got.X-tt.wantX) > 1e-9 || math.Abs(got.Y-tt.wantY) > 1e-9 {
				t.Errorf("ClipToScreen(%v, %d, %d) = %v, want (%v, %v)",
					tt.p, tt.width, tt.height, got, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestScreenToClip(t *testing.T) {
	tests := []struct {
		name          string
		p             Point
		width, height int
		wantX, wantY  float64
	}{
		{"window center maps to origin", Pt(400, 300), 800, 600, 0, 0},
		{"top-left corner", Pt(0, 0), 800, 600, -1, 1},
		{"bottom-right corner", Pt(800, 600), 800, 600, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScreenToClip(tt.p, tt.width, tt.height)
			if math.Abs(got.X-tt.wantX) > 1e-9 || math.Abs(got.Y-tt.wantY) > 1e-9 {
				t.Errorf("ScreenToClip(%v, %d, %d) = %v, want (%v, %v)",
					tt.p, tt.width, tt.height, got, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestClipScreenRoundTrip(t *testing.T) {
	dims := []struct{ w, h int }{
		{1, 1}, {640, 480}, {800, 600}, {1920, 1080}, {123, 457},
	}

	for _, d := range dims {
		// Dense grid over [-1,1]^2.
		for i := -10; i <= 10; i++ {
			for j := -10; j <= 10; j++ {
				p := Pt(float64(i)/10, float64(j)/10)
				got := ScreenToClip(ClipToScreen(p, d.w, d.h), d.w, d.h)
				if math.Abs(got.X-p.X) > 1e-5 || math.Abs(got.Y-p.Y) > 1e-5 {
					t.Fatalf("round trip of %v through %dx%d = %v", p, d.w, d.h, got)
				}
			}
		}
	}
}
