package texel

import "testing"

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		x    int
		want bool
	}{
		{1, true},
		{2, true},
		{3, false},
		{4, true},
		{256, true},
		{300, false},
		{1023, false},
		{1024, true},
		// Known quirk of x&(x-1): zero reports true. Callers reject
		// zero dimensions before asking.
		{0, true},
	}

	for _, tt := range tests {
		if got := IsPowerOfTwo(tt.x); got != tt.want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestMaxMipmapLevels(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          int
	}{
		{"1x1 minimum", 1, 1, 1},
		{"256 square", 256, 256, 9},
		{"larger dimension wins", 256, 128, 9},
		{"order independent", 128, 256, 9},
		{"64 square", 64, 64, 7},
		{"non-power-of-two", 300, 300, 9},
		{"tall strip", 1, 1024, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxMipmapLevels(tt.width, tt.height); got != tt.want {
				t.Errorf("MaxMipmapLevels(%d, %d) = %d, want %d",
					tt.width, tt.height, got, tt.want)
			}
		})
	}
}

// TestMaxMipmapLevels_Simulation verifies the shift-based count against a
// direct halving simulation for a spread of sizes.
func TestMaxMipmapLevels_Simulation(t *testing.T) {
	for _, size := range []int{1, 2, 3, 7, 100, 255, 256, 257, 300, 999, 4096} {
		want := 1
		for s := size; s > 1; s /= 2 {
			want++
		}
		if got := MaxMipmapLevels(size, size); got != want {
			t.Errorf("MaxMipmapLevels(%d, %d) = %d, simulation gives %d",
				size, size, got, want)
		}
	}
}

func TestMipDimension(t *testing.T) {
	tests := []struct {
		base, level, want int
	}{
		{256, 0, 256},
		{256, 1, 128},
		{256, 8, 1},
		{256, 12, 1}, // floors at 1 past the natural maximum
		{1, 0, 1},
		{1, 5, 1},
	}

	for _, tt := range tests {
		if got := MipDimension(tt.base, tt.level); got != tt.want {
			t.Errorf("MipDimension(%d, %d) = %d, want %d",
				tt.base, tt.level, got, tt.want)
		}
	}
}
