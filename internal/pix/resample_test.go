package pix

import (
	"errors"
	"testing"
)

func TestHalfDimension(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{256, 128},
		{3, 1},
		{2, 1},
		{1, 1},
	}
	for _, tt := range tests {
		if got := HalfDimension(tt.in); got != tt.want {
			t.Errorf("HalfDimension(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// gradientBuffer fills an RGBA8 buffer with a position-derived pattern so
// resampled output is non-trivial.
func gradientBuffer(t *testing.T, w, h int) *Buffer {
	t.Helper()
	buf, err := New(w, h, FormatRGBA8)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for y := range h {
		for x := range w {
			r := uint8((x * 255) / w)
			g := uint8((y * 255) / h)
			_ = buf.SetRGBA(x, y, r, g, 128, 255)
		}
	}
	return buf
}

func TestHalve_AllFilters(t *testing.T) {
	filters := []Filter{
		FilterNearest, FilterBox, FilterBilinear,
		FilterCatmullRom, FilterLanczos2, FilterLanczos3,
	}

	for _, f := range filters {
		t.Run(f.String(), func(t *testing.T) {
			src := gradientBuffer(t, 16, 8)
			dst, _ := New(8, 4, FormatRGBA8)

			if err := Halve(dst, src, f); err != nil {
				t.Fatalf("Halve() error = %v", err)
			}

			// Every filter keeps the constant channels constant, up to
			// one unit of fixed-point rounding.
			for y := range 4 {
				for x := range 8 {
					_, _, b, a := dst.GetRGBA(x, y)
					if b < 127 || b > 129 {
						t.Fatalf("pixel (%d,%d) b = %d, want ~128", x, y, b)
					}
					if a < 254 {
						t.Fatalf("pixel (%d,%d) a = %d, want ~255", x, y, a)
					}
				}
			}
		})
	}
}

func TestHalve_BoxAverages(t *testing.T) {
	src, _ := New(2, 2, FormatRGBA8)
	_ = src.SetRGBA(0, 0, 0, 0, 0, 255)
	_ = src.SetRGBA(1, 0, 100, 0, 0, 255)
	_ = src.SetRGBA(0, 1, 100, 0, 0, 255)
	_ = src.SetRGBA(1, 1, 200, 0, 0, 255)

	dst, _ := New(1, 1, FormatRGBA8)
	if err := Halve(dst, src, FilterBox); err != nil {
		t.Fatalf("Halve() error = %v", err)
	}

	r, _, _, a := dst.GetRGBA(0, 0)
	if r != 100 {
		t.Errorf("box average r = %d, want 100", r)
	}
	if a != 255 {
		t.Errorf("box average a = %d, want 255", a)
	}
}

func TestHalve_OddDimensions(t *testing.T) {
	src := gradientBuffer(t, 5, 3)
	dst, _ := New(2, 1, FormatRGBA8)

	if err := Halve(dst, src, FilterBox); err != nil {
		t.Fatalf("Halve() with odd source error = %v", err)
	}
}

func TestHalve_MinimumSize(t *testing.T) {
	// 1x1 halves to 1x1.
	src := gradientBuffer(t, 1, 1)
	dst, _ := New(1, 1, FormatRGBA8)

	if err := Halve(dst, src, FilterBox); err != nil {
		t.Fatalf("Halve() at 1x1 error = %v", err)
	}
}

func TestHalve_Errors(t *testing.T) {
	src := gradientBuffer(t, 8, 8)

	t.Run("size mismatch", func(t *testing.T) {
		dst, _ := New(3, 4, FormatRGBA8)
		if err := Halve(dst, src, FilterBox); !errors.Is(err, ErrSizeMismatch) {
			t.Errorf("Halve() error = %v, want ErrSizeMismatch", err)
		}
	})

	t.Run("non-RGBA8 source", func(t *testing.T) {
		gray, _ := New(8, 8, FormatGray8)
		dst, _ := New(4, 4, FormatRGBA8)
		if err := Halve(dst, gray, FilterBox); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Halve() error = %v, want ErrInvalidFormat", err)
		}
	})

	t.Run("unknown filter", func(t *testing.T) {
		dst, _ := New(4, 4, FormatRGBA8)
		if err := Halve(dst, src, Filter(200)); !errors.Is(err, ErrUnsupportedFilter) {
			t.Errorf("Halve() error = %v, want ErrUnsupportedFilter", err)
		}
	})

	t.Run("nil buffers", func(t *testing.T) {
		if err := Halve(nil, src, FilterBox); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("Halve(nil dst) error = %v, want ErrInvalidDimensions", err)
		}
	})
}

func TestFilter_String(t *testing.T) {
	tests := []struct {
		filter   Filter
		expected string
	}{
		{FilterNearest, "Nearest"},
		{FilterBox, "Box"},
		{FilterBilinear, "Bilinear"},
		{FilterCatmullRom, "CatmullRom"},
		{FilterLanczos2, "Lanczos2"},
		{FilterLanczos3, "Lanczos3"},
		{Filter(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.filter.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}
