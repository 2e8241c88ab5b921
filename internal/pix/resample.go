package pix

import (
	"errors"
	"fmt"
	"image"

	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// Resampling errors.
var (
	// ErrUnsupportedFilter is returned when the filter is not recognized.
	ErrUnsupportedFilter = errors.New("pix: unsupported filter")

	// ErrSizeMismatch is returned when the destination of a halving step
	// does not have half the source dimensions (floored at 1).
	ErrSizeMismatch = errors.New("pix: destination is not half the source size")
)

// Filter selects the resampling kernel used to produce a mipmap level
// from the level above it.
type Filter uint8

const (
	// FilterNearest selects the closest source pixel. Fastest, blockiest.
	FilterNearest Filter = iota

	// FilterBox averages the 2x2 source region behind each destination
	// pixel. The classic mipmap downsampling filter.
	FilterBox

	// FilterBilinear weighs source pixels linearly. The default, matching
	// what most CPU rasterizer texture pipelines use for minification
	// chains.
	FilterBilinear

	// FilterCatmullRom applies a Catmull-Rom cubic kernel. Sharper than
	// bilinear at the cost of speed.
	FilterCatmullRom

	// FilterLanczos2 applies a Lanczos kernel with radius 2.
	FilterLanczos2

	// FilterLanczos3 applies a Lanczos kernel with radius 3. Highest
	// quality of the built-in filters, and the slowest.
	FilterLanczos3
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterBox:
		return "Box"
	case FilterBilinear:
		return "Bilinear"
	case FilterCatmullRom:
		return "CatmullRom"
	case FilterLanczos2:
		return "Lanczos2"
	case FilterLanczos3:
		return "Lanczos3"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the filter is a known filter.
func (f Filter) IsValid() bool {
	return f <= FilterLanczos3
}

// HalfDimension returns the size of the next level down from a dimension:
// the integer half, floored at 1.
func HalfDimension(d int) int {
	return max(1, d>>1)
}

// Halve resamples src into dst, which must already be allocated with
// dst.Width() == HalfDimension(src.Width()) and the same for height.
// Both buffers must be RGBA8; halving happens after normalization so
// every level of a pyramid shares one format.
//
// Each call reads only src, so a chain built by repeated Halve calls is
// a true successive pyramid: level i is computed from level i-1, never
// from the base.
func Halve(dst, src *Buffer, f Filter) error {
	if src == nil || dst == nil {
		return ErrInvalidDimensions
	}
	if src.format != FormatRGBA8 || dst.format != FormatRGBA8 {
		return fmt.Errorf("pix: halve %v to %v: %w", src.format, dst.format, ErrInvalidFormat)
	}
	if dst.width != HalfDimension(src.width) || dst.height != HalfDimension(src.height) {
		return fmt.Errorf("pix: halve %dx%d to %dx%d: %w",
			src.width, src.height, dst.width, dst.height, ErrSizeMismatch)
	}

	switch f {
	case FilterBox:
		halveBox(dst, src)
	case FilterNearest:
		xdraw.NearestNeighbor.Scale(dst.nrgbaView(), dst.nrgbaView().Rect, src.nrgbaView(), src.nrgbaView().Rect, xdraw.Src, nil)
	case FilterBilinear:
		xdraw.BiLinear.Scale(dst.nrgbaView(), dst.nrgbaView().Rect, src.nrgbaView(), src.nrgbaView().Rect, xdraw.Src, nil)
	case FilterCatmullRom:
		xdraw.CatmullRom.Scale(dst.nrgbaView(), dst.nrgbaView().Rect, src.nrgbaView(), src.nrgbaView().Rect, xdraw.Src, nil)
	case FilterLanczos2:
		halveLanczos(dst, src, resize.Lanczos2)
	case FilterLanczos3:
		halveLanczos(dst, src, resize.Lanczos3)
	default:
		return fmt.Errorf("pix: halve with filter %d: %w", f, ErrUnsupportedFilter)
	}

	return nil
}

// halveBox averages each 2x2 source region into one destination pixel.
func halveBox(dst, src *Buffer) {
	srcW, srcH := src.Bounds()
	dstW, dstH := dst.Bounds()

	for dy := range dstH {
		for dx := range dstW {
			sx := dx * 2
			sy := dy * 2

			// Sample 2x2 region, clamping for odd dimensions.
			r0, g0, b0, a0 := src.GetRGBA(sx, sy)
			r1, g1, b1, a1 := src.GetRGBA(min(sx+1, srcW-1), sy)
			r2, g2, b2, a2 := src.GetRGBA(sx, min(sy+1, srcH-1))
			r3, g3, b3, a3 := src.GetRGBA(min(sx+1, srcW-1), min(sy+1, srcH-1))

			r := (uint16(r0) + uint16(r1) + uint16(r2) + uint16(r3)) / 4
			g := (uint16(g0) + uint16(g1) + uint16(g2) + uint16(g3)) / 4
			b := (uint16(b0) + uint16(b1) + uint16(b2) + uint16(b3)) / 4
			a := (uint16(a0) + uint16(a1) + uint16(a2) + uint16(a3)) / 4

			_ = dst.SetRGBA(dx, dy, byte(r), byte(g), byte(b), byte(a))
		}
	}
}

// halveLanczos resamples through github.com/nfnt/resize, which carries
// the Lanczos kernels golang.org/x/image/draw does not.
func halveLanczos(dst, src *Buffer, kernel resize.InterpolationFunction) {
	out := resize.Resize(uint(dst.width), uint(dst.height), src.nrgbaView(), kernel)

	if nrgba, ok := out.(*image.NRGBA); ok {
		rowLen := dst.format.RowBytes(dst.width)
		for y := range dst.height {
			srcStart := y * nrgba.Stride
			copy(dst.RowBytes(y), nrgba.Pix[srcStart:srcStart+rowLen])
		}
		return
	}

	// Fallback for any other concrete type the resizer returns.
	bounds := out.Bounds()
	for y := range dst.height {
		for x := range dst.width {
			r, g, b, a := out.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			_ = dst.SetRGBA(x, y, byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8))
		}
	}
}
