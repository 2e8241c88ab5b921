package pix

import (
	"fmt"
	"image"
)

// ToRGBA8 converts a buffer to the canonical RGBA8 format.
//
// A buffer that is already RGBA8 is returned unchanged (no copy); other
// formats allocate a new buffer. Gray8 replicates the luminance value
// into all color channels, RGB8 and BGRA8 reorder channels as needed,
// and formats without alpha receive an opaque alpha channel.
func ToRGBA8(src *Buffer) (*Buffer, error) {
	if src == nil || src.IsEmpty() {
		return nil, ErrInvalidDimensions
	}
	if src.format == FormatRGBA8 {
		return src, nil
	}
	if !src.format.IsValid() {
		return nil, fmt.Errorf("pix: convert %v to RGBA8: %w", src.format, ErrInvalidFormat)
	}

	dst, err := New(src.width, src.height, FormatRGBA8)
	if err != nil {
		return nil, fmt.Errorf("pix: convert to RGBA8: %w", err)
	}

	for y := range src.height {
		srcRow := src.RowBytes(y)
		dstRow := dst.RowBytes(y)

		switch src.format {
		case FormatGray8:
			for x := range src.width {
				v := srcRow[x]
				off := x * 4
				dstRow[off] = v
				dstRow[off+1] = v
				dstRow[off+2] = v
				dstRow[off+3] = 255
			}
		case FormatRGB8:
			for x := range src.width {
				srcOff := x * 3
				dstOff := x * 4
				dstRow[dstOff] = srcRow[srcOff]
				dstRow[dstOff+1] = srcRow[srcOff+1]
				dstRow[dstOff+2] = srcRow[srcOff+2]
				dstRow[dstOff+3] = 255
			}
		case FormatBGRA8:
			for x := range src.width {
				srcOff := x * 4
				dstOff := x * 4
				dstRow[dstOff] = srcRow[srcOff+2]
				dstRow[dstOff+1] = srcRow[srcOff+1]
				dstRow[dstOff+2] = srcRow[srcOff]
				dstRow[dstOff+3] = srcRow[srcOff+3]
			}
		}
	}

	return dst, nil
}

// FromImage creates a Buffer from a standard library image.Image.
//
// *image.NRGBA and *image.RGBA sources are row-copied into an RGBA8
// buffer, *image.Gray sources become Gray8, and anything else goes
// through the generic At() path into RGBA8. Returns nil if img is nil.
func FromImage(img image.Image) *Buffer {
	if img == nil {
		return nil
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil
	}

	if nrgba, ok := img.(*image.NRGBA); ok {
		buf, _ := New(width, height, FormatRGBA8)
		for y := range height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), nrgba.Pix[srcStart:srcStart+width*4])
		}
		return buf
	}

	if rgba, ok := img.(*image.RGBA); ok {
		buf, _ := New(width, height, FormatRGBA8)
		for y := range height {
			srcStart := rgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), rgba.Pix[srcStart:srcStart+width*4])
		}
		return buf
	}

	if gray, ok := img.(*image.Gray); ok {
		buf, _ := New(width, height, FormatGray8)
		for y := range height {
			srcStart := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), gray.Pix[srcStart:srcStart+width])
		}
		return buf
	}

	// Generic slow path for any image type.
	buf, _ := New(width, height, FormatRGBA8)
	for y := range height {
		for x := range width {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			r, g, b, a := c.RGBA()
			// RGBA() returns 16-bit values, scale to 8-bit.
			_ = buf.SetRGBA(x, y, byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8))
		}
	}
	return buf
}

// Image converts the buffer to a standard library image.Image.
// The returned image is a copy; modifying it does not affect the buffer.
func (b *Buffer) Image() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	switch b.format {
	case FormatGray8:
		gray := image.NewGray(rect)
		for y := range b.height {
			copy(gray.Pix[y*gray.Stride:], b.RowBytes(y))
		}
		return gray

	case FormatRGBA8:
		nrgba := image.NewNRGBA(rect)
		if b.stride == nrgba.Stride {
			copy(nrgba.Pix, b.data)
		} else {
			for y := range b.height {
				copy(nrgba.Pix[y*nrgba.Stride:], b.RowBytes(y))
			}
		}
		return nrgba

	default:
		// RGB8 and BGRA8 expand through GetRGBA.
		nrgba := image.NewNRGBA(rect)
		for y := range b.height {
			for x := range b.width {
				r, g, bl, a := b.GetRGBA(x, y)
				off := y*nrgba.Stride + x*4
				nrgba.Pix[off] = r
				nrgba.Pix[off+1] = g
				nrgba.Pix[off+2] = bl
				nrgba.Pix[off+3] = a
			}
		}
		return nrgba
	}
}

// nrgbaView wraps an RGBA8 buffer as an *image.NRGBA sharing the same
// pixel memory. Writes through the view write into the buffer.
func (b *Buffer) nrgbaView() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.stride,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}
