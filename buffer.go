package texel

import (
	"image"

	"github.com/gogpu/texel/internal/pix"
)

// Buffer is a public alias for the internal pixel buffer.
// It represents a rectangular grid of pixels in one of the supported
// formats; texture construction consumes a Buffer as its base image.
type Buffer = pix.Buffer

// Format represents a pixel storage format.
type Format = pix.Format

// Pixel formats.
const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 = pix.FormatGray8

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8 = pix.FormatRGB8

	// FormatRGBA8 is 32-bit RGBA (4 bytes per pixel).
	// Every level of a built Texture is stored in this format.
	FormatRGBA8 = pix.FormatRGBA8

	// FormatBGRA8 is 32-bit BGRA (4 bytes per pixel).
	FormatBGRA8 = pix.FormatBGRA8
)

// Filter selects the resampling kernel used when halving a mipmap level.
type Filter = pix.Filter

// Resampling filters.
const (
	// FilterNearest selects the closest source pixel. Fastest, blockiest.
	FilterNearest = pix.FilterNearest

	// FilterBox averages the 2x2 source region behind each destination
	// pixel. The classic mipmap downsampling filter.
	FilterBox = pix.FilterBox

	// FilterBilinear weighs source pixels linearly. The default filter.
	FilterBilinear = pix.FilterBilinear

	// FilterCatmullRom applies a Catmull-Rom cubic kernel.
	FilterCatmullRom = pix.FilterCatmullRom

	// FilterLanczos2 applies a Lanczos kernel with radius 2.
	FilterLanczos2 = pix.FilterLanczos2

	// FilterLanczos3 applies a Lanczos kernel with radius 3.
	FilterLanczos3 = pix.FilterLanczos3
)

// Pool is a public alias for the internal buffer pool. Pass one to Build
// via WithPool to recycle level buffers across pyramid builds.
type Pool = pix.Pool

// NewBuffer creates an empty pixel buffer with the given dimensions and
// format. Returns an error if dimensions are non-positive or the format
// is unknown.
func NewBuffer(width, height int, format Format) (*Buffer, error) {
	return pix.New(width, height, format)
}

// BufferFromRaw wraps existing pixel data in a Buffer without copying.
// The caller must ensure data remains valid for the lifetime of the
// Buffer. Stride is in bytes; decoded buffers with padded rows pass
// their own stride.
func BufferFromRaw(data []byte, width, height int, format Format, stride int) (*Buffer, error) {
	return pix.FromRaw(data, width, height, format, stride)
}

// FromImage converts a standard library image.Image into a Buffer.
// This is the ingestion point for images decoded by a collaborator:
// decode the file elsewhere, hand the image.Image here. Returns nil if
// img is nil or has no pixels.
func FromImage(img image.Image) *Buffer {
	return pix.FromImage(img)
}

// NewPool creates a buffer pool retaining at most maxPerBucket buffers
// of each size and format. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return pix.NewPool(maxPerBucket)
}
