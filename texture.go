package texel

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/texel/internal/pix"
)

// Build errors.
var (
	// ErrDimension is returned when a multi-level pyramid is requested
	// for a base image whose width or height is not a power of two.
	// Recoverable: build a single-level texture (WithLevels(1)) or
	// resize the base first.
	ErrDimension = errors.New("texel: base dimensions must be powers of two for mipmapping")

	// ErrImageProcessing is returned when the underlying pixel-format
	// conversion or resampling primitive fails. Fatal to the Build call;
	// never retried internally.
	ErrImageProcessing = errors.New("texel: image processing failed")
)

// Level is one entry of a mipmap pyramid: a pixel buffer plus its index
// in the chain. Index 0 is the full-resolution base.
type Level struct {
	Buffer *Buffer
	Index  int
}

// Width returns the level's width in pixels, or 0 for an empty Level.
func (l Level) Width() int {
	if l.Buffer == nil {
		return 0
	}
	return l.Buffer.Width()
}

// Height returns the level's height in pixels, or 0 for an empty Level.
func (l Level) Height() int {
	if l.Buffer == nil {
		return 0
	}
	return l.Buffer.Height()
}

// Texture is a built mipmap pyramid: an ordered sequence of levels, each
// half the size of the one before it (floored at 1), plus log2 metadata
// derived from the base dimensions for mip-level selection.
//
// A Texture is immutable once Build returns and is safe for concurrent
// reads from any number of goroutines.
type Texture struct {
	levels     []Level
	widthLog2  uint8
	heightLog2 uint8
}

// Build constructs a Texture from a decoded base image.
//
// The pipeline is: resolve the level count (WithLevels, default full
// pyramid), validate (multi-level pyramids require power-of-two base
// dimensions), normalize the base to RGBA8, then produce each level by
// resampling the immediately preceding level with the configured filter.
// Validation happens before any level allocation, so a failed Build
// does no resampling work and returns no partial Texture.
//
// Errors are ErrDimension (non-power-of-two base with more than one
// level requested) or ErrImageProcessing (conversion or resampling
// failure); both are matchable with errors.Is through the returned wrap.
func Build(base *Buffer, opts ...BuildOption) (*Texture, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if base == nil || base.IsEmpty() {
		return nil, fmt.Errorf("texel: build: nil or empty base image: %w", ErrImageProcessing)
	}

	width, height := base.Bounds()

	// Level count: 0 means the natural maximum. A caller-supplied count
	// is used verbatim, even past the natural maximum (tail levels
	// collapse to 1x1).
	levelCount := o.levels
	if levelCount == 0 {
		levelCount = MaxMipmapLevels(width, height)
	}

	// Hard gate: mipmapping a non-power-of-two base is undefined for
	// the halving scheme, so reject before any allocation.
	if levelCount > 1 && (!IsPowerOfTwo(width) || !IsPowerOfTwo(height)) {
		return nil, fmt.Errorf("texel: build %dx%d with %d levels: %w",
			width, height, levelCount, ErrDimension)
	}

	normalized, err := pix.ToRGBA8(base)
	if err != nil {
		return nil, fmt.Errorf("texel: build: normalize base: %w (%w)", err, ErrImageProcessing)
	}

	levels := make([]Level, 0, max(levelCount, 1))
	levels = append(levels, Level{Buffer: normalized, Index: 0})

	prev := normalized
	for i := 1; i < levelCount; i++ {
		dst, err := nextLevelBuffer(prev, o.pool)
		if err != nil {
			return nil, fmt.Errorf("texel: build level %d: %w (%w)", i, err, ErrImageProcessing)
		}
		if err := pix.Halve(dst, prev, o.filter); err != nil {
			return nil, fmt.Errorf("texel: build level %d: %w (%w)", i, err, ErrImageProcessing)
		}
		levels = append(levels, Level{Buffer: dst, Index: i})
		prev = dst
	}

	t := &Texture{
		levels:     levels,
		widthLog2:  log2Floor(width),
		heightLog2: log2Floor(height),
	}

	Logger().Debug("texel: texture built",
		"width", width, "height", height,
		"levels", len(t.levels), "filter", o.filter.String())

	return t, nil
}

// nextLevelBuffer allocates the buffer for the level below prev, drawing
// from the pool when one is configured.
func nextLevelBuffer(prev *pix.Buffer, pool *Pool) (*pix.Buffer, error) {
	w := pix.HalfDimension(prev.Width())
	h := pix.HalfDimension(prev.Height())

	if pool != nil {
		if buf := pool.Get(w, h, pix.FormatRGBA8); buf != nil {
			return buf, nil
		}
	}
	return pix.New(w, h, pix.FormatRGBA8)
}

// log2Floor computes floor(log2(dim) + epsilon). The epsilon counteracts
// floating-point log rounding that could floor an exact power of two
// down by one.
func log2Floor(dim int) uint8 {
	return uint8(math.Floor(math.Log2(float64(dim)) + 1e-4))
}

// NumLevels returns the number of levels in the pyramid.
func (t *Texture) NumLevels() int {
	if t == nil {
		return 0
	}
	return len(t.levels)
}

// Level returns the mipmap at index i. Index 0 is the base. Returns the
// zero Level (nil Buffer) if i is out of range.
func (t *Texture) Level(i int) Level {
	if t == nil || i < 0 || i >= len(t.levels) {
		return Level{}
	}
	return t.levels[i]
}

// Levels returns a copy of the level sequence in pyramid order. The
// slice is the caller's to keep; the buffers it references are shared
// with the Texture and must be treated as read-only.
func (t *Texture) Levels() []Level {
	if t == nil {
		return nil
	}
	out := make([]Level, len(t.levels))
	copy(out, t.levels)
	return out
}

// Width returns the base level's width in pixels.
func (t *Texture) Width() int {
	return t.Level(0).Width()
}

// Height returns the base level's height in pixels.
func (t *Texture) Height() int {
	return t.Level(0).Height()
}

// Format returns the shared pixel format of the levels. Always
// FormatRGBA8 for a built Texture.
func (t *Texture) Format() Format {
	l := t.Level(0)
	if l.Buffer == nil {
		return FormatRGBA8
	}
	return l.Buffer.Format()
}

// WidthLog2 returns floor(log2(base width)).
func (t *Texture) WidthLog2() uint8 {
	return t.widthLog2
}

// HeightLog2 returns floor(log2(base height)).
func (t *Texture) HeightLog2() uint8 {
	return t.heightLog2
}

// LevelForScale returns the level appropriate for a given scale factor,
// the ratio of displayed size to original size: 1.0 selects level 0,
// 0.5 level 1, 0.25 level 2, and so on. The level is
// floor(-log2(scale)) clamped to the available range. Scales >= 1.0
// always select level 0.
func (t *Texture) LevelForScale(scale float64) Level {
	if t == nil || len(t.levels) == 0 {
		return Level{}
	}
	if scale >= 1.0 {
		return t.levels[0]
	}

	level := int(math.Floor(-math.Log2(scale)))
	if level < 0 {
		level = 0
	}
	if level >= len(t.levels) {
		level = len(t.levels) - 1
	}
	return t.levels[level]
}

// Sample reads the texture at normalized coordinates (u, v) in [0,1]
// with (0,0) at the top-left, selecting the mip level for scale via
// LevelForScale and interpolating bilinearly within it. Out-of-range
// coordinates clamp to the edge.
func (t *Texture) Sample(u, v, scale float64) (r, g, b, a uint8) {
	l := t.LevelForScale(scale)
	if l.Buffer == nil {
		return 0, 0, 0, 0
	}
	return pix.Sample(l.Buffer, u, v, pix.InterpBilinear)
}
