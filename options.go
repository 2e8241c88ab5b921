package texel

// BuildOption configures a texture build.
// Use functional options to customize Build behavior.
//
// Example:
//
//	// Full pyramid, default bilinear filter
//	tex, err := texel.Build(base)
//
//	// Single-level texture with a Lanczos filter ready for later levels
//	tex, err := texel.Build(base, texel.WithLevels(1), texel.WithFilter(texel.FilterLanczos3))
type BuildOption func(*buildOptions)

// buildOptions holds optional configuration for Build.
type buildOptions struct {
	levels int
	filter Filter
	pool   *Pool
}

// defaultBuildOptions returns the default build options.
func defaultBuildOptions() buildOptions {
	return buildOptions{
		levels: 0, // 0 = full pyramid via MaxMipmapLevels
		filter: FilterBilinear,
	}
}

// WithLevels sets the number of mipmap levels to generate.
//
// Zero (the default) computes the natural maximum from the base
// dimensions via MaxMipmapLevels. A caller-supplied count is used
// verbatim with no upper-bound clamp: requesting more levels than the
// natural maximum produces repeated 1x1 levels at the tail, since level
// dimensions floor at 1.
func WithLevels(n int) BuildOption {
	return func(o *buildOptions) {
		o.levels = n
	}
}

// WithFilter sets the resampling filter used to halve each level.
// The default is FilterBilinear.
func WithFilter(f Filter) BuildOption {
	return func(o *buildOptions) {
		o.filter = f
	}
}

// WithPool sets a buffer pool that level buffers are drawn from.
// Useful when building many pyramids of the same shape: return the
// levels of a discarded Texture to the pool and the next Build reuses
// their memory.
func WithPool(p *Pool) BuildOption {
	return func(o *buildOptions) {
		o.pool = p
	}
}
