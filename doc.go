// Package texel prepares CPU-side texture data for a software 3D renderer.
//
// # Overview
//
// texel covers the two steps a software rasterizer needs before it can
// sample a texture or write a fragment: mapping points between clip space
// and screen space, and building a mipmap pyramid from a decoded image.
// It does not decode image files, rasterize, or manage GPU resources;
// those belong to the surrounding pipeline.
//
// # Quick Start
//
//	import "github.com/gogpu/texel"
//
//	// Map a clip-space point onto a 800x600 window.
//	screen := texel.ClipToScreen(texel.Pt(0, 0), 800, 600)
//
//	// Build a full mipmap pyramid from a decoded image.
//	base := texel.FromImage(img)
//	tex, err := texel.Build(base)
//	if err != nil {
//	    // texel.ErrDimension: base is not power-of-two
//	    ...
//	}
//	r, g, b, a := tex.Sample(0.5, 0.5, 0.25)
//
// # Coordinate Systems
//
// Clip space is [-1,1] on each axis with +Y up; screen space is pixel
// units with the origin at the top-left and +Y down. ClipToScreen and
// ScreenToClip convert between the two. Perspective division is the
// caller's job: both functions treat their input as already divided.
//
// # Mipmaps
//
// Build normalizes the base image to RGBA8, then produces each level by
// halving the level above it, so the chain is a true successive pyramid.
// Multi-level pyramids require power-of-two base dimensions; Build
// rejects anything else with ErrDimension before doing any work.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Texture, Build, ClipToScreen/ScreenToClip, Point
//   - Internal: pix (pixel buffers, format conversion, resampling)
package texel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
