package texel

// ClipToScreen maps a clip-space point onto a window of the given pixel
// dimensions.
//
// Clip space spans [-1,1] on each axis with +Y up; screen space has its
// origin at the top-left with +Y down, so the Y term is flipped while X
// is not. The input must already be divided by its homogeneous w
// component; no perspective division happens here.
//
// screenWidth and screenHeight must be positive. The function performs
// no validation: non-positive dimensions are a caller contract
// violation, not a checked error.
func ClipToScreen(p Point, screenWidth, screenHeight int) Point {
	w := float64(screenWidth)
	h := float64(screenHeight)
	return Point{
		X: (p.X + 1) * w / 2,
		Y: h - (p.Y+1)*h/2,
	}
}

// ScreenToClip maps a screen-space pixel coordinate back into clip
// space. It is the inverse of ClipToScreen: for positive dimensions,
// ScreenToClip(ClipToScreen(p, w, h), w, h) returns p up to
// floating-point rounding.
//
// The same caller contract as ClipToScreen applies to the dimensions.
func ScreenToClip(p Point, screenWidth, screenHeight int) Point {
	w := float64(screenWidth)
	h := float64(screenHeight)
	return Point{
		X: p.X/(w/2) - 1,
		Y: -(p.Y/(h/2) - 1),
	}
}
