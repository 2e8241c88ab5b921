package texel

// IsPowerOfTwo reports whether x has exactly one set bit, i.e. is a
// positive power of two.
//
// The bitwise identity x&(x-1) == 0 also holds for x == 0, so zero
// reports true; callers must reject zero and negative dimensions before
// calling. Build does its own dimension validation upstream of this.
func IsPowerOfTwo(x int) bool {
	return x&(x-1) == 0
}

// MaxMipmapLevels returns how many mipmap levels a base image of the
// given dimensions supports: the number of times the larger dimension
// can be halved before reaching 1, counting the base level itself.
//
// This is floor(log2(max(width, height))) + 1 computed with integer
// shifts, so there is no floating-point rounding near powers of two.
// MaxMipmapLevels(1, 1) is 1.
func MaxMipmapLevels(width, height int) int {
	size := max(width, height)
	levels := 1
	for size > 1 {
		size >>= 1
		levels++
	}
	return levels
}

// MipDimension returns the size of one dimension at the given mipmap
// level: the base dimension halved level times, floored at 1.
func MipDimension(base, level int) int {
	return max(1, base>>level)
}
