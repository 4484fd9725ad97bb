package imgbound

import "math"

// SampleSize returns the integer reduction factor to decode an image stored as
// width x height so that, once rotated, it still covers reqWidth x reqHeight.
//
// Ratios are rounded to the nearest integer, halves away from zero, and the
// smaller of the two is chosen so neither axis falls much below the request.
// The result is never less than 1.
func SampleSize(width, height int, rotation Rotation, reqWidth, reqHeight int) int {
	width, height = rotation.Logical(width, height)
	if height <= reqHeight && width <= reqWidth {
		return 1
	}

	heightRatio := int(math.Round(float64(height) / float64(reqHeight)))
	widthRatio := int(math.Round(float64(width) / float64(reqWidth)))

	return max(min(heightRatio, widthRatio), 1)
}

// sampledSize returns the dimensions of n pixels reduced by factor, rounding up.
func sampledSize(n, factor int) int {
	return (n + factor - 1) / factor
}

// scaleDenom returns the largest JPEG DCT scaling denominator not above factor.
func scaleDenom(factor int) int {
	for _, denom := range []int{8, 4, 2} {
		if factor >= denom {
			return denom
		}
	}
	return 1
}
