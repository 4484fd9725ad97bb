package imgbound

import (
	"image"

	"github.com/disintegration/imaging"
)

// reduce shrinks img to width x height unless it already has that size.
func reduce(img image.Image, width, height int, filter imaging.ResampleFilter) image.Image {
	if size := img.Bounds().Size(); size.X == width && size.Y == height {
		return img
	}
	return imaging.Resize(img, width, height, filter)
}
