package imgbound

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// Rotation is the clockwise rotation, in degrees, that presents the stored
// pixel data upright.
type Rotation int

// Supported rotations.
const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// EXIF orientation tag values that describe a pure rotation.
// Mirrored values (2, 4, 5 and 7) are not corrected.
const (
	orientationRotate180 = 3
	orientationRotate90  = 6
	orientationRotate270 = 8
)

// ReadRotation reads the EXIF orientation tag from r and returns the matching rotation.
// If the EXIF data block is not found, the orientation tag is missing or describes
// a mirrored image, or any other error occures while reading the data, it returns Rotate0.
func ReadRotation(r io.Reader) Rotation {
	x, err := exif.Decode(r)
	if err != nil {
		return Rotate0
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return Rotate0
	}
	orient, err := tag.Int(0)
	if err != nil {
		return Rotate0
	}
	return rotationFromOrientation(orient)
}

func rotationFromOrientation(orient int) Rotation {
	switch orient {
	case orientationRotate90:
		return Rotate90
	case orientationRotate180:
		return Rotate180
	case orientationRotate270:
		return Rotate270
	}
	return Rotate0
}

// Swaps reports whether the rotation exchanges the width and height axes.
func (r Rotation) Swaps() bool {
	return r == Rotate90 || r == Rotate270
}

// Logical returns the width and height of a width x height image once rotated by r.
func (r Rotation) Logical(width, height int) (int, int) {
	if r.Swaps() {
		return height, width
	}
	return width, height
}

// Apply returns img rotated clockwise by r.
// Rotate0 returns img itself without copying it.
func (r Rotation) Apply(img image.Image) image.Image {
	// imaging rotates counter-clockwise.
	switch r {
	case Rotate90:
		return imaging.Rotate270(img)
	case Rotate180:
		return imaging.Rotate180(img)
	case Rotate270:
		return imaging.Rotate90(img)
	}
	return img
}

func (r Rotation) String() string {
	switch r {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return [...]string{"0°", "90°", "180°", "270°"}[r/90]
	}
	return "invalid"
}
