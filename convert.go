package imgbound

import (
	"fmt"
	"image"
	"io"
	"os"
)

// Load opens file and decodes it upright, reduced as much as possible while
// each axis still covers width x height. Smaller images are never enlarged.
//
// A nil image is returned together with ErrInvalidBounds, ErrSourceUnreadable
// or ErrDecode when the image cannot be produced.
func Load(file string, width, height int, opts ...DecodeOption) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidBounds
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer f.Close()

	return Decode(f, width, height, opts...)
}

// Decode is like Load but reads the image from r.
func Decode(r io.ReadSeeker, width, height int, opts ...DecodeOption) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidBounds
	}
	cfg := newDecodeConfig(opts)

	info, err := InspectReader(r)
	if err != nil {
		return nil, err
	}
	if !cfg.autoOrientation {
		info.Rotation = Rotate0
	}

	factor := SampleSize(info.Width, info.Height, info.Rotation, width, height)
	img, err := decodeSampled(r, info, factor, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return info.Rotation.Apply(img), nil
}

// Write image according format option
func Write(w io.Writer, base image.Image, option *FormatOption) error {
	return option.Encode(w, base)
}

// Save saves image according format option
func Save(output string, base image.Image, option *FormatOption) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	return option.Encode(f, base)
}
