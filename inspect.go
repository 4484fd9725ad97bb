package imgbound

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
)

var (
	// ErrInvalidBounds is returned when a requested width or height is not positive.
	ErrInvalidBounds = errors.New("requested bounds must be positive")
	// ErrSourceUnreadable is returned when the source cannot be opened or its headers cannot be parsed.
	ErrSourceUnreadable = errors.New("image source unreadable")
	// ErrDecode is returned when pixel data cannot be decoded after successful inspection.
	ErrDecode = errors.New("image decode failed")
)

// Info describes an image source without its pixels.
type Info struct {
	// Format is the name the decoder was registered with, e.g. "jpeg" or "png".
	Format string
	// Width and Height are the dimensions as stored in the file, before rotation.
	Width, Height int
	// Rotation is the clockwise rotation needed to present the image upright.
	Rotation Rotation
}

// Logical returns the width and height after rotation.
func (i Info) Logical() (width, height int) {
	return i.Rotation.Logical(i.Width, i.Height)
}

// Inspect reads the rotation and stored dimensions of the image file.
func Inspect(file string) (Info, error) {
	f, err := os.Open(file)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer f.Close()

	return InspectReader(f)
}

// InspectReader reads the rotation and stored dimensions of the image in r.
// Only image headers are parsed, pixel data is not decoded.
// On return r is positioned at the start of the image data.
func InspectReader(r io.ReadSeeker) (info Info, err error) {
	info.Rotation = ReadRotation(r)

	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	config, format, err := image.DecodeConfig(r)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	if config.Width <= 0 || config.Height <= 0 {
		return Info{}, fmt.Errorf("%w: invalid dimensions %dx%d", ErrSourceUnreadable, config.Width, config.Height)
	}
	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	info.Format = format
	info.Width, info.Height = config.Width, config.Height

	return
}
