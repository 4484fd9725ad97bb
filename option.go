package imgbound

import "github.com/disintegration/imaging"

type decodeConfig struct {
	autoOrientation bool
	filter          imaging.ResampleFilter
}

var defaultDecodeConfig = decodeConfig{
	autoOrientation: true,
	filter:          imaging.Box,
}

// DecodeOption sets an optional parameter for the Decode and Load functions.
type DecodeOption func(*decodeConfig)

// AutoOrientation returns a DecodeOption that sets the auto-orientation mode.
// If auto-orientation is enabled, the EXIF orientation tag (if present) is taken
// into account when choosing the reduction and the image is rotated after
// decoding. By default it's enabled.
func AutoOrientation(enabled bool) DecodeOption {
	return func(c *decodeConfig) {
		c.autoOrientation = enabled
	}
}

// Filter returns a DecodeOption that sets the resampling filter used for any
// reduction the decoder itself cannot apply. Default is imaging.Box.
func Filter(filter imaging.ResampleFilter) DecodeOption {
	return func(c *decodeConfig) {
		c.filter = filter
	}
}

func newDecodeConfig(opts []DecodeOption) *decodeConfig {
	cfg := defaultDecodeConfig
	for _, option := range opts {
		option(&cfg)
	}
	return &cfg
}
