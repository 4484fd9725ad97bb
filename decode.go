package imgbound

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"io"

	"github.com/gen2brain/jpegn"
)

// decodeSampled decodes the image in r reduced by factor on both axes.
//
// JPEG data is reduced inside the decoder by DCT scaling, so the full
// resolution image is never allocated. Whatever the decoder could not reduce
// (other formats, factors that are not 2, 4 or 8) is resampled afterwards.
// The result is ceil(width/factor) x ceil(height/factor).
func decodeSampled(r io.Reader, info Info, factor int, cfg *decodeConfig) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	if info.Format == "jpeg" {
		img, err = decodeJPEG(r, scaleDenom(factor))
	} else {
		img, _, err = image.Decode(r)
	}
	if err != nil {
		return nil, err
	}

	return reduce(img, sampledSize(info.Width, factor), sampledSize(info.Height, factor), cfg.filter), nil
}

// decodeJPEG decodes JPEG data scaled by 1/denom. jpegn refuses scales that
// leave a component smaller than a block, so the denominator is halved until
// it succeeds. Data jpegn does not support at all is left to image/jpeg.
func decodeJPEG(r io.Reader, denom int) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	for ; denom >= 1; denom /= 2 {
		img, err := jpegn.Decode(bytes.NewReader(data), &jpegn.Options{ScaleDenom: denom})
		if !errors.Is(err, jpegn.ErrUnsupported) {
			return img, err
		}
	}
	return jpeg.Decode(bytes.NewReader(data))
}
