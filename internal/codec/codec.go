// Package codec provides the image decode, resize and encode capability
// used by the compressor, backed by imaging and golang.org/x/image.
package codec

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage is returned when a payload decodes to zero pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Codec decodes any registered raster format and re-encodes through a
// single output Encoder.
type Codec struct {
	enc    Encoder
	filter imaging.ResampleFilter
}

// New returns a codec that encodes with enc and resizes bilinearly.
func New(enc Encoder) *Codec {
	return &Codec{enc: enc, filter: imaging.Linear}
}

// Decode decodes data, applying EXIF orientation the way browsers do.
func (c *Codec) Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyImage
	}
	return img, nil
}

// Resize scales img so its longer side is maxDim. Images already within
// maxDim are returned unchanged.
func (c *Codec) Resize(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h, ok := FitWithin(b.Dx(), b.Dy(), maxDim)
	if !ok {
		return img
	}
	return imaging.Resize(img, w, h, c.filter)
}

// Encode encodes img at quality (1-100).
func (c *Codec) Encode(img image.Image, quality int) ([]byte, error) {
	return c.enc.Encode(img, quality)
}

func (c *Codec) Extension() string { return c.enc.Extension() }
func (c *Codec) MediaType() string { return c.enc.MediaType() }
func (c *Codec) Format() string    { return c.enc.Format() }

// FitWithin returns the dimensions of a w x h image scaled so its longer
// side equals maxDim, preserving aspect ratio. The shorter side is
// truncated, never below 1. ok is false when no resize is needed.
func FitWithin(w, h, maxDim int) (int, int, bool) {
	if w <= maxDim && h <= maxDim {
		return w, h, false
	}
	if w > h {
		nh := int(float64(h) * float64(maxDim) / float64(w))
		if nh < 1 {
			nh = 1
		}
		return maxDim, nh, true
	}
	nw := int(float64(w) * float64(maxDim) / float64(h))
	if nw < 1 {
		nw = 1
	}
	return nw, maxDim, true
}
