package codec

import (
	"image"
)

// Encoder encodes an image to one fixed lossy format.
type Encoder interface {
	// Format returns the output format name (e.g. "webp", "jpeg").
	Format() string

	// Encode converts the image to bytes at the given quality (1-100).
	Encode(img image.Image, quality int) ([]byte, error)

	// Available returns true if the encoder is ready to use.
	// External encoders (cwebp) may not be installed.
	Available() bool

	// Extension returns the file extension without dot.
	Extension() string

	// MediaType returns the MIME type of the encoded output.
	MediaType() string
}
