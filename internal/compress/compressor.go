// Package compress re-encodes oversized images until they fit the
// ingestion budget.
package compress

import (
	"image"
	"math"

	"go.uber.org/zap"

	"github.com/AnyUserName/imgbudget/internal/ingest"
)

// ImageCodec is the image capability the compressor depends on.
type ImageCodec interface {
	Decode(data []byte) (image.Image, error)
	Resize(img image.Image, maxDim int) image.Image
	Encode(img image.Image, quality int) ([]byte, error)
	Extension() string
	MediaType() string
}

// Compressor runs the decode, resize and quality ladder for one source.
// It holds no per-call state and may be shared.
type Compressor struct {
	codec ImageCodec
	log   *zap.Logger
}

// New returns a compressor. A nil logger disables logging.
func New(codec ImageCodec, log *zap.Logger) *Compressor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compressor{codec: codec, log: log}
}

// Ladder returns the quality rungs tried, in order: 80, 70, ... 20.
// Qualities are whole percentages so the steps are exact.
func Ladder() []int {
	start := percent(ingest.InitialQuality)
	step := percent(ingest.QualityStep)
	floor := percent(ingest.MinQuality)

	var rungs []int
	for q := start; q > floor; q -= step {
		rungs = append(rungs, q)
	}
	return rungs
}

func percent(q float64) int {
	return int(math.Round(q * 100))
}

// Compress re-encodes src to fit ingest.Budget. It does not validate src;
// callers run ingest.Validate first.
func (c *Compressor) Compress(src ingest.SourceImage) (*ingest.Result, error) {
	img, err := c.codec.Decode(src.Data)
	if err != nil {
		return nil, ingest.ErrDecode(err)
	}

	b := img.Bounds()
	img = c.codec.Resize(img, ingest.MaxDimension)
	rb := img.Bounds()
	if rb.Dx() != b.Dx() || rb.Dy() != b.Dy() {
		c.log.Debug("resized",
			zap.String("file", src.Filename),
			zap.Int("from_width", b.Dx()), zap.Int("from_height", b.Dy()),
			zap.Int("width", rb.Dx()), zap.Int("height", rb.Dy()))
	}

	smallest := int64(-1)
	attempts := 0
	for _, q := range Ladder() {
		data, err := c.codec.Encode(img, q)
		attempts++
		if err != nil {
			return nil, ingest.ErrEncode(err)
		}

		size := int64(len(data))
		c.log.Debug("encode attempt",
			zap.String("file", src.Filename),
			zap.Int("quality", q),
			zap.Int64("size", size))

		if size <= ingest.Budget {
			return &ingest.Result{
				Data:           data,
				Filename:       ingest.ReplaceExt(src.Filename, c.codec.Extension()),
				MediaType:      c.codec.MediaType(),
				OriginalSize:   src.Size(),
				CompressedSize: size,
				WasCompressed:  true,
				Width:          rb.Dx(),
				Height:         rb.Dy(),
				Quality:        float64(q) / 100,
				Attempts:       attempts,
			}, nil
		}
		if smallest < 0 || size < smallest {
			smallest = size
		}
	}

	return nil, ingest.ErrCompressionTooLarge(smallest)
}
