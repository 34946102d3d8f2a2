// Package ingest defines the records exchanged with callers of the image
// ingestion core and the validation performed before any decoding work.
package ingest

// Fixed limits of the ingestion contract.
const (
	// Budget is the largest payload, in bytes, accepted without re-encoding
	// and the ceiling every re-encoded payload must fit under.
	Budget = 1 << 20

	// MaxDimension bounds the longer side of a re-encoded image.
	MaxDimension = 1080

	// InitialQuality is the first rung of the quality ladder.
	InitialQuality = 0.8

	// QualityStep is subtracted after every oversized attempt.
	QualityStep = 0.1

	// MinQuality is exclusive: no attempt is made at or below it.
	MinQuality = 0.1
)

// SourceImage is an uploaded file as declared by the caller.
// The core only reads it.
type SourceImage struct {
	Data      []byte
	MediaType string
	Filename  string
}

// Size returns the payload size in bytes.
func (s SourceImage) Size() int64 {
	return int64(len(s.Data))
}

// Result is the outcome of one ingestion call. The caller owns it.
type Result struct {
	Data           []byte `json:"-"`
	Filename       string `json:"filename"`
	MediaType      string `json:"media_type"`
	OriginalSize   int64  `json:"original_size"`
	CompressedSize int64  `json:"compressed_size"`
	WasCompressed  bool   `json:"was_compressed"`

	// Width and Height are the output dimensions; zero on pass-through.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Quality is the ladder rung that produced Data, in (0, 1].
	Quality float64 `json:"quality,omitempty"`

	// Attempts counts encode operations performed.
	Attempts int `json:"attempts"`

	// StorageKey is a content-addressed name for the output bytes.
	StorageKey string `json:"storage_key,omitempty"`
}

// PassThrough builds the result for a source already within Budget.
// The payload is returned as is.
func PassThrough(src SourceImage) *Result {
	return &Result{
		Data:           src.Data,
		Filename:       src.Filename,
		MediaType:      src.MediaType,
		OriginalSize:   src.Size(),
		CompressedSize: src.Size(),
		WasCompressed:  false,
	}
}
