package pipeline

import (
	"go.uber.org/zap"

	"github.com/AnyUserName/imgbudget/internal/compress"
	"github.com/AnyUserName/imgbudget/internal/hasher"
	"github.com/AnyUserName/imgbudget/internal/ingest"
)

// Config holds all parameters for an ingestion pipeline.
type Config struct {
	// Codec decodes, resizes and encodes oversized images.
	Codec compress.ImageCodec

	// Logger receives structured events; nil disables logging.
	Logger *zap.Logger
}

// Pipeline validates a source and compresses it when it exceeds the budget.
// It holds only immutable configuration, so concurrent calls never share
// buffers.
type Pipeline struct {
	compressor *compress.Compressor
	log        *zap.Logger
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		compressor: compress.New(cfg.Codec, log),
		log:        log,
	}
}

// Process runs one ingestion call: validate, pass through when within
// budget, otherwise compress. Every failure is an *ingest.Error.
func (p *Pipeline) Process(src ingest.SourceImage) (*ingest.Result, error) {
	log := p.log.With(zap.String("file", src.Filename), zap.Int64("original_size", src.Size()))

	if err := ingest.Validate(src); err != nil {
		log.Info("rejected", zap.String("kind", string(ingest.KindOf(err))), zap.Error(err))
		return nil, err
	}

	var res *ingest.Result
	if ingest.WithinBudget(src) {
		res = ingest.PassThrough(src)
		log.Debug("within budget, passing through")
	} else {
		var err error
		res, err = p.compressor.Compress(src)
		if err != nil {
			log.Warn("compression failed", zap.String("kind", string(ingest.KindOf(err))), zap.Error(err))
			return nil, err
		}
		log.Info("compressed",
			zap.Int64("compressed_size", res.CompressedSize),
			zap.Float64("quality", res.Quality),
			zap.Int("attempts", res.Attempts),
			zap.Int("width", res.Width),
			zap.Int("height", res.Height))
	}

	res.StorageKey = hasher.StorageKey(res.Data, extOf(res.Filename))
	return res, nil
}

func extOf(name string) string {
	stem := ingest.Stem(name)
	if len(stem) == len(name) {
		return ""
	}
	return name[len(stem)+1:]
}
