package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AnyUserName/imgbudget/internal/hasher"
	"github.com/AnyUserName/imgbudget/internal/ingest"
)

// New builds a report for res. outputPath is stored relative to the
// report's directory, baseDir.
func New(res *ingest.Result, src ingest.SourceImage, inputPath, outputPath, baseDir, encoder string) *Report {
	rel, err := filepath.Rel(baseDir, outputPath)
	if err != nil {
		rel = outputPath
	}
	return &Report{
		Version:     SupportedVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Encoder:     encoder,
		Input: InputInfo{
			Path:      inputPath,
			Filename:  src.Filename,
			MediaType: src.MediaType,
			Size:      res.OriginalSize,
		},
		Output: OutputInfo{
			Path:          filepath.ToSlash(rel),
			Filename:      res.Filename,
			MediaType:     res.MediaType,
			Size:          res.CompressedSize,
			WasCompressed: res.WasCompressed,
			Width:         res.Width,
			Height:        res.Height,
			Quality:       res.Quality,
			Attempts:      res.Attempts,
			StorageKey:    res.StorageKey,
		},
	}
}

// WriteJSON serializes the report to a JSON file.
func WriteJSON(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a report. Unknown fields are ignored.
func ReadJSON(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &r, nil
}

// Verify checks the report against the output file under baseDir and
// returns every problem found.
func (r *Report) Verify(baseDir string) []string {
	var errs []string

	if r.Version != SupportedVersion {
		errs = append(errs, fmt.Sprintf("unsupported report version: %d", r.Version))
	}
	if r.Input.Size <= 0 {
		errs = append(errs, fmt.Sprintf("invalid input size %d", r.Input.Size))
	}

	out := r.Output
	if out.WasCompressed {
		if out.Size > ingest.Budget {
			errs = append(errs, fmt.Sprintf("output size %d exceeds budget %d", out.Size, ingest.Budget))
		}
		if out.Width > ingest.MaxDimension || out.Height > ingest.MaxDimension {
			errs = append(errs, fmt.Sprintf("output dimensions %dx%d exceed %d",
				out.Width, out.Height, ingest.MaxDimension))
		}
	} else if out.Size != r.Input.Size {
		errs = append(errs, fmt.Sprintf("pass-through size mismatch: input=%d, output=%d", r.Input.Size, out.Size))
	}

	if out.Path == "" {
		return append(errs, "output path missing")
	}

	f, err := os.Open(filepath.Join(baseDir, filepath.FromSlash(out.Path)))
	if err != nil {
		return append(errs, fmt.Sprintf("output file not found: %s", out.Path))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return append(errs, fmt.Sprintf("stat %s: %v", out.Path, err))
	}
	if info.Size() != out.Size {
		errs = append(errs, fmt.Sprintf("size mismatch: report=%d, disk=%d", out.Size, info.Size()))
	}

	if out.StorageKey != "" {
		sum, err := hasher.ContentHashReader(f, hasher.KeyHexLen)
		if err != nil {
			errs = append(errs, fmt.Sprintf("hash %s: %v", out.Path, err))
		} else if sum != hasher.KeyHash(out.StorageKey) {
			errs = append(errs, fmt.Sprintf("content hash mismatch: key=%s, disk=%s", out.StorageKey, sum))
		}
	}

	return errs
}

// FormatSize renders a byte count the way the admin panel shows it.
func FormatSize(b int64) string {
	switch {
	case b < 1<<10:
		return fmt.Sprintf("%d B", b)
	case b < 1<<20:
		return fmt.Sprintf("%.2f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%.2f MB", float64(b)/(1<<20))
	}
}
