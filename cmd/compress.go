package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/imgbudget/internal/codec"
	"github.com/AnyUserName/imgbudget/internal/ingest"
	"github.com/AnyUserName/imgbudget/internal/pipeline"
	"github.com/AnyUserName/imgbudget/internal/report"
)

var (
	compressOutDir string
	compressFormat string
	compressReport bool
	compressCwebp  string
)

var compressCmd = &cobra.Command{
	Use:   "compress <file>",
	Short: "Validate one image and fit it under the size budget",
	Long: `Validates the file's type and name, then either copies it unchanged
(1 MB or less) or re-encodes it to WebP (JPEG when cwebp is not
installed), writing the result to the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompress,
}

func init() {
	compressCmd.Flags().StringVarP(&compressOutDir, "out", "o", "./imgbudget_out", "output directory")
	compressCmd.Flags().StringVarP(&compressFormat, "format", "f", "webp", "output format (webp, jpeg)")
	compressCmd.Flags().BoolVar(&compressReport, "report", true, "write "+report.FileName+" next to the output")
	compressCmd.Flags().StringVar(&compressCwebp, "cwebp", "", "path to the cwebp binary (default: look up in PATH)")
	rootCmd.AddCommand(compressCmd)
}

func runCompress(_ *cobra.Command, args []string) error {
	start := time.Now()

	absInput, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	absOutput, err := filepath.Abs(compressOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	registry := codec.NewRegistryWith(&codec.WebPEncoder{Binary: compressCwebp}, &codec.JPEGEncoder{})
	log.Debugw("encoders", "available", registry.Available())
	enc, preferred, err := registry.Resolve(compressFormat)
	if err != nil {
		return err
	}
	if !preferred {
		log.Warnw("encoder unavailable, falling back", "requested", compressFormat, "using", enc.Format())
	}

	src, err := pipeline.LoadSource(absInput)
	if err != nil {
		return err
	}
	log.Infow("loaded", "file", src.Filename, "media_type", src.MediaType, "size", src.Size())

	p := pipeline.New(pipeline.Config{
		Codec:  codec.New(enc),
		Logger: log.Desugar(),
	})
	res, err := p.Process(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ✗ %s\n", ingest.Message(err, "Failed to upload image"))
		return fmt.Errorf("ingest %s: %w", src.Filename, err)
	}

	if err := os.MkdirAll(absOutput, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	outPath := filepath.Join(absOutput, res.Filename)
	if err := os.WriteFile(outPath, res.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", res.Filename, err)
	}

	if compressReport {
		r := report.New(res, src, absInput, outPath, absOutput, enc.Format())
		if err := report.WriteJSON(r, filepath.Join(absOutput, report.FileName)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	printCompressResult(res, outPath, time.Since(start))
	return nil
}

func printCompressResult(res *ingest.Result, outPath string, elapsed time.Duration) {
	fmt.Println()
	if res.WasCompressed {
		fmt.Printf("  ✓ Image was automatically compressed from %s to %s\n",
			report.FormatSize(res.OriginalSize), report.FormatSize(res.CompressedSize))
		fmt.Printf("  Dimensions:  %dx%d\n", res.Width, res.Height)
		fmt.Printf("  Quality:     %.1f (%d attempt(s))\n", res.Quality, res.Attempts)
	} else {
		fmt.Printf("  ✓ Image is within budget (%s), stored unchanged\n", report.FormatSize(res.OriginalSize))
	}
	fmt.Printf("  Output:      %s\n", outPath)
	fmt.Printf("  Storage key: %s\n", res.StorageKey)
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))
	fmt.Println()
}
