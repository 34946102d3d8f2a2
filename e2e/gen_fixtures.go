//go:build ignore

// gen_fixtures creates upload fixtures for the CLI smoke test.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	os.MkdirAll(dir, 0o755)

	// Over budget, landscape: expect 1080x540 output.
	writeJPEG(filepath.Join(dir, "photo1.jpg"), noisyGradient(4000, 2000), 100)

	// Under budget: expect byte-identical pass-through.
	writePNG(filepath.Join(dir, "logo.png"), alphaGradient(300, 300))

	// Rejected by the name policy regardless of size.
	writeJPEG(filepath.Join(dir, "my photo.jpg"), noisyGradient(64, 64), 80)

	// Over budget, not decodable.
	os.WriteFile(filepath.Join(dir, "broken.png"), make([]byte, 2<<20), 0o644)

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 4 fixtures in %s\n", dir)
}

func noisyGradient(w, h int) *image.NRGBA {
	rng := rand.New(rand.NewSource(1))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := rng.Intn(64)
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x*191/w + n),
				G: uint8(y*191/h + n),
				B: uint8(96 + n),
				A: 255,
			})
		}
	}
	return img
}

func alphaGradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: 220, G: 60, B: 30,
				A: uint8(x * 255 / w),
			})
		}
	}
	return img
}

func writePNG(path string, img *image.NRGBA) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		panic(err)
	}
}

func writeJPEG(path string, img *image.NRGBA, quality int) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
		panic(err)
	}
}
