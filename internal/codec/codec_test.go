package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os/exec"
	"testing"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestFitWithin(t *testing.T) {
	cases := []struct {
		w, h       int
		wantW      int
		wantH      int
		wantResize bool
	}{
		{4000, 2000, 1080, 540, true},
		{2000, 4000, 540, 1080, true},
		{3000, 3000, 1080, 1080, true},
		{1080, 1080, 1080, 1080, false},
		{300, 300, 300, 300, false},
		{1081, 500, 1080, 499, true},
		{1920, 1080, 1080, 607, true},
		{100000, 10, 1080, 1, true},
	}
	for _, c := range cases {
		w, h, ok := FitWithin(c.w, c.h, 1080)
		if w != c.wantW || h != c.wantH || ok != c.wantResize {
			t.Errorf("FitWithin(%d, %d) = %d, %d, %v; want %d, %d, %v",
				c.w, c.h, w, h, ok, c.wantW, c.wantH, c.wantResize)
		}
	}
}

func TestCodec_DecodeResizeEncode(t *testing.T) {
	c := New(&JPEGEncoder{})
	img, err := c.Decode(encodePNG(t, gradient(400, 200)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 200 {
		t.Fatalf("decoded bounds: %v", b)
	}

	small := c.Resize(img, 100)
	if b := small.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("resized bounds: %v", b)
	}
	if same := c.Resize(img, 1080); same != img {
		t.Error("image within bounds was resized")
	}

	data, err := c.Encode(small, 80)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not jpeg: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 50 {
		t.Errorf("encoded dims: %dx%d", cfg.Width, cfg.Height)
	}
	if c.Extension() != "jpg" || c.MediaType() != "image/jpeg" {
		t.Errorf("format: %s %s", c.Extension(), c.MediaType())
	}
}

func TestCodec_DecodeGarbage(t *testing.T) {
	c := New(&JPEGEncoder{})
	if _, err := c.Decode([]byte("definitely not an image")); err == nil {
		t.Error("garbage decoded without error")
	}
}

func TestJPEGEncoder_QualityShrinksOutput(t *testing.T) {
	img := gradient(256, 256)
	enc := &JPEGEncoder{}
	hi, err := enc.Encode(img, 80)
	if err != nil {
		t.Fatal(err)
	}
	lo, err := enc.Encode(img, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(lo) >= len(hi) {
		t.Errorf("q20 (%d bytes) not smaller than q80 (%d bytes)", len(lo), len(hi))
	}
}

func TestJPEGEncoder_FlattensAlphaOnWhite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	// Fully transparent: should come out white, not black.
	data, err := (&JPEGEncoder{}).Encode(img, 90)
	if err != nil {
		t.Fatal(err)
	}
	out, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := out.At(8, 8).RGBA()
	if r>>8 < 240 || g>>8 < 240 || b>>8 < 240 {
		t.Errorf("transparent pixel rendered as (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
}

type fakeEncoder struct {
	format    string
	available bool
}

func (f *fakeEncoder) Format() string                          { return f.format }
func (f *fakeEncoder) Extension() string                       { return f.format }
func (f *fakeEncoder) MediaType() string                       { return "image/" + f.format }
func (f *fakeEncoder) Available() bool                         { return f.available }
func (f *fakeEncoder) Encode(image.Image, int) ([]byte, error) { return nil, nil }

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistryWith(&fakeEncoder{format: "webp", available: true}, &JPEGEncoder{})
	enc, preferred, err := r.Resolve("webp")
	if err != nil || !preferred || enc.Format() != "webp" {
		t.Errorf("resolve webp: %v %v %v", enc, preferred, err)
	}

	r = NewRegistryWith(&fakeEncoder{format: "webp", available: false}, &JPEGEncoder{})
	enc, preferred, err = r.Resolve("webp")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if preferred || enc.Format() != "jpeg" {
		t.Errorf("expected jpeg fallback, got %s (preferred=%v)", enc.Format(), preferred)
	}
	if got := r.Get("JPG"); got == nil {
		t.Error("jpg alias not resolved")
	}

	r = NewRegistryWith(&fakeEncoder{format: "webp", available: false})
	if _, _, err := r.Resolve("webp"); err == nil {
		t.Error("expected error with no encoders")
	}
	if r.String() != "no encoders available" {
		t.Errorf("String: %q", r.String())
	}
}

func TestWebPEncoder(t *testing.T) {
	if _, err := exec.LookPath("cwebp"); err != nil {
		t.Skip("cwebp not installed")
	}
	enc := &WebPEncoder{}
	data, err := enc.Encode(gradient(200, 100), 80)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Fatalf("output is not webp")
	}

	img, err := New(enc).Decode(data)
	if err != nil {
		t.Fatalf("decode webp: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("webp dims: %v", b)
	}
}

func TestWebPEncoder_MissingBinary(t *testing.T) {
	enc := &WebPEncoder{Binary: "imgbudget-no-such-cwebp"}
	if enc.Available() {
		t.Fatal("nonexistent binary reported available")
	}
	if _, err := enc.Encode(gradient(4, 4), 80); err == nil {
		t.Error("expected error without cwebp")
	}
}
