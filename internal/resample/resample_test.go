package resample

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Mavwarf/png2icns/internal/icns"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}
	return img
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPNG(t *testing.T) {
	src, err := Load(writePNG(t, gradient(40, 30)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src.Width() != 40 || src.Height() != 30 {
		t.Errorf("dimensions = %dx%d, want 40x30", src.Width(), src.Height())
	}
	if src.Format() != "png" {
		t.Errorf("Format() = %q, want png", src.Format())
	}
}

func TestLoadICNS(t *testing.T) {
	f := icns.NewFamily()
	for _, typ := range []icns.Type{icns.TypeRGB16, icns.TypeRGBA256} {
		n := int(typ.Size)
		img, err := icns.NewImage(icns.RGBA, n, n, gradient(n, n).Pix)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.Add(typ, img); err != nil {
			t.Fatal(err)
		}
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "in.icns")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := Load(path)
	if err != nil {
		t.Fatalf("Load(.icns): %v", err)
	}
	if src.Format() != "icns" {
		t.Errorf("Format() = %q, want icns", src.Format())
	}
	if src.Width() != 256 || src.Height() != 256 {
		t.Errorf("dimensions = %dx%d, want 256x256", src.Width(), src.Height())
	}
	if pix := src.Resize(32, Lanczos); len(pix) != 32*32*4 {
		t.Errorf("Resize len = %d", len(pix))
	}
}

// 1x1 lossless WebP.
const tinyWebP = "UklGRhoAAABXRUJQVlA4TA0AAAAvAAAAEAcQERGIiP4HAA=="

func TestLoadWebP(t *testing.T) {
	data, err := base64.StdEncoding.DecodeString(tinyWebP)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "in.webp")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	src, err := Load(path)
	if err != nil {
		t.Fatalf("Load(.webp): %v", err)
	}
	if src.Format() != "webp" {
		t.Errorf("Format() = %q, want webp", src.Format())
	}
	if src.Width() != 1 || src.Height() != 1 {
		t.Errorf("dimensions = %dx%d, want 1x1", src.Width(), src.Height())
	}
	if pix := src.Resize(16, Lanczos); len(pix) != 16*16*4 {
		t.Errorf("Resize len = %d", len(pix))
	}
}

func TestLoadJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := jpeg.Encode(f, gradient(24, 12), nil); err != nil {
		t.Fatal(err)
	}
	f.Close()

	src, err := Load(path)
	if err != nil {
		t.Fatalf("Load(.jpg): %v", err)
	}
	if src.Format() != "jpeg" || src.Width() != 24 || src.Height() != 12 {
		t.Errorf("got %s %dx%d, want jpeg 24x12", src.Format(), src.Width(), src.Height())
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("decode error reported as not found")
	}
}

func TestResizeExactSquare(t *testing.T) {
	src := FromImage(gradient(100, 50))
	for _, n := range []int{16, 64, 128} {
		pix := src.Resize(n, Lanczos)
		if len(pix) != n*n*4 {
			t.Errorf("Resize(%d) len = %d, want %d", n, len(pix), n*n*4)
		}
	}
}

func TestResizeUpscale(t *testing.T) {
	src := FromImage(gradient(8, 8))
	pix := src.Resize(32, Lanczos)
	if len(pix) != 32*32*4 {
		t.Errorf("len = %d", len(pix))
	}
}

func TestResizeDeterministic(t *testing.T) {
	src := FromImage(gradient(77, 91))
	a := src.Resize(64, Lanczos)
	b := src.Resize(64, Lanczos)
	if !bytes.Equal(a, b) {
		t.Error("two resizes of the same source differ")
	}
}

func TestResizeSubImage(t *testing.T) {
	full := gradient(64, 64)
	sub := full.SubImage(image.Rect(8, 8, 40, 40))
	pix := FromImage(sub).Resize(16, Nearest)
	if len(pix) != 16*16*4 {
		t.Errorf("len = %d", len(pix))
	}
}

func TestResizeKeepsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0
	}
	pix := FromImage(img).Resize(16, Lanczos)
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			t.Fatalf("alpha at %d = %d, want 0", i, pix[i])
		}
	}
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("Lanczos")
	if err != nil {
		t.Fatalf("ParseFilter: %v", err)
	}
	if f.Name != "lanczos" {
		t.Errorf("Name = %q", f.Name)
	}
	if _, err := ParseFilter("sinc9000"); err == nil {
		t.Error("expected error for unknown filter")
	}
}
