package rastr

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

// Verify at compile time that Pixmap implements image.Image.
var _ image.Image = (*Pixmap)(nil)

func TestPixmap_SetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)

	pm.SetPixel(3, 7, Red)

	got := pm.GetPixel(3, 7)
	if !colorsEqual(got, Red, colorEpsilon) {
		t.Errorf("GetPixel(3,7) = %v, want %v", got, Red)
	}

	// Raw data layout is row-major RGBA.
	i := (7*10 + 3) * 4
	data := pm.Data()
	if data[i+0] != 255 || data[i+1] != 0 || data[i+2] != 0 || data[i+3] != 255 {
		t.Errorf("raw data = (%d, %d, %d, %d), want (255, 0, 0, 255)",
			data[i+0], data[i+1], data[i+2], data[i+3])
	}
}

func TestPixmap_OutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)

	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		// Writes are silently ignored, reads return Transparent.
		pm.SetPixel(c.x, c.y, Red)
		if got := pm.GetPixel(c.x, c.y); !colorsEqual(got, Transparent, colorEpsilon) {
			t.Errorf("GetPixel(%d,%d) = %v, want Transparent", c.x, c.y, got)
		}
	}

	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}
}

func TestPixmap_Clear(t *testing.T) {
	pm := NewPixmap(4, 3)
	pm.Clear(NewColor(1, 0.5, 0, 1))

	want := pm.GetPixel(0, 0)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := pm.GetPixel(x, y); !colorsEqual(got, want, colorEpsilon) {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPixmap_ToImage(t *testing.T) {
	pm := NewPixmap(5, 5)
	pm.Clear(White)
	pm.SetPixel(2, 2, Blue)

	img := pm.ToImage()
	if img.Bounds() != image.Rect(0, 0, 5, 5) {
		t.Fatalf("bounds = %v, want (0,0)-(5,5)", img.Bounds())
	}

	i := img.PixOffset(2, 2)
	if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 255 || img.Pix[i+3] != 255 {
		t.Errorf("pixel (2,2) = (%d, %d, %d, %d), want (0, 0, 255, 255)",
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3])
	}
}

func TestFromImage_RoundTrip(t *testing.T) {
	src := NewPixmap(6, 4)
	src.Clear(Green)
	src.SetPixel(1, 1, Red)
	src.SetPixel(5, 3, Blue)

	got := FromImage(src)

	if got.Width() != 6 || got.Height() != 4 {
		t.Fatalf("size = %dx%d, want 6x4", got.Width(), got.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if a, b := got.GetPixel(x, y), src.GetPixel(x, y); !colorsEqual(a, b, 0.01) {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, a, b)
			}
		}
	}
}

func TestPixmap_ImageInterface(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.SetPixel(1, 1, Red)

	if pm.ColorModel() != color.NRGBAModel {
		t.Errorf("ColorModel() = %v, want NRGBAModel", pm.ColorModel())
	}
	if pm.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Errorf("Bounds() = %v, want (0,0)-(8,8)", pm.Bounds())
	}
	r, g, b, a := pm.At(1, 1).RGBA()
	if r != 65535 || g != 0 || b != 0 || a != 65535 {
		t.Errorf("At(1,1).RGBA() = (%d, %d, %d, %d), want (65535, 0, 0, 65535)", r, g, b, a)
	}
}

func TestPixmap_Save(t *testing.T) {
	pm := NewPixmap(16, 16)
	pm.Clear(Magenta)
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "out.png")
	if err := pm.SavePNG(pngPath); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if info, err := os.Stat(pngPath); err != nil || info.Size() == 0 {
		t.Errorf("PNG file missing or empty: %v", err)
	}

	bmpPath := filepath.Join(dir, "out.bmp")
	if err := pm.SaveBMP(bmpPath); err != nil {
		t.Fatalf("SaveBMP: %v", err)
	}
	if info, err := os.Stat(bmpPath); err != nil || info.Size() == 0 {
		t.Errorf("BMP file missing or empty: %v", err)
	}
}
