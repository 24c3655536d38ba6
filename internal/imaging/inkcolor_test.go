package imaging

import (
	"image"
	"image/color"
	"testing"
)

func maskedImage(w, h int) (*image.NRGBA, *image.Gray) {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	return img, image.NewGray(image.Rect(0, 0, w, h))
}

func TestStrokeColor_NilMask(t *testing.T) {
	img, _ := maskedImage(10, 10)

	stats := StrokeColor(img, nil)

	if stats.Pixels != 0 || stats.Hex != "" {
		t.Errorf("nil mask should yield zero stats, got %+v", stats)
	}
}

func TestStrokeColor_EmptyMask(t *testing.T) {
	img, mask := maskedImage(10, 10)

	stats := StrokeColor(img, mask)

	if stats.Pixels != 0 {
		t.Errorf("empty mask should sample 0 pixels, got %d", stats.Pixels)
	}
}

func TestStrokeColor_UniformStroke(t *testing.T) {
	img, mask := maskedImage(20, 10)
	for x := 2; x < 18; x++ {
		img.SetNRGBA(x, 5, color.NRGBA{60, 60, 60, 255})
		mask.Pix[5*mask.Stride+x] = 255
	}

	stats := StrokeColor(img, mask)

	if stats.Pixels != 16 {
		t.Errorf("pixels: got %d, want 16", stats.Pixels)
	}
	if stats.Clusters != 1 {
		t.Errorf("clusters: got %d, want 1", stats.Clusters)
	}
	if stats.Hex != "#3c3c3c" {
		t.Errorf("hex: got %q, want \"#3c3c3c\"", stats.Hex)
	}
}

func TestStrokeColor_DominantOfTwo(t *testing.T) {
	img, mask := maskedImage(20, 10)
	// 12 dark pixels, 4 red pixels
	for x := 0; x < 12; x++ {
		img.SetNRGBA(x, 3, color.NRGBA{30, 30, 30, 255})
		mask.Pix[3*mask.Stride+x] = 255
	}
	for x := 0; x < 4; x++ {
		img.SetNRGBA(x, 7, color.NRGBA{200, 20, 20, 255})
		mask.Pix[7*mask.Stride+x] = 255
	}

	stats := StrokeColor(img, mask)

	if stats.Pixels != 16 {
		t.Errorf("pixels: got %d, want 16", stats.Pixels)
	}
	if stats.Clusters != 2 {
		t.Errorf("clusters: got %d, want 2", stats.Clusters)
	}
	if stats.Hex != "#1e1e1e" {
		t.Errorf("dominant hex: got %q, want \"#1e1e1e\"", stats.Hex)
	}
}
