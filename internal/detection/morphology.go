package detection

import "image"

// Binary morphology with rectangular structuring elements on 0/255 masks.
//
// The element anchor is at (kw/2, kh/2). Window positions falling outside the
// image are ignored, so a run touching the border erodes the same way OpenCV's
// default border handling treats it. Rectangular elements are why this is
// hand-rolled: bild's effect.Erode/Dilate only take a square radius and cannot
// express a 40x1 or 3x8 element.

// erodeRect keeps a foreground pixel only if the whole kw x kh window around
// it is foreground.
func erodeRect(src *image.Gray, kw, kh int) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(b)
	ax, ay := kw/2, kh/2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			keep := true
			for dy := -ay; dy < kh-ay && keep; dy++ {
				yy := y + dy
				if yy < 0 || yy >= h {
					continue
				}
				for dx := -ax; dx < kw-ax; dx++ {
					xx := x + dx
					if xx < 0 || xx >= w {
						continue
					}
					if src.Pix[yy*src.Stride+xx] == 0 {
						keep = false
						break
					}
				}
			}
			if keep {
				dst.Pix[y*dst.Stride+x] = 255
			}
		}
	}

	return dst
}

// dilateRect sets a pixel to foreground if any pixel in the reflected
// kw x kh window around it is foreground. The reflection makes dilation the
// adjoint of erosion, so opening restores runs the element fits inside.
func dilateRect(src *image.Gray, kw, kh int) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(b)
	ax, ay := kw/2, kh/2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hit := false
			for dy := ay - kh + 1; dy <= ay && !hit; dy++ {
				yy := y + dy
				if yy < 0 || yy >= h {
					continue
				}
				for dx := ax - kw + 1; dx <= ax; dx++ {
					xx := x + dx
					if xx < 0 || xx >= w {
						continue
					}
					if src.Pix[yy*src.Stride+xx] != 0 {
						hit = true
						break
					}
				}
			}
			if hit {
				dst.Pix[y*dst.Stride+x] = 255
			}
		}
	}

	return dst
}

// openRect suppresses any foreground feature the kw x kh element does not fit
// inside (erosion followed by dilation).
func openRect(src *image.Gray, kw, kh int) *image.Gray {
	return dilateRect(erodeRect(src, kw, kh), kw, kh)
}

// closeRect bridges gaps smaller than the kw x kh element (dilation followed
// by erosion).
func closeRect(src *image.Gray, kw, kh int) *image.Gray {
	return erodeRect(dilateRect(src, kw, kh), kw, kh)
}
