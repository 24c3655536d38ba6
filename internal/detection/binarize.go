package detection

import (
	"image"

	"github.com/anthonynsimon/bild/segment"
)

// binarizeInk thresholds the image into a binary ink mask. Pixels darker than
// threshold (in luminance terms) become foreground (255), everything else
// background (0) - the inverse of segment.Threshold's polarity, since the
// pipeline wants ink high and paper low.
func binarizeInk(img image.Image, threshold uint8) *image.Gray {
	bin := segment.Threshold(img, threshold)
	for i, v := range bin.Pix {
		bin.Pix[i] = 255 - v
	}
	return bin
}
