package detection

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/strike-clean/internal/config"
)

// Decision records how one line candidate was classified.
type Decision struct {
	// Bounds is the candidate's bounding box.
	Bounds image.Rectangle `json:"bounds"`

	// RelativePosition is the candidate's mean row relative to the local text
	// span (0 = text top, 1 = text bottom). Zero when the candidate was
	// skipped before measurement.
	RelativePosition float64 `json:"relative_position"`

	// Strikethrough is true when the candidate was removed.
	Strikethrough bool `json:"strikethrough"`

	// Skipped is "no-text" when the candidate's window held no text pixels
	// to measure against, empty otherwise.
	Skipped string `json:"skipped,omitempty"`
}

// Report summarizes one removal pass.
type Report struct {
	// Candidates is the number of connected line regions at least
	// MinLineWidth wide.
	Candidates int `json:"candidates"`

	// Strikethroughs is the number of candidates classified as strikethrough
	// and removed.
	Strikethroughs int `json:"strikethroughs"`

	// MaskedPixels is the number of pixels blanked in the output.
	MaskedPixels int `json:"masked_pixels"`

	// Decisions holds per-candidate detail for debug logging.
	Decisions []Decision `json:"decisions,omitempty"`

	// Mask is the dilated strikethrough mask that was applied, or nil when
	// nothing was removed. Shares the output image's dimensions.
	Mask *image.Gray `json:"-"`
}

// Remove detects horizontal strikethrough strokes in img and returns a copy
// with them blanked out. Underlines and glyphs are preserved. The input is
// never mutated, the output always has identical dimensions, and an image
// with no detections comes back pixel-identical (modulo NRGBA normalization).
//
// Remove never fails: it is a best-effort heuristic, and the worst outcome is
// an unmodified copy.
func Remove(img image.Image, p config.Params) (*image.NRGBA, Report) {
	// Clone normalizes any decoded color model to NRGBA with zero-origin
	// bounds and gives us the buffer the mask is later applied to.
	out := imaging.Clone(img)
	bounds := out.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	bin := binarizeInk(out, p.Threshold)
	textMask := closeRect(bin, p.TextKernelWidth, p.TextKernelHeight)
	lineMask := openRect(bin, p.LineKernelWidth, p.LineKernelHeight)

	strike := image.NewGray(bounds)
	rep := Report{}

	for _, c := range findComponents(lineMask) {
		if c.Bounds.Dx() < p.MinLineWidth {
			continue
		}
		rep.Candidates++
		d := classify(textMask, lineMask, c, p, w, h)
		rep.Decisions = append(rep.Decisions, d)

		if !d.Strikethrough {
			continue
		}
		rep.Strikethroughs++
		for _, pt := range c.Points {
			strike.Pix[pt.Y*strike.Stride+pt.X] = 255
		}
	}

	if rep.Strikethroughs == 0 {
		return out, rep
	}

	thick := dilateRect(strike, p.DilateKernelWidth, p.DilateKernelHeight)

	// Blank RGB under the mask; everything else passes through untouched.
	// Alpha is kept as-is, matching a three-channel masking convention.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if thick.Pix[y*thick.Stride+x] == 0 {
				continue
			}
			off := out.PixOffset(x, y)
			out.Pix[off] = 0
			out.Pix[off+1] = 0
			out.Pix[off+2] = 0
			rep.MaskedPixels++
		}
	}

	rep.Mask = thick
	return out, rep
}

// classify decides whether one line candidate is a strikethrough by comparing
// its vertical position against the text in a padded window around it.
func classify(textMask, lineMask *image.Gray, c Component, p config.Params, w, h int) Decision {
	d := Decision{Bounds: c.Bounds}

	y0 := c.Bounds.Min.Y - p.Pad
	if y0 < 0 {
		y0 = 0
	}
	y1 := c.Bounds.Max.Y + p.Pad
	if y1 > h {
		y1 = h
	}
	x0, x1 := c.Bounds.Min.X, c.Bounds.Max.X
	if x1 > w {
		x1 = w
	}

	// Vertical extent of glyph pixels inside the window.
	textTop, textBottom := -1, -1
	for y := y0; y < y1; y++ {
		row := textMask.Pix[y*textMask.Stride:]
		for x := x0; x < x1; x++ {
			if row[x] != 0 {
				if textTop < 0 {
					textTop = y
				}
				textBottom = y
				break
			}
		}
	}

	if textTop < 0 {
		// Cannot fire with the close/open mask pair (the line mask is a
		// subset of the text mask); guards the divisions below.
		d.Skipped = "no-text"
		return d
	}

	textHeight := textBottom - textTop
	if textHeight < 1 {
		textHeight = 1
	}

	// Mean row of every line-mask pixel in the window, not just this
	// component's own pixels, so overlapping fragments vote together.
	sumY, n := 0, 0
	for y := y0; y < y1; y++ {
		row := lineMask.Pix[y*lineMask.Stride:]
		for x := x0; x < x1; x++ {
			if row[x] != 0 {
				sumY += y
				n++
			}
		}
	}
	if n == 0 {
		d.Skipped = "no-text"
		return d
	}

	lineCenter := float64(sumY) / float64(n)
	d.RelativePosition = (lineCenter - float64(textTop)) / float64(textHeight)
	d.Strikethrough = d.RelativePosition > p.BandLow && d.RelativePosition < p.BandHigh
	return d
}
