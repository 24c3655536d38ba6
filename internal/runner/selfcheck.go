package runner

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"

	"github.com/ironsheep/strike-clean/internal/config"
	"github.com/ironsheep/strike-clean/internal/detection"
	"github.com/ironsheep/strike-clean/internal/imaging"
)

// CheckResult is the JSON envelope of the selfcheck probe.
type CheckResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// SelfCheck verifies the processing environment without touching any real
// input: decoder registration, lossless codec round trip, and a full
// detection pass over a generated sample page. It is a pure probe; nothing
// about the check persists.
func SelfCheck(params config.Params) CheckResult {
	if err := params.Validate(); err != nil {
		return failure("parameter validation failed", err)
	}
	if err := checkCodec(); err != nil {
		return failure("image codec check failed", err)
	}
	if err := checkPipeline(params); err != nil {
		return failure("detection pipeline check failed", err)
	}
	return CheckResult{Success: true, Message: "All pipeline dependencies are working correctly"}
}

func failure(msg string, err error) CheckResult {
	return CheckResult{Success: false, Message: msg, Error: err.Error()}
}

// checkCodec round-trips a test pattern through the base64 PNG codec and
// confirms the JPEG and GIF decoders answer to image.Decode.
func checkCodec() error {
	pattern := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			pattern.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}

	encoded, err := imaging.EncodePNGToBase64(pattern)
	if err != nil {
		return err
	}
	decoded, format, err := imaging.DecodeBase64Image(encoded)
	if err != nil {
		return err
	}
	if format != "png" {
		return fmt.Errorf("png round trip reported format %q", format)
	}
	if !bytes.Equal(decoded.Pix, pattern.Pix) {
		return fmt.Errorf("png round trip is not lossless")
	}

	var jb bytes.Buffer
	if err := jpeg.Encode(&jb, pattern, nil); err != nil {
		return fmt.Errorf("jpeg encode: %w", err)
	}
	if _, format, err = imaging.Decode(&jb); err != nil {
		return fmt.Errorf("jpeg decoder not registered: %w", err)
	} else if format != "jpeg" {
		return fmt.Errorf("jpeg decode reported format %q", format)
	}

	var gb bytes.Buffer
	if err := gif.Encode(&gb, pattern, nil); err != nil {
		return fmt.Errorf("gif encode: %w", err)
	}
	if _, format, err = imaging.Decode(&gb); err != nil {
		return fmt.Errorf("gif decoder not registered: %w", err)
	} else if format != "gif" {
		return fmt.Errorf("gif decode reported format %q", format)
	}

	return nil
}

// checkPipeline runs detection on a generated page carrying one struck-out
// word and one underlined word, and confirms only the strikethrough went
// away.
func checkPipeline(params config.Params) error {
	page := syntheticScene()

	cleaned, report := detection.Remove(page, params)

	if cleaned.Bounds() != page.Bounds() {
		return fmt.Errorf("output dimensions %v differ from input %v", cleaned.Bounds(), page.Bounds())
	}
	if report.Candidates != 2 {
		return fmt.Errorf("expected 2 line candidates on the sample page, found %d", report.Candidates)
	}
	if report.Strikethroughs != 1 {
		return fmt.Errorf("expected 1 strikethrough on the sample page, found %d", report.Strikethroughs)
	}
	if report.MaskedPixels == 0 {
		return fmt.Errorf("strikethrough detected but no pixels masked")
	}
	return nil
}

// syntheticScene draws a two-word sample page: the upper word is struck
// through, the lower one is underlined.
func syntheticScene() *image.NRGBA {
	page := image.NewNRGBA(image.Rect(0, 0, 240, 140))
	for i := range page.Pix {
		page.Pix[i] = 255
	}

	ink := color.NRGBA{60, 60, 60, 255}
	word := func(top int) {
		for bx := 40; bx < 180; bx += 12 {
			for x := bx; x < bx+8; x++ {
				for y := top; y < top+20; y++ {
					page.SetNRGBA(x, y, ink)
				}
			}
		}
	}
	stroke := func(y int) {
		for x := 30; x < 190; x++ {
			page.SetNRGBA(x, y, ink)
			page.SetNRGBA(x, y+1, ink)
		}
	}

	word(30)
	stroke(40) // through the upper word's midheight
	word(80)
	stroke(106) // below the lower word's baseline

	return page
}
