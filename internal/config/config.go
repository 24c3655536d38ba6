package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Params holds the tunable constants of the strikethrough removal pipeline.
//
// Every value was chosen empirically against scanned Latin-script documents
// with dark ink on a light background. Documents with different contrast or
// stroke weight may need recalibration; load overrides from a YAML file via
// Load rather than editing the defaults.
type Params struct {
	// Threshold is the grayscale binarization level (0-255). Pixels darker
	// than this become ink foreground. Fixed, not derived from the image
	// histogram - low-contrast scans are a known limitation.
	Threshold uint8 `yaml:"threshold"`

	// TextKernelWidth and TextKernelHeight size the closing element that
	// merges adjacent stroke fragments into glyph blobs. Small enough not to
	// bridge across word spaces.
	TextKernelWidth  int `yaml:"text_kernel_width"`
	TextKernelHeight int `yaml:"text_kernel_height"`

	// LineKernelWidth and LineKernelHeight size the opening element that
	// isolates long thin horizontal runs. Anything shorter than the width
	// is suppressed.
	LineKernelWidth  int `yaml:"line_kernel_width"`
	LineKernelHeight int `yaml:"line_kernel_height"`

	// MinLineWidth discards line candidates narrower than this many pixels
	// before classification (noise filter).
	MinLineWidth int `yaml:"min_line_width"`

	// Pad is the vertical margin, in pixels, of the window cropped around a
	// candidate when comparing it against the local text extent.
	Pad int `yaml:"pad"`

	// BandLow and BandHigh bound the relative vertical position (0 = text
	// top, 1 = text bottom) inside which a line is classified as a
	// strikethrough. Lines below BandHigh are treated as underlines.
	BandLow  float64 `yaml:"band_low"`
	BandHigh float64 `yaml:"band_high"`

	// DilateKernelWidth and DilateKernelHeight size the vertically biased
	// dilation applied to the confirmed strikethrough mask so anti-aliased
	// stroke edges are fully covered.
	DilateKernelWidth  int `yaml:"dilate_kernel_width"`
	DilateKernelHeight int `yaml:"dilate_kernel_height"`
}

// Default returns the reference parameter set.
func Default() Params {
	return Params{
		Threshold:          180,
		TextKernelWidth:    3,
		TextKernelHeight:   3,
		LineKernelWidth:    40,
		LineKernelHeight:   1,
		MinLineWidth:       20,
		Pad:                10,
		BandLow:            0.2,
		BandHigh:           0.8,
		DilateKernelWidth:  3,
		DilateKernelHeight: 8,
	}
}

// Load reads a YAML parameter file and overlays it on the defaults. Fields
// the file does not mention keep their default values.
func Load(path string) (Params, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse config: %w", err)
	}

	if err := p.Validate(); err != nil {
		return p, err
	}

	return p, nil
}

// Validate reports parameter combinations the pipeline cannot run with.
func (p Params) Validate() error {
	if p.TextKernelWidth < 1 || p.TextKernelHeight < 1 {
		return fmt.Errorf("text kernel %dx%d: both sides must be >= 1", p.TextKernelWidth, p.TextKernelHeight)
	}
	if p.LineKernelWidth < 1 || p.LineKernelHeight < 1 {
		return fmt.Errorf("line kernel %dx%d: both sides must be >= 1", p.LineKernelWidth, p.LineKernelHeight)
	}
	if p.DilateKernelWidth < 1 || p.DilateKernelHeight < 1 {
		return fmt.Errorf("dilate kernel %dx%d: both sides must be >= 1", p.DilateKernelWidth, p.DilateKernelHeight)
	}
	if p.MinLineWidth < 1 {
		return fmt.Errorf("min line width %d: must be >= 1", p.MinLineWidth)
	}
	if p.Pad < 0 {
		return fmt.Errorf("pad %d: must be >= 0", p.Pad)
	}
	if p.BandLow < 0 || p.BandHigh > 1 || p.BandLow >= p.BandHigh {
		return fmt.Errorf("band [%.2f, %.2f]: need 0 <= low < high <= 1", p.BandLow, p.BandHigh)
	}
	return nil
}
