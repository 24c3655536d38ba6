package imaging

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// labMergeDistance is the CIE Lab distance under which two pixel colors are
// considered the same stroke color. 0.1 groups anti-aliased edge pixels with
// the stroke core without folding distinct inks together.
const labMergeDistance = 0.1

// ColorStats describes the dominant color of a masked pixel region.
type ColorStats struct {
	// Hex is the dominant cluster's average color as "#rrggbb".
	Hex string `json:"hex"`

	// Pixels is the number of mask-covered pixels sampled.
	Pixels int `json:"pixels"`

	// Clusters is the number of distinct color groups found.
	Clusters int `json:"clusters"`
}

type colorCluster struct {
	rep   colorful.Color
	sumR  float64
	sumG  float64
	sumB  float64
	count int
}

// StrokeColor reports the dominant color among the pixels of img covered by
// the 0/255 mask. Colors are grouped by Lab distance, so slight anti-aliasing
// variation collapses into one cluster. A nil or empty mask yields the zero
// value.
//
// The mask must share img's dimensions.
func StrokeColor(img *image.NRGBA, mask *image.Gray) ColorStats {
	if mask == nil {
		return ColorStats{}
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	clusters := make([]colorCluster, 0, 4)
	total := 0

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.Pix[y*mask.Stride+x] == 0 {
				continue
			}
			total++

			off := img.PixOffset(x, y)
			c := colorful.Color{
				R: float64(img.Pix[off]) / 255.0,
				G: float64(img.Pix[off+1]) / 255.0,
				B: float64(img.Pix[off+2]) / 255.0,
			}

			merged := false
			for i := range clusters {
				if clusters[i].rep.DistanceLab(c) < labMergeDistance {
					clusters[i].sumR += c.R
					clusters[i].sumG += c.G
					clusters[i].sumB += c.B
					clusters[i].count++
					merged = true
					break
				}
			}
			if !merged {
				clusters = append(clusters, colorCluster{rep: c, sumR: c.R, sumG: c.G, sumB: c.B, count: 1})
			}
		}
	}

	if total == 0 {
		return ColorStats{}
	}

	dominant := clusters[0]
	for _, cl := range clusters[1:] {
		if cl.count > dominant.count {
			dominant = cl
		}
	}

	n := float64(dominant.count)
	avg := colorful.Color{R: dominant.sumR / n, G: dominant.sumG / n, B: dominant.sumB / n}

	return ColorStats{
		Hex:      avg.Hex(),
		Pixels:   total,
		Clusters: len(clusters),
	}
}
