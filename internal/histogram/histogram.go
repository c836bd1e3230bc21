// Package histogram computes the clipped, scaled luminance histogram
// for the overlay and assembles the overlay text block.
package histogram

import (
	"image"
	"image/color"
	"sort"
)

// Bins is one bin per 8-bit luminance value.
const Bins = 256

// MinClip is the floor for the clip ceiling. A near-black image makes
// the upper quantile tiny or zero, which would blow the scale up.
const MinClip = 10

// Luminance builds the 256-bin grayscale histogram of img.
func Luminance(img image.Image) [Bins]int {
	var counts [Bins]int
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			counts[g.Y]++
		}
	}
	return counts
}

// clipCeiling returns the last of 25 quantile cut-points over the bin
// counts, the intensity above which a handful of huge bins would dwarf
// every other bar. Interpolation follows the exclusive quantile
// method: the i-th cut-point sits at rank i*(m+1)/n over the sorted
// counts.
func clipCeiling(counts [Bins]int) float64 {
	sorted := make([]float64, Bins)
	for i, c := range counts {
		sorted[i] = float64(c)
	}
	sort.Float64s(sorted)

	const n = 25
	m := len(sorted)
	h := float64(m+1) * float64(n-1) / float64(n)
	j := int(h)
	if j < 1 {
		j = 1
	}
	if j > m-1 {
		j = m - 1
	}
	gamma := h - float64(j)
	if gamma < 0 {
		gamma = 0
	} else if gamma > 1 {
		gamma = 1
	}
	return sorted[j-1] + gamma*(sorted[j]-sorted[j-1])
}

// Scale converts raw bin counts into display bar heights. Bins above
// the clip ceiling are truncated to it, then everything is scaled so
// the ceiling maps to maxHeight. The clip value is returned alongside
// the heights and is always at least MinClip.
func Scale(counts [Bins]int, maxHeight float64) ([Bins]float64, float64) {
	clip := clipCeiling(counts)
	if clip < MinClip {
		clip = MinClip
	}

	scale := maxHeight / clip
	var heights [Bins]float64
	for i, c := range counts {
		v := float64(c)
		if v > clip {
			v = clip
		}
		heights[i] = v * scale
	}
	return heights, clip
}
