package yiv

import (
	"github.com/lucasb-eyer/go-colorful"
)

// AverageColor returns the mean color of the image as a colorful.Color.
// Gray buffers replicate the sample across R, G, and B; alpha is ignored.
// The second return is false for an empty image.
func (m *Image) AverageColor() (colorful.Color, bool) {
	if m.Empty() {
		return colorful.Color{}, false
	}

	var sumR, sumG, sumB float64
	n := 0
	for i := 0; i < len(m.pix); i += m.channels {
		if m.channels < 3 {
			g := float64(m.pix[i])
			sumR += g
			sumG += g
			sumB += g
		} else {
			sumR += float64(m.pix[i])
			sumG += float64(m.pix[i+1])
			sumB += float64(m.pix[i+2])
		}
		n++
	}

	scale := 255.0 * float64(n)
	return colorful.Color{
		R: sumR / scale,
		G: sumG / scale,
		B: sumB / scale,
	}, true
}

// Luminance returns the perceptual lightness of the image's average color
// as the L component of CIE Lab, in [0, 1]. Empty images report 0.
func (m *Image) Luminance() float64 {
	avg, ok := m.AverageColor()
	if !ok {
		return 0
	}
	l, _, _ := avg.Lab()
	return l
}

// ByLuminance orders images darkest first. Useful as a Collection.Sort
// comparator.
func ByLuminance(a, b *Image) bool {
	return a.Luminance() < b.Luminance()
}

// ByPixelCount orders images by total pixel count, smallest first.
func ByPixelCount(a, b *Image) bool {
	return a.Width()*a.Height() < b.Width()*b.Height()
}
