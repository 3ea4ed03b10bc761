package yiv

import "math"

// RotateClockwise rotates the image 90 degrees clockwise in place. The
// pixel at (x, y) moves to (height-1-y, x) and the dimensions swap. The
// rotation is an exact permutation of samples; no resampling occurs.
func (m *Image) RotateClockwise() {
	rotated := make([]uint8, len(m.pix))
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			src := (y*m.width + x) * m.channels
			dst := (x*m.height + (m.height - 1 - y)) * m.channels
			copy(rotated[dst:dst+m.channels], m.pix[src:src+m.channels])
		}
	}
	m.width, m.height = m.height, m.width
	m.pix = rotated
}

// RotateCounterClockwise rotates the image 90 degrees counter-clockwise,
// defined as three successive clockwise rotations.
func (m *Image) RotateCounterClockwise() {
	m.RotateClockwise()
	m.RotateClockwise()
	m.RotateClockwise()
}

// Scale resizes the image by the given factor using nearest-neighbor
// sampling: destination pixel (x, y) takes source pixel
// (floor(x/factor), floor(y/factor)). New dimensions are
// floor(width*factor) by floor(height*factor); small factors can
// legitimately produce an empty image. A non-positive factor is a silent
// no-op.
func (m *Image) Scale(factor float64) {
	if factor <= 0 {
		return
	}
	newW := int(float64(m.width) * factor)
	newH := int(float64(m.height) * factor)

	scaled := make([]uint8, newW*newH*m.channels)
	for y := 0; y < newH; y++ {
		srcY := int(float64(y) / factor)
		for x := 0; x < newW; x++ {
			srcX := int(float64(x) / factor)
			src := (srcY*m.width + srcX) * m.channels
			dst := (y*newW + x) * m.channels
			copy(scaled[dst:dst+m.channels], m.pix[src:src+m.channels])
		}
	}
	m.width = newW
	m.height = newH
	m.pix = scaled
}

// Thumbnail derives a new, independently owned image scaled by
// min(maxWidth/width, maxHeight/height). The ratio preserves aspect and is
// deliberately not capped at 1, so bounds larger than the source upscale
// the copy. The result never aliases the source buffer. An empty source
// yields an empty thumbnail.
func (m *Image) Thumbnail(maxWidth, maxHeight int) *Image {
	thumb := m.Clone()
	if m.Empty() {
		return thumb
	}
	factor := math.Min(
		float64(maxWidth)/float64(m.width),
		float64(maxHeight)/float64(m.height),
	)
	thumb.Scale(factor)
	return thumb
}
