package yiv

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/transform"
)

// Effects beyond the per-sample filters are bridged through image.NRGBA
// and delegated to the bild processing library. They preserve dimensions
// and channel count, and operate on straight (non-premultiplied) samples:
// the premultiplied output of the bild kernels is un-premultiplied on the
// way back, so an alpha-carrying pixel keeps its color values rather than
// having them scaled by alpha. Color recovery precision shrinks with very
// small alpha, a limit of the premultiplied intermediate. Buffers with
// fewer than 3 channels round-trip through a gray expansion, so color
// introduced by an effect collapses back to the red channel.

// Blur applies a Gaussian blur with the given radius in place. A
// non-positive radius is a silent no-op.
func (m *Image) Blur(radius float64) {
	if radius <= 0 || m.Empty() {
		return
	}
	m.fromRGBA(blur.Gaussian(m.toNRGBA(), radius))
}

// Sharpen applies a sharpening convolution in place.
func (m *Image) Sharpen() {
	if m.Empty() {
		return
	}
	m.fromRGBA(effect.Sharpen(m.toNRGBA()))
}

// FlipHorizontal mirrors the image around its vertical axis in place.
func (m *Image) FlipHorizontal() {
	if m.Empty() {
		return
	}
	m.fromRGBA(transform.FlipH(m.toNRGBA()))
}

// FlipVertical mirrors the image around its horizontal axis in place.
func (m *Image) FlipVertical() {
	if m.Empty() {
		return
	}
	m.fromRGBA(transform.FlipV(m.toNRGBA()))
}

// toNRGBA expands the buffer into a 4-channel image.NRGBA view for the
// effect kernels. Gray buffers replicate the sample across R, G, and B.
func (m *Image) toNRGBA() *image.NRGBA {
	n := image.NewNRGBA(image.Rect(0, 0, m.width, m.height))
	j := 0
	for i := 0; i < len(m.pix); i += m.channels {
		switch m.channels {
		case 1:
			g := m.pix[i]
			n.Pix[j], n.Pix[j+1], n.Pix[j+2], n.Pix[j+3] = g, g, g, 0xFF
		case 2:
			g := m.pix[i]
			n.Pix[j], n.Pix[j+1], n.Pix[j+2], n.Pix[j+3] = g, g, g, m.pix[i+1]
		case 3:
			n.Pix[j], n.Pix[j+1], n.Pix[j+2], n.Pix[j+3] = m.pix[i], m.pix[i+1], m.pix[i+2], 0xFF
		case 4:
			n.Pix[j], n.Pix[j+1], n.Pix[j+2], n.Pix[j+3] = m.pix[i], m.pix[i+1], m.pix[i+2], m.pix[i+3]
		}
		j += 4
	}
	return n
}

// fromRGBA folds an effect result back into the buffer, keeping the
// original channel count. Result dimensions replace the current ones. The
// bild kernels hand back premultiplied-alpha RGBA, so every color sample is
// un-premultiplied before storing to restore straight-alpha values.
func (m *Image) fromRGBA(src *image.RGBA) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint8, w*h*m.channels)

	j := 0
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < w; x++ {
			i := x * 4
			a := row[i+3]
			r := unmultiply(row[i], a)
			g := unmultiply(row[i+1], a)
			bl := unmultiply(row[i+2], a)
			switch m.channels {
			case 1:
				pix[j] = r
			case 2:
				pix[j] = r
				pix[j+1] = a
			case 3:
				pix[j], pix[j+1], pix[j+2] = r, g, bl
			case 4:
				pix[j], pix[j+1], pix[j+2], pix[j+3] = r, g, bl, a
			}
			j += m.channels
		}
	}
	m.width = w
	m.height = h
	m.pix = pix
}

// unmultiply converts a premultiplied-alpha sample back to straight alpha
// with rounding. Fully transparent pixels carry no recoverable color and
// map to 0.
func unmultiply(c, a uint8) uint8 {
	switch a {
	case 0xFF:
		return c
	case 0:
		return 0
	}
	v := (uint32(c)*0xFF + uint32(a)/2) / uint32(a)
	if v > 0xFF {
		v = 0xFF
	}
	return uint8(v)
}
