package yiv

import "math"

// Filter selects one of the built-in per-sample color filters.
type Filter int

const (
	// FilterGrayscale replaces R, G, and B of every pixel with the luma
	// 0.30*R + 0.59*G + 0.11*B, truncated to a byte. Alpha is untouched.
	// Images with fewer than 3 channels are left unchanged.
	FilterGrayscale Filter = iota

	// FilterInvert complements every sample: v becomes 255-v. The
	// complement is applied per byte, alpha included, so transparent
	// regions of a 4-channel image become opaque and vice versa.
	FilterInvert

	// FilterBrightness adds a fixed offset of 50 to every sample,
	// clamped at 255.
	FilterBrightness

	// FilterContrast applies a fixed linear stretch around mid-gray:
	// v becomes clamp(0, 255, round((v-128)*1.2 + 128)).
	FilterContrast
)

const (
	brightnessOffset = 50
	contrastGain     = 1.2
)

// ApplyFilter runs the selected filter in place over the whole buffer.
// Filters never fail; on an empty buffer they are a no-op. Unknown filter
// values do nothing.
func (m *Image) ApplyFilter(f Filter) {
	switch f {
	case FilterGrayscale:
		m.grayscale()
	case FilterInvert:
		m.invert()
	case FilterBrightness:
		m.brightness()
	case FilterContrast:
		m.contrast()
	}
}

func (m *Image) grayscale() {
	if m.channels < 3 {
		return
	}
	for i := 0; i < len(m.pix); i += m.channels {
		// Exact integer form of trunc(0.30*R + 0.59*G + 0.11*B). Floating
		// point drifts below the true value for equal channels, which
		// would make repeated application darken the image one step per
		// run instead of being idempotent.
		luma := uint8((30*int(m.pix[i]) + 59*int(m.pix[i+1]) + 11*int(m.pix[i+2])) / 100)
		m.pix[i] = luma
		m.pix[i+1] = luma
		m.pix[i+2] = luma
	}
}

func (m *Image) invert() {
	for i, v := range m.pix {
		m.pix[i] = 255 - v
	}
}

func (m *Image) brightness() {
	for i, v := range m.pix {
		if int(v)+brightnessOffset > 255 {
			m.pix[i] = 255
		} else {
			m.pix[i] = v + brightnessOffset
		}
	}
}

func (m *Image) contrast() {
	for i, v := range m.pix {
		adjusted := math.Round((float64(v)-128)*contrastGain + 128)
		switch {
		case adjusted < 0:
			m.pix[i] = 0
		case adjusted > 255:
			m.pix[i] = 255
		default:
			m.pix[i] = uint8(adjusted)
		}
	}
}
