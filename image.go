package yiv

import (
	"errors"
	"fmt"
	"os"

	"github.com/Yaznbook/yiv-lib/codec"
)

// ErrRegionBounds is returned when a requested sub-rectangle does not fit
// inside the decoded source image.
var ErrRegionBounds = errors.New("yiv: region outside source bounds")

// Image is a decoded raster: a channel-interleaved byte buffer plus its
// dimensions. The zero value is a valid empty image.
//
// Image is not safe for concurrent mutation; see the package documentation.
type Image struct {
	width    int
	height   int
	channels int
	pix      []uint8

	// sourcePath records where the pixels came from when loaded from a
	// file. Provenance only; nothing else keys off it.
	sourcePath string
}

// New returns an empty Image.
func New() *Image {
	return &Image{}
}

// NewFromPixels builds an Image from a raw channel-interleaved buffer, for
// callers that run their own decoder. The buffer is copied. Returns an
// error unless channels is 1-4 and len(pix) == width*height*channels.
func NewFromPixels(pix []uint8, width, height, channels int) (*Image, error) {
	if channels < 1 || channels > 4 {
		return nil, fmt.Errorf("yiv: invalid channel count %d", channels)
	}
	if width < 0 || height < 0 || len(pix) != width*height*channels {
		return nil, fmt.Errorf("yiv: buffer length %d does not match %dx%dx%d",
			len(pix), width, height, channels)
	}
	m := &Image{}
	m.setPixels(pix, width, height, channels)
	return m, nil
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.height }

// Channels returns the per-pixel channel count (1-4), or 0 for an empty image.
func (m *Image) Channels() int { return m.channels }

// Pix returns the underlying sample buffer. The slice is the live buffer,
// not a copy: writes through it are visible to the Image, and it is
// invalidated by any operation that replaces the buffer.
func (m *Image) Pix() []uint8 { return m.pix }

// SourcePath returns the path the image was loaded from, if any.
func (m *Image) SourcePath() string { return m.sourcePath }

// Empty reports whether the image holds no pixels.
func (m *Image) Empty() bool { return m.width == 0 || m.height == 0 }

// HasAlpha reports whether the image carries an alpha channel.
func (m *Image) HasAlpha() bool { return m.channels == 4 }

// setPixels replaces the buffer and dimensions in one step, copying data
// so the Image never aliases caller-owned memory.
func (m *Image) setPixels(data []uint8, width, height, channels int) {
	pix := make([]uint8, width*height*channels)
	copy(pix, data)
	m.width = width
	m.height = height
	m.channels = channels
	m.pix = pix
}

// Load decodes encoded image bytes and replaces the image's buffer and
// dimensions wholesale. On decode failure the image is left unchanged.
func (m *Image) Load(data []byte) error {
	r, err := codec.Decode(data)
	if err != nil {
		return err
	}
	m.setPixels(r.Pix, r.Width, r.Height, r.Channels)
	return nil
}

// LoadFile reads and decodes an image file, recording the path as the
// image's provenance. On failure the image is left unchanged.
func (m *Image) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image file: %w", err)
	}
	if err := m.Load(data); err != nil {
		return err
	}
	m.sourcePath = path
	return nil
}

// LoadRegion decodes the full source bytes, then keeps only the w*h
// sub-rectangle anchored at (x, y). The rectangle must satisfy
// x >= 0, y >= 0, x+w <= sourceWidth, and y+h <= sourceHeight; otherwise
// ErrRegionBounds is returned and the image is left unchanged. The full
// decode is discarded after extraction.
func (m *Image) LoadRegion(data []byte, x, y, w, h int) error {
	r, err := codec.Decode(data)
	if err != nil {
		return err
	}
	region, err := extractRegion(r.Pix, r.Width, r.Height, r.Channels, x, y, w, h)
	if err != nil {
		return err
	}
	m.setPixels(region, w, h, r.Channels)
	return nil
}

// LoadFileRegion is LoadRegion reading from a file, recording provenance
// like LoadFile.
func (m *Image) LoadFileRegion(path string, x, y, w, h int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image file: %w", err)
	}
	if err := m.LoadRegion(data, x, y, w, h); err != nil {
		return err
	}
	m.sourcePath = path
	return nil
}

// Crop replaces the image with the w*h sub-rectangle of its own buffer
// anchored at (x, y), using the same bounds rule as LoadRegion. On
// violation ErrRegionBounds is returned and the image is unchanged.
func (m *Image) Crop(x, y, w, h int) error {
	region, err := extractRegion(m.pix, m.width, m.height, m.channels, x, y, w, h)
	if err != nil {
		return err
	}
	m.width = w
	m.height = h
	m.pix = region
	return nil
}

// extractRegion copies the sub-rectangle row by row, preserving channel
// interleaving.
func extractRegion(pix []uint8, srcW, srcH, channels, x, y, w, h int) ([]uint8, error) {
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > srcW || y+h > srcH {
		return nil, fmt.Errorf("%w: rect (%d,%d %dx%d) in source %dx%d",
			ErrRegionBounds, x, y, w, h, srcW, srcH)
	}
	out := make([]uint8, w*h*channels)
	for row := 0; row < h; row++ {
		srcOff := ((y+row)*srcW + x) * channels
		copy(out[row*w*channels:(row+1)*w*channels], pix[srcOff:srcOff+w*channels])
	}
	return out, nil
}

// Clone returns a deep copy of the image. The copy shares no memory with
// the original.
func (m *Image) Clone() *Image {
	c := &Image{sourcePath: m.sourcePath}
	c.setPixels(m.pix, m.width, m.height, m.channels)
	return c
}

// SaveAs encodes the image to a file in the given format. Formats without
// an encoder fail with codec.ErrUnsupportedFormat before the file is
// created.
func (m *Image) SaveAs(path string, format codec.Format) error {
	if !format.Encodable() {
		return fmt.Errorf("save %s: %w", format, codec.ErrUnsupportedFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}

	r := &codec.Raster{Pix: m.pix, Width: m.width, Height: m.height, Channels: m.channels}
	if err := codec.Encode(f, r, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Metadata looks up a metadata value (EXIF tag, comment, and the like) by
// key. Metadata parsing belongs to the external codec collaborator; the
// core only exposes the query surface, so the lookup always reports the
// key as absent.
func (m *Image) Metadata(key string) (string, bool) {
	return "", false
}
