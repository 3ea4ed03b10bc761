package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrUnsupportedFormat is returned when a format cannot be encoded or is
// not recognized at all.
var ErrUnsupportedFormat = errors.New("codec: unsupported image format")

// jpegQuality is the fixed quality used for JPEG output.
const jpegQuality = 90

// Raster is a decoded image buffer: row-major, top-to-bottom,
// channel-interleaved samples. len(Pix) == Width*Height*Channels.
type Raster struct {
	Pix      []uint8
	Width    int
	Height   int
	Channels int
}

// Decode converts encoded image bytes into a Raster.
//
// The channel count is derived from the decoded color model:
//   - grayscale input produces 1 channel
//   - fully opaque color input produces 3 channels (RGB)
//   - color input carrying transparency produces 4 channels (RGBA)
//
// 16-bit samples are reduced to 8 bits. Returns an error for malformed or
// unrecognized input; no Raster is returned on failure.
func Decode(data []byte) (*Raster, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return fromImage(img), nil
}

// fromImage flattens a decoded image.Image into an interleaved Raster.
func fromImage(img image.Image) *Raster {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Gray:
		pix := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			copy(pix[y*w:(y+1)*w], src.Pix[y*src.Stride:y*src.Stride+w])
		}
		return &Raster{Pix: pix, Width: w, Height: h, Channels: 1}
	case *image.Gray16:
		pix := make([]uint8, w*h)
		for y := 0; y < h; y++ {
			row := src.Pix[y*src.Stride:]
			for x := 0; x < w; x++ {
				pix[y*w+x] = row[2*x] // high byte of the 16-bit sample
			}
		}
		return &Raster{Pix: pix, Width: w, Height: h, Channels: 1}
	}

	// Everything else goes through a normalized NRGBA clone. Fully opaque
	// images are repacked as 3-channel RGB so that JPEG and palette input
	// keeps the channel count a caller would expect from the file.
	n := imaging.Clone(img)
	if n.Opaque() {
		pix := make([]uint8, w*h*3)
		for i, j := 0, 0; i < len(n.Pix); i, j = i+4, j+3 {
			pix[j] = n.Pix[i]
			pix[j+1] = n.Pix[i+1]
			pix[j+2] = n.Pix[i+2]
		}
		return &Raster{Pix: pix, Width: w, Height: h, Channels: 3}
	}
	pix := make([]uint8, len(n.Pix))
	copy(pix, n.Pix)
	return &Raster{Pix: pix, Width: w, Height: h, Channels: 4}
}

// toImage wraps or expands a Raster into an image.Image for encoding.
func toImage(r *Raster) (image.Image, error) {
	rect := image.Rect(0, 0, r.Width, r.Height)
	switch r.Channels {
	case 1:
		return &image.Gray{Pix: r.Pix, Stride: r.Width, Rect: rect}, nil
	case 2:
		n := image.NewNRGBA(rect)
		for i, j := 0, 0; i < len(r.Pix); i, j = i+2, j+4 {
			g, a := r.Pix[i], r.Pix[i+1]
			n.Pix[j], n.Pix[j+1], n.Pix[j+2], n.Pix[j+3] = g, g, g, a
		}
		return n, nil
	case 3:
		n := image.NewNRGBA(rect)
		for i, j := 0, 0; i < len(r.Pix); i, j = i+3, j+4 {
			n.Pix[j] = r.Pix[i]
			n.Pix[j+1] = r.Pix[i+1]
			n.Pix[j+2] = r.Pix[i+2]
			n.Pix[j+3] = 0xFF
		}
		return n, nil
	case 4:
		return &image.NRGBA{Pix: r.Pix, Stride: 4 * r.Width, Rect: rect}, nil
	default:
		return nil, fmt.Errorf("encode image: invalid channel count %d", r.Channels)
	}
}

// Encode writes the Raster to w in the requested format.
//
// Unsupported formats fail with ErrUnsupportedFormat before any bytes are
// written. JPEG output uses a fixed quality of 90.
func Encode(w io.Writer, r *Raster, f Format) error {
	if !f.Encodable() {
		return fmt.Errorf("encode %s: %w", f, ErrUnsupportedFormat)
	}
	img, err := toImage(r)
	if err != nil {
		return err
	}

	var target imaging.Format
	switch f {
	case FormatPNG:
		target = imaging.PNG
	case FormatJPEG:
		target = imaging.JPEG
	case FormatBMP:
		target = imaging.BMP
	case FormatGIF:
		target = imaging.GIF
	case FormatTIFF:
		target = imaging.TIFF
	}

	if err := imaging.Encode(w, img, target, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// Info contains metadata about encoded image bytes.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected format name as registered with image.Decode
	// ("png", "jpeg", "gif", "bmp", "tiff", "webp").
	Format string `json:"format"`

	// Channels is the channel count Decode would report for this input.
	// It is derived from the color model, so alpha-capable models count
	// as 4 channels even when every pixel happens to be opaque.
	Channels int `json:"channels"`

	// HasAlpha indicates whether the color model carries an alpha channel.
	HasAlpha bool `json:"has_alpha"`
}

// DecodeInfo inspects encoded image bytes without decoding the pixel data.
func DecodeInfo(data []byte) (*Info, error) {
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image config: %w", err)
	}

	channels := 4
	hasAlpha := true
	switch cfg.ColorModel {
	case color.GrayModel, color.Gray16Model:
		channels, hasAlpha = 1, false
	case color.YCbCrModel, color.CMYKModel:
		channels, hasAlpha = 3, false
	}

	return &Info{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Format:   name,
		Channels: channels,
		HasAlpha: hasAlpha,
	}, nil
}
