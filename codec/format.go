package codec

import (
	"path/filepath"
	"strings"
)

// Format identifies an image file format at the codec boundary.
//
// All listed formats are accepted by Decode (HEIF excepted). Only formats
// for which Encodable reports true can be produced by Encode.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatBMP
	FormatGIF
	FormatTIFF
	FormatWEBP
	FormatHEIF
)

// String returns the lowercase conventional name of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatGIF:
		return "gif"
	case FormatTIFF:
		return "tiff"
	case FormatWEBP:
		return "webp"
	case FormatHEIF:
		return "heif"
	default:
		return "unknown"
	}
}

// Encodable reports whether Encode can produce this format.
func (f Format) Encodable() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatBMP, FormatGIF, FormatTIFF:
		return true
	default:
		return false
	}
}

// FormatFromExtension maps a file path's extension to a Format.
//
// Matching is case-insensitive. Returns ErrUnsupportedFormat for
// extensions the codec does not recognize.
func FormatFromExtension(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".gif":
		return FormatGIF, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	case ".webp":
		return FormatWEBP, nil
	case ".heif", ".heic":
		return FormatHEIF, nil
	default:
		return Format(-1), ErrUnsupportedFormat
	}
}
