// Package codec is the file-format boundary for yiv-lib.
//
// It converts encoded image bytes to and from the raw channel-interleaved
// rasters that the rest of the library operates on. Decoding accepts PNG,
// JPEG, GIF, BMP, TIFF, and WebP input; encoding supports PNG, JPEG, GIF,
// TIFF, and BMP. The channel count reported by Decode (1, 3, or 4) is
// derived from the decoded color model and drives downstream filter and
// transform behavior.
//
// # Raster Layout
//
// A Raster stores samples row-major, top-to-bottom, left-to-right, with the
// channels of each pixel interleaved (for example RGBRGBRGB for a 3-channel
// raster). len(Pix) is always Width*Height*Channels.
//
// # Error Handling
//
// Decode returns an error for malformed or unrecognized input. Encode
// returns an error for formats that have no encoder (WebP, HEIF) without
// writing any output.
package codec
