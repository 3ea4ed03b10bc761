// Package yiv implements an in-memory image manipulation core.
//
// The central type is Image: a raw channel-interleaved pixel buffer with
// geometric transforms (exact 90-degree rotation, nearest-neighbor
// scaling), per-sample color filters, region extraction, and thumbnail
// derivation. Collection provides a mutex-guarded ordered container of
// shared Image handles for multi-image workflows such as albums and
// galleries.
//
// File formats are not handled here; encoding and decoding are delegated
// to the codec subpackage, which Image consumes for Load and SaveAs.
//
// # Buffer Layout
//
// Pixels are stored row-major, top-to-bottom, left-to-right, with the
// channels of each pixel interleaved. The channel count is 1 (gray),
// 2 (gray+alpha), 3 (RGB), or 4 (RGBA) and determines the per-pixel
// stride. After every operation len(Pix()) == Width()*Height()*Channels().
//
// # Thread Safety
//
// Image carries no internal synchronization: callers sharing one mutable
// Image across goroutines must serialize access themselves. Collection
// guards every structural operation with a single internal mutex; see the
// Lock and Unlock documentation for the manual-bracketing hazard.
//
// # Error Handling
//
// Load and save operations return errors and never leave an Image
// partially mutated. Scale with a non-positive factor, Collection.Remove
// with an out-of-range index, and Collection.At with an out-of-range index
// are deliberately silent no-ops; callers that need confirmation must
// inspect dimensions, counts, or returned handles themselves.
package yiv
