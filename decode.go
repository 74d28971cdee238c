package pixelart

import (
	"io"

	"github.com/wbrown/pixelart/imageutil"
)

// Decode reads a PNG, JPEG, GIF, BMP, TIFF or WebP stream into an
// RGBAImage. Failures wrap ErrDecode.
func Decode(r io.Reader) (*imageutil.RGBAImage, error) {
	return imageutil.Decode(r)
}
